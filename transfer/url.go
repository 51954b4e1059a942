package transfer

import (
	"fmt"

	"github.com/famproperties/s3cognito/region"
)

// URLStyle selects the form of the public URL reported for an upload.
type URLStyle string

const (
	// VirtualHosted is https://<bucket>.s3.amazonaws.com/<key>.
	VirtualHosted URLStyle = "virtual-hosted"
	// RegionPath is https://s3-<region>.amazonaws.com/<bucket>/<key>.
	RegionPath URLStyle = "region-path"
)

// ParseURLStyle returns the URLStyle named s. Empty or unrecognised input is VirtualHosted.
func ParseURLStyle(s string) URLStyle {
	if URLStyle(s) == RegionPath {
		return RegionPath
	}
	return VirtualHosted
}

// ObjectURL builds the public URL of key. The key is used verbatim, without escaping.
// RegionPath needs a known region and falls back to VirtualHosted otherwise.
func ObjectURL(style URLStyle, bucket string, r region.Region, key string) string {
	if style == RegionPath && r.Known() {
		return fmt.Sprintf("https://s3-%s.amazonaws.com/%s/%s", r.Code(), bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key)
}
