package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/famproperties/s3cognito/region"
)

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "https://family.s3.amazonaws.com/photos/a b.png",
		ObjectURL(VirtualHosted, "family", region.USEast1, "photos/a b.png"), "key is not escaped")
	assert.Equal(t, "https://family.s3.amazonaws.com/a.png",
		ObjectURL("", "family", region.Unknown, "a.png"), "empty style is virtual-hosted")
	assert.Equal(t, "https://s3-ap-south-1.amazonaws.com/family/a.png",
		ObjectURL(RegionPath, "family", region.APSouth1, "a.png"))
	assert.Equal(t, "https://family.s3.amazonaws.com/a.png",
		ObjectURL(RegionPath, "family", region.Unknown, "a.png"), "region path needs a region")
}

func TestParseURLStyle(t *testing.T) {
	assert.Equal(t, RegionPath, ParseURLStyle("region-path"))
	assert.Equal(t, VirtualHosted, ParseURLStyle("virtual-hosted"))
	assert.Equal(t, VirtualHosted, ParseURLStyle(""))
	assert.Equal(t, VirtualHosted, ParseURLStyle("bogus"))
}
