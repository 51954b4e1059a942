package delete

import "github.com/famproperties/s3cognito/options"

const (
	optionNameConfirm = "confirm"
	optionNameVersion = "version"
)

// WithConfirm returns Confirm implementation of DeleteOption
func WithConfirm() options.DeleteOption {
	return Confirm{}
}

// Confirm represents the DeleteOption that waits for the delete to finish and reports its real outcome.
type Confirm struct{}

// DeleteOptionName returns the name of Confirm option
func (Confirm) DeleteOptionName() string {
	return optionNameConfirm
}

// WithVersion returns Version implementation of DeleteOption
func WithVersion(versionID string) options.DeleteOption {
	return Version(versionID)
}

// Version represents the DeleteOption that removes one version of the object.
type Version string

// DeleteOptionName returns the name of Version option
func (Version) DeleteOptionName() string {
	return optionNameVersion
}
