// Package options holds the option interfaces shared by the transfer package and its callers.
package options

// NewAdapterOption configures a value of type T at construction time.
// Example:
// ```
//
//	type loggerOpt struct{ logger logrus.FieldLogger }
//	func (o *loggerOpt) Apply(a *transfer.Adapter) { ... }
//	func (o *loggerOpt) NewAdapterOptionName() string {
//		return "logger"
//	}
//
// ```
type NewAdapterOption[T any] interface {
	Apply(*T)
	NewAdapterOptionName() string
}

// ApplyOptions applies opts to t in order. Nil options are skipped.
func ApplyOptions[T any](t *T, opts ...NewAdapterOption[T]) {
	for _, o := range opts {
		if o != nil {
			o.Apply(t)
		}
	}
}

// DeleteOption interface contains function that should be implemented by any custom option to qualify as a delete option.
type DeleteOption interface {
	DeleteOptionName() string
}
