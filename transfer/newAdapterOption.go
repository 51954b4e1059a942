package transfer

import (
	"github.com/sirupsen/logrus"

	"github.com/famproperties/s3cognito/options"
)

const (
	optionNameClient        = "client"
	optionNameOptions       = "options"
	optionNameLogger        = "logger"
	optionNameClientFactory = "clientFactory"
)

// WithClient returns clientOpt implementation of NewAdapterOption
//
// WithClient is used to explicitly specify a Client to use for every request of the adapter.
// Credentials then come from the client, not from the request's auth token.
func WithClient(c Client) options.NewAdapterOption[Adapter] {
	return &clientOpt{
		client: c,
	}
}

type clientOpt struct {
	client Client
}

func (ct *clientOpt) Apply(a *Adapter) {
	a.client = ct.client
}

func (ct *clientOpt) NewAdapterOptionName() string {
	return optionNameClient
}

// WithOptions returns optionsOpt implementation of NewAdapterOption
//
// WithOptions is used to specify options for the adapter.
// The options are used to configure the S3 client and the transfers.
func WithOptions(opts Options) options.NewAdapterOption[Adapter] {
	return &optionsOpt{
		options: opts,
	}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(a *Adapter) {
	a.options = o.options
}

func (o *optionsOpt) NewAdapterOptionName() string {
	return optionNameOptions
}

// WithLogger returns loggerOpt implementation of NewAdapterOption
//
// WithLogger replaces the standard logrus logger.
func WithLogger(l logrus.FieldLogger) options.NewAdapterOption[Adapter] {
	return &loggerOpt{
		logger: l,
	}
}

type loggerOpt struct {
	logger logrus.FieldLogger
}

func (l *loggerOpt) Apply(a *Adapter) {
	if l.logger != nil {
		a.logger = l.logger
	}
}

func (l *loggerOpt) NewAdapterOptionName() string {
	return optionNameLogger
}

// WithClientFactory returns factoryOpt implementation of NewAdapterOption
//
// WithClientFactory replaces the function that builds a Client for each request.
func WithClientFactory(f ClientFactory) options.NewAdapterOption[Adapter] {
	return &factoryOpt{
		factory: f,
	}
}

type factoryOpt struct {
	factory ClientFactory
}

func (f *factoryOpt) Apply(a *Adapter) {
	if f.factory != nil {
		a.factory = f.factory
	}
}

func (f *factoryOpt) NewAdapterOptionName() string {
	return optionNameClientFactory
}
