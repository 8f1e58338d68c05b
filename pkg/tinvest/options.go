package tinvest

import (
	"google.golang.org/grpc"
)

// Option adjusts client construction.
type Option func(*clientOptions)

type clientOptions struct {
	appName     string
	endpoint    string
	compression bool
	dialOpts    []grpc.DialOption
	logger      Logger
}

func defaultOptions() clientOptions {
	return clientOptions{
		compression: true,
		logger:      defaultLogger(),
	}
}

// WithAppName overrides the x-app-name metadata value.
func WithAppName(name string) Option {
	return func(o *clientOptions) {
		o.appName = name
	}
}

// WithEndpoint overrides the gRPC target derived from the environment.
func WithEndpoint(target string) Option {
	return func(o *clientOptions) {
		o.endpoint = target
	}
}

// WithoutCompression disables the default gzip call option.
func WithoutCompression() Option {
	return func(o *clientOptions) {
		o.compression = false
	}
}

// WithDialOptions appends extra grpc dial options. Options given here
// are applied after the client's own, so they can override transport
// credentials for local testing.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *clientOptions) {
		o.dialOpts = append(o.dialOpts, opts...)
	}
}

// WithLogger replaces the default zap-backed logger.
func WithLogger(l Logger) Option {
	return func(o *clientOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
