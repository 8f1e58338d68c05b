package tinvest

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/encoding/gzip"

	"github.com/artemevsevev/t-invest-sdk-go/pkg/investapi"
)

// Client owns a single connection to the API and hands out the
// generated service clients over it.
type Client struct {
	conn    *grpc.ClientConn
	target  string
	appName string
	log     Logger
}

// NewProduction connects to the live API.
func NewProduction(ctx context.Context, token string, opts ...Option) (*Client, error) {
	return New(ctx, Config{Token: token, Environment: Production}, opts...)
}

// NewSandbox connects to the sandbox API.
func NewSandbox(ctx context.Context, token string, opts ...Option) (*Client, error) {
	return New(ctx, Config{Token: token, Environment: Sandbox}, opts...)
}

// New dials the environment's endpoint over TLS with system roots and
// installs the authentication interceptors. The returned client is safe
// for concurrent use; Close releases the connection.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "tinvest: invalid config")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.appName != "" {
		cfg.AppName = o.appName
	}
	if o.endpoint != "" {
		cfg.Endpoint = o.endpoint
	}
	target := cfg.target()
	appName := cfg.appName()

	creds, err := transportCredentials(target)
	if err != nil {
		return nil, errors.Wrap(err, "tinvest: tls setup")
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithChainUnaryInterceptor(unaryAuthInterceptor(cfg.Token, appName)),
		grpc.WithChainStreamInterceptor(streamAuthInterceptor(cfg.Token, appName)),
	}
	if o.compression {
		dialOpts = append(dialOpts, grpc.WithDefaultCallOptions(grpc.UseCompressor(gzip.Name)))
	}
	// Caller options last so they can override transport credentials.
	dialOpts = append(dialOpts, o.dialOpts...)

	conn, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "tinvest: dial %s", target)
	}
	o.logger.Infof("tinvest: connected to %s (%s)", target, cfg.Environment)

	return &Client{
		conn:    conn,
		target:  target,
		appName: appName,
		log:     o.logger,
	}, nil
}

func transportCredentials(target string) (credentials.TransportCredentials, error) {
	rootCAs, err := x509.SystemCertPool()
	if err != nil || rootCAs == nil {
		rootCAs = x509.NewCertPool()
	}
	cfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    rootCAs,
		ServerName: hostFromTarget(target),
	}
	return credentials.NewTLS(cfg), nil
}

func hostFromTarget(target string) string {
	target = strings.TrimSpace(target)
	if host, _, err := net.SplitHostPort(target); err == nil {
		return host
	}
	return target
}

// Conn exposes the underlying connection for callers that want to build
// their own service clients.
func (c *Client) Conn() grpc.ClientConnInterface {
	return c.conn
}

// Target reports the gRPC target the client dialed.
func (c *Client) Target() string {
	return c.target
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	c.log.Infof("tinvest: closing connection to %s", c.target)
	return c.conn.Close()
}

// Users returns the accounts and user info service client.
func (c *Client) Users() investapi.UsersServiceClient {
	return investapi.NewUsersServiceClient(c.conn)
}

// Instruments returns the instruments reference service client.
func (c *Client) Instruments() investapi.InstrumentsServiceClient {
	return investapi.NewInstrumentsServiceClient(c.conn)
}

// MarketData returns the unary market data service client.
func (c *Client) MarketData() investapi.MarketDataServiceClient {
	return investapi.NewMarketDataServiceClient(c.conn)
}

// MarketDataStream returns the streaming market data service client.
func (c *Client) MarketDataStream() investapi.MarketDataStreamServiceClient {
	return investapi.NewMarketDataStreamServiceClient(c.conn)
}

// Orders returns the order placement service client.
func (c *Client) Orders() investapi.OrdersServiceClient {
	return investapi.NewOrdersServiceClient(c.conn)
}

// OrdersStream returns the order executions stream service client.
func (c *Client) OrdersStream() investapi.OrdersStreamServiceClient {
	return investapi.NewOrdersStreamServiceClient(c.conn)
}

// Operations returns the operations and portfolio service client.
func (c *Client) Operations() investapi.OperationsServiceClient {
	return investapi.NewOperationsServiceClient(c.conn)
}

// OperationsStream returns the portfolio and positions stream service client.
func (c *Client) OperationsStream() investapi.OperationsStreamServiceClient {
	return investapi.NewOperationsStreamServiceClient(c.conn)
}

// StopOrders returns the stop orders service client.
func (c *Client) StopOrders() investapi.StopOrdersServiceClient {
	return investapi.NewStopOrdersServiceClient(c.conn)
}

// Sandbox returns the sandbox service client.
func (c *Client) Sandbox() investapi.SandboxServiceClient {
	return investapi.NewSandboxServiceClient(c.conn)
}

// Signals returns the strategies and signals service client.
func (c *Client) Signals() investapi.SignalServiceClient {
	return investapi.NewSignalServiceClient(c.conn)
}
