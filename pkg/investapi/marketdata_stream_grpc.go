package investapi

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	MarketDataStreamService_MarketDataStream_FullMethodName = "/tinkoff.public.invest.api.contract.v1.MarketDataStreamService/MarketDataStream"
)

// MarketDataStreamServiceClient is the client API for MarketDataStreamService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MarketDataStreamServiceClient interface {
	// Bi-directional stream of market data subscriptions and events.
	MarketDataStream(ctx context.Context, opts ...grpc.CallOption) (MarketDataStreamService_MarketDataStreamClient, error)
}

type marketDataStreamServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMarketDataStreamServiceClient(cc grpc.ClientConnInterface) MarketDataStreamServiceClient {
	return &marketDataStreamServiceClient{cc}
}

func (c *marketDataStreamServiceClient) MarketDataStream(ctx context.Context, opts ...grpc.CallOption) (MarketDataStreamService_MarketDataStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &MarketDataStreamService_ServiceDesc.Streams[0], MarketDataStreamService_MarketDataStream_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &marketDataStreamServiceMarketDataStreamClient{stream}
	return x, nil
}

type MarketDataStreamService_MarketDataStreamClient interface {
	Send(*MarketDataRequest) error
	Recv() (*MarketDataResponse, error)
	grpc.ClientStream
}

type marketDataStreamServiceMarketDataStreamClient struct {
	grpc.ClientStream
}

func (x *marketDataStreamServiceMarketDataStreamClient) Send(m *MarketDataRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *marketDataStreamServiceMarketDataStreamClient) Recv() (*MarketDataResponse, error) {
	m := new(MarketDataResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// MarketDataStreamServiceServer is the server API for MarketDataStreamService service.
// All implementations should embed UnimplementedMarketDataStreamServiceServer
// for forward compatibility.
type MarketDataStreamServiceServer interface {
	// Bi-directional stream of market data subscriptions and events.
	MarketDataStream(MarketDataStreamService_MarketDataStreamServer) error
}

// UnimplementedMarketDataStreamServiceServer should be embedded to have forward compatible implementations.
type UnimplementedMarketDataStreamServiceServer struct{}

func (UnimplementedMarketDataStreamServiceServer) MarketDataStream(MarketDataStreamService_MarketDataStreamServer) error {
	return status.Errorf(codes.Unimplemented, "method MarketDataStream not implemented")
}

func RegisterMarketDataStreamServiceServer(s grpc.ServiceRegistrar, srv MarketDataStreamServiceServer) {
	s.RegisterService(&MarketDataStreamService_ServiceDesc, srv)
}

func _MarketDataStreamService_MarketDataStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(MarketDataStreamServiceServer).MarketDataStream(&marketDataStreamServiceMarketDataStreamServer{stream})
}

type MarketDataStreamService_MarketDataStreamServer interface {
	Send(*MarketDataResponse) error
	Recv() (*MarketDataRequest, error)
	grpc.ServerStream
}

type marketDataStreamServiceMarketDataStreamServer struct {
	grpc.ServerStream
}

func (x *marketDataStreamServiceMarketDataStreamServer) Send(m *MarketDataResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *marketDataStreamServiceMarketDataStreamServer) Recv() (*MarketDataRequest, error) {
	m := new(MarketDataRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// MarketDataStreamService_ServiceDesc is the grpc.ServiceDesc for MarketDataStreamService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MarketDataStreamService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tinkoff.public.invest.api.contract.v1.MarketDataStreamService",
	HandlerType: (*MarketDataStreamServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "MarketDataStream",
			Handler:       _MarketDataStreamService_MarketDataStream_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "marketdata.proto",
}
