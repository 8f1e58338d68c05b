package investapi

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	OperationsService_GetOperations_FullMethodName     = "/tinkoff.public.invest.api.contract.v1.OperationsService/GetOperations"
	OperationsService_GetPortfolio_FullMethodName      = "/tinkoff.public.invest.api.contract.v1.OperationsService/GetPortfolio"
	OperationsService_GetPositions_FullMethodName      = "/tinkoff.public.invest.api.contract.v1.OperationsService/GetPositions"
	OperationsService_GetWithdrawLimits_FullMethodName = "/tinkoff.public.invest.api.contract.v1.OperationsService/GetWithdrawLimits"
)

// OperationsServiceClient is the client API for OperationsService.
type OperationsServiceClient interface {
	GetOperations(ctx context.Context, in *OperationsRequest, opts ...grpc.CallOption) (*OperationsResponse, error)
	GetPortfolio(ctx context.Context, in *PortfolioRequest, opts ...grpc.CallOption) (*PortfolioResponse, error)
	GetPositions(ctx context.Context, in *PositionsRequest, opts ...grpc.CallOption) (*PositionsResponse, error)
	GetWithdrawLimits(ctx context.Context, in *WithdrawLimitsRequest, opts ...grpc.CallOption) (*WithdrawLimitsResponse, error)
}

type operationsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOperationsServiceClient(cc grpc.ClientConnInterface) OperationsServiceClient {
	return &operationsServiceClient{cc}
}

func (c *operationsServiceClient) GetOperations(ctx context.Context, in *OperationsRequest, opts ...grpc.CallOption) (*OperationsResponse, error) {
	out := new(OperationsResponse)
	err := c.cc.Invoke(ctx, OperationsService_GetOperations_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operationsServiceClient) GetPortfolio(ctx context.Context, in *PortfolioRequest, opts ...grpc.CallOption) (*PortfolioResponse, error) {
	out := new(PortfolioResponse)
	err := c.cc.Invoke(ctx, OperationsService_GetPortfolio_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operationsServiceClient) GetPositions(ctx context.Context, in *PositionsRequest, opts ...grpc.CallOption) (*PositionsResponse, error) {
	out := new(PositionsResponse)
	err := c.cc.Invoke(ctx, OperationsService_GetPositions_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operationsServiceClient) GetWithdrawLimits(ctx context.Context, in *WithdrawLimitsRequest, opts ...grpc.CallOption) (*WithdrawLimitsResponse, error) {
	out := new(WithdrawLimitsResponse)
	err := c.cc.Invoke(ctx, OperationsService_GetWithdrawLimits_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OperationsServiceServer is the server API for OperationsService.
type OperationsServiceServer interface {
	GetOperations(context.Context, *OperationsRequest) (*OperationsResponse, error)
	GetPortfolio(context.Context, *PortfolioRequest) (*PortfolioResponse, error)
	GetPositions(context.Context, *PositionsRequest) (*PositionsResponse, error)
	GetWithdrawLimits(context.Context, *WithdrawLimitsRequest) (*WithdrawLimitsResponse, error)
}

// UnimplementedOperationsServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedOperationsServiceServer struct{}

func (UnimplementedOperationsServiceServer) GetOperations(context.Context, *OperationsRequest) (*OperationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetOperations not implemented")
}
func (UnimplementedOperationsServiceServer) GetPortfolio(context.Context, *PortfolioRequest) (*PortfolioResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPortfolio not implemented")
}
func (UnimplementedOperationsServiceServer) GetPositions(context.Context, *PositionsRequest) (*PositionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPositions not implemented")
}
func (UnimplementedOperationsServiceServer) GetWithdrawLimits(context.Context, *WithdrawLimitsRequest) (*WithdrawLimitsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWithdrawLimits not implemented")
}

func RegisterOperationsServiceServer(s grpc.ServiceRegistrar, srv OperationsServiceServer) {
	s.RegisterService(&OperationsService_ServiceDesc, srv)
}

func _OperationsService_GetOperations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OperationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperationsServiceServer).GetOperations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OperationsService_GetOperations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperationsServiceServer).GetOperations(ctx, req.(*OperationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OperationsService_GetPortfolio_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PortfolioRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperationsServiceServer).GetPortfolio(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OperationsService_GetPortfolio_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperationsServiceServer).GetPortfolio(ctx, req.(*PortfolioRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OperationsService_GetPositions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PositionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperationsServiceServer).GetPositions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OperationsService_GetPositions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperationsServiceServer).GetPositions(ctx, req.(*PositionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OperationsService_GetWithdrawLimits_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawLimitsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperationsServiceServer).GetWithdrawLimits(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OperationsService_GetWithdrawLimits_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperationsServiceServer).GetWithdrawLimits(ctx, req.(*WithdrawLimitsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// OperationsService_ServiceDesc is the grpc.ServiceDesc for OperationsService.
var OperationsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tinkoff.public.invest.api.contract.v1.OperationsService",
	HandlerType: (*OperationsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetOperations",
			Handler:    _OperationsService_GetOperations_Handler,
		},
		{
			MethodName: "GetPortfolio",
			Handler:    _OperationsService_GetPortfolio_Handler,
		},
		{
			MethodName: "GetPositions",
			Handler:    _OperationsService_GetPositions_Handler,
		},
		{
			MethodName: "GetWithdrawLimits",
			Handler:    _OperationsService_GetWithdrawLimits_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "operations.proto",
}

const (
	OperationsStreamService_PortfolioStream_FullMethodName = "/tinkoff.public.invest.api.contract.v1.OperationsStreamService/PortfolioStream"
	OperationsStreamService_PositionsStream_FullMethodName = "/tinkoff.public.invest.api.contract.v1.OperationsStreamService/PositionsStream"
)

// OperationsStreamServiceClient is the client API for OperationsStreamService.
type OperationsStreamServiceClient interface {
	// Stream of portfolio snapshots for the given accounts.
	PortfolioStream(ctx context.Context, in *PortfolioStreamRequest, opts ...grpc.CallOption) (OperationsStreamService_PortfolioStreamClient, error)
	// Stream of position updates for the given accounts.
	PositionsStream(ctx context.Context, in *PositionsStreamRequest, opts ...grpc.CallOption) (OperationsStreamService_PositionsStreamClient, error)
}

type operationsStreamServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOperationsStreamServiceClient(cc grpc.ClientConnInterface) OperationsStreamServiceClient {
	return &operationsStreamServiceClient{cc}
}

func (c *operationsStreamServiceClient) PortfolioStream(ctx context.Context, in *PortfolioStreamRequest, opts ...grpc.CallOption) (OperationsStreamService_PortfolioStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &OperationsStreamService_ServiceDesc.Streams[0], OperationsStreamService_PortfolioStream_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &operationsStreamServicePortfolioStreamClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type OperationsStreamService_PortfolioStreamClient interface {
	Recv() (*PortfolioStreamResponse, error)
	grpc.ClientStream
}

type operationsStreamServicePortfolioStreamClient struct {
	grpc.ClientStream
}

func (x *operationsStreamServicePortfolioStreamClient) Recv() (*PortfolioStreamResponse, error) {
	m := new(PortfolioStreamResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *operationsStreamServiceClient) PositionsStream(ctx context.Context, in *PositionsStreamRequest, opts ...grpc.CallOption) (OperationsStreamService_PositionsStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &OperationsStreamService_ServiceDesc.Streams[1], OperationsStreamService_PositionsStream_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &operationsStreamServicePositionsStreamClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type OperationsStreamService_PositionsStreamClient interface {
	Recv() (*PositionsStreamResponse, error)
	grpc.ClientStream
}

type operationsStreamServicePositionsStreamClient struct {
	grpc.ClientStream
}

func (x *operationsStreamServicePositionsStreamClient) Recv() (*PositionsStreamResponse, error) {
	m := new(PositionsStreamResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// OperationsStreamServiceServer is the server API for OperationsStreamService.
type OperationsStreamServiceServer interface {
	// Stream of portfolio snapshots for the given accounts.
	PortfolioStream(*PortfolioStreamRequest, OperationsStreamService_PortfolioStreamServer) error
	// Stream of position updates for the given accounts.
	PositionsStream(*PositionsStreamRequest, OperationsStreamService_PositionsStreamServer) error
}

// UnimplementedOperationsStreamServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedOperationsStreamServiceServer struct{}

func (UnimplementedOperationsStreamServiceServer) PortfolioStream(*PortfolioStreamRequest, OperationsStreamService_PortfolioStreamServer) error {
	return status.Errorf(codes.Unimplemented, "method PortfolioStream not implemented")
}
func (UnimplementedOperationsStreamServiceServer) PositionsStream(*PositionsStreamRequest, OperationsStreamService_PositionsStreamServer) error {
	return status.Errorf(codes.Unimplemented, "method PositionsStream not implemented")
}

func RegisterOperationsStreamServiceServer(s grpc.ServiceRegistrar, srv OperationsStreamServiceServer) {
	s.RegisterService(&OperationsStreamService_ServiceDesc, srv)
}

func _OperationsStreamService_PortfolioStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(PortfolioStreamRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(OperationsStreamServiceServer).PortfolioStream(m, &operationsStreamServicePortfolioStreamServer{stream})
}

type OperationsStreamService_PortfolioStreamServer interface {
	Send(*PortfolioStreamResponse) error
	grpc.ServerStream
}

type operationsStreamServicePortfolioStreamServer struct {
	grpc.ServerStream
}

func (x *operationsStreamServicePortfolioStreamServer) Send(m *PortfolioStreamResponse) error {
	return x.ServerStream.SendMsg(m)
}

func _OperationsStreamService_PositionsStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(PositionsStreamRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(OperationsStreamServiceServer).PositionsStream(m, &operationsStreamServicePositionsStreamServer{stream})
}

type OperationsStreamService_PositionsStreamServer interface {
	Send(*PositionsStreamResponse) error
	grpc.ServerStream
}

type operationsStreamServicePositionsStreamServer struct {
	grpc.ServerStream
}

func (x *operationsStreamServicePositionsStreamServer) Send(m *PositionsStreamResponse) error {
	return x.ServerStream.SendMsg(m)
}

// OperationsStreamService_ServiceDesc is the grpc.ServiceDesc for OperationsStreamService.
var OperationsStreamService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tinkoff.public.invest.api.contract.v1.OperationsStreamService",
	HandlerType: (*OperationsStreamServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "PortfolioStream",
			Handler:       _OperationsStreamService_PortfolioStream_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "PositionsStream",
			Handler:       _OperationsStreamService_PositionsStream_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "operations.proto",
}
