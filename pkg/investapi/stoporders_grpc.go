package investapi

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	StopOrdersService_PostStopOrder_FullMethodName   = "/tinkoff.public.invest.api.contract.v1.StopOrdersService/PostStopOrder"
	StopOrdersService_GetStopOrders_FullMethodName   = "/tinkoff.public.invest.api.contract.v1.StopOrdersService/GetStopOrders"
	StopOrdersService_CancelStopOrder_FullMethodName = "/tinkoff.public.invest.api.contract.v1.StopOrdersService/CancelStopOrder"
)

// StopOrdersServiceClient is the client API for StopOrdersService.
type StopOrdersServiceClient interface {
	PostStopOrder(ctx context.Context, in *PostStopOrderRequest, opts ...grpc.CallOption) (*PostStopOrderResponse, error)
	GetStopOrders(ctx context.Context, in *GetStopOrdersRequest, opts ...grpc.CallOption) (*GetStopOrdersResponse, error)
	CancelStopOrder(ctx context.Context, in *CancelStopOrderRequest, opts ...grpc.CallOption) (*CancelStopOrderResponse, error)
}

type stopOrdersServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStopOrdersServiceClient(cc grpc.ClientConnInterface) StopOrdersServiceClient {
	return &stopOrdersServiceClient{cc}
}

func (c *stopOrdersServiceClient) PostStopOrder(ctx context.Context, in *PostStopOrderRequest, opts ...grpc.CallOption) (*PostStopOrderResponse, error) {
	out := new(PostStopOrderResponse)
	err := c.cc.Invoke(ctx, StopOrdersService_PostStopOrder_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stopOrdersServiceClient) GetStopOrders(ctx context.Context, in *GetStopOrdersRequest, opts ...grpc.CallOption) (*GetStopOrdersResponse, error) {
	out := new(GetStopOrdersResponse)
	err := c.cc.Invoke(ctx, StopOrdersService_GetStopOrders_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stopOrdersServiceClient) CancelStopOrder(ctx context.Context, in *CancelStopOrderRequest, opts ...grpc.CallOption) (*CancelStopOrderResponse, error) {
	out := new(CancelStopOrderResponse)
	err := c.cc.Invoke(ctx, StopOrdersService_CancelStopOrder_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StopOrdersServiceServer is the server API for StopOrdersService.
type StopOrdersServiceServer interface {
	PostStopOrder(context.Context, *PostStopOrderRequest) (*PostStopOrderResponse, error)
	GetStopOrders(context.Context, *GetStopOrdersRequest) (*GetStopOrdersResponse, error)
	CancelStopOrder(context.Context, *CancelStopOrderRequest) (*CancelStopOrderResponse, error)
}

// UnimplementedStopOrdersServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedStopOrdersServiceServer struct{}

func (UnimplementedStopOrdersServiceServer) PostStopOrder(context.Context, *PostStopOrderRequest) (*PostStopOrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PostStopOrder not implemented")
}
func (UnimplementedStopOrdersServiceServer) GetStopOrders(context.Context, *GetStopOrdersRequest) (*GetStopOrdersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStopOrders not implemented")
}
func (UnimplementedStopOrdersServiceServer) CancelStopOrder(context.Context, *CancelStopOrderRequest) (*CancelStopOrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelStopOrder not implemented")
}

func RegisterStopOrdersServiceServer(s grpc.ServiceRegistrar, srv StopOrdersServiceServer) {
	s.RegisterService(&StopOrdersService_ServiceDesc, srv)
}

func _StopOrdersService_PostStopOrder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PostStopOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StopOrdersServiceServer).PostStopOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StopOrdersService_PostStopOrder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StopOrdersServiceServer).PostStopOrder(ctx, req.(*PostStopOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StopOrdersService_GetStopOrders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStopOrdersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StopOrdersServiceServer).GetStopOrders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StopOrdersService_GetStopOrders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StopOrdersServiceServer).GetStopOrders(ctx, req.(*GetStopOrdersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StopOrdersService_CancelStopOrder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelStopOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StopOrdersServiceServer).CancelStopOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StopOrdersService_CancelStopOrder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StopOrdersServiceServer).CancelStopOrder(ctx, req.(*CancelStopOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// StopOrdersService_ServiceDesc is the grpc.ServiceDesc for StopOrdersService.
var StopOrdersService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tinkoff.public.invest.api.contract.v1.StopOrdersService",
	HandlerType: (*StopOrdersServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PostStopOrder",
			Handler:    _StopOrdersService_PostStopOrder_Handler,
		},
		{
			MethodName: "GetStopOrders",
			Handler:    _StopOrdersService_GetStopOrders_Handler,
		},
		{
			MethodName: "CancelStopOrder",
			Handler:    _StopOrdersService_CancelStopOrder_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stoporders.proto",
}
