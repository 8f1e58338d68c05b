package tinvest

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// withAuthMetadata appends the per-request authentication metadata: the
// bearer token, a fresh tracking id and the application name.
func withAuthMetadata(ctx context.Context, token, appName string) context.Context {
	return metadata.AppendToOutgoingContext(ctx,
		"authorization", "Bearer "+token,
		"x-tracking-id", uuid.NewString(),
		"x-app-name", appName,
	)
}

func unaryAuthInterceptor(token, appName string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return invoker(withAuthMetadata(ctx, token, appName), method, req, reply, cc, opts...)
	}
}

func streamAuthInterceptor(token, appName string) grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		return streamer(withAuthMetadata(ctx, token, appName), desc, cc, method, opts...)
	}
}
