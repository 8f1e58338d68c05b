package tinvest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestWithAuthMetadata(t *testing.T) {
	ctx := withAuthMetadata(context.Background(), "t-secret", "me.bot")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"Bearer t-secret"}, md.Get("authorization"))
	assert.Equal(t, []string{"me.bot"}, md.Get("x-app-name"))

	tracking := md.Get("x-tracking-id")
	require.Len(t, tracking, 1)
	_, err := uuid.Parse(tracking[0])
	assert.NoError(t, err, "x-tracking-id must be a uuid")
}

func TestWithAuthMetadata_FreshTrackingID(t *testing.T) {
	first, _ := metadata.FromOutgoingContext(withAuthMetadata(context.Background(), "t", "a"))
	second, _ := metadata.FromOutgoingContext(withAuthMetadata(context.Background(), "t", "a"))
	assert.NotEqual(t, first.Get("x-tracking-id"), second.Get("x-tracking-id"))
}

func TestWithAuthMetadata_KeepsExisting(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-custom", "v")
	ctx = withAuthMetadata(ctx, "t-secret", "me.bot")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"v"}, md.Get("x-custom"))
	assert.Equal(t, []string{"Bearer t-secret"}, md.Get("authorization"))
}

func TestUnaryAuthInterceptor(t *testing.T) {
	var captured metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		captured, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	err := unaryAuthInterceptor("t-secret", "me.bot")(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer t-secret"}, captured.Get("authorization"))
	assert.Equal(t, []string{"me.bot"}, captured.Get("x-app-name"))
	assert.Len(t, captured.Get("x-tracking-id"), 1)
}

func TestStreamAuthInterceptor(t *testing.T) {
	var captured metadata.MD
	streamer := func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		captured, _ = metadata.FromOutgoingContext(ctx)
		return nil, nil
	}

	_, err := streamAuthInterceptor("t-secret", "me.bot")(context.Background(), &grpc.StreamDesc{}, nil, "/svc/Stream", streamer)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer t-secret"}, captured.Get("authorization"))
	assert.Equal(t, []string{"me.bot"}, captured.Get("x-app-name"))
}
