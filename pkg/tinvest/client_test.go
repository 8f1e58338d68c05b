package tinvest

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/artemevsevev/t-invest-sdk-go/pkg/investapi"
)

type fakeUsersServer struct {
	investapi.UnimplementedUsersServiceServer

	lastMD metadata.MD
}

func (s *fakeUsersServer) GetAccounts(ctx context.Context, _ *investapi.GetAccountsRequest) (*investapi.GetAccountsResponse, error) {
	s.lastMD, _ = metadata.FromIncomingContext(ctx)
	return &investapi.GetAccountsResponse{
		Accounts: []*investapi.Account{
			{Id: "acc-1", Name: "Main", Status: investapi.AccountStatus_ACCOUNT_STATUS_OPEN},
		},
	}, nil
}

type fakeSandboxServer struct {
	investapi.UnimplementedSandboxServiceServer
}

func (s *fakeSandboxServer) OpenSandboxAccount(ctx context.Context, _ *investapi.OpenSandboxAccountRequest) (*investapi.OpenSandboxAccountResponse, error) {
	return &investapi.OpenSandboxAccountResponse{AccountId: "sandbox-1"}, nil
}

type fakeMarketDataStreamServer struct {
	investapi.UnimplementedMarketDataStreamServiceServer
}

func (s *fakeMarketDataStreamServer) MarketDataStream(stream investapi.MarketDataStreamService_MarketDataStreamServer) error {
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		sub := req.GetSubscribeCandlesRequest()
		if sub == nil {
			continue
		}
		resp := &investapi.SubscribeCandlesResponse{TrackingId: "track-1"}
		for _, in := range sub.Instruments {
			resp.CandlesSubscriptions = append(resp.CandlesSubscriptions, &investapi.CandleSubscription{
				Figi:               in.Figi,
				Interval:           in.Interval,
				SubscriptionStatus: investapi.SubscriptionStatus_SUBSCRIPTION_STATUS_SUCCESS,
			})
		}
		if err := stream.Send(&investapi.MarketDataResponse{
			Payload: &investapi.MarketDataResponse_SubscribeCandlesResponse{SubscribeCandlesResponse: resp},
		}); err != nil {
			return err
		}
	}
}

func startTestServer(t *testing.T, users *fakeUsersServer) string {
	t.Helper()

	srv := grpc.NewServer()
	investapi.RegisterUsersServiceServer(srv, users)
	investapi.RegisterSandboxServiceServer(srv, &fakeSandboxServer{})
	investapi.RegisterMarketDataStreamServiceServer(srv, &fakeMarketDataStreamServer{})
	t.Cleanup(srv.GracefulStop)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lis.Close() })

	go func() {
		_ = srv.Serve(lis)
	}()
	return lis.Addr().String()
}

func dialTestServer(t *testing.T, addr string, opts ...Option) *Client {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts = append([]Option{
		WithEndpoint(addr),
		WithLogger(NopLogger()),
		WithDialOptions(grpc.WithTransportCredentials(insecure.NewCredentials())),
	}, opts...)
	client, err := New(ctx, Config{Token: "t-test-token"}, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClientGetAccounts(t *testing.T) {
	users := &fakeUsersServer{}
	client := dialTestServer(t, startTestServer(t, users))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := client.Users().GetAccounts(ctx, &investapi.GetAccountsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Accounts, 1)
	assert.Equal(t, "acc-1", resp.Accounts[0].GetId())
	assert.Equal(t, investapi.AccountStatus_ACCOUNT_STATUS_OPEN, resp.Accounts[0].Status)
}

func TestClientSendsAuthMetadata(t *testing.T) {
	users := &fakeUsersServer{}
	client := dialTestServer(t, startTestServer(t, users), WithAppName("me.test-bot"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := client.Users().GetAccounts(ctx, &investapi.GetAccountsRequest{})
	require.NoError(t, err)

	require.NotNil(t, users.lastMD)
	assert.Equal(t, []string{"Bearer t-test-token"}, users.lastMD.Get("authorization"))
	assert.Equal(t, []string{"me.test-bot"}, users.lastMD.Get("x-app-name"))
	assert.Len(t, users.lastMD.Get("x-tracking-id"), 1)
}

func TestClientSandbox(t *testing.T) {
	client := dialTestServer(t, startTestServer(t, &fakeUsersServer{}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := client.Sandbox().OpenSandboxAccount(ctx, &investapi.OpenSandboxAccountRequest{})
	require.NoError(t, err)
	assert.Equal(t, "sandbox-1", resp.GetAccountId())
}

func TestClientMarketDataStream(t *testing.T) {
	client := dialTestServer(t, startTestServer(t, &fakeUsersServer{}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.MarketDataStream().MarketDataStream(ctx)
	require.NoError(t, err)

	err = stream.Send(&investapi.MarketDataRequest{
		Payload: &investapi.MarketDataRequest_SubscribeCandlesRequest{
			SubscribeCandlesRequest: &investapi.SubscribeCandlesRequest{
				SubscriptionAction: investapi.SubscriptionAction_SUBSCRIPTION_ACTION_SUBSCRIBE,
				Instruments: []*investapi.CandleInstrument{
					{Figi: "BBG004730N88", Interval: investapi.SubscriptionInterval_SUBSCRIPTION_INTERVAL_ONE_MINUTE},
				},
			},
		},
	})
	require.NoError(t, err)

	resp, err := stream.Recv()
	require.NoError(t, err)
	sub := resp.GetSubscribeCandlesResponse()
	require.NotNil(t, sub)
	assert.Equal(t, "track-1", sub.TrackingId)
	require.Len(t, sub.CandlesSubscriptions, 1)
	assert.Equal(t, "BBG004730N88", sub.CandlesSubscriptions[0].Figi)
	assert.Equal(t, investapi.SubscriptionStatus_SUBSCRIPTION_STATUS_SUCCESS, sub.CandlesSubscriptions[0].SubscriptionStatus)

	require.NoError(t, stream.CloseSend())
}

func TestClientTargetAndConn(t *testing.T) {
	addr := startTestServer(t, &fakeUsersServer{})
	client := dialTestServer(t, addr)

	assert.Equal(t, addr, client.Target())
	assert.NotNil(t, client.Conn())
}

func TestHostFromTarget(t *testing.T) {
	assert.Equal(t, "invest-public-api.tinkoff.ru", hostFromTarget("invest-public-api.tinkoff.ru:443"))
	assert.Equal(t, "localhost", hostFromTarget("localhost:50051"))
	assert.Equal(t, "example.com", hostFromTarget("example.com"))
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}
