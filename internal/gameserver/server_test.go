package gameserver_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/cory-johannsen/dicee/internal/advisor"
	"github.com/cory-johannsen/dicee/internal/game/category"
	"github.com/cory-johannsen/dicee/internal/game/solver"
	"github.com/cory-johannsen/dicee/internal/gameserver"
)

// testServer starts an in-memory gRPC server and returns a connection to it.
func testServer(t *testing.T) *grpc.ClientConn {
	t.Helper()
	logger := zaptest.NewLogger(t)
	svc := advisor.NewService(solver.New(solver.WithLogger(logger)), logger)
	srv, _ := gameserver.NewServer(svc, logger)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func callCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestAnalyze_RoundTrip(t *testing.T) {
	client := gameserver.NewAdvisorClient(testServer(t))

	resp, err := client.Analyze(callCtx(t), advisor.Request{
		Dice:           []int{1, 2, 3, 4, 6},
		RollsRemaining: 1,
		Available:      category.Of(category.LargeStraight).Bits(),
	})
	require.NoError(t, err)

	assert.Equal(t, advisor.ActionReroll, resp.Action)
	assert.NotEmpty(t, resp.RequestID)
	require.NotNil(t, resp.Keep)
	assert.Equal(t, [6]int{1, 1, 1, 1, 0, 0}, *resp.Keep)
	assert.InDelta(t, 40.0/6, resp.ExpectedValue, 1e-9)
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "Large Straight", resp.Categories[0].Name)
}

func TestAnalyze_InvalidArgument(t *testing.T) {
	client := gameserver.NewAdvisorClient(testServer(t))

	_, err := client.Analyze(callCtx(t), advisor.Request{Dice: []int{1, 2, 3, 4, 9}})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "position 4")

	_, err = client.Analyze(callCtx(t), advisor.Request{Dice: []int{1, 2, 3, 4, 5}, RollsRemaining: 5})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListCategories(t *testing.T) {
	client := gameserver.NewAdvisorClient(testServer(t))

	infos, err := client.ListCategories(callCtx(t))
	require.NoError(t, err)
	require.Len(t, infos, category.Count)
	assert.Equal(t, "chance", infos[category.Chance].ID)
	assert.Equal(t, 50, infos[category.FiveOfAKind].FixedScore)
}

func TestHealth_Serving(t *testing.T) {
	hc := healthpb.NewHealthClient(testServer(t))
	resp, err := hc.Check(callCtx(t), &healthpb.HealthCheckRequest{Service: gameserver.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestGracefulStop_MarksNotServing(t *testing.T) {
	logger := zaptest.NewLogger(t)
	svc := advisor.NewService(solver.New(solver.WithLogger(logger)), logger)
	srv, hs := gameserver.NewServer(svc, logger)

	lis := bufconn.Listen(1 << 20)
	served := make(chan error, 1)
	go func() { served <- srv.Serve(lis) }()

	require.NoError(t, gameserver.GracefulStop(callCtx(t), srv, hs))

	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: gameserver.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	select {
	case <-served:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestSetServing_CoversOverallAndService(t *testing.T) {
	logger := zaptest.NewLogger(t)
	svc := advisor.NewService(solver.New(solver.WithLogger(logger)), logger)
	_, hs := gameserver.NewServer(svc, logger)

	check := func(service string) healthpb.HealthCheckResponse_ServingStatus {
		resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err)
		return resp.GetStatus()
	}

	gameserver.SetServing(hs, false)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(gameserver.ServiceName))

	gameserver.SetServing(hs, true)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(gameserver.ServiceName))
}

func TestAnalyze_ScoreRoundTrip(t *testing.T) {
	client := gameserver.NewAdvisorClient(testServer(t))

	resp, err := client.Analyze(callCtx(t), advisor.Request{
		Dice:           []int{6, 6, 6, 6, 6},
		RollsRemaining: 0,
		Available:      category.Of(category.FiveOfAKind, category.Chance).Bits(),
	})
	require.NoError(t, err)

	assert.Equal(t, advisor.ActionScore, resp.Action)
	require.NotNil(t, resp.Category)
	require.NotNil(t, resp.CategoryScore)
	assert.Equal(t, category.FiveOfAKind.Index(), *resp.Category)
	assert.Equal(t, 50, *resp.CategoryScore)
	assert.Nil(t, resp.Keep)
	assert.Len(t, resp.Categories, 2)
}
