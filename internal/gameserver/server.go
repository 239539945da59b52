// Package gameserver serves the advisor over gRPC using the dicee.v1 protobuf API.
package gameserver

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/cory-johannsen/dicee/internal/advisor"
	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/cory-johannsen/dicee/internal/gameserver/dicev1"
)

// ServiceName is the fully qualified gRPC service name.
var ServiceName = dicev1.Advisor_ServiceDesc.ServiceName

// AdvisorServiceServer adapts an advisor.Service to the gRPC AdvisorServer API.
type AdvisorServiceServer struct {
	dicev1.UnimplementedAdvisorServer

	svc    *advisor.Service
	logger *zap.Logger
}

// NewAdvisorServiceServer creates the gRPC adapter.
//
// Precondition: svc and logger must be non-nil.
func NewAdvisorServiceServer(svc *advisor.Service, logger *zap.Logger) *AdvisorServiceServer {
	return &AdvisorServiceServer{svc: svc, logger: logger}
}

// Analyze answers one advice request.
//
// Postcondition: Invalid input maps to codes.InvalidArgument; any other failure to
// codes.Internal.
func (s *AdvisorServiceServer) Analyze(ctx context.Context, req *dicev1.AnalyzeRequest) (*dicev1.AnalyzeResponse, error) {
	resp, err := s.svc.Analyze(ctx, requestFromProto(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return responseToProto(resp), nil
}

// ListCategories returns the category catalogue.
func (s *AdvisorServiceServer) ListCategories(_ context.Context, _ *dicev1.ListCategoriesRequest) (*dicev1.ListCategoriesResponse, error) {
	return &dicev1.ListCategoriesResponse{Categories: categoriesToProto(s.svc.Categories())}, nil
}

func toStatus(err error) error {
	if errors.Is(err, dice.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// loggingInterceptor logs every unary call with its duration and status code.
func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Stringer("code", status.Code(err)),
			zap.Duration("elapsed", time.Since(start)),
		}
		if err != nil {
			logger.Warn("rpc failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("rpc served", fields...)
		}
		return resp, err
	}
}

// NewServer builds a grpc.Server exposing the Advisor service and the standard
// health service, instrumented with OpenTelemetry.
//
// Postcondition: The health service reports SERVING for ServiceName and for the
// overall server.
func NewServer(svc *advisor.Service, logger *zap.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(loggingInterceptor(logger)),
	}, opts...)
	srv := grpc.NewServer(opts...)
	dicev1.RegisterAdvisorServer(srv, NewAdvisorServiceServer(svc, logger))

	hs := health.NewServer()
	SetServing(hs, true)
	healthpb.RegisterHealthServer(srv, hs)
	return srv, hs
}

// SetServing reports serving as the status of both the overall server and
// ServiceName, so health checks of either entry agree.
func SetServing(hs *health.Server, serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	hs.SetServingStatus("", st)
	hs.SetServingStatus(ServiceName, st)
}

// GracefulStop marks every health entry NOT_SERVING and drains in-flight calls.
// If ctx expires first, remaining calls are cut off.
//
// Postcondition: srv has stopped; the error is ctx's error when the drain was cut short.
func GracefulStop(ctx context.Context, srv *grpc.Server, hs *health.Server) error {
	hs.Shutdown()
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		srv.Stop()
		<-done
		return ctx.Err()
	}
}
