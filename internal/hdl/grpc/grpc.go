package grpc

import (
	"errors"
	"fmt"
	"net"

	"github.com/JMURv/session-core/internal/hdl/grpc/interceptors"
	metrics "github.com/JMURv/session-core/internal/observability/metrics/prometheus"
	pm "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type Handler struct {
	name string
	srv  *grpc.Server
	hsrv *health.Server
}

// New serves health and reflection only.
func New(name string) *Handler {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.LogTraceMetrics(),
			metrics.SrvMetrics.UnaryServerInterceptor(
				pm.WithExemplarFromContext(metrics.Exemplar),
			),
		),
		grpc.ChainStreamInterceptor(
			metrics.SrvMetrics.StreamServerInterceptor(
				pm.WithExemplarFromContext(metrics.Exemplar),
			),
		),
	)

	reflection.Register(srv)

	hsrv := health.NewServer()
	hsrv.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(srv, hsrv)
	metrics.SrvMetrics.InitializeMetrics(srv)

	return &Handler{
		name: name,
		srv:  srv,
		hsrv: hsrv,
	}
}

func (h *Handler) Start(port int) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%v", port))
	if err != nil {
		zap.L().Fatal("failed to listen", zap.Error(err))
	}

	zap.L().Info("Starting gRPC server", zap.String("addr", lis.Addr().String()))
	if err = h.Serve(lis); err != nil {
		zap.L().Fatal("failed to serve", zap.Error(err))
	}
}

func (h *Handler) Serve(lis net.Listener) error {
	if err := h.srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (h *Handler) Close() error {
	h.hsrv.SetServingStatus(h.name, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	h.srv.GracefulStop()
	return nil
}
