package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	pm "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uber/jaeger-client-go"
	"go.uber.org/zap"
)

var (
	RequestMetrics = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "Request duration by operation and status code",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op", "code"},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "session_cache_hits_total",
			Help: "Session cache lookups served from memory",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "session_cache_misses_total",
			Help: "Session cache lookups that fell through to the store",
		},
	)

	CacheEvictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_cache_evictions_total",
			Help: "Session cache evictions by reason",
		},
		[]string{"reason"},
	)

	SessionEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_events_total",
			Help: "Session lifecycle events",
		},
		[]string{"event"},
	)

	SrvMetrics = pm.NewServerMetrics(
		pm.WithServerHandlingTimeHistogram(
			pm.WithHistogramBuckets(prometheus.DefBuckets),
		),
	)
)

func init() {
	prometheus.MustRegister(
		RequestMetrics,
		CacheHits,
		CacheMisses,
		CacheEvictions,
		SessionEvents,
		SrvMetrics,
	)
}

func ObserveRequest(d time.Duration, status int, op string) {
	RequestMetrics.WithLabelValues(op, strconv.Itoa(status)).Observe(d.Seconds())
}

// Exemplar attaches the current trace id to gRPC histogram samples.
func Exemplar(ctx context.Context) prometheus.Labels {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return nil
	}

	if sc, ok := span.Context().(jaeger.SpanContext); ok {
		return prometheus.Labels{"traceID": sc.TraceID().String()}
	}
	return nil
}

type Server struct {
	srv *http.Server
}

func New(port int) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Warn("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	zap.L().Info("Starting metrics server", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("metrics server failed", zap.Error(err))
	}
}
