package control

import (
	"fmt"
	"net"

	"preferred-observer/src/logger"
	"preferred-observer/src/models"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health entry reported for the REST API.
const ServiceName = "preferred.observer.API"

// -----------------------------------------------------------------------------

// Server exposes gRPC health checking and reflection next to the REST API.
type Server struct {
	Config *models.MConfig
	Logger *logger.Logger
	grpc   *grpc.Server
	health *health.Server
}

// -----------------------------------------------------------------------------

func NewServer(cfg *models.MConfig, log *logger.Logger) *Server {
	s := &Server{
		Config: cfg,
		Logger: log,
		grpc:   grpc.NewServer(),
		health: health.NewServer(),
	}

	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// -----------------------------------------------------------------------------

// Enabled reports whether a gRPC port is configured.
func (s *Server) Enabled() bool {
	return s.Config.GrpcPort > 0
}

// MarkServing flips both health entries to SERVING.
func (s *Server) MarkServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.Logger.Info("Control plane reports SERVING")
}

// -----------------------------------------------------------------------------

// Start listens on grpc_host:grpc_port and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.GrpcHost, s.Config.GrpcPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.Logger.Info("gRPC control plane listening on %s", addr)
	return s.Serve(lis)
}

// Serve blocks on an existing listener.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// -----------------------------------------------------------------------------

// Stop reports NOT_SERVING and drains open RPCs.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
