package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	myGRPC "github.com/MKhiriev/go-leave-tracker/internal/handler/grpc"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errListeningGRPC, err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.Interceptors()...))
	handler.Register(server)

	return &grpcServer{
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
