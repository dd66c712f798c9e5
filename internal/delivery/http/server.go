package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"cityhub/config"
	"cityhub/internal/delivery"
	"cityhub/internal/delivery/http/middleware"
	"cityhub/internal/delivery/http/router"
	"cityhub/internal/delivery/http/validator"
	"cityhub/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config              *config.Config
	Logger              *slog.Logger
	RouterParams        router.RouterParams
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
	ErrorMiddleware     *middleware.ErrorMiddleware
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.CORS())
	echoServer.Use(params.RequestIDMiddleware.Process)
	echoServer.Use(params.LoggerMiddleware.Handle)

	// Serve uploaded media straight from the backing directory
	if storage := params.Config.Storage; storage != nil && storage.MediaPath != "" {
		echoServer.Static(storage.PublicPath, storage.MediaPath)
	}

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
