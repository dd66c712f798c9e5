package main

import (
	"context"
	"log/slog"
	"os"

	"cityhub/config"
	"cityhub/internal/delivery"
	"cityhub/internal/delivery/http"
	"cityhub/internal/delivery/http/middleware"
	"cityhub/internal/delivery/http/router/handler"
	"cityhub/internal/domain/service"
	"cityhub/internal/infra/auth"
	logs "cityhub/internal/infra/log"
	"cityhub/internal/infra/persistence/mongodb"
	"cityhub/internal/infra/pubsub"
	"cityhub/internal/infra/qrcode"
	"cityhub/internal/infra/storage"
	"cityhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewCommerceRepository,
			mongodb.NewUserRepository,
			mongodb.NewFileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewBlobStorage,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCommerceService,
			impl.NewUserService,
			impl.NewStorageService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCommerceHandler,
			handler.NewUserHandler,
			handler.NewStorageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
