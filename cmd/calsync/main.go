package main

import (
	"context"
	"log/slog"
	"os"

	"calsync/config"
	"calsync/internal/delivery"
	"calsync/internal/delivery/api"
	"calsync/internal/delivery/api/middleware"
	"calsync/internal/delivery/api/router/handler"
	"calsync/internal/domain/service"
	"calsync/internal/infra/auth"
	"calsync/internal/infra/auth/google"
	"calsync/internal/infra/auth/microsoft"
	"calsync/internal/infra/calendar/graph"
	logs "calsync/internal/infra/log"
	"calsync/internal/infra/persistence/gormstore"
	"calsync/internal/infra/vault"
	"calsync/internal/usecase/impl"

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
		vault.New,
		gormstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			gormstore.NewUserRepository,
			gormstore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			fx.Annotate(
				microsoft.NewTokenClient,
				fx.ResultTags(`name:"microsoft"`),
			),
			// The Microsoft client serves both the calendar adapter and the code exchange registry.
			fx.Annotate(
				func(client service.ProviderTokenClient) service.ProviderTokenClient { return client },
				fx.ParamTags(`name:"microsoft"`),
				fx.ResultTags(`group:"providerTokenClients"`),
			),
			fx.Annotate(
				google.NewTokenClient,
				fx.ResultTags(`group:"providerTokenClients"`),
			),
			graph.NewAdapter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewCalendarService,
			impl.NewOAuthService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIdentityHandler,
			handler.NewCalendarHandler,
			handler.NewOAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
