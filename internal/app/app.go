package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"

	"github.com/Alexandru2223/postpilot/internal/backend"
	"github.com/Alexandru2223/postpilot/internal/gateway"
	"github.com/Alexandru2223/postpilot/internal/generator"
	"github.com/Alexandru2223/postpilot/internal/generator/templateimpl"
	_ "github.com/Alexandru2223/postpilot/internal/migrations"
	"github.com/Alexandru2223/postpilot/internal/notifier"
	"github.com/Alexandru2223/postpilot/internal/notifier/telegramimpl"
	"github.com/Alexandru2223/postpilot/internal/pgx"
	"github.com/Alexandru2223/postpilot/internal/planner"
	"github.com/Alexandru2223/postpilot/internal/publisher"
	"github.com/Alexandru2223/postpilot/internal/publisher/publisherimpl"
	"github.com/Alexandru2223/postpilot/internal/ratelimit"
	repositories "github.com/Alexandru2223/postpilot/internal/repositories/fx"
	"github.com/Alexandru2223/postpilot/internal/session"
	"github.com/Alexandru2223/postpilot/internal/session/sessionimpl"
	"github.com/Alexandru2223/postpilot/pkg/config"
	"github.com/Alexandru2223/postpilot/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		planner.NewStore,
		planner.NewController,
		fx.Annotate(
			templateimpl.New,
			fx.As(new(generator.Client)),
		),
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(notifier.Client)),
		),
		fx.Annotate(
			publisherimpl.New,
			fx.As(new(publisher.Client)),
		),
		fx.Annotate(
			sessionimpl.New,
			fx.As(new(session.Context)),
		),
		backend.New,
		newLimiter,
		newPostService,
		gateway.New,
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func newLimiter(cfg *config.Config) ratelimit.Limiter {
	return ratelimit.NewInMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Per, cfg.RateLimit.Burst)
}

// newPostService picks the post backend: the proxy when BACKEND_API_URL is
// configured, the in-memory planner store otherwise.
func newPostService(client *backend.Client, store *planner.Store, gen generator.Client, log logger.Logger) gateway.PostService {
	if client.Enabled() {
		log.Info("Serving posts from external backend")
		return gateway.NewProxyService(client)
	}
	log.Info("Serving posts from in-memory store")
	return gateway.NewLocalService(store, gen, log)
}

func migrate(cfg *config.Config) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	// Migrations are registered Go functions; no directory scan is needed.
	return goose.Up(db, ".")
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, store *planner.Store,
	pub publisher.Client, srv *gateway.Server, notif notifier.Client) {

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: srv.Handler(),
	}
	jobCtx, cancelJobs := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			store.Seed(time.Now())
			log.Info("Seeded post store", "posts", store.Len())

			if err := pub.SchedulePublishing(jobCtx); err != nil {
				log.Error("Publish scheduling error", "Error", err)
				notif.SendMessageToUser("Publish scheduling error:" + err.Error())
			}

			go func() {
				log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("Server failed to start", "Error", err)
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancelJobs()
			return httpServer.Shutdown(ctx)
		},
	})
}
