package application

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"phone-input/internal/config"
	"phone-input/internal/domain/service/field"
	"phone-input/internal/domain/service/links"
	"phone-input/internal/infrastructure/formstate"
	"phone-input/internal/server"
	"phone-input/internal/transport/bot"
	"phone-input/internal/worker"
	"phone-input/pkg/application/connectors"
	"phone-input/pkg/application/modules"
	"phone-input/pkg/contextx"
	"phone-input/pkg/logx"
	"phone-input/pkg/middlewarex"
)

func Run(ctx context.Context, cancel context.CancelFunc) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	// 2. Form state store
	fieldStore, purger, runPurgeWorker, err := buildFormState(ctx, g, cfg)
	if err != nil {
		return fmt.Errorf("build form state: %w", err)
	}

	// 3. Services
	fieldService := field.NewService(fieldStore, purger, cfg.FormState.FieldTTL)
	linkBuilder := links.NewBuilder()

	runPurgeWorker(fieldService)

	// 4. HTTP API
	apiServer := server.NewServer(
		server.NewPhoneServer(linkBuilder),
		server.NewSessionServer(fieldService, linkBuilder),
	)

	router := chi.NewRouter()

	router.Use(middlewarex.TraceID)
	router.Use(middlewarex.Logger)
	router.Use(middlewarex.Recovery)

	masker := newMasker(cfg.Logging)

	router.Use(middlewarex.RequestLogging(masker, cfg.Logging.LogFieldMaxLen))
	router.Use(middlewarex.ResponseLogging(masker, cfg.Logging.LogFieldMaxLen))

	apiServer.RegisterRoutes(router)

	httpServer := &http.Server{ //nolint:exhaustruct
		Addr:    cfg.HTTP.ListenAddress,
		Handler: router,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	// 5. Probes and metrics
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.Metrics.ListenAddress}.Run(ctx, g)

	// 6. Debug bot
	if cfg.Bot.Enabled {
		debugBot, err := bot.New(cfg.Bot)
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		go func() {
			if err := debugBot.Run(ctx); err != nil && ctx.Err() == nil {
				logger(ctx).Error("bot stopped", logx.Error(err))
				cancel()
			}
		}()
	}

	return g.Wait()
}

// buildFormState выбирает хранилище состояния формы. Для постгреса вдобавок
// поднимается очередь asynq: TTL там не бывает, устаревшее выметает воркер.
func buildFormState(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.Config,
) (field.Store, field.PurgeScheduler, func(*field.Service), error) {
	noWorker := func(*field.Service) {}

	switch cfg.FormState.Backend {
	case "memory":
		return formstate.NewMemoryStore(cfg.FormState.FieldTTL), nil, noWorker, nil

	case "redis":
		rd := &connectors.Redis{ //nolint:exhaustruct
			Address:        cfg.Redis.Address,
			Username:       cfg.Redis.Username,
			Password:       cfg.Redis.Password,
			DatabaseNumber: cfg.Redis.DatabaseNumber,
			PoolSize:       cfg.Redis.PoolSize,
		}

		return formstate.NewRedisStore(rd.Client(ctx), cfg.FormState.FieldTTL), nil, noWorker, nil

	case "postgres":
		pg := &connectors.Postgres{ //nolint:exhaustruct
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}

		db := pg.Client(ctx)

		if err := db.PingContext(ctx); err != nil {
			return nil, nil, nil, fmt.Errorf("db ping: %w", err)
		}

		redisOpt := asynq.RedisClientOpt{ //nolint:exhaustruct
			Addr:     cfg.Redis.Address,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DatabaseNumber,
		}

		purger := worker.NewPurgeScheduler(asynq.NewClient(redisOpt))

		runWorker := func(fields *field.Service) {
			modules.AsynqServer{
				RedisUsername: cfg.Redis.Username,
				RedisPassword: cfg.Redis.Password,
				RedisAddress:  cfg.Redis.Address,
				RedisDB:       cfg.Redis.DatabaseNumber,
			}.Run(ctx, g,
				modules.AsynqQueues{"default": 1},
				modules.AsynqHandler{
					Pattern: worker.TaskTypePurge,
					Handle:  worker.NewPurgeHandler(fields).Handle,
				},
			)
		}

		return formstate.NewPostgresStore(db), purger, runWorker, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown formstate backend %q", cfg.FormState.Backend)
	}
}

func newMasker(cfg config.Logging) logx.SensitiveDataMaskerInterface {
	if cfg.MaskSensitive {
		return logx.NewSensitiveDataMasker()
	}

	return logx.NewNopSensitiveDataMasker()
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
