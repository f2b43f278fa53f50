package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/treinamento/produtos-service/internal/cfg"
	v1Http "github.com/treinamento/produtos-service/internal/delivery/v1/http"
	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/internal/infrastructure/kafka"
	"github.com/treinamento/produtos-service/internal/repository/memory"
	"github.com/treinamento/produtos-service/internal/repository/pgdb"
	pgdbConv "github.com/treinamento/produtos-service/internal/repository/pgdb/converter/generated"
	"github.com/treinamento/produtos-service/internal/repository/redis"
	redisConv "github.com/treinamento/produtos-service/internal/repository/redis/converter/generated"
	"github.com/treinamento/produtos-service/internal/usecase"
	"github.com/treinamento/produtos-service/pkg/clients"
	"github.com/treinamento/produtos-service/pkg/clock"
	"github.com/treinamento/produtos-service/pkg/closer"
	"github.com/treinamento/produtos-service/pkg/e"
	"github.com/treinamento/produtos-service/pkg/logger"
	"github.com/treinamento/produtos-service/pkg/postgres"
	"github.com/treinamento/produtos-service/pkg/tr"
)

const (
	migrationsSource = "file://db/migrations"
	defaultCategory  = "Frutas"
	startupTimeout   = 10 * time.Second
	shutdownTimeout  = 10 * time.Second
)

// storage объединяет реализации хранилища, выбранные по STORAGE_DRIVER.
type storage struct {
	products   usecase.ProductRepository
	categories usecase.CategoryRepository
	outbox     usecase.OutboxRepository
	txManager  usecase.TxManager
	cache      usecase.CacheRepository
	health     v1Http.HealthCheck
}

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	worker  *kafka.OutboxWorker
}

// NewApp собирает зависимости приложения. Ресурсы, открытые до ошибки, закрываются.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(0),
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	var (
		st  *storage
		err error
	)
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		st, err = a.initMemory(ctx)
	case config.StorageDriverPostgres:
		st, err = a.initPostgres(ctx)
	default:
		err = e.Wrap(cfg.StorageDriver, e.ErrUnknownStorageDriver)
	}
	if err != nil {
		_ = a.closer.Close(context.Background())
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	clk := clock.NewRealClock()
	validator := usecase.NewRequestValidator(st.categories)
	productUC := usecase.NewProductUC(st.products, st.outbox, st.txManager, st.cache, validator, clk, log)
	categoryUC := usecase.NewCategoryUC(st.categories, validator, clk)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, cfg.Http, log)
	router.Init(productUC, categoryUC, st.health)

	a.httpSrv = v1Http.NewServer(r, cfg.Http)
	a.closer.Add("http server", a.httpSrv.Stop)

	return a, nil
}

// Run запускает воркер outbox и HTTP-сервер и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.worker != nil {
		a.worker.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s (storage: %s)", a.cfg.Http.Port, a.cfg.StorageDriver)
		if err := a.httpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func (a *App) initMemory(ctx context.Context) (*storage, error) {
	a.logger.Warnf("using in-memory storage, data will be lost on restart")

	categories := memory.NewCategoryRepo()
	if _, err := categories.Create(ctx, domain.NewCategory(defaultCategory, time.Now().UTC())); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &storage{
		products:   memory.NewProductRepo(),
		categories: categories,
		outbox:     memory.NewOutboxRepo(),
		txManager:  memory.NewTxManager(),
	}, nil
}

func (a *App) initPostgres(ctx context.Context) (*storage, error) {
	db, err := initPGDB(ctx, a.logger, a.cfg.Db)
	if err != nil {
		return nil, err
	}
	a.closer.Add("postgres", func(context.Context) error {
		db.Close()
		return nil
	})

	st := &storage{
		products:   pgdb.NewProductRepo(db.Pool, &pgdbConv.ProductConverterImpl{}),
		categories: pgdb.NewCategoryRepo(db.Pool, &pgdbConv.CategoryConverterImpl{}),
		outbox:     pgdb.NewOutboxEventRepo(db.Pool, &pgdbConv.OutboxEventConverterImpl{}),
		txManager:  tr.NewManager(db.Pool),
		health:     db.Ping,
	}

	if a.cfg.Redis.Enabled {
		redisClient := clients.NewRedisClient(a.cfg.Redis)
		a.closer.Add("redis", func(context.Context) error { return redisClient.Close() })

		if err := redisClient.Ping(ctx); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		st.cache = redis.NewCacheRepo(redisClient, &redisConv.ProductConverterImpl{}, a.cfg.Redis, a.logger)
	} else {
		a.logger.Infof("redis cache disabled")
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.Add("kafka producer", func(context.Context) error { return producer.Close() })

	if err := producer.EnsureTopic(startupTimeout); err != nil {
		// топик может создать и брокер при первой записи, воркер повторит публикацию
		a.logger.Warnf("failed to ensure kafka topic %s: %v", a.cfg.Kafka.Topic, err)
	}

	a.worker = kafka.NewOutboxWorker(st.outbox, a.logger, producer, a.cfg.Outbox, pgdb.OutboxNotifyChannel, db.Dsn)
	a.closer.Add("outbox worker", a.worker.Stop)

	return st, nil
}

func initPGDB(ctx context.Context, log logger.Logger, cfg *config.PGDBCfg) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log, migrationsSource); err != nil {
		log.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
