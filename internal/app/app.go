package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/stokku/go-stock-backend/internal/cfg"
	v1Http "github.com/stokku/go-stock-backend/internal/delivery/v1/http"
	"github.com/stokku/go-stock-backend/internal/infrastructure/kafka"
	"github.com/stokku/go-stock-backend/internal/repository/pgdb"
	pgdbConv "github.com/stokku/go-stock-backend/internal/repository/pgdb/converter/generated"
	"github.com/stokku/go-stock-backend/internal/repository/redis"
	redisConv "github.com/stokku/go-stock-backend/internal/repository/redis/converter/generated"
	"github.com/stokku/go-stock-backend/internal/usecase"
	"github.com/stokku/go-stock-backend/pkg/clients"
	"github.com/stokku/go-stock-backend/pkg/closer"
	"github.com/stokku/go-stock-backend/pkg/e"
	"github.com/stokku/go-stock-backend/pkg/logger"
	"github.com/stokku/go-stock-backend/pkg/postgres"
	"github.com/stokku/go-stock-backend/pkg/tr"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	resources := closer.NewCloser(5 * time.Second)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	resources.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	stConv := pgdbConv.NewStockConverterImpl()
	varConv := pgdbConv.NewVariantConverterImpl()
	obConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewStockInfoConverterImpl()

	stockRepo := pgdb.NewStockRepo(db.Pool, stConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool)
	productRepo := pgdb.NewProductRepo(db.Pool)
	variantRepo := pgdb.NewVariantRepo(db.Pool, varConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, obConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	resources.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}
	resources.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	workerCtx, workerCancel := context.WithCancel(context.Background())
	worker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	worker.Start(workerCtx)
	resources.Add(func(ctx context.Context) error {
		workerCancel()
		worker.Stop()
		return nil
	})

	txm := tr.NewManager(db.Pool)

	orderUC := usecase.NewOrderUC(stockRepo, orderRepo, outboxRepo, cacheRepo, txm, logger, cfg.Order)
	stockUC := usecase.NewStockUC(stockRepo, cacheRepo, logger)
	productUC := usecase.NewProductUC(productRepo, variantRepo, cacheRepo, txm, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(orderUC, stockUC, productUC, productUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	if err := resources.Close(shutdownCtx); err != nil {
		logger.Warnf("resource close error: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
