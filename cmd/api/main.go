package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nfe_backoffice/internal/adapter/http/handlers"
	"nfe_backoffice/internal/adapter/http/routes"
	"nfe_backoffice/internal/adapter/persistence/repository"
	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/infrastructure/auth"
	"nfe_backoffice/internal/infrastructure/config"
	"nfe_backoffice/internal/infrastructure/database"
	"nfe_backoffice/internal/infrastructure/event"
	"nfe_backoffice/internal/infrastructure/fiscal"
	"nfe_backoffice/internal/infrastructure/logger"
	"nfe_backoffice/internal/infrastructure/metrics"
	"nfe_backoffice/internal/infrastructure/queue"
	"nfe_backoffice/internal/infrastructure/storage"
	"nfe_backoffice/internal/usecase"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title           NF-e Back-office API
// @version         1.0
// @description     Drafts, emission and post-emission actions for NF-e and NFC-e, plus additional options.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const queueDepthInterval = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		zap.NewExample().Fatal("[app] failed to load configuration", zap.Error(err))
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = log.Sync() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("[app] stopped with error", zap.Error(err))
	}
	log.Info("[app] shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return err
	}
	docRepo := repository.NewFiscalDocumentDynamoRepository(ddb, cfg.DynamoDB.DocumentsTable)
	letterRepo := repository.NewCorrectionLetterDynamoRepository(ddb, cfg.DynamoDB.CorrectionLettersTable)
	companyRepo := repository.NewCompanyDynamoRepository(ddb, cfg.DynamoDB.CompaniesTable)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.DynamoDB.UsersTable)
	optionRepo := repository.NewAdditionalOptionDynamoRepository(ddb, cfg.DynamoDB.OptionsTable)

	recorder := metrics.NewRecorder()
	bus := event.NewInMemoryBus(log)
	recorder.Subscribe(bus)

	gateway, err := newFiscalGateway(cfg, recorder, log)
	if err != nil {
		return err
	}

	store, err := newArtifactStore(ctx, cfg, log)
	if err != nil {
		return err
	}

	redisClient, err := queue.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()
	reconcileQueue := queue.NewRedisReconciliationQueue(redisClient, cfg.Redis.QueueKey)

	archiver := usecase.NewArtifactArchiver(gateway, store, log)
	event.On(bus, func(ctx context.Context, e entities.DocumentEmitted) error {
		return archiver.OnDocumentEmitted(ctx, e)
	})
	event.On(bus, func(ctx context.Context, e entities.CorrectionLetterRegistered) error {
		return archiver.OnCorrectionLetterRegistered(ctx, e)
	})
	defer archiver.Wait()

	tokens := auth.NewJWTService(cfg.JWT)
	emissions := usecase.NewEmissionUseCase(docRepo, companyRepo, gateway, reconcileQueue, bus, log,
		usecase.WithMinPDFSize(cfg.Fiscal.MinPDFSize),
		usecase.WithJobRetention(cfg.Emission.JobRetention),
	)

	router := routes.NewRouter(routes.Dependencies{
		Logger:  log,
		Tokens:  tokens,
		Metrics: recorder,
		Swagger: cfg.IsDevelopment(),
		Handlers: routes.Handlers{
			Auth:      handlers.NewAuthHandler(usecase.NewAuthUseCase(userRepo, companyRepo, tokens, log)),
			Company:   handlers.NewCompanyHandler(usecase.NewCompanyUseCase(companyRepo)),
			Documents: handlers.NewDocumentHandler(usecase.NewDocumentUseCase(docRepo, companyRepo, gateway, log)),
			Emissions: handlers.NewEmissionHandler(emissions),
			PostEmission: handlers.NewPostEmissionHandler(
				usecase.NewPostEmissionUseCase(docRepo, letterRepo, companyRepo, gateway, store, reconcileQueue, bus, log),
			),
			Options: handlers.NewOptionHandler(usecase.NewAdditionalOptionUseCase(optionRepo, log)),
			Status:  handlers.NewStatusHandler(usecase.NewStatusUseCase(gateway, companyRepo, cfg.Fiscal.ProbeTimeout, log)),
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("[app] listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Reconciliation.Enabled {
		worker := usecase.NewReconciliationWorker(reconcileQueue, docRepo, gateway, bus, log,
			cfg.Reconciliation.MaxAttempts, cfg.Reconciliation.PollInterval)
		g.Go(func() error {
			err := worker.Run(gctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		watchQueueDepth(gctx, reconcileQueue, recorder, log)
		return nil
	})

	return g.Wait()
}

func newFiscalGateway(cfg *config.Config, recorder *metrics.Recorder, log *zap.Logger) (interfaces.IFiscalGateway, error) {
	if cfg.Fiscal.Mock {
		log.Warn("[app] fiscal backend mocked; nothing reaches SEFAZ")
		return fiscal.NewMockGateway(log), nil
	}
	gw, err := fiscal.NewHTTPGateway(cfg.Fiscal, fiscal.WithObserver(recorder), fiscal.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return gw, nil
}

// newArtifactStore returns a nil interface when no bucket is configured so
// archiving and artifact downloads fall back to the fiscal backend.
func newArtifactStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.IArtifactStore, error) {
	if cfg.Storage.Bucket == "" {
		log.Info("[app] artifact archive disabled; storage.bucket is empty")
		return nil, nil
	}
	awsCfg, err := database.NewAWSConfig(ctx, cfg.Storage.Region, cfg.DynamoDB.AccessKeyID, cfg.DynamoDB.SecretAccessKey)
	if err != nil {
		return nil, err
	}
	store, err := storage.NewS3ArtifactStore(storage.NewS3Client(awsCfg, cfg.Storage), cfg.Storage.Bucket, storage.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func watchQueueDepth(ctx context.Context, q *queue.RedisReconciliationQueue, recorder *metrics.Recorder, log *zap.Logger) {
	ticker := time.NewTicker(queueDepthInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pending, dead, err := q.Depth(ctx)
			if err != nil {
				log.Warn("[app][queue] depth probe failed", zap.Error(err))
				continue
			}
			recorder.SetQueueDepth(pending, dead)
		}
	}
}
