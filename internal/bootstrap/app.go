package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"certrisk-backend/internal/assessments"
	"certrisk-backend/internal/audit"
	"certrisk-backend/internal/certificates"
	"certrisk-backend/internal/dataset"
	"certrisk-backend/internal/risk"
	"certrisk-backend/internal/sentiment"
	"certrisk-backend/internal/shared/config"
	"certrisk-backend/internal/shared/server"
	"certrisk-backend/internal/shared/storage/db"
	"certrisk-backend/internal/shared/storage/object"
	localstore "certrisk-backend/internal/shared/storage/object/local"
	s3store "certrisk-backend/internal/shared/storage/object/s3"
	"certrisk-backend/internal/social"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	Model          *risk.Model
	Dataset        dataset.Repository
	Ranking        dataset.RankingIndex
	Sentiment      sentiment.Scorer
	SocialProvider social.StatsProvider

	CertificatesRepo    certificates.Repo
	AssessmentsRepo     assessments.Repo
	CertificatesService *certificates.Service
	AssessmentsService  *assessments.Service
	CertificateHandler  *certificates.Handler
	AssessmentHandler   *assessments.Handler
	SentimentHandler    *sentiment.Handler
}

// Build prepares shared dependencies and the router. Classifier artifacts
// are required; a missing model aborts startup.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	model, err := risk.LoadModel(cfg.ModelsDir)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	app := &App{
		Config:         cfg,
		DB:             sqlDB,
		Store:          store,
		Model:          model,
		Dataset:        dataset.OpenRepository(cfg.ScoreDatasetPath),
		Ranking:        dataset.OpenRankingIndex(cfg.RankingDatasetPath),
		Sentiment:      sentiment.New(cfg.SentimentServiceURL),
		SocialProvider: buildSocial(cfg),
	}

	buildServices(app)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		CertificateHandler: app.CertificateHandler,
		AssessmentHandler:  app.AssessmentHandler,
		SentimentHandler:   app.SentimentHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildSocial(cfg config.Config) social.StatsProvider {
	if strings.TrimSpace(cfg.SocialStatsURL) == "" {
		return social.Noop{}
	}
	provider, err := social.NewHTTPProvider(cfg.SocialStatsURL)
	if err != nil {
		log.Printf("bootstrap: social stats disabled: %v", err)
		return social.Noop{}
	}
	return provider
}

func buildServices(app *App) {
	if app.DB != nil {
		app.CertificatesRepo = &certificates.PGRepo{DB: app.DB}
		app.AssessmentsRepo = &assessments.PGRepo{DB: app.DB}
	} else {
		app.CertificatesRepo = certificates.NewMemoryRepo()
		app.AssessmentsRepo = assessments.NewMemoryRepo()
	}

	app.CertificatesService = &certificates.Service{
		Store:           app.Store,
		Repo:            app.CertificatesRepo,
		Audit:           audit.NewFileLogger(app.Config.AuditLogPath),
		StorageProvider: app.Config.ObjectStoreType,
	}
	app.AssessmentsService = &assessments.Service{
		Repo:         app.AssessmentsRepo,
		Certificates: app.CertificatesService,
		Resolver: &risk.Resolver{
			Dataset: app.Dataset,
			Ranking: app.Ranking,
			Model:   app.Model,
		},
		Social: app.SocialProvider,
	}

	app.CertificateHandler = certificates.NewHandler(app.CertificatesService)
	app.AssessmentHandler = assessments.NewHandler(app.AssessmentsService)
	app.SentimentHandler = sentiment.NewHandler(app.Sentiment)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
