package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"career-compass/internal/advisor"
	"career-compass/internal/composer"
	"career-compass/internal/knowledge"
	"career-compass/internal/profiles"
	"career-compass/internal/progress"
	"career-compass/internal/recommendations"
	"career-compass/internal/shared/config"
	"career-compass/internal/shared/server"
	"career-compass/internal/shared/storage/db"
	"career-compass/internal/users"
)

// App holds shared dependencies wired for the API server.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	UsersService           *users.Service
	ProfilesService        *profiles.Service
	ProgressService        *progress.Service
	RecommendationsService *recommendations.Service
}

// Build prepares dependencies and the router. Without a reachable database the
// app runs on in-memory repositories, which suits local development; in
// production a missing database is fatal.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	sqlDB, err := connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var (
		usersRepo    users.Repo
		profilesRepo profiles.Repo
		progressRepo progress.Repo
		recsRepo     recommendations.Repo
	)
	if sqlDB != nil {
		usersRepo = &users.PGRepo{DB: sqlDB}
		profilesRepo = &profiles.PGRepo{DB: sqlDB}
		progressRepo = &progress.PGRepo{DB: sqlDB}
		recsRepo = &recommendations.PGRepo{DB: sqlDB}
	} else {
		usersRepo = users.NewMemoryRepo()
		profilesRepo = profiles.NewMemoryRepo()
		progressRepo = progress.NewMemoryRepo()
		recsRepo = recommendations.NewMemoryRepo()
	}

	progressSvc := progress.NewService(progressRepo)
	quests := &questAdapter{svc: progressSvc}

	usersSvc := users.NewService(usersRepo)
	profilesSvc := profiles.NewService(profilesRepo, quests)

	catalog, err := knowledge.Default()
	if err != nil {
		return nil, fmt.Errorf("load knowledge catalog: %w", err)
	}
	recsSvc := &recommendations.Service{
		Repo:     recsRepo,
		Profiles: profilesSvc,
		Advisor:  advisorClient(cfg),
		Composer: composer.New(catalog),
		Quests:   quests,
	}

	router := server.NewRouter(server.Deps{
		Config:          cfg,
		Users:           users.NewHandler(usersSvc),
		Profiles:        profiles.NewHandler(profilesSvc),
		Recommendations: recommendations.NewHandler(recsSvc),
		Progress:        progress.NewHandler(progressSvc),
	})

	return &App{
		Config:                 cfg,
		Router:                 router,
		DB:                     sqlDB,
		UsersService:           usersSvc,
		ProfilesService:        profilesSvc,
		ProgressService:        progressSvc,
		RecommendationsService: recsSvc,
	}, nil
}

func connect(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		log.Printf("no DATABASE_URL, using in-memory repositories")
		return nil, nil
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil, nil
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if cfg.Env == "production" {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		return nil, nil
	}
	return sqlDB, nil
}

func advisorClient(cfg config.Config) advisor.Client {
	if cfg.AdvisorMode == "http" {
		if cfg.AdvisorBaseURL == "" {
			log.Printf("ADVISOR_MODE=http but ADVISOR_BASE_URL is empty, advisor disabled")
			return advisor.PlaceholderClient{}
		}
		return advisor.NewHTTPClient(
			cfg.AdvisorBaseURL,
			cfg.AdvisorTimeout,
			cfg.AdvisorClientID,
			cfg.AdvisorClientSecret,
			cfg.AdvisorTokenURL,
		)
	}
	return advisor.StubClient{}
}

// questAdapter exposes progress.Service through the narrow interface the
// feature services consume.
type questAdapter struct {
	svc *progress.Service
}

func (a *questAdapter) AdvanceQuest(ctx context.Context, userID, questType string, amount int) error {
	_, err := a.svc.Advance(ctx, userID, questType, amount)
	return err
}
