package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamboard/internal/config"
	"teamboard/internal/handler"
	"teamboard/internal/middleware"
	"teamboard/internal/notify"
	"teamboard/internal/repository"
	"teamboard/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    zerolog.Logger
}

// runMigrations applies the SQL schema in migrations/ before gorm opens.
func runMigrations(cfg *config.Config) error {
	dsn := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func Init(cfg *config.Config) (*Server, error) {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := runMigrations(cfg); err != nil {
		return nil, err
	}
	log.Info().Msg("✅ Migrations applied")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to DB: %w", err)
	}
	log.Info().Msg("✅ Connected to database")

	r := gin.Default()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	cardRepo := repository.NewCardRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)

	// Move orchestration
	notifier := notify.NewLogNotifier(log.With().Str("component", "notify").Logger())
	moveService := workflow.NewService(cardRepo, columnRepo, boardRepo, memberRepo, notifier)

	// Handlers
	userHandler := handler.NewUserHandler(userRepo, cfg.JWTSecret)
	boardHandler := handler.NewBoardHandler(boardRepo, columnRepo, cardRepo)
	columnHandler := handler.NewColumnHandler(columnRepo, boardRepo, cardRepo)
	cardHandler := handler.NewCardHandler(cardRepo, columnRepo, boardRepo, moveService)
	teamHandler := handler.NewTeamHandler(teamRepo, memberRepo, userRepo)
	adminHandler := handler.NewAdminHandler(cfg, userRepo, teamRepo, cardRepo)
	templateHandler := handler.NewTemplateHandler()

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Board routes
		authorized.POST("/boards", boardHandler.Create)
		authorized.GET("/boards", boardHandler.GetAll)
		authorized.GET("/boards/:id", boardHandler.GetByID)
		authorized.PUT("/boards/:id", boardHandler.Rename)
		authorized.DELETE("/boards/:id", boardHandler.Delete)

		// Column routes
		authorized.POST("/columns", columnHandler.Create)
		authorized.GET("/boards/:id/columns", columnHandler.GetByBoard)
		authorized.PUT("/columns/:id", columnHandler.Update)
		authorized.DELETE("/columns/:id", columnHandler.Delete)
		authorized.POST("/boards/:id/columns/reorder", columnHandler.Reorder)

		// Card routes
		authorized.POST("/cards", cardHandler.Create)
		authorized.GET("/cards/:id", cardHandler.GetByID)
		authorized.PUT("/cards/:id", cardHandler.Update)
		authorized.DELETE("/cards/:id", cardHandler.Delete)
		authorized.POST("/cards/:id/move", cardHandler.Move)
		authorized.POST("/cards/:id/claim", cardHandler.Claim)
		authorized.POST("/cards/:id/submit-review", cardHandler.SubmitReview)
		authorized.POST("/cards/:id/approve", cardHandler.Approve)

		// Team routes
		authorized.GET("/teams", teamHandler.GetAll)
		authorized.POST("/teams/seed", teamHandler.Seed)
		authorized.GET("/teams/:slug", teamHandler.GetBySlug)
		authorized.POST("/teams/:slug/join", teamHandler.Join)
		authorized.POST("/teams/:slug/leave", teamHandler.Leave)
		authorized.POST("/teams/:slug/members", teamHandler.AddMember)
		authorized.PUT("/teams/:slug/members/:user_id", teamHandler.UpdateRole)
		authorized.DELETE("/teams/:slug/members/:user_id", teamHandler.RemoveMember)

		// Template routes
		authorized.GET("/templates", templateHandler.GetAll)
		authorized.GET("/templates/onboarding", templateHandler.GetOnboarding)

		// Admin routes
		authorized.GET("/admin/stats", adminHandler.Stats)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Log:    log,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Log.Info().Str("port", s.Config.ServerPort).Msg("🚀 Server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Log.Fatal().Err(err).Msg("❌ Failed to listen")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info().Msg("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Fatal().Err(err).Msg("❌ Server forced to shutdown")
	}

	s.Log.Info().Msg("✅ Server exited properly")
}
