// Package main inicializa o backend administrativo.
//
//	@title			AdminPro Backend API
//	@version		1.0
//	@description	RBAC administrativo: usuários, workers, rols, modules, forms, permissões e log de atividade.
//	@BasePath		/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	_ "github.com/rafabene/adminpro-backend/docs"
	httphandlers "github.com/rafabene/adminpro-backend/internal/handlers/http"
	"github.com/rafabene/adminpro-backend/internal/handlers/middleware"
	"github.com/rafabene/adminpro-backend/internal/handlers/ws"
	"github.com/rafabene/adminpro-backend/internal/infrastructure/auth"
	"github.com/rafabene/adminpro-backend/internal/infrastructure/config"
	"github.com/rafabene/adminpro-backend/internal/infrastructure/i18n"
	"github.com/rafabene/adminpro-backend/internal/infrastructure/logging"
	"github.com/rafabene/adminpro-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/adminpro-backend/internal/services"
)

func main() {
	// Carregar variáveis do .env quando presente
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting adminpro backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.AutoMigrate(db); err != nil {
			logger.Error("failed to migrate database", "error", err)
			log.Fatal(err)
		}
	}

	// Inicializar i18n
	i18nService, err := i18n.NewDefaultService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	workerRepo := postgres.NewWorkerRepository(db)
	rolRepo := postgres.NewRolRepository(db)
	moduleRepo := postgres.NewModuleRepository(db)
	formRepo := postgres.NewFormRepository(db)
	permissionRepo := postgres.NewPermissionRepository(db)
	loginRepo := postgres.NewLoginRepository(db)
	workerLoginRepo := postgres.NewWorkerLoginRepository(db)
	rolUserRepo := postgres.NewRolUserRepository(db)
	formModuleRepo := postgres.NewFormModuleRepository(db)
	grantRepo := postgres.NewRolFormPermissionRepository(db)
	activityLogRepo := postgres.NewActivityLogRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Feed de atividade em tempo real
	hub := ws.NewHub(logger)
	go hub.Run()

	// Inicializar services
	userService := services.NewUserService(userRepo, logger)
	workerService := services.NewWorkerService(workerRepo, logger)
	rolService := services.NewRolService(rolRepo, logger)
	moduleService := services.NewModuleService(moduleRepo, logger)
	formService := services.NewFormService(formRepo, logger)
	permissionService := services.NewPermissionService(permissionRepo, logger)
	loginService := services.NewLoginService(loginRepo, logger)
	workerLoginService := services.NewWorkerLoginService(workerLoginRepo, logger)
	rolUserService := services.NewRolUserService(rolUserRepo, userRepo, rolRepo, logger)
	formModuleService := services.NewFormModuleService(formModuleRepo, formRepo, moduleRepo, uow, logger)
	grantService := services.NewRolFormPermissionService(grantRepo, rolRepo, formRepo, permissionRepo, logger)
	menuService := services.NewMenuService(grantRepo, permissionRepo, formRepo, formModuleRepo, moduleRepo, logger)
	activityLogService := services.NewActivityLogService(activityLogRepo, hub, logger)

	// Autenticação
	tokenTTL := cfg.JWT.AccessTokenTTL()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, tokenTTL)

	// Inicializar handlers
	handlers := httphandlers.Handlers{
		Health:            httphandlers.NewHealthHandler(db),
		Auth:              httphandlers.NewAuthHandler(loginService, workerLoginService, tokens, int64(tokenTTL.Seconds()), activityLogService),
		User:              httphandlers.NewUserHandler(userService, activityLogService),
		Worker:            httphandlers.NewWorkerHandler(workerService, activityLogService),
		Rol:               httphandlers.NewRolHandler(rolService, activityLogService),
		Module:            httphandlers.NewModuleHandler(moduleService, activityLogService),
		Form:              httphandlers.NewFormHandler(formService, activityLogService),
		Permission:        httphandlers.NewPermissionHandler(permissionService, activityLogService),
		Login:             httphandlers.NewLoginHandler(loginService, activityLogService),
		WorkerLogin:       httphandlers.NewWorkerLoginHandler(workerLoginService, activityLogService),
		RolUser:           httphandlers.NewRolUserHandler(rolUserService, activityLogService),
		FormModule:        httphandlers.NewFormModuleHandler(formModuleService, activityLogService),
		RolFormPermission: httphandlers.NewRolFormPermissionHandler(grantService, activityLogService),
		Menu:              httphandlers.NewMenuHandler(menuService),
		ActivityLog:       httphandlers.NewActivityLogHandler(activityLogService),
		ActivityFeed:      hub,
	}

	middlewares := httphandlers.Middlewares{
		I18n: middleware.NewI18nMiddleware(i18nService),
		Auth: middleware.NewAuthMiddleware(tokens, i18nService),
	}

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(cfg.Server.BaseURL, cfg.CORS.AllowedOrigins, handlers, middlewares)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
