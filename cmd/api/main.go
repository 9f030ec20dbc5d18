package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/KaushVerse/nginx-docker/internal/adapter/db"
	httpadapter "github.com/KaushVerse/nginx-docker/internal/adapter/http"
	"github.com/KaushVerse/nginx-docker/internal/adapter/http/handlers"
	httpmiddleware "github.com/KaushVerse/nginx-docker/internal/adapter/http/middleware"
	"github.com/KaushVerse/nginx-docker/internal/app/service"
	"github.com/KaushVerse/nginx-docker/internal/config"
	"github.com/KaushVerse/nginx-docker/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	// Requests arrive through the nginx load balancer.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db, cfg.AppName)
	systemHandler := handlers.NewSystemHandler()
	todoRepository := dbadapter.NewTodoRepository(db)
	todoService := service.NewTodoService(todoRepository)
	todoHandler := handlers.NewTodoHandler(todoService)
	httpadapter.RegisterRoutes(r, healthHandler, systemHandler, todoHandler)

	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr), zap.String("service", cfg.AppName))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
