package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tourgate/cache"
	"tourgate/config"
	"tourgate/handlers"
	"tourgate/routes"
	"tourgate/services/report"
	"tourgate/services/resolver"
	"tourgate/upstream"
	"tourgate/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	store := buildCache(logger)
	defer store.Close()

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Upstream adapters.
	timeout := config.UpstreamTimeout()
	catalog := upstream.NewCatalog(config.AppConfig.CatalogURL, timeout, logger)
	identity := upstream.NewIdentity(config.AppConfig.IdentityURL, timeout, logger)
	commerce := upstream.NewCommerce(config.AppConfig.CommerceURL, timeout, logger)

	// Services.
	resolverService := &resolver.DefaultService{
		Cache:    store,
		Catalog:  catalog,
		Identity: identity,
		Commerce: commerce,
		TTL:      config.CacheTTL(),
		Logger:   logger,
	}
	reportService := &report.DefaultService{
		Resolver:  resolverService,
		Commerce:  commerce,
		Cache:     store,
		ReportTTL: config.ReportTTL(),
		Logger:    logger,
	}

	handlerBundle := handlers.NewHandlerBundle(resolverService, reportService)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// buildCache constructs the cache backend named in config: an in-process
// store by default, Redis when the gateway runs as more than one replica.
func buildCache(logger *zap.Logger) cache.Cache {
	if config.AppConfig.CacheBackend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisCacheDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Sugar().Fatalf("main: failed to connect to redis: %v", err)
		}
		logger.Sugar().Infof("Using redis cache at %s", config.AppConfig.RedisAddr)
		return cache.NewRedisCache(client, config.CacheTTL())
	}
	logger.Sugar().Info("Using in-process memory cache")
	return cache.NewMemoryCache(config.CacheTTL())
}
