package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/currencygw/gw-currency-converter/internal/facades"
	"github.com/currencygw/gw-currency-converter/internal/handlers"
	"github.com/currencygw/gw-currency-converter/internal/logger"
	"github.com/currencygw/gw-currency-converter/internal/middlewares"
	"github.com/currencygw/gw-currency-converter/internal/models"
	"github.com/currencygw/gw-currency-converter/internal/repositories"
	"github.com/currencygw/gw-currency-converter/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Credit-metered gateway in front of the frankfurter.dev exchange rate API
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey APIKeyAuth
// @in header
// @name X-API-Key
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		initialCredits, cacheTTLSecond,
		upstreamURL, upstreamTimeoutSecond,
		userStore, pgDSN, pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword, redisExpSecond,
		kafkaBroker, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		initialCredits, cacheTTLSecond,
		upstreamURL, upstreamTimeoutSecond,
		userStore, pgDSN, pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword, redisExpSecond,
		kafkaBroker, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, metering, upstream, storage, Redis, and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	initialCredits int64, cacheTTLSecond int,
	upstreamURL string, upstreamTimeoutSecond int,
	userStore, pgDSN string, pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBroker, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Metering config
	if initialCredits, err = strconv.ParseInt(getEnv("INITIAL_CREDITS", "100"), 10, 64); err != nil {
		return
	}
	if cacheTTLSecond, err = strconv.Atoi(getEnv("CURRENCY_CACHE_TTL_SECOND", "3600")); err != nil {
		return
	}

	// Upstream rate provider config
	upstreamURL = getEnv("FRANKFURTER_BASE_URL", "")
	if upstreamTimeoutSecond, err = strconv.Atoi(getEnv("FRANKFURTER_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// User store config
	userStore = getEnv("USER_STORE", "memory")
	pgDSN = getEnv("POSTGRES_DSN", "")
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisAddr = getEnv("REDIS_ADDR", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Kafka config
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "usage-events")

	return
}

// userRepository is the full user store contract the services are wired to.
type userRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error)
	Save(ctx context.Context, email, apiKey string, credits int64) error
	DecrementCredits(ctx context.Context, email string) (bool, error)
}

// run initializes the logger, storage backends, upstream client, and HTTP
// server. It pre-warms the currency cache, sets up routes, applies
// middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	initialCredits int64, cacheTTLSecond int,
	upstreamURL string, upstreamTimeoutSecond int,
	userStore, pgDSN string, pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBroker, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to Redis when configured (user store and/or historical rate cache)
	var rdb *redis.Client
	if redisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
	}

	// Select the user store backend
	var userRepo userRepository
	switch userStore {
	case "postgres":
		db, err := sqlx.ConnectContext(ctx, "pgx", pgDSN)
		if err != nil {
			logger.Log.Errorw("PostgreSQL connection error", "error", err)
			return err
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)
		userRepo = repositories.NewPostgresUserRepository(db)
	case "redis":
		if rdb == nil {
			return fmt.Errorf("USER_STORE=redis requires REDIS_ADDR")
		}
		userRepo = repositories.NewRedisUserRepository(rdb)
	default:
		userRepo = repositories.NewMemoryUserRepository()
	}
	logger.Log.Infof("User store backend: %s", userStore)

	// Optional historical rate cache
	var histCache services.HistoricalRateCache
	if rdb != nil {
		histCache = repositories.NewHistoricalRateCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
	}

	// Optional usage event publisher
	var usageWriter services.UsageWriter
	if kafkaBroker != "" {
		kafkaWriter := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		usageWriter = kafkaWriter
	}

	// Upstream rate provider client
	upstreamTimeout := time.Duration(upstreamTimeoutSecond) * time.Second
	frankfurter := facades.NewFrankfurterClient(upstreamURL, upstreamTimeout)

	// Initialize services
	authService := services.NewAuthService(userRepo, userRepo, initialCredits)
	creditService := services.NewCreditService(userRepo, usageWriter)
	ratesService := services.NewRatesService(
		frankfurter,
		histCache,
		creditService,
		time.Duration(cacheTTLSecond)*time.Second,
		nil,
	)

	// Pre-warm the supported currencies cache
	prewarmCtx, cancelPrewarm := context.WithTimeout(ctx, upstreamTimeout)
	if err := ratesService.Prewarm(prewarmCtx); err != nil {
		logger.Log.Errorw("failed to pre-warm supported currencies cache", "error", err)
	} else {
		logger.Log.Info("Supported currencies cache pre-warmed")
	}
	cancelPrewarm()

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(authService)
	creditsHandler := handlers.NewGetCreditsHandler()
	currenciesHandler := handlers.NewGetCurrenciesHandler(creditService, ratesService)
	convertHandler := handlers.NewConvertHandler(creditService, ratesService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/users/signup", signupHandler)

	// Protected routes with API key middleware
	authMiddleware := middlewares.APIKeyAuthMiddleware(authService)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/users/credits", creditsHandler)
		r.Get("/currency/currencies", currenciesHandler)
		r.Post("/currency/convert", convertHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
