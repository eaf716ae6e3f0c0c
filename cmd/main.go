package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/whitewhale-bridge/docs"
	"github.com/sbilibin2017/whitewhale-bridge/internal/config"
	"github.com/sbilibin2017/whitewhale-bridge/internal/facades"
	"github.com/sbilibin2017/whitewhale-bridge/internal/handlers"
	"github.com/sbilibin2017/whitewhale-bridge/internal/jwt"
	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/middlewares"
	"github.com/sbilibin2017/whitewhale-bridge/internal/migrations"
	"github.com/sbilibin2017/whitewhale-bridge/internal/repositories"
	"github.com/sbilibin2017/whitewhale-bridge/internal/services"
	"github.com/sbilibin2017/whitewhale-bridge/internal/spin"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Entries kept by the in-process upstream cache when Redis is not configured.
const memoryCacheEntries = 1024

// @title whitewhale-bridge API
// @version 1.0.0
// @description Accounts, daily spin, withdrawals and swap proxies for $WHITEWHALE
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name ww_session
func main() {
	printBuildInfo()

	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// routes bundles the services the HTTP layer is wired to.
type routes struct {
	auth        *services.AuthService
	sessions    *services.SessionService
	wallet      *services.WalletService
	spins       *services.SpinService
	exchange    *services.ExchangeService
	tokens      *services.TokenService
	leaderboard *services.LeaderboardService
	feeLog      *services.FeeLogService
	signer      *jwt.JWT
}

// run initializes the logger, database, optional Redis and Kafka, the
// upstream facades and the HTTP server, then blocks until shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
	}

	sessionStore, err := newSessionStore(cfg, rdb)
	if err != nil {
		return err
	}
	cache, err := newResponseCache(rdb)
	if err != nil {
		return err
	}

	// Kafka is optional, a nil writer disables event publishing
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		events = w
		logger.Log.Infof("Publishing events to %v topic %s", cfg.KafkaBrokers, cfg.KafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, events will not be published")
	}

	// Initialize upstream facades
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	changeNow := facades.NewChangeNowHTTPFacade(cfg.ChangeNowAPIURL, cfg.ChangeNowAPIKey, httpClient, facades.NewRateLimiter(5, 10))
	coinGecko := facades.NewCoinGeckoHTTPFacade(cfg.CoinGeckoAPIURL, httpClient, facades.NewRateLimiter(0.5, 5))
	dexScreener := facades.NewDexScreenerHTTPFacade(cfg.DexScreenerAPIURL, httpClient, facades.NewRateLimiter(5, 10))
	leaderboard := facades.NewLeaderboardHTTPFacade(cfg.LeaderboardAPIURL, httpClient, facades.NewRateLimiter(5, 10))

	// Initialize repositories
	txManager := repositories.NewTxManager(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	spinRepo := repositories.NewSpinRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	feeLogRepo := repositories.NewFeeLogFileRepository(cfg.FeeLogPath)

	// Initialize services
	signer := jwt.New(cfg.SessionSecret, cfg.SessionTTL)
	sessionService := services.NewSessionService(sessionStore, signer, cfg.SessionTTL)
	deps := routes{
		auth:        services.NewAuthService(userReadRepo, userWriteRepo, sessionService),
		sessions:    sessionService,
		wallet:      services.NewWalletService(txManager, userReadRepo, userWriteRepo, withdrawalRepo, events),
		spins:       services.NewSpinService(txManager, spinRepo, userWriteRepo, spin.NewWheel(spin.Segments), events),
		exchange:    services.NewExchangeService(changeNow, coinGecko, cache),
		tokens:      services.NewTokenService(dexScreener, cache, cfg.WhitewhaleContract),
		leaderboard: services.NewLeaderboardService(leaderboard, cache),
		feeLog:      services.NewFeeLogService(feeLogRepo),
		signer:      signer,
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

func newSessionStore(cfg *config.Config, rdb *redis.Client) (services.SessionStore, error) {
	if cfg.SessionBackend == config.SessionBackendRedis {
		return repositories.NewSessionRedisRepository(rdb), nil
	}
	store, err := repositories.NewSessionMemoryRepository(cfg.SessionMaxEntries)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	return store, nil
}

func newResponseCache(rdb *redis.Client) (services.ResponseCache, error) {
	if rdb != nil {
		return repositories.NewResponseCacheRepository(rdb), nil
	}
	cache, err := repositories.NewResponseMemoryCacheRepository(memoryCacheEntries)
	if err != nil {
		return nil, fmt.Errorf("response cache: %w", err)
	}
	return cache, nil
}

// newRouter mounts every endpoint under /api plus the Swagger UI.
func newRouter(cfg *config.Config, d routes) http.Handler {
	cookies := middlewares.CookieConfig{MaxAge: cfg.SessionTTL, Secure: cfg.IsProduction()}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.ClientIPMiddleware(cfg.TrustProxyHeaders))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(d.signer, d.sessions))

		// Public routes
		r.Post("/auth/signup", handlers.NewSignupHandler(d.auth, cookies))
		r.Post("/auth/login", handlers.NewLoginHandler(d.auth, cookies))
		r.Post("/auth/logout", handlers.NewLogoutHandler(d.auth, cookies))
		r.Get("/auth/me", handlers.NewMeHandler(d.auth))

		r.Post("/spin/check", handlers.NewSpinCheckHandler(d.spins))
		r.Post("/spin/execute", handlers.NewSpinExecuteHandler(d.spins))

		r.Get("/leaderboard", handlers.NewLeaderboardHandler(d.leaderboard))
		r.Get("/dexscreener", handlers.NewTokenStatsHandler(d.tokens))

		r.Route("/exchange", func(r chi.Router) {
			r.Get("/get-currencies", handlers.NewCurrenciesHandler(d.exchange))
			r.Post("/create-transaction", handlers.NewCreateTransactionHandler(d.exchange))
			r.Get("/get-status", handlers.NewTransactionStatusHandler(d.exchange))
			r.Get("/get-min-amount", handlers.NewMinAmountHandler(d.exchange))
			r.Get("/get-exchange-amount", handlers.NewExchangeAmountHandler(d.exchange))
			r.Get("/get-market-prices", handlers.NewMarketPricesHandler(d.exchange))
			r.Post("/log-fee-topup", handlers.NewLogFeeTopUpHandler(d.feeLog))
			r.Get("/log-fee-topup", handlers.NewFeeTopUpLogHandler(d.feeLog))
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireSession)
			r.Get("/user/balance", handlers.NewBalanceHandler(d.wallet))
			r.Post("/user/claim-spin", handlers.NewClaimSpinHandler(d.spins))
			r.Post("/user/withdraw", handlers.NewWithdrawHandler(d.wallet))
			r.Get("/user/withdraw", handlers.NewWithdrawalsHandler(d.wallet))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
