package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/hitoshi/fleetman/internal/ai"
	"github.com/hitoshi/fleetman/internal/auth"
	"github.com/hitoshi/fleetman/internal/config"
	"github.com/hitoshi/fleetman/internal/dispatch"
	"github.com/hitoshi/fleetman/internal/document"
	"github.com/hitoshi/fleetman/internal/finance"
	"github.com/hitoshi/fleetman/internal/fleet"
	"github.com/hitoshi/fleetman/internal/handler"
	"github.com/hitoshi/fleetman/internal/logger"
	"github.com/hitoshi/fleetman/internal/maintenance"
	"github.com/hitoshi/fleetman/internal/metrics"
	"github.com/hitoshi/fleetman/internal/middleware"
	"github.com/hitoshi/fleetman/internal/repository"
	"github.com/hitoshi/fleetman/internal/security"
	"github.com/hitoshi/fleetman/internal/user"
	"github.com/hitoshi/fleetman/internal/worker/cleanup"
	maintworker "github.com/hitoshi/fleetman/internal/worker/maintenance"
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("base_url", cfg.BaseURL),
	)

	return runServe(cfg)
}

// runServe はAPIサーバーモードで起動する。
// インメモリストアをモックデータで初期化し、全依存関係をワイヤリングして
// HTTPサーバーとバックグラウンドジョブを起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	// 1. ストアの初期化（モックデータ投入済みのインメモリ実装）
	seed := repository.DefaultSeed()
	userRepo := repository.NewMemoryUserRepo(seed.Users)
	truckRepo := repository.NewMemoryTruckRepo(seed.Trucks)
	driverRepo := repository.NewMemoryDriverRepo(seed.Drivers)
	loadRepo := repository.NewMemoryLoadRepo(seed.Loads)
	financeRepo := repository.NewMemoryFinanceRepo(seed.Invoices, seed.Expenses, seed.Summary)
	maintRepo := repository.NewMemoryMaintenanceRepo(seed.Maintenance)
	docRepo := repository.NewMemoryDocumentRepo(seed.Documents)

	// セッションはファイルに永続化され、再起動をまたいで復元できる
	sessionRepo := repository.NewFileSessionRepo(cfg.SessionStorePath)

	slog.Info("in-memory store initialized",
		slog.Int("users", len(seed.Users)),
		slog.Int("trucks", len(seed.Trucks)),
		slog.Int("drivers", len(seed.Drivers)),
		slog.Int("loads", len(seed.Loads)),
	)

	// 2. メトリクスの初期化
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 3. セキュリティサービスの初期化
	sanitizer := security.NewTextSanitizer()

	// 4. ドメインサービスの初期化
	verifier := auth.NewFixedPasswordVerifier(cfg.DirectoryPassword)
	authService := auth.NewService(
		userRepo, sessionRepo, verifier,
		auth.ServiceConfig{SessionMaxAge: cfg.SessionMaxAge},
	)

	scorer := dispatch.NewScorer(dispatch.ScorerConfig{
		ExperienceYearsThreshold: cfg.ScorerExperienceYears,
		RatingThreshold:          cfg.ScorerRating,
	})
	dispatchService := dispatch.NewService(loadRepo, truckRepo, driverRepo, scorer, collector)
	fleetService := fleet.NewService(truckRepo, driverRepo)
	financeService := finance.NewService(financeRepo, repository.NewExpenseLister(financeRepo), financeRepo)
	maintenanceService := maintenance.NewService(maintRepo, truckRepo)
	documentService := document.NewService(docRepo, sanitizer)
	userService := user.NewService(userRepo)
	aiService := ai.NewService(loadRepo, truckRepo, driverRepo, scorer)

	// 5. ルーターの構築
	rateLimiterCfg := middleware.DefaultRateLimiterConfig()
	rateLimiterCfg.GeneralRate = rate.Limit(float64(cfg.RateLimitGeneral) / 60.0)
	rateLimiterCfg.GeneralBurst = cfg.RateLimitGeneral
	rateLimiterCfg.LoginRate = rate.Limit(float64(cfg.RateLimitLogin) / 60.0)
	rateLimiterCfg.LoginBurst = cfg.RateLimitLogin
	rateLimiter := middleware.NewRateLimiter(rateLimiterCfg)
	defer rateLimiter.Stop()

	deps := &handler.RouterDeps{
		SessionFinder:     sessionRepo,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rateLimiter,
		CSRFConfig: middleware.CSRFConfig{
			CookieSecure: cfg.CookieSecure,
			CookieDomain: cfg.CookieDomain,
		},
		Logger:         slog.Default(),
		StatusRecorder: collector,

		AuthService:   authService,
		LoginRecorder: collector,
		AuthConfig: handler.AuthHandlerConfig{
			CookieDomain:  cfg.CookieDomain,
			CookieSecure:  cfg.CookieSecure,
			SessionMaxAge: cfg.SessionMaxAge,
		},

		FleetService:       fleetService,
		DispatchService:    dispatchService,
		FinanceService:     financeService,
		MaintenanceService: maintenanceService,
		DocumentService:    documentService,
		UserService:        userService,
		AIService:          aiService,

		MetricsHandler: metrics.SetupMetricsRoute(registry),
	}

	router := handler.NewRouter(deps)

	// 6. バックグラウンドジョブの起動
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanupJob := cleanup.NewCleanupJob(sessionRepo, collector, slog.Default())
	go cleanupJob.Start(ctx, cfg.SessionPurgeInterval)

	scanner := maintworker.NewScanner(truckRepo, slog.Default())
	go scanner.Start(ctx, cfg.MaintenanceScanInterval)

	// 7. HTTPサーバーの起動
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}
