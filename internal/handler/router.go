package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/fleetman/internal/middleware"
	"github.com/hitoshi/fleetman/internal/rbac"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	SessionFinder     middleware.SessionFinder
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	CSRFConfig        middleware.CSRFConfig
	Logger            *slog.Logger
	StatusRecorder    middleware.HTTPStatusRecorder

	// 認証
	AuthService   AuthServiceInterface
	LoginRecorder LoginRecorder
	AuthConfig    AuthHandlerConfig

	// ドメインサービス
	FleetService       FleetServiceInterface
	DispatchService    DispatchServiceInterface
	FinanceService     FinanceServiceInterface
	MaintenanceService MaintenanceServiceInterface
	DocumentService    DocumentServiceInterface
	UserService        UserServiceInterface
	AIService          AIServiceInterface

	// /metrics エンドポイントのハンドラー（promhttp）
	MetricsHandler http.Handler
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Logging → Metrics → CSRF
//	→ (認証ルート: RateLimit(Login))
//	→ (APIルート: Session → RateLimit(General) → Capability)
//
// /health と /metrics はミドルウェアチェーンの外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}
	if deps.StatusRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.StatusRecorder))
	}

	authHandler := NewAuthHandler(deps.AuthService, deps.LoginRecorder, deps.AuthConfig)
	menuHandler := NewMenuHandler(MenuResolver{
		MenuFor:    rbac.MenuFor,
		CanPerform: rbac.CanPerform,
	})
	fleetHandler := NewFleetHandler(deps.FleetService)
	dispatchHandler := NewDispatchHandler(deps.DispatchService)
	financeHandler := NewFinanceHandler(deps.FinanceService)
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceService)
	documentHandler := NewDocumentHandler(deps.DocumentService)
	userHandler := NewUserHandler(deps.UserService)
	aiHandler := NewAIHandler(deps.AIService)

	// --- 認証不要のルート ---

	r.Get("/health", healthHandler)

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Method(http.MethodGet, "/api/csrf-token", middleware.NewCSRFTokenHandler(deps.CSRFConfig))

	// 認証ルート
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRFMiddleware(deps.CSRFConfig))

		// ログインはIP単位の専用レート制限を適用
		r.With(deps.RateLimiter.LoginMiddleware()).Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/me", authHandler.Me)
	})

	// --- 認証が必要なルート ---
	// ミドルウェアスタック: CSRF → Session → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRFMiddleware(deps.CSRFConfig))
		r.Use(middleware.NewSessionMiddleware(deps.SessionFinder))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		capability := func(action string) func(http.Handler) http.Handler {
			return middleware.NewCapabilityMiddleware(rbac.CanPerform, action)
		}

		// メニュー・権限照会（全ロール）
		r.Get("/api/menu", menuHandler.Menu)
		r.Get("/api/capabilities/{action}", menuHandler.Capability)

		// 車両管理
		r.Route("/api/trucks", func(r chi.Router) {
			r.With(capability(rbac.CapViewFleet)).Get("/", fleetHandler.ListTrucks)
			r.With(capability(rbac.CapViewFleet)).Get("/stats", fleetHandler.FleetStats)
			r.With(capability(rbac.CapAddTruck)).Post("/", fleetHandler.AddTruck)
			r.With(capability(rbac.CapViewFleet)).Get("/{id}", fleetHandler.GetTruck)
		})

		// ドライバー管理
		r.Route("/api/drivers", func(r chi.Router) {
			r.With(capability(rbac.CapViewDrivers)).Get("/", fleetHandler.ListDrivers)
			r.With(capability(rbac.CapViewDrivers)).Get("/{id}", fleetHandler.GetDriver)
		})

		// 配車管理
		r.Route("/api/loads", func(r chi.Router) {
			r.With(capability(rbac.CapViewLoads)).Get("/", dispatchHandler.ListLoads)
			r.With(capability(rbac.CapAddLoad)).Post("/", dispatchHandler.CreateLoad)

			r.Route("/{id}", func(r chi.Router) {
				r.With(capability(rbac.CapViewLoads)).Get("/", dispatchHandler.GetLoad)
				r.With(capability(rbac.CapAssignLoad)).Post("/assign", dispatchHandler.Assign)
				r.With(capability(rbac.CapAssignLoad)).Post("/unassign", dispatchHandler.Unassign)
				r.With(capability(rbac.CapAssignLoad)).Get("/candidates", dispatchHandler.Candidates)
			})
		})

		// 財務（adminのみ）
		r.Route("/api/finance", func(r chi.Router) {
			r.Use(capability(rbac.CapViewFinancial))
			r.Get("/invoices", financeHandler.ListInvoices)
			r.Get("/expenses", financeHandler.ListExpenses)
			r.Get("/summary", financeHandler.Summary)
		})

		// 整備管理
		r.Route("/api/maintenance", func(r chi.Router) {
			r.Use(capability(rbac.CapManageMaintenance))
			r.Get("/", maintenanceHandler.ListRecords)
			r.Get("/alerts", maintenanceHandler.Alerts)
		})

		// 書類管理
		r.Route("/api/documents", func(r chi.Router) {
			r.Use(capability(rbac.CapViewDocuments))
			r.Get("/", documentHandler.List)
			r.Post("/", documentHandler.Register)
			r.Get("/{id}", documentHandler.Get)
		})

		// ユーザー管理（adminのみ）
		r.Route("/api/users", func(r chi.Router) {
			r.Use(capability(rbac.CapManageUsers))
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
		})

		// ダッシュボード概要（全ロール）
		overviewHandler := NewOverviewHandler(deps.FleetService, deps.DispatchService, deps.FinanceService)
		r.With(capability(rbac.CapViewOverview)).Get("/api/overview", overviewHandler.Overview)

		// AIアシスタント
		r.With(capability(rbac.CapUseAIAssistant)).Get("/api/ai/recommendations", aiHandler.Recommendations)
	})

	return r
}

// healthHandler はヘルスチェックエンドポイント。
// GET /health
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
