package handler

import (
	"net/http"

	"github.com/hitoshi/fleetman/internal/model"
)

// OverviewHandler はダッシュボード概要のHTTPハンドラー。
// フリート・配車・財務の各サービスから横断的にサマリーを組み立てる。
type OverviewHandler struct {
	fleetService    FleetServiceInterface
	dispatchService DispatchServiceInterface
	financeService  FinanceServiceInterface
}

// NewOverviewHandler はOverviewHandlerを生成する。
func NewOverviewHandler(fleetService FleetServiceInterface, dispatchService DispatchServiceInterface, financeService FinanceServiceInterface) *OverviewHandler {
	return &OverviewHandler{
		fleetService:    fleetService,
		dispatchService: dispatchService,
		financeService:  financeService,
	}
}

// overviewResponse はダッシュボード概要のAPIレスポンス。
type overviewResponse struct {
	ActiveTrucks     int     `json:"active_trucks"`
	TotalTrucks      int     `json:"total_trucks"`
	AvailableDrivers int     `json:"available_drivers"`
	TotalDrivers     int     `json:"total_drivers"`
	PendingLoads     int     `json:"pending_loads"`
	ActiveLoads      int     `json:"active_loads"`
	TotalRevenue     float64 `json:"total_revenue"`
	NetProfit        float64 `json:"net_profit"`
}

// Overview はダッシュボード概要を返す。
// GET /api/overview
func (h *OverviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.fleetService.FleetStats(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	drivers, err := h.fleetService.ListDrivers(ctx, "")
	if err != nil {
		handleServiceError(w, err)
		return
	}
	availableDrivers := 0
	for _, d := range drivers {
		if d.Status == model.DriverAvailable {
			availableDrivers++
		}
	}

	loads, err := h.dispatchService.ListLoads(ctx, "")
	if err != nil {
		handleServiceError(w, err)
		return
	}
	pendingLoads, activeLoads := 0, 0
	for _, l := range loads {
		switch l.Status {
		case model.LoadPending:
			pendingLoads++
		case model.LoadAssigned, model.LoadInTransit:
			activeLoads++
		}
	}

	summary, err := h.financeService.Summary(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		ActiveTrucks:     stats.Active,
		TotalTrucks:      stats.Total,
		AvailableDrivers: availableDrivers,
		TotalDrivers:     len(drivers),
		PendingLoads:     pendingLoads,
		ActiveLoads:      activeLoads,
		TotalRevenue:     summary.TotalRevenue,
		NetProfit:        summary.NetProfit,
	})
}
