package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/fleetman/internal/maintenance"
	"github.com/hitoshi/fleetman/internal/model"
)

// MaintenanceServiceInterface は整備ハンドラーが必要とするサービスインターフェース。
type MaintenanceServiceInterface interface {
	ListRecords(ctx context.Context, status, truckID string) ([]*model.MaintenanceRecord, error)
	Alerts(ctx context.Context) ([]*maintenance.TruckAlert, error)
}

// MaintenanceHandler は整備管理のHTTPハンドラー。
type MaintenanceHandler struct {
	service MaintenanceServiceInterface
}

// NewMaintenanceHandler はMaintenanceHandlerを生成する。
func NewMaintenanceHandler(service MaintenanceServiceInterface) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// ListRecords は整備記録一覧を返す。
// GET /api/maintenance?status=scheduled&truck_id=xxx
func (h *MaintenanceHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListRecords(r.Context(), r.URL.Query().Get("status"), r.URL.Query().Get("truck_id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if records == nil {
		records = []*model.MaintenanceRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// Alerts は整備期限が超過・接近しているトラックの一覧を返す。
// GET /api/maintenance/alerts
func (h *MaintenanceHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.service.Alerts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if alerts == nil {
		alerts = []*maintenance.TruckAlert{}
	}
	writeJSON(w, http.StatusOK, alerts)
}
