package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/fleetman/internal/fleet"
	"github.com/hitoshi/fleetman/internal/model"
)

// FleetServiceInterface はフリートハンドラーが必要とするサービスインターフェース。
type FleetServiceInterface interface {
	ListTrucks(ctx context.Context, status, search string) ([]*model.Truck, error)
	GetTruck(ctx context.Context, truckID string) (*model.Truck, error)
	AddTruck(ctx context.Context, input fleet.AddTruckInput) (*model.Truck, error)
	FleetStats(ctx context.Context) (*fleet.Stats, error)
	ListDrivers(ctx context.Context, status string) ([]*model.Driver, error)
	GetDriver(ctx context.Context, driverID string) (*model.Driver, error)
}

// FleetHandler は車両・ドライバー管理のHTTPハンドラー。
type FleetHandler struct {
	service FleetServiceInterface
}

// NewFleetHandler はFleetHandlerを生成する。
func NewFleetHandler(service FleetServiceInterface) *FleetHandler {
	return &FleetHandler{service: service}
}

// ListTrucks はトラック一覧を返す。
// GET /api/trucks?status=active&search=TRK
func (h *FleetHandler) ListTrucks(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.service.ListTrucks(r.Context(), r.URL.Query().Get("status"), r.URL.Query().Get("search"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if trucks == nil {
		trucks = []*model.Truck{}
	}
	writeJSON(w, http.StatusOK, trucks)
}

// GetTruck はトラック詳細を返す。
// GET /api/trucks/{id}
func (h *FleetHandler) GetTruck(w http.ResponseWriter, r *http.Request) {
	truck, err := h.service.GetTruck(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, truck)
}

// addTruckRequest はトラック登録リクエストのボディ。
type addTruckRequest struct {
	Number          string `json:"number"`
	Make            string `json:"make"`
	Model           string `json:"model"`
	Year            int    `json:"year"`
	Location        string `json:"location"`
	Mileage         int    `json:"mileage"`
	NextMaintenance string `json:"next_maintenance"` // YYYY-MM-DD
}

// AddTruck はトラックを登録する。
// POST /api/trucks
func (h *FleetHandler) AddTruck(w http.ResponseWriter, r *http.Request) {
	var req addTruckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if req.Number == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "車両番号は必須です。",
			Category: "validation",
			Action:   "numberフィールドを指定してください。",
		})
		return
	}

	var nextMaintenance time.Time
	if req.NextMaintenance != "" {
		parsed, err := time.Parse("2006-01-02", req.NextMaintenance)
		if err != nil {
			writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
				Code:     "INVALID_REQUEST",
				Message:  "整備予定日の形式が正しくありません。",
				Category: "validation",
				Action:   "YYYY-MM-DD形式で指定してください。",
			})
			return
		}
		nextMaintenance = parsed
	}

	truck, err := h.service.AddTruck(r.Context(), fleet.AddTruckInput{
		Number:          req.Number,
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		Location:        req.Location,
		Mileage:         req.Mileage,
		NextMaintenance: nextMaintenance,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, truck)
}

// FleetStats はフリートの稼働サマリーを返す。
// GET /api/trucks/stats
func (h *FleetHandler) FleetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.FleetStats(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// ListDrivers はドライバー一覧を返す。
// GET /api/drivers?status=available
func (h *FleetHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.service.ListDrivers(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if drivers == nil {
		drivers = []*model.Driver{}
	}
	writeJSON(w, http.StatusOK, drivers)
}

// GetDriver はドライバー詳細を返す。
// GET /api/drivers/{id}
func (h *FleetHandler) GetDriver(w http.ResponseWriter, r *http.Request) {
	driver, err := h.service.GetDriver(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, driver)
}
