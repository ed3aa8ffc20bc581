package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/fleetman/internal/dispatch"
	"github.com/hitoshi/fleetman/internal/middleware"
	"github.com/hitoshi/fleetman/internal/model"
)

// DispatchServiceInterface は配車ハンドラーが必要とするサービスインターフェース。
type DispatchServiceInterface interface {
	ListLoads(ctx context.Context, status string) ([]*model.Load, error)
	GetLoad(ctx context.Context, loadID string) (*model.Load, error)
	ListLoadsByDriver(ctx context.Context, driverName string) ([]*model.Load, error)
	CreateLoad(ctx context.Context, input dispatch.CreateLoadInput) (*model.Load, error)
	// Assign は貨物にトラックとドライバーを同時に割り当てる。
	Assign(ctx context.Context, loadID, truckID, driverID string) (*model.Load, error)
	// Unassign は貨物の割当を同時に解除する。
	Unassign(ctx context.Context, loadID string) (*model.Load, error)
	Candidates(ctx context.Context, loadID string) ([]model.AssignmentCandidate, error)
}

// DispatchHandler は配車管理のHTTPハンドラー。
type DispatchHandler struct {
	service DispatchServiceInterface
}

// NewDispatchHandler はDispatchHandlerを生成する。
func NewDispatchHandler(service DispatchServiceInterface) *DispatchHandler {
	return &DispatchHandler{service: service}
}

// ListLoads は貨物一覧を返す。
// driverロールのユーザーには自分に割当済みの貨物のみを返す。
// GET /api/loads?status=pending
func (h *DispatchHandler) ListLoads(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	var loads []*model.Load
	if user.Role == model.RoleDriver {
		loads, err = h.service.ListLoadsByDriver(r.Context(), user.Name)
	} else {
		loads, err = h.service.ListLoads(r.Context(), r.URL.Query().Get("status"))
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if loads == nil {
		loads = []*model.Load{}
	}
	writeJSON(w, http.StatusOK, loads)
}

// GetLoad は貨物詳細を返す。
// GET /api/loads/{id}
func (h *DispatchHandler) GetLoad(w http.ResponseWriter, r *http.Request) {
	load, err := h.service.GetLoad(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, load)
}

// createLoadRequest は貨物登録リクエストのボディ。
type createLoadRequest struct {
	LoadNumber    string  `json:"load_number"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Revenue       float64 `json:"revenue"`
	DistanceMiles float64 `json:"distance_miles"`
	PickupDate    string  `json:"pickup_date"`   // YYYY-MM-DD
	DeliveryDate  string  `json:"delivery_date"` // YYYY-MM-DD
}

// CreateLoad は貨物を登録する。
// POST /api/loads
func (h *DispatchHandler) CreateLoad(w http.ResponseWriter, r *http.Request) {
	var req createLoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if req.LoadNumber == "" || req.Origin == "" || req.Destination == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "貨物番号・積地・卸地は必須です。",
			Category: "validation",
			Action:   "load_number、origin、destinationを指定してください。",
		})
		return
	}

	pickupDate, err := parseDate(req.PickupDate)
	if err != nil {
		writeDateFormatError(w, "pickup_date")
		return
	}
	deliveryDate, err := parseDate(req.DeliveryDate)
	if err != nil {
		writeDateFormatError(w, "delivery_date")
		return
	}

	load, err := h.service.CreateLoad(r.Context(), dispatch.CreateLoadInput{
		LoadNumber:    req.LoadNumber,
		Origin:        req.Origin,
		Destination:   req.Destination,
		Revenue:       req.Revenue,
		DistanceMiles: req.DistanceMiles,
		PickupDate:    pickupDate,
		DeliveryDate:  deliveryDate,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, load)
}

// assignRequest は割当リクエストのボディ。
type assignRequest struct {
	TruckID  string `json:"truck_id"`
	DriverID string `json:"driver_id"`
}

// Assign は貨物にトラックとドライバーを割り当てる。
// POST /api/loads/{id}/assign
func (h *DispatchHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if req.TruckID == "" || req.DriverID == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "トラックIDとドライバーIDは必須です。",
			Category: "validation",
			Action:   "truck_idとdriver_idを両方指定してください。",
		})
		return
	}

	load, err := h.service.Assign(r.Context(), chi.URLParam(r, "id"), req.TruckID, req.DriverID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, load)
}

// Unassign は貨物の割当を解除する。
// POST /api/loads/{id}/unassign
func (h *DispatchHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	load, err := h.service.Unassign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, load)
}

// Candidates は貨物に対するドライバー・トラック候補を適合スコア順で返す。
// GET /api/loads/{id}/candidates
func (h *DispatchHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.service.Candidates(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if candidates == nil {
		candidates = []model.AssignmentCandidate{}
	}
	writeJSON(w, http.StatusOK, candidates)
}

// parseDate はYYYY-MM-DD形式の日付文字列を解析する。空文字列はゼロ値を返す。
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

// writeDateFormatError は日付形式エラーのレスポンスを書き込む。
func writeDateFormatError(w http.ResponseWriter, field string) {
	writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
		Code:     "INVALID_REQUEST",
		Message:  "日付の形式が正しくありません: " + field,
		Category: "validation",
		Action:   "YYYY-MM-DD形式で指定してください。",
	})
}
