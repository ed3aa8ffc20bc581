package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/fleetman/internal/document"
	"github.com/hitoshi/fleetman/internal/middleware"
	"github.com/hitoshi/fleetman/internal/model"
)

// DocumentServiceInterface は書類ハンドラーが必要とするサービスインターフェース。
type DocumentServiceInterface interface {
	List(ctx context.Context, docType string) ([]*model.Document, error)
	Get(ctx context.Context, documentID string) (*model.Document, error)
	Register(ctx context.Context, input document.RegisterInput) (*model.Document, error)
}

// DocumentHandler は書類管理のHTTPハンドラー。
type DocumentHandler struct {
	service DocumentServiceInterface
}

// NewDocumentHandler はDocumentHandlerを生成する。
func NewDocumentHandler(service DocumentServiceInterface) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// List は書類一覧を返す。
// GET /api/documents?type=insurance
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.List(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if docs == nil {
		docs = []*model.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

// Get は書類詳細を返す。
// GET /api/documents/{id}
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// registerDocumentRequest は書類登録リクエストのボディ。
type registerDocumentRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	TruckID   string `json:"truck_id"`
	LoadID    string `json:"load_id"`
	Note      string `json:"note"`
	ExpiresAt string `json:"expires_at"` // YYYY-MM-DD
}

// Register は書類メタデータを登録する。登録者は現在のユーザー。
// POST /api/documents
func (h *DocumentHandler) Register(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	var req registerDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestError(w)
		return
	}

	if req.Name == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "書類名は必須です。",
			Category: "validation",
			Action:   "nameフィールドを指定してください。",
		})
		return
	}

	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiresAt)
		if err != nil {
			writeDateFormatError(w, "expires_at")
			return
		}
		expiresAt = &parsed
	}

	doc, err := h.service.Register(r.Context(), document.RegisterInput{
		Name:       req.Name,
		Type:       req.Type,
		TruckID:    req.TruckID,
		LoadID:     req.LoadID,
		UploadedBy: user.Name,
		Note:       req.Note,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}
