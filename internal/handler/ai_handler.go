package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/fleetman/internal/ai"
)

// AIServiceInterface はAIアシスタントハンドラーが必要とするサービスインターフェース。
type AIServiceInterface interface {
	Recommendations(ctx context.Context) ([]*ai.Recommendation, error)
}

// AIHandler は運行改善提案のHTTPハンドラー。
type AIHandler struct {
	service AIServiceInterface
}

// NewAIHandler はAIHandlerを生成する。
func NewAIHandler(service AIServiceInterface) *AIHandler {
	return &AIHandler{service: service}
}

// Recommendations は運行改善の提案一覧を返す。
// GET /api/ai/recommendations
func (h *AIHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.Recommendations(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if recs == nil {
		recs = []*ai.Recommendation{}
	}
	writeJSON(w, http.StatusOK, recs)
}
