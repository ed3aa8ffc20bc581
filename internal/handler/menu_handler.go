package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/fleetman/internal/middleware"
	"github.com/hitoshi/fleetman/internal/model"
)

// MenuResolver はロールからメニューと実行可否を解決する。
// rbacパッケージの関数を渡す。
type MenuResolver struct {
	MenuFor    func(role model.Role) []model.MenuItem
	CanPerform func(role model.Role, action string) bool
}

// MenuHandler はナビゲーションメニューと権限照会のHTTPハンドラー。
type MenuHandler struct {
	resolver MenuResolver
}

// NewMenuHandler はMenuHandlerを生成する。
func NewMenuHandler(resolver MenuResolver) *MenuHandler {
	return &MenuHandler{resolver: resolver}
}

// menuItemResponse はメニュー項目のAPIレスポンス。
type menuItemResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Menu は現在のユーザーのロールに応じたメニュー項目を定義順で返す。
// GET /api/menu
func (h *MenuHandler) Menu(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	items := h.resolver.MenuFor(user.Role)
	resp := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, menuItemResponse{ID: item.ID, Label: item.Label})
	}

	writeJSON(w, http.StatusOK, resp)
}

// capabilityResponse は権限照会のAPIレスポンス。
type capabilityResponse struct {
	Action  string `json:"action"`
	Allowed bool   `json:"allowed"`
}

// Capability は現在のユーザーが指定操作を実行できるかを返す。
// 未定義の操作には常にallowed=falseを返す。
// GET /api/capabilities/{action}
func (h *MenuHandler) Capability(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	action := chi.URLParam(r, "action")
	writeJSON(w, http.StatusOK, capabilityResponse{
		Action:  action,
		Allowed: h.resolver.CanPerform(user.Role, action),
	})
}
