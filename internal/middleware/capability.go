package middleware

import (
	"log/slog"
	"net/http"

	"github.com/hitoshi/fleetman/internal/model"
)

// CapabilityChecker はロールと操作の組について実行可否を判定する。
// rbac.CanPerformを渡す。
type CapabilityChecker func(role model.Role, action string) bool

// NewCapabilityMiddleware は指定された操作の実行権限を検証するミドルウェアを返す。
// セッションミドルウェアの後に配置し、コンテキストのユーザーロールで判定する。
// 権限がない場合は403 Forbiddenを返す。
func NewCapabilityMiddleware(canPerform CapabilityChecker, action string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := UserFromContext(r.Context())
			if err != nil {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			if !canPerform(user.Role, action) {
				slog.Warn("capability check failed",
					slog.String("user_id", user.ID),
					slog.String("role", string(user.Role)),
					slog.String("action", action),
				)
				WriteErrorResponse(w, http.StatusForbidden, model.NewForbiddenError(action))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
