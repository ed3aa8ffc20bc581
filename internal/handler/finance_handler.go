package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/fleetman/internal/finance"
	"github.com/hitoshi/fleetman/internal/model"
)

// FinanceServiceInterface は財務ハンドラーが必要とするサービスインターフェース。
type FinanceServiceInterface interface {
	ListInvoices(ctx context.Context, status string) ([]*model.Invoice, error)
	ListExpenses(ctx context.Context, category string) ([]*model.Expense, error)
	Summary(ctx context.Context) (*finance.SummaryView, error)
}

// FinanceHandler は財務参照のHTTPハンドラー。
type FinanceHandler struct {
	service FinanceServiceInterface
}

// NewFinanceHandler はFinanceHandlerを生成する。
func NewFinanceHandler(service FinanceServiceInterface) *FinanceHandler {
	return &FinanceHandler{service: service}
}

// ListInvoices は請求書一覧を返す。
// GET /api/finance/invoices?status=pending
func (h *FinanceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.ListInvoices(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if invoices == nil {
		invoices = []*model.Invoice{}
	}
	writeJSON(w, http.StatusOK, invoices)
}

// ListExpenses は経費一覧を返す。
// GET /api/finance/expenses?category=fuel
func (h *FinanceHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.ListExpenses(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if expenses == nil {
		expenses = []*model.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

// Summary は収支サマリーを返す。
// GET /api/finance/summary
func (h *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
