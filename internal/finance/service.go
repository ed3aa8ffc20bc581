// Package finance は請求書・経費・収支サマリーの参照ロジックを提供する。
package finance

import (
	"context"
	"fmt"

	"github.com/hitoshi/fleetman/internal/model"
	"github.com/hitoshi/fleetman/internal/repository"
)

// Service は財務参照のサービス層。
type Service struct {
	invoiceRepo repository.InvoiceRepository
	expenseRepo repository.ExpenseRepository
	financeRepo repository.FinanceRepository
}

// NewService はServiceを生成する。
func NewService(invoiceRepo repository.InvoiceRepository, expenseRepo repository.ExpenseRepository, financeRepo repository.FinanceRepository) *Service {
	return &Service{invoiceRepo: invoiceRepo, expenseRepo: expenseRepo, financeRepo: financeRepo}
}

// ListInvoices は請求書一覧を返す。statusが空でなければ支払状態で絞り込む。
func (s *Service) ListInvoices(ctx context.Context, status string) ([]*model.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	if status == "" {
		return invoices, nil
	}

	switch model.InvoiceStatus(status) {
	case model.InvoicePaid, model.InvoicePending, model.InvoiceOverdue:
	default:
		return nil, model.NewInvalidStatusError(status)
	}

	var filtered []*model.Invoice
	for _, inv := range invoices {
		if inv.Status == model.InvoiceStatus(status) {
			filtered = append(filtered, inv)
		}
	}
	return filtered, nil
}

// ListExpenses は経費一覧を返す。categoryが空でなければ費目で絞り込む。
func (s *Service) ListExpenses(ctx context.Context, category string) ([]*model.Expense, error) {
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	if category == "" {
		return expenses, nil
	}

	var filtered []*model.Expense
	for _, e := range expenses {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Summary は収支サマリーを返す。
// 未収金額（pending・overdueの請求書残高）を請求書から算出して付加する。
func (s *Service) Summary(ctx context.Context) (*SummaryView, error) {
	summary, err := s.financeRepo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load finance summary: %w", err)
	}

	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	var outstanding float64
	for _, inv := range invoices {
		if inv.Status == model.InvoicePending || inv.Status == model.InvoiceOverdue {
			outstanding += inv.Amount
		}
	}

	return &SummaryView{
		TotalRevenue:  summary.TotalRevenue,
		TotalExpenses: summary.TotalExpenses,
		NetProfit:     summary.NetProfit,
		Outstanding:   outstanding,
		Monthly:       summary.Monthly,
	}, nil
}

// SummaryView はAPIで返す収支サマリー。
type SummaryView struct {
	TotalRevenue  float64                `json:"total_revenue"`
	TotalExpenses float64                `json:"total_expenses"`
	NetProfit     float64                `json:"net_profit"`
	Outstanding   float64                `json:"outstanding"`
	Monthly       []model.MonthlyFinance `json:"monthly"`
}
