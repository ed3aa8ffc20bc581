package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/hitoshi/fleetman/internal/model"
)

// MemoryFinanceRepo はインメモリの財務データリポジトリ。
// 請求書・経費・収支サマリーをまとめて保持する。
type MemoryFinanceRepo struct {
	mu       sync.RWMutex
	invoices []*model.Invoice
	expenses []*model.Expense
	summary  model.FinanceSummary
}

// NewMemoryFinanceRepo はMemoryFinanceRepoを生成し、初期データを登録する。
func NewMemoryFinanceRepo(invoices []*model.Invoice, expenses []*model.Expense, summary model.FinanceSummary) *MemoryFinanceRepo {
	r := &MemoryFinanceRepo{summary: summary}
	for _, i := range invoices {
		c := *i
		r.invoices = append(r.invoices, &c)
	}
	for _, e := range expenses {
		c := *e
		r.expenses = append(r.expenses, &c)
	}
	return r
}

// List は全請求書を発行日降順で返す。
func (r *MemoryFinanceRepo) List(_ context.Context) ([]*model.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Invoice, 0, len(r.invoices))
	for _, i := range r.invoices {
		c := *i
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IssuedAt.After(result[j].IssuedAt) })
	return result, nil
}

// ListExpenses は全経費を発生日降順で返す。
func (r *MemoryFinanceRepo) ListExpenses(_ context.Context) ([]*model.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		c := *e
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IncurredAt.After(result[j].IncurredAt) })
	return result, nil
}

// Summary は収支サマリーを返す。
func (r *MemoryFinanceRepo) Summary(_ context.Context) (*model.FinanceSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := r.summary
	c.Monthly = make([]model.MonthlyFinance, len(r.summary.Monthly))
	copy(c.Monthly, r.summary.Monthly)
	return &c, nil
}

// expenseLister はExpenseRepositoryとしてのビューを提供するアダプタ。
// MemoryFinanceRepoのListは請求書用のためメソッド名が衝突する。
type expenseLister struct {
	repo *MemoryFinanceRepo
}

// NewExpenseLister はMemoryFinanceRepoをExpenseRepositoryに適合させる。
func NewExpenseLister(repo *MemoryFinanceRepo) ExpenseRepository {
	return &expenseLister{repo: repo}
}

// List は全経費を発生日降順で返す。
func (a *expenseLister) List(ctx context.Context) ([]*model.Expense, error) {
	return a.repo.ListExpenses(ctx)
}
