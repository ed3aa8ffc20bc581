package model

import "time"

// InvoiceStatus は請求書の支払状態を表す。
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoicePending InvoiceStatus = "pending"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Invoice は顧客向け請求書を表す。
type Invoice struct {
	ID        string        `json:"id"`
	Number    string        `json:"number"`
	Customer  string        `json:"customer"`
	LoadID    string        `json:"load_id,omitempty"`
	Amount    float64       `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	IssuedAt  time.Time     `json:"issued_at"`
	DueAt     time.Time     `json:"due_at"`
}

// Expense は経費を表す。
type Expense struct {
	ID         string    `json:"id"`
	Category   string    `json:"category"` // fuel | maintenance | insurance | tolls | other
	Amount     float64   `json:"amount"`
	TruckID    string    `json:"truck_id,omitempty"`
	Note       string    `json:"note,omitempty"`
	IncurredAt time.Time `json:"incurred_at"`
}

// MonthlyFinance は月次の収支を表す。
type MonthlyFinance struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// FinanceSummary は収支サマリーを表す。
type FinanceSummary struct {
	TotalRevenue  float64          `json:"total_revenue"`
	TotalExpenses float64          `json:"total_expenses"`
	NetProfit     float64          `json:"net_profit"`
	Monthly       []MonthlyFinance `json:"monthly"`
}
