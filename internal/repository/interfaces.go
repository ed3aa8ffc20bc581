// Package repository はドメインレコードストアのインターフェースを定義する。
//
// 本システムのストアはモックデータを保持するインメモリ実装であり、
// 実運用ではこれらのインターフェースの背後にデータベースクライアントが入る。
package repository

import (
	"context"

	"github.com/hitoshi/fleetman/internal/model"
)

// UserRepository はユーザーデータのストアインターフェース。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail はメールアドレスでユーザーを検索する。
	// 大文字小文字を区別しない。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// List は全ユーザーをID順で返す。
	List(ctx context.Context) ([]*model.User, error)

	// Create はユーザーを作成する。メールアドレスが重複する場合はエラーを返す。
	Create(ctx context.Context, user *model.User) error
}

// SessionRepository はセッションデータのストアインターフェース。
type SessionRepository interface {
	// Create はセッションを作成する。
	Create(ctx context.Context, session *model.Session) error
	// FindByID は指定IDのセッションを取得する。期限切れ・未存在の場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Session, error)
	// DeleteByID は指定IDのセッションを削除する。存在しない場合も成功として扱う。
	DeleteByID(ctx context.Context, id string) error
	// DeleteExpired は期限切れセッションを削除し、削除件数を返す。
	DeleteExpired(ctx context.Context) (int, error)
}

// TruckRepository はトラックデータのストアインターフェース。
type TruckRepository interface {
	// FindByID は指定IDのトラックを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Truck, error)

	// List は全トラックを車両番号順で返す。
	List(ctx context.Context) ([]*model.Truck, error)

	// Create はトラックを作成する。
	Create(ctx context.Context, truck *model.Truck) error

	// UpdateStatus はトラックの稼働状態を更新する。
	UpdateStatus(ctx context.Context, id string, status model.TruckStatus) error
}

// DriverRepository はドライバーデータのストアインターフェース。
type DriverRepository interface {
	// FindByID は指定IDのドライバーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Driver, error)

	// List は全ドライバーを名前順で返す。
	List(ctx context.Context) ([]*model.Driver, error)

	// UpdateStatus はドライバーの勤務状態を更新する。
	UpdateStatus(ctx context.Context, id string, status model.DriverStatus) error
}

// LoadRepository は貨物データのストアインターフェース。
type LoadRepository interface {
	// FindByID は指定IDの貨物を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Load, error)

	// List は全貨物を貨物番号順で返す。
	List(ctx context.Context) ([]*model.Load, error)

	// ListByDriverName は指定ドライバーに割当済みの貨物を返す。
	ListByDriverName(ctx context.Context, driverName string) ([]*model.Load, error)

	// Create は貨物を作成する。
	Create(ctx context.Context, load *model.Load) error

	// UpdateAssignment は貨物の割当状態を更新する。
	// truckID・driverName・statusを単一のクリティカルセクションで同時に書き換え、
	// 「片方だけ設定された貨物」が観測されないことを保証する。
	UpdateAssignment(ctx context.Context, loadID, truckID, driverName string, status model.LoadStatus) error
}

// InvoiceRepository は請求書データのストアインターフェース。
type InvoiceRepository interface {
	// List は全請求書を発行日降順で返す。
	List(ctx context.Context) ([]*model.Invoice, error)
}

// ExpenseRepository は経費データのストアインターフェース。
type ExpenseRepository interface {
	// List は全経費を発生日降順で返す。
	List(ctx context.Context) ([]*model.Expense, error)
}

// FinanceRepository は収支サマリーのストアインターフェース。
type FinanceRepository interface {
	// Summary は収支サマリーを返す。
	Summary(ctx context.Context) (*model.FinanceSummary, error)
}

// MaintenanceRepository は整備記録のストアインターフェース。
type MaintenanceRepository interface {
	// List は全整備記録を予定日降順で返す。
	List(ctx context.Context) ([]*model.MaintenanceRecord, error)

	// ListByTruckID は指定トラックの整備記録を予定日降順で返す。
	ListByTruckID(ctx context.Context, truckID string) ([]*model.MaintenanceRecord, error)
}

// DocumentRepository は書類メタデータのストアインターフェース。
type DocumentRepository interface {
	// FindByID は指定IDの書類を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List は全書類を登録日降順で返す。
	List(ctx context.Context) ([]*model.Document, error)

	// Create は書類メタデータを登録する。
	Create(ctx context.Context, doc *model.Document) error
}
