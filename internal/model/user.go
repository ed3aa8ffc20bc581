// Package model はドメインモデルを定義する。
package model

import "time"

// Role はユーザーの役割を表す。メニューと操作権限の解決に使用する。
type Role string

const (
	// RoleAdmin は全権限を持つ管理者。
	RoleAdmin Role = "admin"
	// RoleFleetManager は車両と整備、ドライバーを管理するフリートマネージャー。
	RoleFleetManager Role = "fleet_manager"
	// RoleDispatcher は配車と貨物の割当を行うディスパッチャー。
	RoleDispatcher Role = "dispatcher"
	// RoleDriver は自分の貨物と経路のみ参照できるドライバー。
	RoleDriver Role = "driver"
)

// IsValid は定義済みのRoleかどうかを返す。
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleFleetManager, RoleDispatcher, RoleDriver:
		return true
	}
	return false
}

// User はサービス利用ユーザーを表す。
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Company   string    `json:"company"`
	Status    string    `json:"status"` // active | inactive
	CreatedAt time.Time `json:"created_at"`
}

// Session はユーザーのログインセッションを表す。
// Userのスナップショットを保持し、復元時にリポジトリ参照なしでユーザーを返せる。
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired はセッションが期限切れかどうかを返す。
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// MenuItem はロールごとのナビゲーションメニュー項目を表す。
// 順序は画面上の表示順そのものであり、同一ロールに対して常に同一の並びを返す。
type MenuItem struct {
	ID                 string `json:"id"`
	Label              string `json:"label"`
	RequiredCapability string `json:"required_capability"`
}
