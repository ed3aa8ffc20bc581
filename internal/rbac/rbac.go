// Package rbac はロールごとのナビゲーションメニューと操作権限を解決する。
//
// メニュー表と権限表はこのパッケージの静的テーブルが唯一の情報源であり、
// 画面ごとにswitch文を複製してはならない。
package rbac

import "github.com/hitoshi/fleetman/internal/model"

// 操作権限の識別子。
const (
	CapAssignLoad        = "assign_load"
	CapAddLoad           = "add_load"
	CapUpdateLoadStatus  = "update_load_status"
	CapAddTruck          = "add_truck"
	CapViewFleet         = "view_fleet"
	CapViewFinancial     = "view_financial"
	CapManageUsers       = "manage_users"
	CapManageMaintenance = "manage_maintenance"
	CapViewDocuments     = "view_documents"
	CapViewAnalytics     = "view_analytics"
	CapUseAIAssistant    = "use_ai_assistant"
	CapViewOverview      = "view_overview"
	CapViewProfile       = "view_profile"
	CapViewRoutes        = "view_routes"
	CapViewLoads         = "view_loads"
	CapViewDrivers       = "view_drivers"
	CapManageSettings    = "manage_settings"
)

// capabilities はロールごとの許可された操作の表。
// この表がボタン・アクション可視性の唯一の情報源となる。
var capabilities = map[string][]model.Role{
	CapAssignLoad:        {model.RoleAdmin, model.RoleDispatcher},
	CapAddLoad:           {model.RoleAdmin, model.RoleDispatcher},
	CapUpdateLoadStatus:  {model.RoleAdmin, model.RoleDispatcher, model.RoleDriver},
	CapAddTruck:          {model.RoleFleetManager},
	CapViewFleet:         {model.RoleAdmin, model.RoleFleetManager},
	CapViewFinancial:     {model.RoleAdmin},
	CapManageUsers:       {model.RoleAdmin},
	CapManageMaintenance: {model.RoleAdmin, model.RoleFleetManager},
	CapViewDocuments:     {model.RoleAdmin, model.RoleDriver},
	CapViewAnalytics:     {model.RoleAdmin, model.RoleFleetManager, model.RoleDispatcher},
	CapUseAIAssistant:    {model.RoleAdmin, model.RoleFleetManager, model.RoleDispatcher},
	CapViewOverview:      {model.RoleAdmin, model.RoleFleetManager, model.RoleDispatcher, model.RoleDriver},
	CapViewProfile:       {model.RoleDriver},
	CapViewRoutes:        {model.RoleDispatcher, model.RoleDriver},
	CapViewLoads:         {model.RoleAdmin, model.RoleDispatcher, model.RoleDriver},
	CapViewDrivers:       {model.RoleAdmin, model.RoleFleetManager, model.RoleDispatcher},
	CapManageSettings:    {model.RoleAdmin},
}

// menus はロールごとのメニュー表。並びは画面上の表示順そのもの。
var menus = map[model.Role][]model.MenuItem{
	model.RoleAdmin: {
		{ID: "overview", Label: "Overview", RequiredCapability: CapViewOverview},
		{ID: "fleet", Label: "Fleet Management", RequiredCapability: CapViewFleet},
		{ID: "financial", Label: "Financial", RequiredCapability: CapViewFinancial},
		{ID: "dispatch", Label: "Dispatch", RequiredCapability: CapAssignLoad},
		{ID: "documents", Label: "Documents", RequiredCapability: CapViewDocuments},
		{ID: "ai-assistant", Label: "AI Assistant", RequiredCapability: CapUseAIAssistant},
		{ID: "users", Label: "User Management", RequiredCapability: CapManageUsers},
		{ID: "analytics", Label: "Analytics", RequiredCapability: CapViewAnalytics},
		{ID: "settings", Label: "Settings", RequiredCapability: CapManageSettings},
	},
	model.RoleFleetManager: {
		{ID: "overview", Label: "Overview", RequiredCapability: CapViewOverview},
		{ID: "fleet", Label: "Fleet Monitoring", RequiredCapability: CapViewFleet},
		{ID: "maintenance", Label: "Maintenance", RequiredCapability: CapManageMaintenance},
		{ID: "drivers", Label: "Driver Management", RequiredCapability: CapViewDrivers},
		{ID: "ai-assistant", Label: "AI Assistant", RequiredCapability: CapUseAIAssistant},
		{ID: "analytics", Label: "Reports", RequiredCapability: CapViewAnalytics},
	},
	model.RoleDispatcher: {
		{ID: "overview", Label: "Overview", RequiredCapability: CapViewOverview},
		{ID: "dispatch", Label: "Dispatch Board", RequiredCapability: CapAssignLoad},
		{ID: "routes", Label: "Route Planning", RequiredCapability: CapViewRoutes},
		{ID: "loads", Label: "Load Management", RequiredCapability: CapViewLoads},
		{ID: "ai-assistant", Label: "AI Assistant", RequiredCapability: CapUseAIAssistant},
		{ID: "drivers", Label: "Driver Status", RequiredCapability: CapViewDrivers},
	},
	model.RoleDriver: {
		{ID: "overview", Label: "Overview", RequiredCapability: CapViewOverview},
		{ID: "loads", Label: "My Loads", RequiredCapability: CapViewLoads},
		{ID: "routes", Label: "Routes", RequiredCapability: CapViewRoutes},
		{ID: "documents", Label: "Documents", RequiredCapability: CapViewDocuments},
		{ID: "profile", Label: "Profile", RequiredCapability: CapViewProfile},
	},
}

// MenuFor はロールに対応するメニュー項目の列を表示順で返す。
// 同一ロールに対しては常に同一の並びを返す（決定的）。
// 未定義のロールには空の列を返し、エラーにはしない。
func MenuFor(role model.Role) []model.MenuItem {
	items, ok := menus[role]
	if !ok {
		return []model.MenuItem{}
	}

	result := make([]model.MenuItem, len(items))
	copy(result, items)
	return result
}

// CanPerform はロールがactionを実行できるかどうかを返す。
// 未定義のactionや未定義のロールはfalseを返す（fail-safe）。
func CanPerform(role model.Role, action string) bool {
	allowed, ok := capabilities[action]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
