package model

import "time"

// LoadStatus は貨物のライフサイクル状態を表す。
type LoadStatus string

const (
	LoadPending   LoadStatus = "pending"
	LoadAssigned  LoadStatus = "assigned"
	LoadInTransit LoadStatus = "in_transit"
	LoadDelivered LoadStatus = "delivered"
	LoadCancelled LoadStatus = "cancelled"
)

// Load は貨物（輸送ジョブ）を表す。
//
// 不変条件: TruckIDとDriverNameは必ず両方設定されるか両方未設定になる。
// 割当は単一のエントリポイント（dispatch.Service.Assign）経由でのみ行い、
// フィールドを個別に書き換えてはならない。
type Load struct {
	ID            string     `json:"id"`
	LoadNumber    string     `json:"load_number"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	Status        LoadStatus `json:"status"`
	TruckID       string     `json:"truck_id,omitempty"`
	DriverName    string     `json:"driver_name,omitempty"`
	Revenue       float64    `json:"revenue"`
	DistanceMiles float64    `json:"distance_miles"`
	PickupDate    time.Time  `json:"pickup_date"`
	DeliveryDate  time.Time  `json:"delivery_date"`
}

// Assigned はトラックとドライバーが両方割当済みかどうかを返す。
func (l *Load) Assigned() bool {
	return l.TruckID != "" && l.DriverName != ""
}

// AssignmentCandidate は貨物に対するドライバー・トラック候補と適合スコアの組。
// 要求の都度計算される派生データであり、永続化されない。
type AssignmentCandidate struct {
	Driver Driver `json:"driver"`
	Truck  Truck  `json:"truck"`
	Score  int    `json:"score"`
}
