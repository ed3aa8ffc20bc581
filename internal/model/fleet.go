package model

import "time"

// TruckStatus はトラックの稼働状態を表す。
type TruckStatus string

const (
	TruckActive      TruckStatus = "active"
	TruckMaintenance TruckStatus = "maintenance"
	TruckIdle        TruckStatus = "idle"
)

// Truck は保有トラックを表す。
type Truck struct {
	ID              string      `json:"id"`
	Number          string      `json:"number"`
	Make            string      `json:"make"`
	Model           string      `json:"model"`
	Year            int         `json:"year"`
	Status          TruckStatus `json:"status"`
	Driver          string      `json:"driver,omitempty"`
	Location        string      `json:"location"`
	Mileage         int         `json:"mileage"`
	NextMaintenance time.Time   `json:"next_maintenance"`
}

// Assignable は貨物を割当可能な状態（active または idle）かどうかを返す。
func (t *Truck) Assignable() bool {
	return t.Status == TruckActive || t.Status == TruckIdle
}

// DriverStatus はドライバーの勤務状態を表す。
type DriverStatus string

const (
	DriverAvailable DriverStatus = "available"
	DriverDriving   DriverStatus = "driving"
	DriverOffDuty   DriverStatus = "off_duty"
	DriverSleeper   DriverStatus = "sleeper"
)

// MaxDutyHours はドライバーの連続勤務可能時間の上限（時間）。
// HoursRemainingは常に [0, MaxDutyHours] の範囲に収まる。
const MaxDutyHours = 11.0

// Driver は運転手を表す。
type Driver struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Rating          float64      `json:"rating"`
	ExperienceYears int          `json:"experience_years"`
	CurrentLocation string       `json:"current_location"`
	Status          DriverStatus `json:"status"`
	HoursRemaining  float64      `json:"hours_remaining"`
}
