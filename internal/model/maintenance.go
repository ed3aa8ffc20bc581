package model

import "time"

// MaintenanceStatus は整備作業の進行状態を表す。
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceOverdue    MaintenanceStatus = "overdue"
)

// MaintenanceRecord はトラックの整備記録を表す。
type MaintenanceRecord struct {
	ID            string            `json:"id"`
	TruckID       string            `json:"truck_id"`
	TruckNumber   string            `json:"truck_number"`
	Type          string            `json:"type"` // routine | repair | inspection
	Description   string            `json:"description"`
	Status        MaintenanceStatus `json:"status"`
	ScheduledDate time.Time         `json:"scheduled_date"`
	CompletedDate *time.Time        `json:"completed_date,omitempty"`
	Mileage       int               `json:"mileage"`
	Cost          float64           `json:"cost,omitempty"`
}

// DocumentType は書類の種別を表す。
type DocumentType string

const (
	DocumentBOL        DocumentType = "bill_of_lading"
	DocumentInsurance  DocumentType = "insurance"
	DocumentInspection DocumentType = "inspection"
	DocumentLicense    DocumentType = "license"
	DocumentOther      DocumentType = "other"
)

// Document は書類のメタデータを表す。
// ファイル本体の転送は本システムの対象外であり、レジストリとしてのみ扱う。
type Document struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       DocumentType `json:"type"`
	TruckID    string       `json:"truck_id,omitempty"`
	LoadID     string       `json:"load_id,omitempty"`
	UploadedBy string       `json:"uploaded_by"`
	Note       string       `json:"note,omitempty"`
	ExpiresAt  *time.Time   `json:"expires_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
