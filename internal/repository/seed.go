package repository

import (
	"time"

	"github.com/hitoshi/fleetman/internal/model"
)

// SeedData はインメモリストアの初期データ一式。
type SeedData struct {
	Users       []*model.User
	Trucks      []*model.Truck
	Drivers     []*model.Driver
	Loads       []*model.Load
	Invoices    []*model.Invoice
	Expenses    []*model.Expense
	Summary     model.FinanceSummary
	Maintenance []*model.MaintenanceRecord
	Documents   []*model.Document
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// DefaultSeed はデモ用の初期データを返す。
// ユーザーディレクトリ・車両・貨物・ドライバー・財務データの内容は
// 既存フロントエンドのモックデータセットと一致させている。
func DefaultSeed() *SeedData {
	return &SeedData{
		Users: []*model.User{
			{ID: "1", Name: "John Admin", Email: "admin@trucking.com", Role: model.RoleAdmin, Company: "TruckCorp LLC", Status: "active", CreatedAt: date(2023, time.June, 1)},
			{ID: "2", Name: "Sarah Fleet", Email: "fleet@trucking.com", Role: model.RoleFleetManager, Company: "TruckCorp LLC", Status: "active", CreatedAt: date(2023, time.June, 1)},
			{ID: "3", Name: "Mike Dispatch", Email: "dispatch@trucking.com", Role: model.RoleDispatcher, Company: "TruckCorp LLC", Status: "active", CreatedAt: date(2023, time.June, 1)},
			{ID: "4", Name: "Tom Driver", Email: "driver@trucking.com", Role: model.RoleDriver, Company: "TruckCorp LLC", Status: "active", CreatedAt: date(2023, time.June, 1)},
		},
		Trucks: []*model.Truck{
			{ID: "1", Number: "TRK-001", Make: "Freightliner", Model: "Cascadia", Year: 2022, Status: model.TruckActive, Driver: "John Smith", Location: "Dallas, TX", Mileage: 125000, NextMaintenance: date(2024, time.February, 15)},
			{ID: "2", Number: "TRK-002", Make: "Peterbilt", Model: "579", Year: 2021, Status: model.TruckMaintenance, Location: "Houston, TX", Mileage: 180000, NextMaintenance: date(2024, time.January, 20)},
			{ID: "3", Number: "TRK-003", Make: "Kenworth", Model: "T680", Year: 2023, Status: model.TruckActive, Driver: "Mike Johnson", Location: "Phoenix, AZ", Mileage: 95000, NextMaintenance: date(2024, time.March, 10)},
			{ID: "4", Number: "TRK-004", Make: "Volvo", Model: "VNL", Year: 2020, Status: model.TruckIdle, Location: "Denver, CO", Mileage: 220000, NextMaintenance: date(2024, time.January, 25)},
		},
		Drivers: []*model.Driver{
			{ID: "1", Name: "John Smith", Rating: 4.8, ExperienceYears: 5, CurrentLocation: "Dallas, TX", Status: model.DriverAvailable, HoursRemaining: 8.5},
			{ID: "2", Name: "Mike Johnson", Rating: 4.9, ExperienceYears: 8, CurrentLocation: "Houston, TX", Status: model.DriverAvailable, HoursRemaining: 10},
			{ID: "3", Name: "Sarah Wilson", Rating: 4.7, ExperienceYears: 3, CurrentLocation: "Austin, TX", Status: model.DriverAvailable, HoursRemaining: 9.5},
		},
		Loads: []*model.Load{
			{ID: "1", LoadNumber: "LD-2024-001", Origin: "Dallas, TX", Destination: "Los Angeles, CA", Status: model.LoadInTransit, TruckID: "1", DriverName: "John Smith", Revenue: 3500, DistanceMiles: 1435, PickupDate: date(2024, time.January, 15), DeliveryDate: date(2024, time.January, 17)},
			{ID: "2", LoadNumber: "LD-2024-002", Origin: "Chicago, IL", Destination: "Miami, FL", Status: model.LoadPending, Revenue: 2800, DistanceMiles: 1377, PickupDate: date(2024, time.January, 18), DeliveryDate: date(2024, time.January, 20)},
			{ID: "3", LoadNumber: "LD-2024-003", Origin: "Seattle, WA", Destination: "New York, NY", Status: model.LoadDelivered, TruckID: "3", DriverName: "Mike Johnson", Revenue: 4200, DistanceMiles: 2852, PickupDate: date(2024, time.January, 10), DeliveryDate: date(2024, time.January, 14)},
		},
		Invoices: []*model.Invoice{
			{ID: "1", Number: "INV-2024-001", Customer: "ABC Logistics", LoadID: "1", Amount: 3500, Status: model.InvoicePaid, IssuedAt: date(2024, time.January, 15), DueAt: date(2024, time.February, 14)},
			{ID: "2", Number: "INV-2024-002", Customer: "XYZ Freight", LoadID: "2", Amount: 2800, Status: model.InvoicePending, IssuedAt: date(2024, time.January, 18), DueAt: date(2024, time.February, 17)},
			{ID: "3", Number: "INV-2024-003", Customer: "Global Shipping", LoadID: "3", Amount: 4200, Status: model.InvoiceOverdue, IssuedAt: date(2024, time.January, 10), DueAt: date(2024, time.February, 9)},
		},
		Expenses: []*model.Expense{
			{ID: "1", Category: "fuel", Amount: 485, TruckID: "1", Note: "Fuel - Dallas to LA route", IncurredAt: date(2024, time.January, 15)},
			{ID: "2", Category: "maintenance", Amount: 1200, TruckID: "2", Note: "Brake system repair", IncurredAt: date(2024, time.January, 20)},
			{ID: "3", Category: "insurance", Amount: 2400, Note: "Commercial insurance premium", IncurredAt: date(2024, time.January, 1)},
			{ID: "4", Category: "tolls", Amount: 45, TruckID: "3", Note: "Highway tolls - I-35 corridor", IncurredAt: date(2024, time.January, 18)},
		},
		Summary: model.FinanceSummary{
			TotalRevenue:  125000,
			TotalExpenses: 89000,
			NetProfit:     36000,
			Monthly: []model.MonthlyFinance{
				{Month: "Jul", Revenue: 18000, Expenses: 12000},
				{Month: "Aug", Revenue: 22000, Expenses: 15000},
				{Month: "Sep", Revenue: 19000, Expenses: 13500},
				{Month: "Oct", Revenue: 25000, Expenses: 17000},
				{Month: "Nov", Revenue: 21000, Expenses: 14500},
				{Month: "Dec", Revenue: 20000, Expenses: 17000},
			},
		},
		Maintenance: []*model.MaintenanceRecord{
			{ID: "1", TruckID: "1", TruckNumber: "TRK-001", Type: "routine", Description: "Oil change and filter replacement", Status: model.MaintenanceScheduled, ScheduledDate: date(2024, time.February, 15), Mileage: 125000},
			{ID: "2", TruckID: "2", TruckNumber: "TRK-002", Type: "repair", Description: "Brake system repair", Status: model.MaintenanceInProgress, ScheduledDate: date(2024, time.January, 20), Mileage: 180000, Cost: 1200},
			{ID: "3", TruckID: "3", TruckNumber: "TRK-003", Type: "inspection", Description: "DOT annual inspection", Status: model.MaintenanceCompleted, ScheduledDate: date(2024, time.January, 10), CompletedDate: datePtr(2024, time.January, 10), Mileage: 95000, Cost: 150},
			{ID: "4", TruckID: "4", TruckNumber: "TRK-004", Type: "routine", Description: "Tire rotation and alignment", Status: model.MaintenanceOverdue, ScheduledDate: date(2024, time.January, 5), Mileage: 220000},
		},
		Documents: []*model.Document{
			{ID: "1", Name: "BOL-LD-2024-001.pdf", Type: model.DocumentBOL, LoadID: "1", UploadedBy: "Mike Dispatch", CreatedAt: date(2024, time.January, 15)},
			{ID: "2", Name: "insurance-certificate-2024.pdf", Type: model.DocumentInsurance, UploadedBy: "John Admin", ExpiresAt: datePtr(2024, time.December, 31), CreatedAt: date(2024, time.January, 1)},
			{ID: "3", Name: "dot-inspection-TRK-003.pdf", Type: model.DocumentInspection, TruckID: "3", UploadedBy: "Sarah Fleet", CreatedAt: date(2024, time.January, 10)},
			{ID: "4", Name: "cdl-tom-driver.pdf", Type: model.DocumentLicense, UploadedBy: "Tom Driver", ExpiresAt: datePtr(2026, time.May, 20), CreatedAt: date(2023, time.June, 1)},
		},
	}
}
