package repository

import (
	"context"
	"testing"
	"time"

	"github.com/hitoshi/fleetman/internal/model"
)

func TestMemoryDocumentRepo_CreateAndFind(t *testing.T) {
	repo := NewMemoryDocumentRepo(nil)

	doc := &model.Document{ID: "d1", Name: "BOL #4521", Type: model.DocumentBOL, CreatedAt: time.Now()}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	found, err := repo.FindByID(context.Background(), "d1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found == nil || found.Name != "BOL #4521" {
		t.Errorf("found = %v, want BOL #4521", found)
	}
}

func TestMemoryDocumentRepo_FindByID_UnknownReturnsNil(t *testing.T) {
	repo := NewMemoryDocumentRepo(nil)

	found, err := repo.FindByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found != nil {
		t.Errorf("found = %v, want nil", found)
	}
}

func TestMemoryDocumentRepo_List_OrderedByCreatedAtDescending(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryDocumentRepo([]*model.Document{
		{ID: "d1", Name: "old", Type: model.DocumentBOL, CreatedAt: base},
		{ID: "d2", Name: "newest", Type: model.DocumentBOL, CreatedAt: base.Add(48 * time.Hour)},
		{ID: "d3", Name: "middle", Type: model.DocumentBOL, CreatedAt: base.Add(24 * time.Hour)},
	})

	docs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantOrder := []string{"d2", "d3", "d1"}
	if len(docs) != len(wantOrder) {
		t.Fatalf("documents = %d, want %d", len(docs), len(wantOrder))
	}
	for i, id := range wantOrder {
		if docs[i].ID != id {
			t.Errorf("docs[%d].ID = %q, want %q", i, docs[i].ID, id)
		}
	}
}

func TestMemoryMaintenanceRepo_List_OrderedByScheduledDateDescending(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryMaintenanceRepo([]*model.MaintenanceRecord{
		{ID: "m1", TruckID: "t1", ScheduledDate: base},
		{ID: "m2", TruckID: "t2", ScheduledDate: base.Add(72 * time.Hour)},
		{ID: "m3", TruckID: "t1", ScheduledDate: base.Add(24 * time.Hour)},
	})

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantOrder := []string{"m2", "m3", "m1"}
	for i, id := range wantOrder {
		if records[i].ID != id {
			t.Errorf("records[%d].ID = %q, want %q", i, records[i].ID, id)
		}
	}
}

func TestMemoryMaintenanceRepo_ListByTruckID_FiltersAndOrders(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryMaintenanceRepo([]*model.MaintenanceRecord{
		{ID: "m1", TruckID: "t1", ScheduledDate: base},
		{ID: "m2", TruckID: "t2", ScheduledDate: base.Add(72 * time.Hour)},
		{ID: "m3", TruckID: "t1", ScheduledDate: base.Add(24 * time.Hour)},
	})

	records, err := repo.ListByTruckID(context.Background(), "t1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].ID != "m3" || records[1].ID != "m1" {
		t.Errorf("order = [%s %s], want [m3 m1]", records[0].ID, records[1].ID)
	}
}

func TestMemoryFinanceRepo_List_OrderedByIssuedAtDescending(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryFinanceRepo([]*model.Invoice{
		{ID: "i1", IssuedAt: base},
		{ID: "i2", IssuedAt: base.Add(48 * time.Hour)},
	}, nil, model.FinanceSummary{})

	invoices, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if invoices[0].ID != "i2" || invoices[1].ID != "i1" {
		t.Errorf("order = [%s %s], want [i2 i1]", invoices[0].ID, invoices[1].ID)
	}
}

func TestMemoryFinanceRepo_ListExpenses_OrderedByIncurredAtDescending(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryFinanceRepo(nil, []*model.Expense{
		{ID: "e1", Category: "fuel", IncurredAt: base},
		{ID: "e2", Category: "tolls", IncurredAt: base.Add(24 * time.Hour)},
	}, model.FinanceSummary{})

	expenses, err := repo.ListExpenses(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if expenses[0].ID != "e2" || expenses[1].ID != "e1" {
		t.Errorf("order = [%s %s], want [e2 e1]", expenses[0].ID, expenses[1].ID)
	}
}

func TestMemoryFinanceRepo_Summary_ReturnsCopy(t *testing.T) {
	repo := NewMemoryFinanceRepo(nil, nil, model.FinanceSummary{
		TotalRevenue: 100000,
		Monthly:      []model.MonthlyFinance{{Month: "Jan", Revenue: 100000}},
	})

	first, err := repo.Summary(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	first.Monthly[0].Revenue = 0

	second, err := repo.Summary(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second.Monthly[0].Revenue != 100000 {
		t.Error("summary mutation leaked into the store")
	}
}

func TestDefaultSeed_CoversEveryRole(t *testing.T) {
	seed := DefaultSeed()

	roles := map[model.Role]bool{}
	for _, u := range seed.Users {
		roles[u.Role] = true
	}
	for _, want := range []model.Role{model.RoleAdmin, model.RoleFleetManager, model.RoleDispatcher, model.RoleDriver} {
		if !roles[want] {
			t.Errorf("seed has no user with role %s", want)
		}
	}
}

func TestDefaultSeed_LoadsConsistentWithAssignmentInvariant(t *testing.T) {
	seed := DefaultSeed()

	for _, l := range seed.Loads {
		hasTruck := l.TruckID != ""
		hasDriver := l.DriverName != ""
		if hasTruck != hasDriver {
			t.Errorf("load %s has partial assignment: truck=%q driver=%q", l.LoadNumber, l.TruckID, l.DriverName)
		}
		if l.Status == model.LoadPending && l.Assigned() {
			t.Errorf("pending load %s should not be assigned", l.LoadNumber)
		}
	}
}

func TestDefaultSeed_ValidStatuses(t *testing.T) {
	seed := DefaultSeed()

	for _, tr := range seed.Trucks {
		switch tr.Status {
		case model.TruckActive, model.TruckMaintenance, model.TruckIdle:
		default:
			t.Errorf("truck %s has unknown status %q", tr.Number, tr.Status)
		}
	}
	for _, d := range seed.Drivers {
		switch d.Status {
		case model.DriverAvailable, model.DriverDriving, model.DriverOffDuty, model.DriverSleeper:
		default:
			t.Errorf("driver %s has unknown status %q", d.Name, d.Status)
		}
	}
}
