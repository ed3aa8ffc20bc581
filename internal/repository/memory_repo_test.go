package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/hitoshi/fleetman/internal/model"
)

// --- MemoryUserRepo ---

func TestMemoryUserRepo_FindByEmail_IsCaseInsensitive(t *testing.T) {
	repo := NewMemoryUserRepo([]*model.User{
		{ID: "u1", Name: "Sarah Admin", Email: "admin@fleet.com", Role: model.RoleAdmin},
	})

	for _, email := range []string{"admin@fleet.com", "Admin@Fleet.com", "ADMIN@FLEET.COM"} {
		user, err := repo.FindByEmail(context.Background(), email)
		if err != nil {
			t.Fatalf("FindByEmail(%q) failed: %v", email, err)
		}
		if user == nil {
			t.Errorf("FindByEmail(%q) = nil, want user", email)
			continue
		}
		if user.ID != "u1" {
			t.Errorf("FindByEmail(%q).ID = %q, want %q", email, user.ID, "u1")
		}
	}
}

func TestMemoryUserRepo_Create_RejectsDuplicateEmail(t *testing.T) {
	repo := NewMemoryUserRepo([]*model.User{
		{ID: "u1", Email: "admin@fleet.com"},
	})

	err := repo.Create(context.Background(), &model.User{ID: "u2", Email: "ADMIN@fleet.com"})
	if err == nil {
		t.Fatal("expected duplicate email error")
	}

	apiErr, ok := err.(*model.APIError)
	if !ok {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeDuplicateEmail {
		t.Errorf("error code = %q, want %q", apiErr.Code, model.ErrCodeDuplicateEmail)
	}
}

func TestMemoryUserRepo_List_OrderedByID(t *testing.T) {
	repo := NewMemoryUserRepo([]*model.User{
		{ID: "u3"},
		{ID: "u1"},
		{ID: "u2"},
	})

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"u1", "u2", "u3"}
	for i, id := range want {
		if users[i].ID != id {
			t.Errorf("users[%d].ID = %q, want %q", i, users[i].ID, id)
		}
	}
}

func TestMemoryUserRepo_ReturnsCopies(t *testing.T) {
	repo := NewMemoryUserRepo([]*model.User{
		{ID: "u1", Name: "Original"},
	})

	user, _ := repo.FindByID(context.Background(), "u1")
	user.Name = "Mutated"

	again, _ := repo.FindByID(context.Background(), "u1")
	if again.Name != "Original" {
		t.Error("repository should return copies, not shared pointers")
	}
}

// --- MemoryTruckRepo ---

func TestMemoryTruckRepo_List_OrderedByNumber(t *testing.T) {
	repo := NewMemoryTruckRepo([]*model.Truck{
		{ID: "t2", Number: "TRK-205"},
		{ID: "t1", Number: "TRK-101"},
		{ID: "t3", Number: "TRK-150"},
	})

	trucks, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"TRK-101", "TRK-150", "TRK-205"}
	for i, num := range want {
		if trucks[i].Number != num {
			t.Errorf("trucks[%d].Number = %q, want %q", i, trucks[i].Number, num)
		}
	}
}

func TestMemoryTruckRepo_UpdateStatus(t *testing.T) {
	repo := NewMemoryTruckRepo([]*model.Truck{
		{ID: "t1", Number: "TRK-101", Status: model.TruckIdle},
	})

	if err := repo.UpdateStatus(context.Background(), "t1", model.TruckMaintenance); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	truck, _ := repo.FindByID(context.Background(), "t1")
	if truck.Status != model.TruckMaintenance {
		t.Errorf("status = %q, want %q", truck.Status, model.TruckMaintenance)
	}

	// 未存在IDはエラー
	if err := repo.UpdateStatus(context.Background(), "missing", model.TruckActive); err == nil {
		t.Error("expected error for unknown truck")
	}
}

// --- MemoryDriverRepo ---

func TestMemoryDriverRepo_List_OrderedByName(t *testing.T) {
	repo := NewMemoryDriverRepo([]*model.Driver{
		{ID: "d1", Name: "Tom Wilson"},
		{ID: "d2", Name: "Amy Chen"},
		{ID: "d3", Name: "Mike Brown"},
	})

	drivers, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"Amy Chen", "Mike Brown", "Tom Wilson"}
	for i, name := range want {
		if drivers[i].Name != name {
			t.Errorf("drivers[%d].Name = %q, want %q", i, drivers[i].Name, name)
		}
	}
}

// --- MemoryLoadRepo ---

func TestMemoryLoadRepo_UpdateAssignment_SetsAllFieldsTogether(t *testing.T) {
	repo := NewMemoryLoadRepo([]*model.Load{
		{ID: "l1", LoadNumber: "L-2024-001", Status: model.LoadPending},
	})

	err := repo.UpdateAssignment(context.Background(), "l1", "t1", "Tom Wilson", model.LoadAssigned)
	if err != nil {
		t.Fatalf("UpdateAssignment failed: %v", err)
	}

	load, _ := repo.FindByID(context.Background(), "l1")
	if load.TruckID != "t1" || load.DriverName != "Tom Wilson" || load.Status != model.LoadAssigned {
		t.Errorf("load = (%q, %q, %q), want (t1, Tom Wilson, assigned)",
			load.TruckID, load.DriverName, load.Status)
	}

	// クリアも同時に行われる
	err = repo.UpdateAssignment(context.Background(), "l1", "", "", model.LoadPending)
	if err != nil {
		t.Fatalf("UpdateAssignment clear failed: %v", err)
	}

	load, _ = repo.FindByID(context.Background(), "l1")
	if load.Assigned() {
		t.Error("assignment should be fully cleared")
	}
	if load.Status != model.LoadPending {
		t.Errorf("status = %q, want %q", load.Status, model.LoadPending)
	}
}

func TestMemoryLoadRepo_UpdateAssignment_NeverExposesPartialState(t *testing.T) {
	repo := NewMemoryLoadRepo([]*model.Load{
		{ID: "l1", LoadNumber: "L-2024-001", Status: model.LoadPending},
	})

	// 割当と解除を並行実行しても、truck_idとdriver_nameの
	// 片方だけが設定された貨物は決して観測されない
	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			repo.UpdateAssignment(context.Background(), "l1", "t1", "Tom Wilson", model.LoadAssigned)
			repo.UpdateAssignment(context.Background(), "l1", "", "", model.LoadPending)
		}
		close(stop)
	}()

	for {
		select {
		case <-stop:
			wg.Wait()
			return
		default:
		}
		load, err := repo.FindByID(context.Background(), "l1")
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		hasTruck := load.TruckID != ""
		hasDriver := load.DriverName != ""
		if hasTruck != hasDriver {
			t.Fatalf("observed partial assignment: truck=%q driver=%q", load.TruckID, load.DriverName)
		}
	}
}

func TestMemoryLoadRepo_ListByDriverName(t *testing.T) {
	repo := NewMemoryLoadRepo([]*model.Load{
		{ID: "l1", LoadNumber: "L-2024-002", DriverName: "Tom Wilson", Status: model.LoadAssigned},
		{ID: "l2", LoadNumber: "L-2024-001", DriverName: "Tom Wilson", Status: model.LoadInTransit},
		{ID: "l3", LoadNumber: "L-2024-003", DriverName: "Amy Chen", Status: model.LoadAssigned},
		{ID: "l4", LoadNumber: "L-2024-004", Status: model.LoadPending},
	})

	loads, err := repo.ListByDriverName(context.Background(), "Tom Wilson")
	if err != nil {
		t.Fatalf("ListByDriverName failed: %v", err)
	}

	if len(loads) != 2 {
		t.Fatalf("loads = %d, want 2", len(loads))
	}
	// 貨物番号順で返ること
	if loads[0].LoadNumber != "L-2024-001" || loads[1].LoadNumber != "L-2024-002" {
		t.Errorf("order = [%s, %s], want [L-2024-001, L-2024-002]",
			loads[0].LoadNumber, loads[1].LoadNumber)
	}
}
