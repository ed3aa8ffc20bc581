// Package fleet は車両とドライバー管理のドメインロジックを提供する。
package fleet

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/fleetman/internal/model"
	"github.com/hitoshi/fleetman/internal/repository"
)

// Service は車両・ドライバー管理のサービス層。
type Service struct {
	truckRepo  repository.TruckRepository
	driverRepo repository.DriverRepository
}

// NewService はServiceを生成する。
func NewService(truckRepo repository.TruckRepository, driverRepo repository.DriverRepository) *Service {
	return &Service{truckRepo: truckRepo, driverRepo: driverRepo}
}

// ListTrucks はトラック一覧を返す。
// statusが空でなければ稼働状態で、searchが空でなければ車両番号・
// メーカー・モデルの部分一致（大文字小文字無視）で絞り込む。
func (s *Service) ListTrucks(ctx context.Context, status, search string) ([]*model.Truck, error) {
	trucks, err := s.truckRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	if status != "" {
		switch model.TruckStatus(status) {
		case model.TruckActive, model.TruckMaintenance, model.TruckIdle:
		default:
			return nil, model.NewInvalidStatusError(status)
		}
	}

	if status == "" && search == "" {
		return trucks, nil
	}

	needle := strings.ToLower(search)
	var filtered []*model.Truck
	for _, t := range trucks {
		if status != "" && t.Status != model.TruckStatus(status) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Number), needle) &&
			!strings.Contains(strings.ToLower(t.Make), needle) &&
			!strings.Contains(strings.ToLower(t.Model), needle) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered, nil
}

// GetTruck はトラック詳細を返す。
func (s *Service) GetTruck(ctx context.Context, truckID string) (*model.Truck, error) {
	truck, err := s.truckRepo.FindByID(ctx, truckID)
	if err != nil {
		return nil, fmt.Errorf("failed to find truck: %w", err)
	}
	if truck == nil {
		return nil, model.NewTruckNotFoundError(truckID)
	}
	return truck, nil
}

// AddTruckInput はトラック登録の入力。
type AddTruckInput struct {
	Number          string
	Make            string
	Model           string
	Year            int
	Location        string
	Mileage         int
	NextMaintenance time.Time
}

// AddTruck はトラックをidle状態で登録する。
func (s *Service) AddTruck(ctx context.Context, input AddTruckInput) (*model.Truck, error) {
	truck := &model.Truck{
		ID:              uuid.New().String(),
		Number:          input.Number,
		Make:            input.Make,
		Model:           input.Model,
		Year:            input.Year,
		Status:          model.TruckIdle,
		Location:        input.Location,
		Mileage:         input.Mileage,
		NextMaintenance: input.NextMaintenance,
	}

	if err := s.truckRepo.Create(ctx, truck); err != nil {
		return nil, fmt.Errorf("failed to create truck: %w", err)
	}

	slog.Info("truck added",
		slog.String("truck_id", truck.ID),
		slog.String("number", truck.Number),
	)
	return truck, nil
}

// Stats はフリートの稼働サマリー。
type Stats struct {
	Total              int `json:"total"`
	Active             int `json:"active"`
	Maintenance        int `json:"maintenance"`
	Idle               int `json:"idle"`
	UtilizationPercent int `json:"utilization_percent"`
}

// FleetStats は稼働状態別のトラック台数と稼働率を返す。
func (s *Service) FleetStats(ctx context.Context) (*Stats, error) {
	trucks, err := s.truckRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	stats := &Stats{Total: len(trucks)}
	for _, t := range trucks {
		switch t.Status {
		case model.TruckActive:
			stats.Active++
		case model.TruckMaintenance:
			stats.Maintenance++
		case model.TruckIdle:
			stats.Idle++
		}
	}

	if stats.Total > 0 {
		stats.UtilizationPercent = int(math.Round(float64(stats.Active) / float64(stats.Total) * 100))
	}
	return stats, nil
}

// ListDrivers はドライバー一覧を返す。statusが空でなければ勤務状態で絞り込む。
func (s *Service) ListDrivers(ctx context.Context, status string) ([]*model.Driver, error) {
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	if status == "" {
		return drivers, nil
	}

	switch model.DriverStatus(status) {
	case model.DriverAvailable, model.DriverDriving, model.DriverOffDuty, model.DriverSleeper:
	default:
		return nil, model.NewInvalidStatusError(status)
	}

	var filtered []*model.Driver
	for _, d := range drivers {
		if d.Status == model.DriverStatus(status) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// GetDriver はドライバー詳細を返す。
func (s *Service) GetDriver(ctx context.Context, driverID string) (*model.Driver, error) {
	driver, err := s.driverRepo.FindByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to find driver: %w", err)
	}
	if driver == nil {
		return nil, model.NewDriverNotFoundError(driverID)
	}
	return driver, nil
}
