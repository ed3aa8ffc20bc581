// Package maintenance は整備記録の参照と整備予定の監視ロジックを提供する。
package maintenance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hitoshi/fleetman/internal/model"
	"github.com/hitoshi/fleetman/internal/repository"
)

// UpcomingWindow は「整備予定が近い」と判定する期間。
const UpcomingWindow = 14 * 24 * time.Hour

// Service は整備管理のサービス層。
type Service struct {
	maintRepo repository.MaintenanceRepository
	truckRepo repository.TruckRepository

	// now はテストで時刻を固定するために差し替える。
	now func() time.Time
}

// NewService はServiceを生成する。
func NewService(maintRepo repository.MaintenanceRepository, truckRepo repository.TruckRepository) *Service {
	return &Service{
		maintRepo: maintRepo,
		truckRepo: truckRepo,
		now:       time.Now,
	}
}

// ListRecords は整備記録一覧を返す。
// statusが空でなければ進行状態で、truckIDが空でなければ対象トラックで絞り込む。
func (s *Service) ListRecords(ctx context.Context, status, truckID string) ([]*model.MaintenanceRecord, error) {
	var records []*model.MaintenanceRecord
	var err error
	if truckID != "" {
		records, err = s.maintRepo.ListByTruckID(ctx, truckID)
	} else {
		records, err = s.maintRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}

	if status == "" {
		return records, nil
	}

	switch model.MaintenanceStatus(status) {
	case model.MaintenanceScheduled, model.MaintenanceInProgress, model.MaintenanceCompleted, model.MaintenanceOverdue:
	default:
		return nil, model.NewInvalidStatusError(status)
	}

	var filtered []*model.MaintenanceRecord
	for _, r := range records {
		if r.Status == model.MaintenanceStatus(status) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// TruckAlert はトラックの整備期限に関する警告。
type TruckAlert struct {
	TruckID         string    `json:"truck_id"`
	TruckNumber     string    `json:"truck_number"`
	NextMaintenance time.Time `json:"next_maintenance"`
	Overdue         bool      `json:"overdue"`
}

// Alerts は整備期限が超過・接近しているトラックの一覧を返す。
// 期限超過のトラックを先頭に、期限昇順で並べる。
func (s *Service) Alerts(ctx context.Context) ([]*TruckAlert, error) {
	trucks, err := s.truckRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	now := s.now()
	var overdue, upcoming []*TruckAlert
	for _, t := range trucks {
		if t.NextMaintenance.IsZero() {
			continue
		}
		switch {
		case t.NextMaintenance.Before(now):
			overdue = append(overdue, &TruckAlert{
				TruckID:         t.ID,
				TruckNumber:     t.Number,
				NextMaintenance: t.NextMaintenance,
				Overdue:         true,
			})
		case t.NextMaintenance.Sub(now) <= UpcomingWindow:
			upcoming = append(upcoming, &TruckAlert{
				TruckID:         t.ID,
				TruckNumber:     t.Number,
				NextMaintenance: t.NextMaintenance,
			})
		}
	}

	sortAlerts(overdue)
	sortAlerts(upcoming)
	return append(overdue, upcoming...), nil
}

func sortAlerts(alerts []*TruckAlert) {
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].NextMaintenance.Before(alerts[j].NextMaintenance)
	})
}
