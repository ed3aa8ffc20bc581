package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/fleetman/internal/metrics"
	"github.com/hitoshi/fleetman/internal/model"
	"github.com/hitoshi/fleetman/internal/repository"
)

// Service は配車に関するビジネスロジックを提供する。
type Service struct {
	loadRepo   repository.LoadRepository
	truckRepo  repository.TruckRepository
	driverRepo repository.DriverRepository
	scorer     *Scorer
	collector  metrics.MetricsCollector
}

// NewService はServiceを生成する。
func NewService(
	loadRepo repository.LoadRepository,
	truckRepo repository.TruckRepository,
	driverRepo repository.DriverRepository,
	scorer *Scorer,
	collector metrics.MetricsCollector,
) *Service {
	return &Service{
		loadRepo:   loadRepo,
		truckRepo:  truckRepo,
		driverRepo: driverRepo,
		scorer:     scorer,
		collector:  collector,
	}
}

// ListLoads は貨物一覧を返す。statusが空でなければ一致する状態のみ返す。
func (s *Service) ListLoads(ctx context.Context, status string) ([]*model.Load, error) {
	loads, err := s.loadRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loads: %w", err)
	}

	if status == "" {
		return loads, nil
	}

	switch model.LoadStatus(status) {
	case model.LoadPending, model.LoadAssigned, model.LoadInTransit, model.LoadDelivered, model.LoadCancelled:
	default:
		return nil, model.NewInvalidStatusError(status)
	}

	var filtered []*model.Load
	for _, l := range loads {
		if l.Status == model.LoadStatus(status) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// GetLoad は貨物詳細を返す。
func (s *Service) GetLoad(ctx context.Context, loadID string) (*model.Load, error) {
	load, err := s.loadRepo.FindByID(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("failed to find load: %w", err)
	}
	if load == nil {
		return nil, model.NewLoadNotFoundError(loadID)
	}
	return load, nil
}

// ListLoadsByDriver は指定ドライバー名に割当済みの貨物を返す。
// ドライバーの「My Loads」画面で使用する。
func (s *Service) ListLoadsByDriver(ctx context.Context, driverName string) ([]*model.Load, error) {
	loads, err := s.loadRepo.ListByDriverName(ctx, driverName)
	if err != nil {
		return nil, fmt.Errorf("failed to list loads by driver: %w", err)
	}
	return loads, nil
}

// CreateLoadInput は貨物登録の入力。
type CreateLoadInput struct {
	LoadNumber    string
	Origin        string
	Destination   string
	Revenue       float64
	DistanceMiles float64
	PickupDate    time.Time
	DeliveryDate  time.Time
}

// CreateLoad は未割当（pending）の貨物を登録する。
func (s *Service) CreateLoad(ctx context.Context, input CreateLoadInput) (*model.Load, error) {
	load := &model.Load{
		ID:            uuid.New().String(),
		LoadNumber:    input.LoadNumber,
		Origin:        input.Origin,
		Destination:   input.Destination,
		Status:        model.LoadPending,
		Revenue:       input.Revenue,
		DistanceMiles: input.DistanceMiles,
		PickupDate:    input.PickupDate,
		DeliveryDate:  input.DeliveryDate,
	}

	if err := s.loadRepo.Create(ctx, load); err != nil {
		return nil, fmt.Errorf("failed to create load: %w", err)
	}

	slog.Info("load created",
		slog.String("load_id", load.ID),
		slog.String("load_number", load.LoadNumber),
	)
	return load, nil
}

// Assign は貨物にトラックとドライバーを割り当てる。
//
// 割当の唯一のエントリポイントであり、truck_idとdriver_nameは
// 必ずこの操作で同時に設定される。pending状態の貨物、
// active/idle状態のトラック、available状態のドライバーのみ受け付ける。
func (s *Service) Assign(ctx context.Context, loadID, truckID, driverID string) (*model.Load, error) {
	load, err := s.loadRepo.FindByID(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("failed to find load: %w", err)
	}
	if load == nil {
		return nil, model.NewLoadNotFoundError(loadID)
	}
	if load.Status != model.LoadPending {
		return nil, model.NewLoadNotPendingError(load.Status)
	}

	truck, err := s.truckRepo.FindByID(ctx, truckID)
	if err != nil {
		return nil, fmt.Errorf("failed to find truck: %w", err)
	}
	if truck == nil {
		return nil, model.NewTruckNotFoundError(truckID)
	}
	if !truck.Assignable() {
		return nil, model.NewTruckNotAssignableError(truck.Status)
	}

	driver, err := s.driverRepo.FindByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to find driver: %w", err)
	}
	if driver == nil {
		return nil, model.NewDriverNotFoundError(driverID)
	}
	if driver.Status != model.DriverAvailable {
		return nil, model.NewDriverNotAvailableError(driver.Status)
	}

	if err := s.loadRepo.UpdateAssignment(ctx, loadID, truckID, driver.Name, model.LoadAssigned); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	if err := s.driverRepo.UpdateStatus(ctx, driverID, model.DriverDriving); err != nil {
		return nil, fmt.Errorf("failed to update driver status: %w", err)
	}

	s.collector.RecordAssignment("assign")
	slog.Info("load assigned",
		slog.String("load_id", loadID),
		slog.String("truck_id", truckID),
		slog.String("driver_id", driverID),
	)

	return s.GetLoad(ctx, loadID)
}

// Unassign は貨物の割当を解除する。
// truck_idとdriver_nameを同時にクリアし、状態をpendingに戻す。
func (s *Service) Unassign(ctx context.Context, loadID string) (*model.Load, error) {
	load, err := s.loadRepo.FindByID(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("failed to find load: %w", err)
	}
	if load == nil {
		return nil, model.NewLoadNotFoundError(loadID)
	}
	if load.Status != model.LoadAssigned {
		return nil, model.NewLoadNotAssignedError()
	}

	driverName := load.DriverName

	if err := s.loadRepo.UpdateAssignment(ctx, loadID, "", "", model.LoadPending); err != nil {
		return nil, fmt.Errorf("failed to clear assignment: %w", err)
	}

	// 割当解除したドライバーをavailableに戻す
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	for _, d := range drivers {
		if d.Name == driverName && d.Status == model.DriverDriving {
			if err := s.driverRepo.UpdateStatus(ctx, d.ID, model.DriverAvailable); err != nil {
				return nil, fmt.Errorf("failed to update driver status: %w", err)
			}
			break
		}
	}

	s.collector.RecordAssignment("unassign")
	slog.Info("load unassigned", slog.String("load_id", loadID))

	return s.GetLoad(ctx, loadID)
}

// Candidates は貨物に対する割当候補を適合スコア降順で返す。
// available状態のドライバーとactive/idle状態のトラックの組み合わせごとに
// スコアを計算する。同スコア内の並びはドライバー名・車両番号で安定させる。
func (s *Service) Candidates(ctx context.Context, loadID string) ([]model.AssignmentCandidate, error) {
	start := time.Now()

	load, err := s.loadRepo.FindByID(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("failed to find load: %w", err)
	}
	if load == nil {
		return nil, model.NewLoadNotFoundError(loadID)
	}

	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	trucks, err := s.truckRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	var candidates []model.AssignmentCandidate
	for _, d := range drivers {
		if d.Status != model.DriverAvailable {
			continue
		}
		score := s.scorer.Score(d, load.Origin)
		s.collector.RecordScoreComputation()

		for _, t := range trucks {
			if !t.Assignable() {
				continue
			}
			candidates = append(candidates, model.AssignmentCandidate{
				Driver: *d,
				Truck:  *t,
				Score:  score,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].Driver.Name != candidates[j].Driver.Name {
			return candidates[i].Driver.Name < candidates[j].Driver.Name
		}
		return candidates[i].Truck.Number < candidates[j].Truck.Number
	})

	s.collector.RecordScoreLatency(time.Since(start))
	return candidates, nil
}
