package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/hitoshi/fleetman/internal/model"
)

// MemoryTruckRepo はインメモリのトラックリポジトリ。
type MemoryTruckRepo struct {
	mu     sync.RWMutex
	trucks map[string]*model.Truck // key: ID
}

// NewMemoryTruckRepo はMemoryTruckRepoを生成し、初期データを登録する。
func NewMemoryTruckRepo(seed []*model.Truck) *MemoryTruckRepo {
	trucks := make(map[string]*model.Truck, len(seed))
	for _, t := range seed {
		c := *t
		trucks[t.ID] = &c
	}
	return &MemoryTruckRepo{trucks: trucks}
}

// FindByID は指定IDのトラックを取得する。見つからない場合はnilを返す。
func (r *MemoryTruckRepo) FindByID(_ context.Context, id string) (*model.Truck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trucks[id]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}

// List は全トラックを車両番号順で返す。
func (r *MemoryTruckRepo) List(_ context.Context) ([]*model.Truck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Truck, 0, len(r.trucks))
	for _, t := range r.trucks {
		c := *t
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

// Create はトラックを作成する。
func (r *MemoryTruckRepo) Create(_ context.Context, truck *model.Truck) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *truck
	r.trucks[truck.ID] = &c
	return nil
}

// UpdateStatus はトラックの稼働状態を更新する。
func (r *MemoryTruckRepo) UpdateStatus(_ context.Context, id string, status model.TruckStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trucks[id]
	if !ok {
		return model.NewTruckNotFoundError(id)
	}
	t.Status = status
	return nil
}

// MemoryDriverRepo はインメモリのドライバーリポジトリ。
type MemoryDriverRepo struct {
	mu      sync.RWMutex
	drivers map[string]*model.Driver // key: ID
}

// NewMemoryDriverRepo はMemoryDriverRepoを生成し、初期データを登録する。
func NewMemoryDriverRepo(seed []*model.Driver) *MemoryDriverRepo {
	drivers := make(map[string]*model.Driver, len(seed))
	for _, d := range seed {
		c := *d
		drivers[d.ID] = &c
	}
	return &MemoryDriverRepo{drivers: drivers}
}

// FindByID は指定IDのドライバーを取得する。見つからない場合はnilを返す。
func (r *MemoryDriverRepo) FindByID(_ context.Context, id string) (*model.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drivers[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

// List は全ドライバーを名前順で返す。
func (r *MemoryDriverRepo) List(_ context.Context) ([]*model.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		c := *d
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// UpdateStatus はドライバーの勤務状態を更新する。
func (r *MemoryDriverRepo) UpdateStatus(_ context.Context, id string, status model.DriverStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drivers[id]
	if !ok {
		return model.NewDriverNotFoundError(id)
	}
	d.Status = status
	return nil
}
