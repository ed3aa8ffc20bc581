package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/hitoshi/fleetman/internal/model"
)

// MemoryLoadRepo はインメモリの貨物リポジトリ。
type MemoryLoadRepo struct {
	mu    sync.RWMutex
	loads map[string]*model.Load // key: ID
}

// NewMemoryLoadRepo はMemoryLoadRepoを生成し、初期データを登録する。
func NewMemoryLoadRepo(seed []*model.Load) *MemoryLoadRepo {
	loads := make(map[string]*model.Load, len(seed))
	for _, l := range seed {
		c := *l
		loads[l.ID] = &c
	}
	return &MemoryLoadRepo{loads: loads}
}

// FindByID は指定IDの貨物を取得する。見つからない場合はnilを返す。
func (r *MemoryLoadRepo) FindByID(_ context.Context, id string) (*model.Load, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.loads[id]
	if !ok {
		return nil, nil
	}
	c := *l
	return &c, nil
}

// List は全貨物を貨物番号順で返す。
func (r *MemoryLoadRepo) List(_ context.Context) ([]*model.Load, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Load, 0, len(r.loads))
	for _, l := range r.loads {
		c := *l
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LoadNumber < result[j].LoadNumber })
	return result, nil
}

// ListByDriverName は指定ドライバーに割当済みの貨物を貨物番号順で返す。
func (r *MemoryLoadRepo) ListByDriverName(_ context.Context, driverName string) ([]*model.Load, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.Load
	for _, l := range r.loads {
		if l.DriverName == driverName {
			c := *l
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LoadNumber < result[j].LoadNumber })
	return result, nil
}

// Create は貨物を作成する。
func (r *MemoryLoadRepo) Create(_ context.Context, load *model.Load) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *load
	r.loads[load.ID] = &c
	return nil
}

// UpdateAssignment は貨物の割当状態を更新する。
// truckID・driverName・statusを同一ロック内で同時に書き換える。
// 「トラックだけ」「ドライバーだけ」が設定された中間状態は外部から観測されない。
func (r *MemoryLoadRepo) UpdateAssignment(_ context.Context, loadID, truckID, driverName string, status model.LoadStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.loads[loadID]
	if !ok {
		return model.NewLoadNotFoundError(loadID)
	}

	l.TruckID = truckID
	l.DriverName = driverName
	l.Status = status
	return nil
}
