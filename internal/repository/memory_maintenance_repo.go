package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/hitoshi/fleetman/internal/model"
)

// MemoryMaintenanceRepo はインメモリの整備記録リポジトリ。
type MemoryMaintenanceRepo struct {
	mu      sync.RWMutex
	records []*model.MaintenanceRecord
}

// NewMemoryMaintenanceRepo はMemoryMaintenanceRepoを生成し、初期データを登録する。
func NewMemoryMaintenanceRepo(seed []*model.MaintenanceRecord) *MemoryMaintenanceRepo {
	r := &MemoryMaintenanceRepo{}
	for _, rec := range seed {
		c := *rec
		r.records = append(r.records, &c)
	}
	return r
}

// List は全整備記録を予定日降順で返す。
func (r *MemoryMaintenanceRepo) List(_ context.Context) ([]*model.MaintenanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.MaintenanceRecord, 0, len(r.records))
	for _, rec := range r.records {
		c := *rec
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ScheduledDate.After(result[j].ScheduledDate) })
	return result, nil
}

// ListByTruckID は指定トラックの整備記録を予定日降順で返す。
func (r *MemoryMaintenanceRepo) ListByTruckID(_ context.Context, truckID string) ([]*model.MaintenanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.MaintenanceRecord
	for _, rec := range r.records {
		if rec.TruckID == truckID {
			c := *rec
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ScheduledDate.After(result[j].ScheduledDate) })
	return result, nil
}

// MemoryDocumentRepo はインメモリの書類メタデータリポジトリ。
type MemoryDocumentRepo struct {
	mu   sync.RWMutex
	docs map[string]*model.Document // key: ID
}

// NewMemoryDocumentRepo はMemoryDocumentRepoを生成し、初期データを登録する。
func NewMemoryDocumentRepo(seed []*model.Document) *MemoryDocumentRepo {
	docs := make(map[string]*model.Document, len(seed))
	for _, d := range seed {
		c := *d
		docs[d.ID] = &c
	}
	return &MemoryDocumentRepo{docs: docs}
}

// FindByID は指定IDの書類を取得する。見つからない場合はnilを返す。
func (r *MemoryDocumentRepo) FindByID(_ context.Context, id string) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

// List は全書類を登録日降順で返す。
func (r *MemoryDocumentRepo) List(_ context.Context) ([]*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Document, 0, len(r.docs))
	for _, d := range r.docs {
		c := *d
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// Create は書類メタデータを登録する。
func (r *MemoryDocumentRepo) Create(_ context.Context, doc *model.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *doc
	r.docs[doc.ID] = &c
	return nil
}
