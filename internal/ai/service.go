// Package ai は配車・整備・財務の状況から運行改善の提案を生成する。
//
// 提案は外部のLLMを呼び出さず、適合スコアラーとドメインデータから
// ルールベースで組み立てるモック実装である。
package ai

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hitoshi/fleetman/internal/dispatch"
	"github.com/hitoshi/fleetman/internal/model"
	"github.com/hitoshi/fleetman/internal/repository"
)

// RecommendationKind は提案の種別を表す。
type RecommendationKind string

const (
	KindAssignment  RecommendationKind = "assignment"
	KindMaintenance RecommendationKind = "maintenance"
	KindUtilization RecommendationKind = "utilization"
)

// Recommendation は運行改善の提案1件を表す。
type Recommendation struct {
	Kind    RecommendationKind `json:"kind"`
	Title   string             `json:"title"`
	Detail  string             `json:"detail"`
	Score   int                `json:"score,omitempty"`
	LoadID  string             `json:"load_id,omitempty"`
	TruckID string             `json:"truck_id,omitempty"`
}

// Service は提案生成のサービス層。
type Service struct {
	loadRepo   repository.LoadRepository
	truckRepo  repository.TruckRepository
	driverRepo repository.DriverRepository
	scorer     *dispatch.Scorer

	now func() time.Time
}

// NewService はServiceを生成する。
func NewService(
	loadRepo repository.LoadRepository,
	truckRepo repository.TruckRepository,
	driverRepo repository.DriverRepository,
	scorer *dispatch.Scorer,
) *Service {
	return &Service{
		loadRepo:   loadRepo,
		truckRepo:  truckRepo,
		driverRepo: driverRepo,
		scorer:     scorer,
		now:        time.Now,
	}
}

// Recommendations は現在のデータから提案一覧を生成する。
// 割当提案、整備警告、稼働率の所見の順に並べる。
func (s *Service) Recommendations(ctx context.Context) ([]*Recommendation, error) {
	var recs []*Recommendation

	assignRecs, err := s.assignmentRecommendations(ctx)
	if err != nil {
		return nil, err
	}
	recs = append(recs, assignRecs...)

	maintRecs, err := s.maintenanceRecommendations(ctx)
	if err != nil {
		return nil, err
	}
	recs = append(recs, maintRecs...)

	utilRec, err := s.utilizationRecommendation(ctx)
	if err != nil {
		return nil, err
	}
	if utilRec != nil {
		recs = append(recs, utilRec)
	}

	return recs, nil
}

// assignmentRecommendations はpending状態の各貨物に対して
// 最も適合スコアの高いドライバーを提案する。
func (s *Service) assignmentRecommendations(ctx context.Context) ([]*Recommendation, error) {
	loads, err := s.loadRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loads: %w", err)
	}
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	var available []*model.Driver
	for _, d := range drivers {
		if d.Status == model.DriverAvailable {
			available = append(available, d)
		}
	}
	if len(available) == 0 {
		return nil, nil
	}

	var recs []*Recommendation
	for _, load := range loads {
		if load.Status != model.LoadPending {
			continue
		}

		best := available[0]
		bestScore := s.scorer.Score(best, load.Origin)
		for _, d := range available[1:] {
			score := s.scorer.Score(d, load.Origin)
			if score > bestScore || (score == bestScore && d.Name < best.Name) {
				best = d
				bestScore = score
			}
		}

		recs = append(recs, &Recommendation{
			Kind:   KindAssignment,
			Title:  fmt.Sprintf("貨物 %s の割当候補", load.LoadNumber),
			Detail: fmt.Sprintf("%s（適合スコア %d）が %s 発の貨物に最も適しています。", best.Name, bestScore, load.Origin),
			Score:  bestScore,
			LoadID: load.ID,
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].LoadID < recs[j].LoadID
	})
	return recs, nil
}

// maintenanceRecommendations は整備期限を超過したトラックの警告を生成する。
func (s *Service) maintenanceRecommendations(ctx context.Context) ([]*Recommendation, error) {
	trucks, err := s.truckRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	now := s.now()
	var recs []*Recommendation
	for _, t := range trucks {
		if t.NextMaintenance.IsZero() || !t.NextMaintenance.Before(now) {
			continue
		}
		recs = append(recs, &Recommendation{
			Kind:    KindMaintenance,
			Title:   fmt.Sprintf("トラック %s の整備期限超過", t.Number),
			Detail:  fmt.Sprintf("整備予定日 %s を過ぎています。早急に整備を予約してください。", t.NextMaintenance.Format("2006-01-02")),
			TruckID: t.ID,
		})
	}
	return recs, nil
}

// utilizationRecommendation はidleトラックがある場合に稼働率の所見を返す。
func (s *Service) utilizationRecommendation(ctx context.Context) (*Recommendation, error) {
	trucks, err := s.truckRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}
	if len(trucks) == 0 {
		return nil, nil
	}

	idle := 0
	for _, t := range trucks {
		if t.Status == model.TruckIdle {
			idle++
		}
	}
	if idle == 0 {
		return nil, nil
	}

	return &Recommendation{
		Kind:   KindUtilization,
		Title:  "遊休トラックの活用",
		Detail: fmt.Sprintf("%d台中%d台がidle状態です。pending状態の貨物への割当を検討してください。", len(trucks), idle),
	}, nil
}
