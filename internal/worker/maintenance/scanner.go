// Package maintenance は整備期限の監視ジョブを提供する。
// 整備予定日を過ぎたトラックを定期スキャンで検出し、
// 稼働状態をmaintenanceに切り替える。
package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hitoshi/fleetman/internal/model"
	"github.com/hitoshi/fleetman/internal/repository"
)

// Scanner は整備期限超過トラックの検出ジョブ。
// active状態のトラック（輸送中の可能性がある）は切り替え対象から除外する。
type Scanner struct {
	truckRepo repository.TruckRepository
	logger    *slog.Logger

	// now はテストで時刻を固定するために差し替える。
	now func() time.Time
}

// NewScanner は新しいScannerを生成する。
func NewScanner(truckRepo repository.TruckRepository, logger *slog.Logger) *Scanner {
	return &Scanner{
		truckRepo: truckRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// Run は整備予定日を過ぎたトラックをmaintenance状態に切り替える。
// active状態のトラックは輸送中の可能性があるため対象外とし、
// idle状態のトラックのみ切り替える。冪等。
func (s *Scanner) Run(ctx context.Context) (int, error) {
	start := s.now()

	trucks, err := s.truckRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("トラック一覧の取得に失敗: %w", err)
	}

	flagged := 0
	for _, t := range trucks {
		if t.Status != model.TruckIdle {
			continue
		}
		if t.NextMaintenance.IsZero() || !t.NextMaintenance.Before(start) {
			continue
		}

		if err := s.truckRepo.UpdateStatus(ctx, t.ID, model.TruckMaintenance); err != nil {
			return flagged, fmt.Errorf("トラック状態の更新に失敗: %w", err)
		}

		s.logger.Info("truck flagged for maintenance",
			slog.String("truck_id", t.ID),
			slog.String("number", t.Number),
			slog.String("next_maintenance", t.NextMaintenance.Format("2006-01-02")),
		)
		flagged++
	}

	duration := time.Since(start)
	s.logger.Info("整備期限スキャンが完了しました",
		slog.Int("flagged_count", flagged),
		slog.Float64("duration_ms", float64(duration.Milliseconds())),
	)

	return flagged, nil
}

// Start は指定間隔でRunを繰り返し実行する。
// 起動直後に1回実行し、コンテキストのキャンセルで停止する。
func (s *Scanner) Start(ctx context.Context, interval time.Duration) {
	if _, err := s.Run(ctx); err != nil {
		s.logger.Error("maintenance scan failed", slog.String("error", err.Error()))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Run(ctx); err != nil {
				s.logger.Error("maintenance scan failed", slog.String("error", err.Error()))
			}
		}
	}
}
