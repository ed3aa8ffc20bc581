// Package dispatch は貨物の割当と候補ランキングを提供する。
package dispatch

import (
	"strings"

	"github.com/hitoshi/fleetman/internal/model"
)

// スコアのバケット値。各要素は二値で、合計が最終スコアになる。
// 取りうる値は {60, 70, 80, 90, 100} のみで、60未満にはならない。
const (
	locationMatch    = 40
	locationMismatch = 20
	experienceHigh   = 30
	experienceLow    = 20
	ratingHigh       = 30
	ratingLow        = 20
)

// ScorerConfig はスコア計算の閾値設定。
// 閾値は検証済みのビジネスルールではなく暫定のヒューリスティクスであるため、
// 設定で差し替え可能にしている。
type ScorerConfig struct {
	ExperienceYearsThreshold int     // この年数を超えると経験バケットが上位になる
	RatingThreshold          float64 // この評価を超えると評価バケットが上位になる
}

// DefaultScorerConfig は既存システムと互換の閾値を返す。
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		ExperienceYearsThreshold: 5,
		RatingThreshold:          4.5,
	}
}

// Scorer はドライバーと貨物・トラックの適合スコアを計算する。
// 副作用を持たない純粋な計算であり、結果はキャッシュされない。
type Scorer struct {
	config ScorerConfig
}

// NewScorer はScorerを生成する。
func NewScorer(config ScorerConfig) *Scorer {
	return &Scorer{config: config}
}

// Score はドライバーと運行地点（貨物の出発地またはトラックの現在地）の
// 適合スコアを計算する。結果は必ず {60, 70, 80, 90, 100} のいずれかになる。
//
//   - 地域: 運行地点の州コードがドライバーの現在地に含まれる場合40点、それ以外20点
//   - 経験: ExperienceYearsが閾値を超える場合30点、それ以外20点
//   - 評価: Ratingが閾値を超える場合30点、それ以外20点
//
// 必須フィールドが欠落している場合はエラーではなく下位バケットとして扱う。
// スコアは参考情報のランキングであり、正確性が要求される計算ではない。
func (s *Scorer) Score(driver *model.Driver, location string) int {
	score := 0

	region := RegionOf(location)
	if region != "" && strings.Contains(driver.CurrentLocation, region) {
		score += locationMatch
	} else {
		score += locationMismatch
	}

	if driver.ExperienceYears > s.config.ExperienceYearsThreshold {
		score += experienceHigh
	} else {
		score += experienceLow
	}

	if driver.Rating > s.config.RatingThreshold {
		score += ratingHigh
	} else {
		score += ratingLow
	}

	return score
}

// RegionOf は "Dallas, TX" 形式の地点文字列から2文字の州コードを抽出する。
// 抽出できない場合は空文字を返す。
func RegionOf(location string) string {
	idx := strings.LastIndex(location, ",")
	if idx < 0 {
		return ""
	}

	region := strings.TrimSpace(location[idx+1:])
	if len(region) != 2 {
		return ""
	}
	return strings.ToUpper(region)
}
