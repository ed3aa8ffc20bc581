// Package document は書類メタデータレジストリのドメインロジックを提供する。
package document

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/fleetman/internal/model"
	"github.com/hitoshi/fleetman/internal/repository"
	"github.com/hitoshi/fleetman/internal/security"
)

// Service は書類管理のサービス層。
type Service struct {
	docRepo   repository.DocumentRepository
	sanitizer security.TextSanitizerService
}

// NewService はServiceを生成する。
func NewService(docRepo repository.DocumentRepository, sanitizer security.TextSanitizerService) *Service {
	return &Service{docRepo: docRepo, sanitizer: sanitizer}
}

// List は書類一覧を返す。docTypeが空でなければ種別で絞り込む。
func (s *Service) List(ctx context.Context, docType string) ([]*model.Document, error) {
	docs, err := s.docRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	if docType == "" {
		return docs, nil
	}

	switch model.DocumentType(docType) {
	case model.DocumentBOL, model.DocumentInsurance, model.DocumentInspection, model.DocumentLicense, model.DocumentOther:
	default:
		return nil, model.NewInvalidStatusError(docType)
	}

	var filtered []*model.Document
	for _, d := range docs {
		if d.Type == model.DocumentType(docType) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// Get は書類詳細を返す。
func (s *Service) Get(ctx context.Context, documentID string) (*model.Document, error) {
	doc, err := s.docRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	if doc == nil {
		return nil, model.NewDocumentNotFoundError(documentID)
	}
	return doc, nil
}

// RegisterInput は書類登録の入力。
type RegisterInput struct {
	Name       string
	Type       string
	TruckID    string
	LoadID     string
	UploadedBy string
	Note       string
	ExpiresAt  *time.Time
}

// Register は書類メタデータを登録する。
// 名前と備考はサニタイズされ、HTMLタグは保存されない。
func (s *Service) Register(ctx context.Context, input RegisterInput) (*model.Document, error) {
	docType := model.DocumentType(input.Type)
	switch docType {
	case model.DocumentBOL, model.DocumentInsurance, model.DocumentInspection, model.DocumentLicense, model.DocumentOther:
	default:
		return nil, model.NewInvalidStatusError(input.Type)
	}

	doc := &model.Document{
		ID:         uuid.New().String(),
		Name:       s.sanitizer.Sanitize(input.Name),
		Type:       docType,
		TruckID:    input.TruckID,
		LoadID:     input.LoadID,
		UploadedBy: input.UploadedBy,
		Note:       s.sanitizer.Sanitize(input.Note),
		ExpiresAt:  input.ExpiresAt,
		CreatedAt:  time.Now(),
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	slog.Info("document registered",
		slog.String("document_id", doc.ID),
		slog.String("type", string(doc.Type)),
	)
	return doc, nil
}
