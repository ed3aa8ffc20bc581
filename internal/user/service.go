// Package user はユーザー管理のドメインロジックを提供する。
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/fleetman/internal/model"
	"github.com/hitoshi/fleetman/internal/repository"
)

// Service はユーザー管理のサービス層。
// 管理者向けのユーザー一覧・作成と、検索フィルタリングを提供する。
type Service struct {
	userRepo repository.UserRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(userRepo repository.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// List はユーザー一覧を返す。
// searchが空でなければ名前またはメールアドレスの部分一致（大文字小文字無視）で、
// roleが空でなければロール一致で絞り込む。
func (s *Service) List(ctx context.Context, search string, role string) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	if search == "" && role == "" {
		return users, nil
	}

	if role != "" && !model.Role(role).IsValid() {
		return nil, model.NewInvalidRoleError(role)
	}

	needle := strings.ToLower(search)
	var filtered []*model.User
	for _, u := range users {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		if role != "" && u.Role != model.Role(role) {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered, nil
}

// CreateInput はユーザー作成の入力。
type CreateInput struct {
	Name    string
	Email   string
	Role    string
	Company string
}

// Create はユーザーを作成する。ロールが未定義の場合はエラーを返す。
func (s *Service) Create(ctx context.Context, input CreateInput) (*model.User, error) {
	role := model.Role(input.Role)
	if !role.IsValid() {
		return nil, model.NewInvalidRoleError(input.Role)
	}

	user := &model.User{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Role:      role,
		Company:   input.Company,
		Status:    "active",
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("user created",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return user, nil
}
