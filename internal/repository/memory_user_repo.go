package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hitoshi/fleetman/internal/model"
)

// MemoryUserRepo はインメモリのユーザーリポジトリ。
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*model.User // key: ID
}

// NewMemoryUserRepo はMemoryUserRepoを生成し、初期データを登録する。
func NewMemoryUserRepo(seed []*model.User) *MemoryUserRepo {
	users := make(map[string]*model.User, len(seed))
	for _, u := range seed {
		c := *u
		users[u.ID] = &c
	}
	return &MemoryUserRepo{users: users}
}

// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

// FindByEmail はメールアドレスでユーザーを検索する。大文字小文字を区別しない。
func (r *MemoryUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

// List は全ユーザーをID順で返す。
func (r *MemoryUserRepo) List(_ context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		c := *u
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Create はユーザーを作成する。メールアドレスが重複する場合はエラーを返す。
func (r *MemoryUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return model.NewDuplicateEmailError(user.Email)
		}
	}

	c := *user
	r.users[user.ID] = &c
	return nil
}
