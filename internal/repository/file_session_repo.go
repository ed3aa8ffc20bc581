package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hitoshi/fleetman/internal/model"
)

// FileSessionRepo はJSONファイルにセッションを永続化するリポジトリ。
// プロセス再起動をまたいでセッションが生存する（クライアント側の
// localStorage相当の役割をサーバー側で担う）。
//
// ファイル全体を sessions のマップとして1つのJSONで保持し、
// 書き込みのたびに一時ファイル経由でアトミックに置き換える。
// 壊れたファイル・読めないファイルは「セッションなし」として扱い、
// エラーにはしない。
type FileSessionRepo struct {
	mu       sync.Mutex
	path     string
	sessions map[string]*model.Session // key: session ID
	now      func() time.Time
}

// NewFileSessionRepo はFileSessionRepoを生成する。
// 既存ファイルがあれば読み込み、解析できない場合は空の状態から開始する。
func NewFileSessionRepo(path string) *FileSessionRepo {
	r := &FileSessionRepo{
		path:     path,
		sessions: make(map[string]*model.Session),
		now:      time.Now,
	}
	r.load()
	return r
}

// load はファイルからセッションを読み込む。
// 不正な内容は「セッションなし」として無視する。
func (r *FileSessionRepo) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			// 読み込み失敗は空状態から開始する
			r.sessions = make(map[string]*model.Session)
		}
		return
	}

	var sessions map[string]*model.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		r.sessions = make(map[string]*model.Session)
		return
	}
	if sessions == nil {
		sessions = make(map[string]*model.Session)
	}
	r.sessions = sessions
}

// flush は現在のセッション一覧をファイルへアトミックに書き込む。
// 呼び出し側でmuを保持していること。
func (r *FileSessionRepo) flush() error {
	data, err := json.Marshal(r.sessions)
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create session store dir: %w", err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session store: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace session store: %w", err)
	}
	return nil
}

// Create はセッションを作成する。
func (r *FileSessionRepo) Create(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *session
	r.sessions[session.ID] = &c
	return r.flush()
}

// FindByID は指定IDのセッションを取得する。期限切れ・未存在の場合はnilを返す。
func (r *FileSessionRepo) FindByID(_ context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	if s.Expired(r.now()) {
		return nil, nil
	}
	c := *s
	return &c, nil
}

// DeleteByID は指定IDのセッションを削除する。存在しない場合も成功として扱う。
func (r *FileSessionRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return nil
	}
	delete(r.sessions, id)
	return r.flush()
}

// DeleteExpired は期限切れセッションを削除し、削除件数を返す。
func (r *FileSessionRepo) DeleteExpired(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	deleted := 0
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			deleted++
		}
	}

	if deleted == 0 {
		return 0, nil
	}
	if err := r.flush(); err != nil {
		return deleted, err
	}
	return deleted, nil
}
