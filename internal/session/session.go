// Package session хранит токен сессии администратора.
//
// Store — единственное разделяемое изменяемое состояние клиента: токен
// записывается при успешном входе, читается перед каждым запросом и
// удаляется при выходе или при ответе 401. Срок действия не отслеживается,
// валидность токена определяет только внешний API.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultKey — имя ключа, под которым хранится токен.
const DefaultKey = "adminToken"

// ErrUnknownBackend возвращается Open для неизвестного типа хранилища.
var ErrUnknownBackend = errors.New("unknown token store backend")

// Store описывает хранилище токена сессии.
type Store interface {
	// Get возвращает токен; false, если токена нет или хранилище недоступно.
	Get(ctx context.Context) (string, bool)
	// Set сохраняет токен, перезаписывая предыдущий.
	Set(ctx context.Context, token string) error
	// Clear удаляет токен. Удаление отсутствующего токена не ошибка.
	Clear(ctx context.Context) error
}

// MemoryStore хранит токен в памяти процесса.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore создаёт пустое хранилище в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// FileStore хранит токен в файле с правами 0600.
type FileStore struct {
	path string
}

// NewFileStore создаёт файловое хранилище. Пустой path означает
// ~/.adminctl_token.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{path: path}
}

// DefaultPath возвращает путь файла токена по умолчанию.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".adminctl_token")
}

// Path возвращает путь файла токена.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(_ context.Context) (string, bool) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(b))
	return token, token != ""
}

func (s *FileStore) Set(_ context.Context, token string) error {
	const op = "session.FileStore.Set"
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *FileStore) Clear(_ context.Context) error {
	const op = "session.FileStore.Clear"
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
