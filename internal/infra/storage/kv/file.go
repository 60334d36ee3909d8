package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore хранилище в одном JSON документе на диске: {key: value}
// Режим локального однопользовательского запуска
// Каждая операция читает и перезаписывает документ целиком - объемы данных
// одного салона малы, оптимизация не требуется
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore создает файловое хранилище по указанному пути
// Каталог создается при необходимости; отсутствующий файл означает
// пустое хранилище
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: NewFileStore - create directory: %v", ErrIO, err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) readDocument() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, s.path, err)
	}

	doc := map[string]json.RawMessage{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrIO, s.path, err)
	}
	return doc, nil
}

func (s *FileStore) writeDocument(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal document: %v", ErrEncode, err)
	}

	// Запись через временный файл с переименованием, чтобы сбой посередине
	// не оставил усеченный документ
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrIO, tmp, err)
	}
	return nil
}

// Load возвращает значение по ключу
func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}

	value, ok := doc[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

// Save записывает значение по ключу
func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	doc[key] = json.RawMessage(value)
	return s.writeDocument(doc)
}

// Remove удаляет ключ
func (s *FileStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return s.writeDocument(doc)
}

// Keys возвращает все присутствующие ключи в отсортированном порядке
func (s *FileStore) Keys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// ClearAll удаляет все ключи
func (s *FileStore) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeDocument(map[string]json.RawMessage{})
}
