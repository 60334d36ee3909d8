package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/infra/storage/kv"
	"github.com/avora-app/agenda-service/internal/service/backup/models"
)

// Service экспорт, импорт и резервное копирование всего состояния хранилища
// Формат снапшота - плоский JSON объект {storageKey: value}, значения
// переносятся как есть, без интерпретации
type Service struct {
	store        KVStore
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бэкапов
func NewService(store KVStore, logger Logger) *Service {
	return &Service{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Export собирает снапшот всех известных ключей хранилища
// Отсутствующие ключи пропускаются; порядок обхода стабилен
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	snapshot := make(map[string]json.RawMessage, len(domain.KnownKeys))

	for _, key := range domain.KnownKeys {
		value, err := s.store.Load(ctx, key)
		if errors.Is(err, kv.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			s.logger.Error("Export: failed to read key %s: %v", key, err)
			return nil, fmt.Errorf("%w: Export - read key %s: %v", ErrInternal, key, err)
		}
		snapshot[key] = json.RawMessage(value)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: Export - marshal snapshot: %v", ErrInternal, err)
	}

	s.logger.Info("Export: snapshot with %d keys", len(snapshot))
	return data, nil
}

// Import заменяет все состояние хранилища содержимым снапшота
// Все или ничего: снапшот сначала разбирается целиком, и только после
// успешного разбора хранилище очищается и перезаписывается
func (s *Service) Import(ctx context.Context, payload []byte) (*models.ImportResult, error) {
	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		s.logger.Warn("Import: malformed payload rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	if snapshot == nil {
		s.logger.Warn("Import: null payload rejected")
		return nil, fmt.Errorf("%w: payload is null", ErrMalformedImport)
	}

	if err := s.store.ClearAll(ctx); err != nil {
		s.logger.Error("Import: failed to clear storage: %v", err)
		return nil, fmt.Errorf("%w: Import - clear storage: %v", ErrInternal, err)
	}

	// Известные ключи пишутся в стабильном порядке, остальные следом
	written := make(map[string]bool, len(snapshot))
	for _, key := range domain.KnownKeys {
		value, ok := snapshot[key]
		if !ok {
			continue
		}
		if err := s.store.Save(ctx, key, value); err != nil {
			s.logger.Error("Import: failed to write key %s: %v", key, err)
			return nil, fmt.Errorf("%w: Import - write key %s: %v", ErrInternal, key, err)
		}
		written[key] = true
	}
	for key, value := range snapshot {
		if written[key] {
			continue
		}
		if err := s.store.Save(ctx, key, value); err != nil {
			s.logger.Error("Import: failed to write key %s: %v", key, err)
			return nil, fmt.Errorf("%w: Import - write key %s: %v", ErrInternal, key, err)
		}
	}

	s.logger.Info("Import: %d keys restored", len(snapshot))
	return &models.ImportResult{KeysImported: len(snapshot)}, nil
}

// ClearAll очищает хранилище; при следующей загрузке репозитории
// заново посеют стартовые данные
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		s.logger.Error("ClearAll: failed to clear storage: %v", err)
		return fmt.Errorf("%w: ClearAll - clear storage: %v", ErrInternal, err)
	}

	s.logger.Info("ClearAll: storage wiped")
	return nil
}

// Info возвращает сводку по хранилищу: количества сущностей и
// приблизительный объем данных
func (s *Service) Info(ctx context.Context) (*models.InfoResponse, error) {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Info - list keys: %v", ErrInternal, err)
	}

	info := &models.InfoResponse{Keys: len(keys)}

	totalBytes := 0
	for _, key := range keys {
		value, err := s.store.Load(ctx, key)
		if errors.Is(err, kv.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: Info - read key %s: %v", ErrInternal, key, err)
		}
		totalBytes += len(key) + len(value)

		switch key {
		case domain.KeyProfessionals:
			var roster []json.RawMessage
			if json.Unmarshal(value, &roster) == nil {
				info.Professionals = len(roster)
			}
		case domain.KeyUsers:
			var users []json.RawMessage
			if json.Unmarshal(value, &users) == nil {
				info.Users = len(users)
			}
		case domain.KeyAppointments:
			var book map[string][]json.RawMessage
			if json.Unmarshal(value, &book) == nil {
				for _, bucket := range book {
					info.Appointments += len(bucket)
				}
			}
		}
	}

	info.StorageSize = fmt.Sprintf("%.2f KB", float64(totalBytes)/1024)
	return info, nil
}

// WriteBackupFile экспортирует снапшот в файл каталога бэкапов
// Имя файла содержит текущую дату; бэкап за тот же день перезаписывается
func (s *Service) WriteBackupFile(ctx context.Context, dir string) (string, error) {
	data, err := s.Export(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: WriteBackupFile - create dir: %v", ErrInternal, err)
	}

	name := fmt.Sprintf("avora-backup-%s.json", s.timeProvider.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("%w: WriteBackupFile - write file: %v", ErrInternal, err)
	}

	s.logger.Info("WriteBackupFile: snapshot written to %s", path)
	return path, nil
}
