package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"maestros/internal/models"
)

// FileStore хранит всю коллекцию как один JSON-массив в файле.
// Каждая мутация выполняет полное чтение файла, изменение в памяти и
// полную перезапись. Мьютекс закрывает гонку «потерянного обновления»
// между параллельными запросами; запись идет через временный файл
// и переименование, чтобы файл не оставался наполовину записанным.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// read загружает коллекцию из файла. Отсутствующий файл — пустая
// коллекция (первый запуск), а не ошибка.
func (s *FileStore) read() ([]models.Teacher, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Teacher{}, nil
		}
		return nil, fmt.Errorf("ошибка чтения файла данных: %w", err)
	}

	var teachers []models.Teacher
	if err := json.Unmarshal(data, &teachers); err != nil {
		return nil, fmt.Errorf("ошибка разбора файла данных: %w", err)
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}

	return teachers, nil
}

// write перезаписывает файл целиком. Формат — массив с отступом в два
// пробела, совместимый с существующими файлами данных.
func (s *FileStore) write(teachers []models.Teacher) error {
	data, err := json.MarshalIndent(teachers, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации данных: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ошибка создания каталога данных: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("ошибка записи файла данных: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("ошибка замены файла данных: %w", err)
	}

	return nil
}

func (s *FileStore) List() ([]models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *FileStore) Get(id int) (models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teachers, err := s.read()
	if err != nil {
		return models.Teacher{}, err
	}

	for _, t := range teachers {
		if t.ID == id {
			return t, nil
		}
	}

	return models.Teacher{}, ErrNotFound
}

func (s *FileStore) Create(t models.Teacher) (models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teachers, err := s.read()
	if err != nil {
		return models.Teacher{}, err
	}

	maxID := 0
	for _, existing := range teachers {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	t.ID = maxID + 1

	teachers = append(teachers, t)
	if err := s.write(teachers); err != nil {
		return models.Teacher{}, err
	}

	return t, nil
}

func (s *FileStore) Update(id int, t models.Teacher) (models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teachers, err := s.read()
	if err != nil {
		return models.Teacher{}, err
	}

	for i := range teachers {
		if teachers[i].ID == id {
			t.ID = id
			teachers[i] = t
			if err := s.write(teachers); err != nil {
				return models.Teacher{}, err
			}
			return t, nil
		}
	}

	return models.Teacher{}, ErrNotFound
}

func (s *FileStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	teachers, err := s.read()
	if err != nil {
		return err
	}

	filtered := make([]models.Teacher, 0, len(teachers))
	for _, t := range teachers {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}

	if len(filtered) == len(teachers) {
		return ErrNotFound
	}

	return s.write(filtered)
}

func (s *FileStore) Close() error {
	return nil
}
