package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/glebarez/go-sqlite"

	"maestros/internal/models"
)

// SQLiteStore — альтернативное хранилище на базе sqlite, выбирается
// через STORE_BACKEND=sqlite. Семантика идентична FileStore, включая
// назначение id как max(id)+1 (после удаления максимального id он
// может быть переиспользован, как и в файловом варианте).
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ошибка создания каталога данных: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS teachers (
			id INTEGER PRIMARY KEY,
			nombre TEXT NOT NULL,
			email TEXT NOT NULL,
			especialidad TEXT NOT NULL,
			telefono TEXT NOT NULL,
			aula TEXT NOT NULL,
			horario TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка создания таблицы teachers: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) List() ([]models.Teacher, error) {
	rows, err := s.db.Query("SELECT id, nombre, email, especialidad, telefono, aula, horario FROM teachers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей: %w", err)
	}
	defer rows.Close()

	teachers := []models.Teacher{}
	for rows.Next() {
		var t models.Teacher
		err := rows.Scan(&t.ID, &t.Nombre, &t.Email, &t.Especialidad, &t.Telefono, &t.Aula, &t.Horario)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения записи: %w", err)
		}
		teachers = append(teachers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода записей: %w", err)
	}

	return teachers, nil
}

func (s *SQLiteStore) Get(id int) (models.Teacher, error) {
	var t models.Teacher
	err := s.db.QueryRow(
		"SELECT id, nombre, email, especialidad, telefono, aula, horario FROM teachers WHERE id = ?", id,
	).Scan(&t.ID, &t.Nombre, &t.Email, &t.Especialidad, &t.Telefono, &t.Aula, &t.Horario)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Teacher{}, ErrNotFound
		}
		return models.Teacher{}, fmt.Errorf("ошибка получения записи: %w", err)
	}

	return t, nil
}

func (s *SQLiteStore) Create(t models.Teacher) (models.Teacher, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Teacher{}, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback()

	var maxID int
	if err := tx.QueryRow("SELECT COALESCE(MAX(id), 0) FROM teachers").Scan(&maxID); err != nil {
		return models.Teacher{}, fmt.Errorf("ошибка вычисления id: %w", err)
	}
	t.ID = maxID + 1

	_, err = tx.Exec(
		"INSERT INTO teachers (id, nombre, email, especialidad, telefono, aula, horario) VALUES (?, ?, ?, ?, ?, ?, ?)",
		t.ID, t.Nombre, t.Email, t.Especialidad, t.Telefono, t.Aula, t.Horario,
	)
	if err != nil {
		return models.Teacher{}, fmt.Errorf("ошибка сохранения записи: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Teacher{}, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return t, nil
}

func (s *SQLiteStore) Update(id int, t models.Teacher) (models.Teacher, error) {
	t.ID = id
	result, err := s.db.Exec(
		"UPDATE teachers SET nombre = ?, email = ?, especialidad = ?, telefono = ?, aula = ?, horario = ? WHERE id = ?",
		t.Nombre, t.Email, t.Especialidad, t.Telefono, t.Aula, t.Horario, id,
	)
	if err != nil {
		return models.Teacher{}, fmt.Errorf("ошибка обновления записи: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Teacher{}, fmt.Errorf("ошибка обновления записи: %w", err)
	}
	if affected == 0 {
		return models.Teacher{}, ErrNotFound
	}

	return t, nil
}

func (s *SQLiteStore) Delete(id int) error {
	result, err := s.db.Exec("DELETE FROM teachers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления записи: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка удаления записи: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
