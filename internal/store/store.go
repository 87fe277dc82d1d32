// Package store содержит хранилища записей преподавателей.
package store

import (
	"errors"

	"maestros/internal/models"
)

var ErrNotFound = errors.New("запись не найдена")

// TeacherStore — интерфейс хранилища коллекции записей.
// Идентификаторы назначаются хранилищем: максимальный существующий id + 1,
// или 1 для пустой коллекции.
type TeacherStore interface {
	// List возвращает все записи; пустая коллекция — не ошибка.
	List() ([]models.Teacher, error)
	// Get возвращает запись по id или ErrNotFound.
	Get(id int) (models.Teacher, error)
	// Create назначает id и сохраняет новую запись.
	Create(t models.Teacher) (models.Teacher, error)
	// Update полностью заменяет запись с данным id или возвращает ErrNotFound.
	Update(id int, t models.Teacher) (models.Teacher, error)
	// Delete удаляет запись по id или возвращает ErrNotFound.
	Delete(id int) error
	// Close освобождает ресурсы хранилища.
	Close() error
}
