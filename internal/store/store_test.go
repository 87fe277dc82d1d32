package store

import (
	"errors"
	"testing"

	"maestros/internal/models"
)

func sampleTeacher(nombre string) models.Teacher {
	return models.Teacher{
		Nombre:       nombre,
		Email:        "ana@x.com",
		Especialidad: "Matemáticas",
		Telefono:     "+52 555 123 4567",
		Aula:         "B-2",
		Horario:      "L-V 8-14",
	}
}

// runStoreTests проверяет общую семантику интерфейса для любого хранилища.
func runStoreTests(t *testing.T, st TeacherStore) {
	t.Helper()

	teachers, err := st.List()
	if err != nil {
		t.Fatalf("List() ошибка: %v", err)
	}
	if len(teachers) != 0 {
		t.Fatalf("List() на пустом хранилище вернул %d записей", len(teachers))
	}

	first, err := st.Create(sampleTeacher("Ana López"))
	if err != nil {
		t.Fatalf("Create() ошибка: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("первый id = %d, ожидается 1", first.ID)
	}

	second, err := st.Create(sampleTeacher("Luis Pérez"))
	if err != nil {
		t.Fatalf("Create() ошибка: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("второй id = %d, ожидается 2", second.ID)
	}

	teachers, err = st.List()
	if err != nil {
		t.Fatalf("List() ошибка: %v", err)
	}
	if len(teachers) != 2 {
		t.Fatalf("List() записей = %d, ожидается 2", len(teachers))
	}

	got, err := st.Get(first.ID)
	if err != nil {
		t.Fatalf("Get(%d) ошибка: %v", first.ID, err)
	}
	if got.Nombre != "Ana López" {
		t.Errorf("Get() Nombre = %q, ожидается %q", got.Nombre, "Ana López")
	}

	if _, err := st.Get(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(99) ошибка = %v, ожидается ErrNotFound", err)
	}

	updated := sampleTeacher("Ana García")
	got, err = st.Update(first.ID, updated)
	if err != nil {
		t.Fatalf("Update() ошибка: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("Update() id = %d, ожидается %d", got.ID, first.ID)
	}
	if got.Nombre != "Ana García" {
		t.Errorf("Update() Nombre = %q, ожидается %q", got.Nombre, "Ana García")
	}

	if _, err := st.Update(99, updated); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(99) ошибка = %v, ожидается ErrNotFound", err)
	}

	// Повторное удаление одной и той же записи должно вернуть ErrNotFound
	if err := st.Delete(second.ID); err != nil {
		t.Fatalf("Delete() ошибка: %v", err)
	}
	if err := st.Delete(second.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("повторный Delete() ошибка = %v, ожидается ErrNotFound", err)
	}

	// id назначается как max+1: после удаления записи с максимальным id
	// следующий Create переиспользует его
	third, err := st.Create(sampleTeacher("Eva Ruiz"))
	if err != nil {
		t.Fatalf("Create() ошибка: %v", err)
	}
	if third.ID != 2 {
		t.Errorf("id после удаления максимального = %d, ожидается 2", third.ID)
	}
}
