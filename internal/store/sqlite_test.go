package store

import (
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "teachers.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() ошибка: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return st
}

func TestSQLiteStore_Interface(t *testing.T) {
	runStoreTests(t, newTestSQLiteStore(t))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teachers.db")

	st, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore() ошибка: %v", err)
	}

	created, err := st.Create(sampleTeacher("Ana López"))
	if err != nil {
		t.Fatalf("Create() ошибка: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close() ошибка: %v", err)
	}

	st2, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("повторный NewSQLiteStore() ошибка: %v", err)
	}
	defer st2.Close()

	got, err := st2.Get(created.ID)
	if err != nil {
		t.Fatalf("Get() после переоткрытия ошибка: %v", err)
	}
	if got != created {
		t.Errorf("запись после переоткрытия = %+v, ожидается %+v", got, created)
	}
}
