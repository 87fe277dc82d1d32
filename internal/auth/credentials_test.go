package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCredentials_Check(t *testing.T) {
	creds := Credentials{Username: "admin", Password: "admin123"}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "верная пара", username: "admin", password: "admin123", want: true},
		{name: "неверный пароль", username: "admin", password: "admin124", want: false},
		{name: "неверный логин", username: "root", password: "admin123", want: false},
		{name: "пустая пара", username: "", password: "", want: false},
		{name: "логин с другим регистром", username: "Admin", password: "admin123", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := creds.Check(tt.username, tt.password); got != tt.want {
				t.Errorf("Check(%q, %q) = %v, ожидается %v", tt.username, tt.password, got, tt.want)
			}
		})
	}
}

func TestCredentials_CheckWithHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt.GenerateFromPassword() ошибка: %v", err)
	}

	// При заданном хеше открытый пароль из конфигурации игнорируется
	creds := Credentials{Username: "admin", Password: "other", PasswordHash: string(hash)}

	if !creds.Check("admin", "admin123") {
		t.Errorf("Check() должен принять пароль, соответствующий хешу")
	}
	if creds.Check("admin", "other") {
		t.Errorf("Check() не должен принимать открытый пароль при заданном хеше")
	}
}
