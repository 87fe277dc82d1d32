package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials — единственная учетная запись, известная серверу.
// Если задан PasswordHash (bcrypt), проверка идет по хешу; иначе
// пароль сравнивается в открытом виде (демо-режим).
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// Check сравнивает предъявленную пару логин/пароль с учетной записью.
func (c Credentials) Check(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) != 1 {
		return false
	}

	if c.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
}
