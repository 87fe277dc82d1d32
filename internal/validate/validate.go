// Package validate содержит правила проверки полей записи преподавателя.
// Каждое поле проверяется независимо, все нарушения собираются вместе.
package validate

import (
	"net/mail"
	"regexp"
	"strings"

	"maestros/internal/models"
)

var telefonoPattern = regexp.MustCompile(`^[+]?[\d\s\-()]+$`)

// htmlEscaper заменяет опасные для разметки символы на их сущности
// перед сохранением.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// FieldError описывает одно нарушение правил для конкретного поля.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// EscapeHTML экранирует символы < > & " ' / в их сущности.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Teacher проверяет все поля записи и возвращает очищенную копию
// (обрезанные пробелы, экранированный HTML, email в нижнем регистре)
// вместе со списком всех нарушений. Поле id не затрагивается.
func Teacher(t models.Teacher) (models.Teacher, []FieldError) {
	var errs []FieldError

	nombre := strings.TrimSpace(t.Nombre)
	if nombre == "" {
		errs = append(errs, FieldError{Field: "nombre", Reason: "Invalid value"})
	} else if len([]rune(nombre)) < 2 || len([]rune(nombre)) > 100 {
		errs = append(errs, FieldError{Field: "nombre", Reason: "Invalid value"})
	}

	email := strings.TrimSpace(t.Email)
	if !isEmail(email) {
		errs = append(errs, FieldError{Field: "email", Reason: "Invalid value"})
	}

	especialidad := strings.TrimSpace(t.Especialidad)
	if especialidad == "" {
		errs = append(errs, FieldError{Field: "especialidad", Reason: "Invalid value"})
	}

	telefono := strings.TrimSpace(t.Telefono)
	if !telefonoPattern.MatchString(telefono) {
		errs = append(errs, FieldError{Field: "telefono", Reason: "Invalid value"})
	}

	aula := strings.TrimSpace(t.Aula)
	if aula == "" {
		errs = append(errs, FieldError{Field: "aula", Reason: "Invalid value"})
	}

	horario := strings.TrimSpace(t.Horario)
	if horario == "" {
		errs = append(errs, FieldError{Field: "horario", Reason: "Invalid value"})
	}

	clean := models.Teacher{
		ID:           t.ID,
		Nombre:       EscapeHTML(nombre),
		Email:        strings.ToLower(email),
		Especialidad: EscapeHTML(especialidad),
		Telefono:     telefono,
		Aula:         EscapeHTML(aula),
		Horario:      EscapeHTML(horario),
	}

	return clean, errs
}

// isEmail принимает только «голый» адрес вида local@domain с точкой в домене.
func isEmail(s string) bool {
	if s == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	at := strings.LastIndex(s, "@")
	if at < 0 {
		return false
	}
	domain := s[at+1:]

	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
