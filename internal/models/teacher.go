package models

// Teacher представляет запись преподавателя в коллекции.
// Поля сохраняют испанские имена исходного формата данных.
type Teacher struct {
	ID           int    `json:"id"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	Especialidad string `json:"especialidad"`
	Telefono     string `json:"telefono"`
	Aula         string `json:"aula"`
	Horario      string `json:"horario"`
}

// LoginRequest представляет запрос на вход в систему
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse представляет ответ после успешной аутентификации
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
