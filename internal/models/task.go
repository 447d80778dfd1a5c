package models

import "time"

// Task представляет задачу в списке дел пользователя.
// Имена JSON-полей в camelCase — их ожидает веб-клиент.
type Task struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	IsComplete bool      `db:"is_complete" json:"isComplete"`
	UserID     int64     `db:"user_id" json:"userId"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateTaskRequest представляет тело запроса на создание задачи.
// Поле isComplete принимается для совместимости с клиентом,
// но новая задача всегда создается невыполненной.
type CreateTaskRequest struct {
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
}

// UpdateTaskRequest представляет тело запроса на обновление задачи.
// Идентификатор берется из пути запроса, поле id в теле игнорируется.
type UpdateTaskRequest struct {
	ID         int64 `json:"id"`
	IsComplete bool  `json:"isComplete"`
}
