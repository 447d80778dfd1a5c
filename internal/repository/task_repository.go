package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"todolist/internal/models"
)

// TaskRepository определяет методы для работы с задачами в хранилище.
// Все операции чтения и изменения фильтруются по владельцу (user_id):
// чужая задача для репозитория неотличима от несуществующей.
type TaskRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateCompletion(ctx context.Context, taskID, userID int64, isComplete bool) error
	DeleteTask(ctx context.Context, taskID, userID int64) error
}

// postgresTaskRepository реализует TaskRepository для PostgreSQL.
type postgresTaskRepository struct {
	db *sqlx.DB
}

// NewPostgresTaskRepository создает новый экземпляр репозитория задач для PostgreSQL.
func NewPostgresTaskRepository(db *sqlx.DB) TaskRepository {
	return &postgresTaskRepository{db: db}
}

// ListByUserID возвращает все задачи указанного пользователя в порядке создания.
func (r *postgresTaskRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Task, error) {
	query := `SELECT id, name, is_complete, user_id, created_at, updated_at
	          FROM tasks WHERE user_id=$1 ORDER BY id`
	tasks := make([]models.Task, 0)

	err := r.db.SelectContext(ctx, &tasks, query, userID)
	if err != nil {
		log.Printf("[TaskRepo] Ошибка при получении задач пользователя %d: %v", userID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение задач: %w", err)
	}

	log.Printf("[TaskRepo] Получено задач пользователя %d: %d", userID, len(tasks))
	return tasks, nil
}

// CreateTask создает новую задачу и заполняет в переданной структуре
// сгенерированные БД поля (id, created_at, updated_at).
func (r *postgresTaskRepository) CreateTask(ctx context.Context, task *models.Task) error {
	query := `INSERT INTO tasks (name, is_complete, user_id) VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query, task.Name, task.IsComplete, task.UserID).
		Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		log.Printf("[TaskRepo] Ошибка при создании задачи для пользователя %d: %v", task.UserID, err)
		return fmt.Errorf("ошибка выполнения запроса на создание задачи: %w", err)
	}

	log.Printf("[TaskRepo] Задача %d пользователя %d успешно создана", task.ID, task.UserID)
	return nil
}

// UpdateCompletion обновляет флаг выполнения задачи.
// Возвращает ErrTaskNotFound, если задача не существует или принадлежит другому пользователю.
func (r *postgresTaskRepository) UpdateCompletion(ctx context.Context, taskID, userID int64, isComplete bool) error {
	query := `UPDATE tasks SET is_complete=$1, updated_at=now() WHERE id=$2 AND user_id=$3`

	result, err := r.db.ExecContext(ctx, query, isComplete, taskID, userID)
	if err != nil {
		log.Printf("[TaskRepo] Ошибка при обновлении задачи %d пользователя %d: %v", taskID, userID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление задачи: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества обновленных строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[TaskRepo] Задача %d не найдена у пользователя %d", taskID, userID)
		return ErrTaskNotFound
	}

	log.Printf("[TaskRepo] Задача %d пользователя %d обновлена (is_complete=%t)", taskID, userID, isComplete)
	return nil
}

// DeleteTask удаляет задачу.
// Возвращает ErrTaskNotFound, если задача не существует или принадлежит другому пользователю.
func (r *postgresTaskRepository) DeleteTask(ctx context.Context, taskID, userID int64) error {
	query := `DELETE FROM tasks WHERE id=$1 AND user_id=$2`

	result, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		log.Printf("[TaskRepo] Ошибка при удалении задачи %d пользователя %d: %v", taskID, userID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление задачи: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества удаленных строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[TaskRepo] Задача %d не найдена у пользователя %d", taskID, userID)
		return ErrTaskNotFound
	}

	log.Printf("[TaskRepo] Задача %d пользователя %d удалена", taskID, userID)
	return nil
}

// Кастомная ошибка репозитория.
var (
	ErrTaskNotFound = errors.New("задача не найдена")
)
