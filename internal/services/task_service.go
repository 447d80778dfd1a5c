package services

import (
	"context"
	"errors"
	"log"

	"todolist/internal/models"
	"todolist/internal/repository"
)

// TaskService определяет интерфейс для сервиса работы с задачами.
// Идентификатор пользователя приходит из проверенного токена,
// все операции ограничены задачами этого пользователя.
type TaskService interface {
	List(userID int64) ([]models.Task, error)
	Create(userID int64, name string) (*models.Task, error)
	SetCompleted(userID, taskID int64, isComplete bool) error
	Delete(userID, taskID int64) error
}

// taskService реализует логику работы с задачами.
var _ TaskService = (*taskService)(nil) // Проверка соответствия интерфейсу

type taskService struct {
	taskRepo repository.TaskRepository // Зависимость от репозитория задач
}

// NewTaskService создает новый экземпляр сервиса задач.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

// List возвращает все задачи указанного пользователя.
func (s *taskService) List(userID int64) ([]models.Task, error) {
	ctx := context.Background()

	tasks, err := s.taskRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Printf("[TaskService] Ошибка репозитория при получении задач пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении задач")
	}

	return tasks, nil
}

// Create создает новую задачу для пользователя.
// Новая задача всегда создается невыполненной.
func (s *taskService) Create(userID int64, name string) (*models.Task, error) {
	ctx := context.Background()

	task := &models.Task{
		Name:       name,
		IsComplete: false,
		UserID:     userID,
	}

	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		log.Printf("[TaskService] Ошибка репозитория при создании задачи для пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при создании задачи")
	}

	log.Printf("[TaskService] Задача %d пользователя %d создана", task.ID, userID)
	return task, nil
}

// SetCompleted обновляет флаг выполнения задачи.
// Для чужой или несуществующей задачи возвращает ErrTaskNotFound,
// не раскрывая, какой именно из двух случаев произошел.
func (s *taskService) SetCompleted(userID, taskID int64, isComplete bool) error {
	ctx := context.Background()

	err := s.taskRepo.UpdateCompletion(ctx, taskID, userID, isComplete)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			log.Printf("[TaskService] Задача %d не найдена у пользователя %d", taskID, userID)
			return ErrTaskNotFound // Возвращаем ошибку сервисного слоя
		}
		log.Printf("[TaskService] Ошибка репозитория при обновлении задачи %d пользователя %d: %v", taskID, userID, err)
		return errors.New("внутренняя ошибка сервера при обновлении задачи")
	}

	return nil
}

// Delete удаляет задачу пользователя.
// Правило владения то же, что и в SetCompleted.
func (s *taskService) Delete(userID, taskID int64) error {
	ctx := context.Background()

	err := s.taskRepo.DeleteTask(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			log.Printf("[TaskService] Задача %d не найдена у пользователя %d", taskID, userID)
			return ErrTaskNotFound
		}
		log.Printf("[TaskService] Ошибка репозитория при удалении задачи %d пользователя %d: %v", taskID, userID, err)
		return errors.New("внутренняя ошибка сервера при удалении задачи")
	}

	return nil
}

// Кастомные ошибки сервиса.
var (
	ErrTaskNotFound = errors.New("задача не найдена")
)
