package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todolist/internal/mocks"
	"todolist/internal/models"
	"todolist/internal/repository"
	"todolist/internal/services"
)

func TestNewTaskService(t *testing.T) {
	mockTaskRepo := new(mocks.TaskRepository)

	taskService := services.NewTaskService(mockTaskRepo)

	require.NotNil(t, taskService)
}

func TestTaskService_List(t *testing.T) {
	ctx := context.Background()
	userID := int64(10)
	now := time.Now()

	expectedTasks := []models.Task{
		{ID: 1, Name: "buy milk", IsComplete: false, UserID: userID, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "walk the dog", IsComplete: true, UserID: userID, CreatedAt: now, UpdatedAt: now},
	}

	tests := []struct {
		name          string
		mockSetup     func(mockTaskRepo *mocks.TaskRepository)
		expectedTasks []models.Task
		expectedError error
	}{
		{
			name: "Успешное получение списка",
			mockSetup: func(mockTaskRepo *mocks.TaskRepository) {
				mockTaskRepo.EXPECT().
					ListByUserID(ctx, userID).
					Return(expectedTasks, nil).Once()
			},
			expectedTasks: expectedTasks,
			expectedError: nil,
		},
		{
			name: "Пустой список",
			mockSetup: func(mockTaskRepo *mocks.TaskRepository) {
				mockTaskRepo.EXPECT().
					ListByUserID(ctx, userID).
					Return([]models.Task{}, nil).Once()
			},
			expectedTasks: []models.Task{},
			expectedError: nil,
		},
		{
			name: "Ошибка репозитория",
			mockSetup: func(mockTaskRepo *mocks.TaskRepository) {
				mockTaskRepo.EXPECT().
					ListByUserID(ctx, userID).
					Return(nil, errors.New("some db error")).Once()
			},
			expectedTasks: nil,
			expectedError: errors.New("внутренняя ошибка сервера при получении задач"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTaskRepo := new(mocks.TaskRepository)
			tt.mockSetup(mockTaskRepo)

			taskService := services.NewTaskService(mockTaskRepo)
			tasks, err := taskService.List(userID)

			if tt.expectedError != nil {
				require.Error(t, err)
				require.EqualError(t, err, tt.expectedError.Error())
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectedTasks, tasks)

			mockTaskRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	userID := int64(10)

	t.Run("Успешное создание", func(t *testing.T) {
		mockTaskRepo := new(mocks.TaskRepository)
		mockTaskRepo.EXPECT().
			CreateTask(ctx, mock.AnythingOfType("*models.Task")).
			Run(func(_ context.Context, task *models.Task) {
				task.ID = 42 // Имитируем заполнение полей из БД
			}).
			Return(nil).Once()

		taskService := services.NewTaskService(mockTaskRepo)
		task, err := taskService.Create(userID, "buy milk")

		require.NoError(t, err)
		require.NotNil(t, task)
		assert.Equal(t, int64(42), task.ID)
		assert.Equal(t, "buy milk", task.Name)
		assert.Equal(t, userID, task.UserID)
		// Новая задача всегда создается невыполненной
		assert.False(t, task.IsComplete)

		mockTaskRepo.AssertExpectations(t)
	})

	t.Run("Ошибка репозитория", func(t *testing.T) {
		mockTaskRepo := new(mocks.TaskRepository)
		mockTaskRepo.EXPECT().
			CreateTask(ctx, mock.AnythingOfType("*models.Task")).
			Return(errors.New("some db error")).Once()

		taskService := services.NewTaskService(mockTaskRepo)
		task, err := taskService.Create(userID, "buy milk")

		require.Error(t, err)
		require.EqualError(t, err, "внутренняя ошибка сервера при создании задачи")
		assert.Nil(t, task)

		mockTaskRepo.AssertExpectations(t)
	})
}

func TestTaskService_SetCompleted(t *testing.T) {
	ctx := context.Background()
	userID := int64(10)
	taskID := int64(1)

	tests := []struct {
		name          string
		mockSetup     func(mockTaskRepo *mocks.TaskRepository)
		expectedError error
	}{
		{
			name: "Успешное обновление",
			mockSetup: func(mockTaskRepo *mocks.TaskRepository) {
				mockTaskRepo.EXPECT().
					UpdateCompletion(ctx, taskID, userID, true).
					Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "Задача не найдена (или чужая)",
			mockSetup: func(mockTaskRepo *mocks.TaskRepository) {
				mockTaskRepo.EXPECT().
					UpdateCompletion(ctx, taskID, userID, true).
					Return(repository.ErrTaskNotFound).Once()
			},
			expectedError: services.ErrTaskNotFound,
		},
		{
			name: "Ошибка репозитория",
			mockSetup: func(mockTaskRepo *mocks.TaskRepository) {
				mockTaskRepo.EXPECT().
					UpdateCompletion(ctx, taskID, userID, true).
					Return(errors.New("some db error")).Once()
			},
			expectedError: errors.New("внутренняя ошибка сервера при обновлении задачи"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTaskRepo := new(mocks.TaskRepository)
			tt.mockSetup(mockTaskRepo)

			taskService := services.NewTaskService(mockTaskRepo)
			err := taskService.SetCompleted(userID, taskID, true)

			if tt.expectedError != nil {
				require.Error(t, err)
				require.EqualError(t, err, tt.expectedError.Error())
			} else {
				require.NoError(t, err)
			}

			mockTaskRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := int64(10)
	taskID := int64(1)

	tests := []struct {
		name          string
		mockSetup     func(mockTaskRepo *mocks.TaskRepository)
		expectedError error
	}{
		{
			name: "Успешное удаление",
			mockSetup: func(mockTaskRepo *mocks.TaskRepository) {
				mockTaskRepo.EXPECT().
					DeleteTask(ctx, taskID, userID).
					Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "Задача не найдена (или чужая)",
			mockSetup: func(mockTaskRepo *mocks.TaskRepository) {
				mockTaskRepo.EXPECT().
					DeleteTask(ctx, taskID, userID).
					Return(repository.ErrTaskNotFound).Once()
			},
			expectedError: services.ErrTaskNotFound,
		},
		{
			name: "Ошибка репозитория",
			mockSetup: func(mockTaskRepo *mocks.TaskRepository) {
				mockTaskRepo.EXPECT().
					DeleteTask(ctx, taskID, userID).
					Return(errors.New("some db error")).Once()
			},
			expectedError: errors.New("внутренняя ошибка сервера при удалении задачи"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTaskRepo := new(mocks.TaskRepository)
			tt.mockSetup(mockTaskRepo)

			taskService := services.NewTaskService(mockTaskRepo)
			err := taskService.Delete(userID, taskID)

			if tt.expectedError != nil {
				require.Error(t, err)
				require.EqualError(t, err, tt.expectedError.Error())
			} else {
				require.NoError(t, err)
			}

			mockTaskRepo.AssertExpectations(t)
		})
	}
}
