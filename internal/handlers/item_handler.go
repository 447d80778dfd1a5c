package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"todolist/internal/middleware"
	"todolist/internal/models"
	"todolist/internal/services"
)

// ItemHandler обрабатывает HTTP-запросы, связанные с задачами.
type ItemHandler struct {
	taskService services.TaskService
}

// NewItemHandler создает новый экземпляр ItemHandler.
func NewItemHandler(ts services.TaskService) *ItemHandler {
	return &ItemHandler{taskService: ts}
}

// List обрабатывает GET запрос на получение всех задач пользователя.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ItemHandler:List] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	log.Printf("[ItemHandler:List] Запрос списка задач от пользователя %d", userID)

	tasks, err := h.taskService.List(userID)
	if err != nil {
		log.Printf("[ItemHandler:List] Ошибка сервиса при получении задач пользователя %d: %v", userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(tasks); err != nil {
		log.Printf("[ItemHandler:List] Ошибка кодирования списка задач: %v", err)
	}
}

// Create обрабатывает POST запрос на создание новой задачи.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ItemHandler:Create] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ItemHandler:Create] Ошибка декодирования запроса на создание: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		log.Printf("[ItemHandler:Create] Пустое название задачи от пользователя %d", userID)
		http.Error(w, "Название задачи не может быть пустым", http.StatusBadRequest)
		return
	}

	log.Printf("[ItemHandler:Create] Создание задачи '%s' для пользователя %d", req.Name, userID)

	task, err := h.taskService.Create(userID, req.Name)
	if err != nil {
		log.Printf("[ItemHandler:Create] Ошибка сервиса при создании задачи для пользователя %d: %v", userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated) // 201 Created
	if err = json.NewEncoder(w).Encode(task); err != nil {
		log.Printf("[ItemHandler:Create] Ошибка кодирования созданной задачи: %v", err)
	}
}

// Update обрабатывает PUT запрос на изменение флага выполнения задачи.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ItemHandler:Update] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		log.Printf("[ItemHandler:Update] Неверный идентификатор задачи: %v", err)
		http.Error(w, "Неверный идентификатор задачи", http.StatusBadRequest)
		return
	}

	var req models.UpdateTaskRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ItemHandler:Update] Ошибка декодирования запроса на обновление: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	log.Printf("[ItemHandler:Update] Обновление задачи %d пользователя %d (isComplete=%t)",
		taskID, userID, req.IsComplete)

	err = h.taskService.SetCompleted(userID, taskID, req.IsComplete)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			http.Error(w, "Задача не найдена", http.StatusNotFound)
		} else {
			log.Printf("[ItemHandler:Update] Ошибка сервиса при обновлении задачи %d пользователя %d: %v",
				taskID, userID, err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent) // 204 No Content
}

// Delete обрабатывает DELETE запрос на удаление задачи.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[ItemHandler:Delete] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		log.Printf("[ItemHandler:Delete] Неверный идентификатор задачи: %v", err)
		http.Error(w, "Неверный идентификатор задачи", http.StatusBadRequest)
		return
	}

	log.Printf("[ItemHandler:Delete] Удаление задачи %d пользователя %d", taskID, userID)

	err = h.taskService.Delete(userID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			http.Error(w, "Задача не найдена", http.StatusNotFound)
		} else {
			log.Printf("[ItemHandler:Delete] Ошибка сервиса при удалении задачи %d пользователя %d: %v",
				taskID, userID, err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent) // 204 No Content
}

// parseTaskID извлекает идентификатор задачи из пути запроса.
func parseTaskID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
