package services

import (
	"errors"

	apperrors "github.com/emarifer/go-gin-htmx-todoapp/internal/errors"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/models"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/repository"
	"gorm.io/gorm"
)

// TodoService owns the database side of todo manipulation. Cache
// bookkeeping stays in the handlers, ordered after these calls.
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
	}
}

// Add inserts a new todo owned by createdBy and returns it with the
// database-assigned id and created_at.
func (s *TodoService) Add(createdBy, title, description string) (*models.Todo, error) {
	todo := &models.Todo{
		CreatedBy:   createdBy,
		Title:       title,
		Description: description,
	}
	if err := s.todoRepo.Create(todo); err != nil {
		return nil, apperrors.E(apperrors.KindStorage, "database error: %v", err)
	}
	return todo, nil
}

// ListByUser returns the user's todos newest-first.
func (s *TodoService) ListByUser(userID string) ([]models.Todo, error) {
	todos, err := s.todoRepo.ListByCreator(userID)
	if err != nil {
		return nil, apperrors.E(apperrors.KindStorage, "database error: %v", err)
	}
	return todos, nil
}

// Get fetches a single todo by id.
func (s *TodoService) Get(id uint64) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.E(apperrors.KindNotFound, "todo does not exist in the database.")
		}
		return nil, apperrors.E(apperrors.KindStorage, "database error: %v", err)
	}
	return todo, nil
}

// Update rewrites title, description and status of the todo with the
// given id.
func (s *TodoService) Update(id uint64, title, description string, status bool) error {
	affected, err := s.todoRepo.Update(id, title, description, status)
	if err != nil {
		return apperrors.E(apperrors.KindStorage, "database error: %v", err)
	}
	if affected == 0 {
		return apperrors.E(apperrors.KindNotFound, "Todo with ID: %d not found", id)
	}
	return nil
}

// Remove deletes the todo with the given id.
func (s *TodoService) Remove(id uint64) error {
	affected, err := s.todoRepo.Delete(id)
	if err != nil {
		return apperrors.E(apperrors.KindStorage, "database error: %v", err)
	}
	if affected == 0 {
		return apperrors.E(apperrors.KindNotFound, "Todo with ID: %d not found", id)
	}
	return nil
}
