package repository

import (
	"github.com/emarifer/go-gin-htmx-todoapp/internal/models"
	"gorm.io/gorm"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// Create persists a new todo
func (r *GormTodoRepository) Create(todo *models.Todo) error {
	return r.db.Create(todo).Error
}

// ListByCreator returns the creator's todos newest-first
func (r *GormTodoRepository) ListByCreator(createdBy string) ([]models.Todo, error) {
	var todos []models.Todo
	if err := r.db.
		Where("created_by = ?", createdBy).
		Order("created_at DESC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// FindByID finds a todo by ID
func (r *GormTodoRepository) FindByID(id uint64) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.First(&todo, id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// Update rewrites the mutable fields of the row with the given id.
// A plain map is used so a false status is still written.
func (r *GormTodoRepository) Update(id uint64, title, description string, status bool) (int64, error) {
	res := r.db.Model(&models.Todo{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
			"status":      status,
		})
	return res.RowsAffected, res.Error
}

// Delete removes the row with the given id
func (r *GormTodoRepository) Delete(id uint64) (int64, error) {
	res := r.db.Delete(&models.Todo{}, id)
	return res.RowsAffected, res.Error
}
