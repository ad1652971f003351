package repository

import (
	"context"

	"gorm.io/gorm"

	"staffdir/internal/model"
)

// DepartmentRepository defines department persistence operations.
type DepartmentRepository interface {
	Create(ctx context.Context, department *model.Department) error
	Save(ctx context.Context, department *model.Department) error
	FindByID(ctx context.Context, id uint) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository builds a GORM-backed repository.
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create inserts a department and fills in its generated ID.
func (r *departmentRepository) Create(ctx context.Context, department *model.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

// Save writes every column of the department, inserting it if the ID is unknown.
func (r *departmentRepository) Save(ctx context.Context, department *model.Department) error {
	return r.db.WithContext(ctx).Save(department).Error
}

// FindByID returns gorm.ErrRecordNotFound when no department has the ID.
func (r *departmentRepository) FindByID(ctx context.Context, id uint) (*model.Department, error) {
	var department model.Department
	if err := r.db.WithContext(ctx).First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]model.Department, error) {
	departments := make([]model.Department, 0)
	if err := r.db.WithContext(ctx).Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}
