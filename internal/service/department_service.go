package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"staffdir/internal/cache"
	apperrors "staffdir/internal/errors"
	"staffdir/internal/logging"
	"staffdir/internal/model"
	"staffdir/internal/repository"
)

// DepartmentService exposes department operations.
type DepartmentService interface {
	AddDepartment(ctx context.Context, department *model.Department) (*model.Department, error)
	UpdateDepartment(ctx context.Context, id uint, department *model.Department) (*model.Department, error)
	GetDepartments(ctx context.Context) ([]model.Department, error)
	GetDepartmentByID(ctx context.Context, id uint) (*model.Department, error)
}

type departmentService struct {
	repo  repository.DepartmentRepository
	cache *cache.Client
}

// NewDepartmentService builds a DepartmentService with repository and cache.
func NewDepartmentService(repo repository.DepartmentRepository, cache *cache.Client) DepartmentService {
	return &departmentService{repo: repo, cache: cache}
}

func (s *departmentService) cacheKey(id uint) string {
	return fmt.Sprintf("department:%d", id)
}

// AddDepartment inserts the department. Any id in the payload is ignored.
func (s *departmentService) AddDepartment(ctx context.Context, department *model.Department) (*model.Department, error) {
	log := logging.FromContext(ctx)
	log.Info("invoke addDepartment")
	if department == nil {
		return nil, fmt.Errorf("%w: request is null", apperrors.ErrInvalidRequest)
	}

	record := &model.Department{DepartmentName: department.DepartmentName}
	if err := s.repo.Create(ctx, record); err != nil {
		log.Error("exception while add department", zap.Error(err))
		return nil, fmt.Errorf("%w: add department: %v", apperrors.ErrInternal, err)
	}
	log.Info("end addDepartment", zap.Uint("departmentId", record.ID))
	return record, nil
}

// UpdateDepartment fully replaces the department stored at id.
func (s *departmentService) UpdateDepartment(ctx context.Context, id uint, department *model.Department) (*model.Department, error) {
	log := logging.FromContext(ctx).With(zap.Uint("departmentId", id))
	log.Info("invoke updateDepartment")
	if err := s.validateUpdate(ctx, id, department); err != nil {
		return nil, err
	}

	record := &model.Department{ID: id, DepartmentName: department.DepartmentName}
	// evicted before and after the write; a reader racing the save can still
	// re-cache the old row until the TTL expires
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	if err := s.repo.Save(ctx, record); err != nil {
		log.Error("exception while update department", zap.Error(err))
		return nil, fmt.Errorf("%w: update department: %v", apperrors.ErrInternal, err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	log.Info("end updateDepartment")
	return record, nil
}

// GetDepartments lists all departments in storage order.
func (s *departmentService) GetDepartments(ctx context.Context) ([]model.Department, error) {
	log := logging.FromContext(ctx)
	log.Info("invoke getDepartments")
	departments, err := s.repo.List(ctx)
	if err != nil {
		log.Error("exception while get all departments", zap.Error(err))
		return nil, fmt.Errorf("%w: list departments: %v", apperrors.ErrInternal, err)
	}
	if departments == nil {
		departments = []model.Department{}
	}
	log.Info("end getDepartments", zap.Int("count", len(departments)))
	return departments, nil
}

// GetDepartmentByID reads through the cache.
func (s *departmentService) GetDepartmentByID(ctx context.Context, id uint) (*model.Department, error) {
	log := logging.FromContext(ctx).With(zap.Uint("departmentId", id))
	log.Info("invoke getDepartmentById")

	var cached model.Department
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	department, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, s.cacheKey(id), department)
	log.Info("end getDepartmentById")
	return department, nil
}

func (s *departmentService) validateUpdate(ctx context.Context, id uint, department *model.Department) error {
	if department == nil {
		return fmt.Errorf("%w: request is null", apperrors.ErrInvalidRequest)
	}
	if department.ID != id {
		return fmt.Errorf("%w: department id %d does not match request id %d", apperrors.ErrInvalidRequest, department.ID, id)
	}
	_, err := s.find(ctx, id)
	return err
}

func (s *departmentService) find(ctx context.Context, id uint) (*model.Department, error) {
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: department not found by id: %d", apperrors.ErrNotFound, id)
		}
		logging.FromContext(ctx).Error("exception while find department", zap.Uint("departmentId", id), zap.Error(err))
		return nil, fmt.Errorf("%w: find department %d: %v", apperrors.ErrInternal, id, err)
	}
	return department, nil
}
