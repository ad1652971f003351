package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"staffdir/internal/cache"
	"staffdir/internal/client"
	apperrors "staffdir/internal/errors"
	"staffdir/internal/logging"
	"staffdir/internal/model"
	"staffdir/internal/repository"
)

// UserService exposes user operations.
type UserService interface {
	AddUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, user *model.User) (*model.User, error)
	GetUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo        repository.UserRepository
	departments client.DepartmentClient
	cache       *cache.Client
}

// NewUserService builds a UserService. departments is only used by GetUserByID.
func NewUserService(repo repository.UserRepository, departments client.DepartmentClient, cache *cache.Client) UserService {
	return &userService{repo: repo, departments: departments, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) AddUser(ctx context.Context, user *model.User) (*model.User, error) {
	log := logging.FromContext(ctx)
	log.Info("invoke addUser")
	if user == nil {
		return nil, fmt.Errorf("%w: request is null", apperrors.ErrInvalidRequest)
	}

	record := userRecord(0, user)
	if err := s.repo.Create(ctx, record); err != nil {
		log.Error("exception while add user", zap.Error(err))
		return nil, fmt.Errorf("%w: add user: %v", apperrors.ErrInternal, err)
	}
	log.Info("end addUser", zap.Uint("userId", record.ID))
	return record, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, user *model.User) (*model.User, error) {
	log := logging.FromContext(ctx).With(zap.Uint("userId", id))
	log.Info("invoke updateUser")
	if err := s.validateUpdate(ctx, id, user); err != nil {
		return nil, err
	}

	record := userRecord(id, user)
	// evicted before and after the write; a reader racing the save can still
	// re-cache the old row until the TTL expires
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	if err := s.repo.Save(ctx, record); err != nil {
		log.Error("exception while update user", zap.Error(err))
		return nil, fmt.Errorf("%w: update user: %v", apperrors.ErrInternal, err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	log.Info("end updateUser")
	return record, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]model.User, error) {
	log := logging.FromContext(ctx)
	log.Info("invoke getUsers")
	users, err := s.repo.List(ctx)
	if err != nil {
		log.Error("exception while get all users", zap.Error(err))
		return nil, fmt.Errorf("%w: list users: %v", apperrors.ErrInternal, err)
	}
	if users == nil {
		users = []model.User{}
	}
	log.Info("end getUsers", zap.Int("count", len(users)))
	return users, nil
}

// GetUserByID loads the user and resolves its department over the network.
// A department the department service does not know leaves Department nil;
// a failed lookup fails the whole call with apperrors.ErrDependency.
func (s *userService) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	log := logging.FromContext(ctx).With(zap.Uint("userId", id))
	log.Info("invoke getUserById")

	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.DepartmentID != 0 {
		department, err := s.departments.GetDepartment(ctx, user.DepartmentID)
		if err != nil {
			return nil, err
		}
		user.Department = department
	}
	log.Info("end getUserById", zap.Bool("departmentResolved", user.Department != nil))
	return user, nil
}

func (s *userService) load(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		cached.Department = nil
		return &cached, nil
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, s.cacheKey(id), user)
	return user, nil
}

func (s *userService) validateUpdate(ctx context.Context, id uint, user *model.User) error {
	if user == nil {
		return fmt.Errorf("%w: request is null", apperrors.ErrInvalidRequest)
	}
	if user.ID != id {
		return fmt.Errorf("%w: user id %d does not match request id %d", apperrors.ErrInvalidRequest, user.ID, id)
	}
	_, err := s.find(ctx, id)
	return err
}

func (s *userService) find(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found by id: %d", apperrors.ErrNotFound, id)
		}
		logging.FromContext(ctx).Error("exception while find user", zap.Uint("userId", id), zap.Error(err))
		return nil, fmt.Errorf("%w: find user %d: %v", apperrors.ErrInternal, id, err)
	}
	return user, nil
}

// userRecord copies the persisted fields of payload; the transient department never is.
func userRecord(id uint, payload *model.User) *model.User {
	return &model.User{
		ID:           id,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Gender:       payload.Gender,
		Age:          payload.Age,
		DepartmentID: payload.DepartmentID,
	}
}
