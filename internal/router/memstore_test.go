package router

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	"staffdir/internal/model"
)

// memDepartments is an in-memory DepartmentRepository with auto-increment ids.
type memDepartments struct {
	mu   sync.Mutex
	next uint
	rows map[uint]model.Department
}

func newMemDepartments() *memDepartments {
	return &memDepartments{rows: map[uint]model.Department{}}
}

func (r *memDepartments) Create(_ context.Context, d *model.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	d.ID = r.next
	r.rows[d.ID] = *d
	return nil
}

func (r *memDepartments) Save(_ context.Context, d *model.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[d.ID] = *d
	return nil
}

func (r *memDepartments) FindByID(_ context.Context, id uint) (*model.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *memDepartments) List(_ context.Context) ([]model.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Department, 0, len(r.rows))
	for _, d := range r.rows {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// memUsers is an in-memory UserRepository with auto-increment ids.
type memUsers struct {
	mu   sync.Mutex
	next uint
	rows map[uint]model.User
}

func newMemUsers() *memUsers {
	return &memUsers{rows: map[uint]model.User{}}
}

func (r *memUsers) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	u.ID = r.next
	r.rows[u.ID] = *u
	return nil
}

func (r *memUsers) Save(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[u.ID] = *u
	return nil
}

func (r *memUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *memUsers) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0, len(r.rows))
	for _, u := range r.rows {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
