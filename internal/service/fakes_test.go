package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/vezoprint/vezo-backend/internal/model"
	"github.com/vezoprint/vezo-backend/internal/repository"
)

// fakeAdminRepo is an in-memory AdminRepository for service tests.
type fakeAdminRepo struct {
	mu       sync.Mutex
	nextID   int
	admins   map[int]*model.Admin
	countErr error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[int]*model.Admin)}
}

func (r *fakeAdminRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	return len(r.admins), nil
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAdminRepo) Create(ctx context.Context, a *model.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.admins {
		if existing.Username == a.Username || strings.EqualFold(existing.Email, a.Email) {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = time.Now()
	cp := *a
	r.admins[a.ID] = &cp
	return nil
}

func (r *fakeAdminRepo) TouchLastLogin(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now()
	a.LastLogin = &now
	return nil
}

// fakeContentRepo is an in-memory ContentRepository for service tests.
type fakeContentRepo struct {
	mu    sync.Mutex
	items map[string]*model.ContentItem

	// failOrderID makes UpdateOrder fail for one id to exercise partial
	// reorder failures.
	failOrderID string
	orderCalls  []string
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{items: make(map[string]*model.ContentItem)}
}

func (r *fakeContentRepo) List(ctx context.Context, filter model.ContentFilter) ([]model.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ContentItem
	for _, it := range r.items {
		if filter.Type != "" && it.Type != filter.Type {
			continue
		}
		if filter.IsActive != nil && it.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

func (r *fakeContentRepo) GetByID(ctx context.Context, id string) (*model.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *fakeContentRepo) Create(ctx context.Context, item *model.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeContentRepo) Update(ctx context.Context, item *model.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[item.ID]
	if !ok {
		return repository.ErrNotFound
	}
	item.CreatedAt = existing.CreatedAt
	item.CreatedBy = existing.CreatedBy
	item.UpdatedAt = time.Now()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeContentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeContentRepo) UpdateOrder(ctx context.Context, id string, order int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orderCalls = append(r.orderCalls, id)
	if id == r.failOrderID {
		return errors.New("store unavailable")
	}
	if it, ok := r.items[id]; ok {
		it.Order = order
	}
	return nil
}

// fakeMailer records outbound email and can simulate transport failure.
type fakeMailer struct {
	mu   sync.Mutex
	sent []OutboundEmail
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, email OutboundEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}
