package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/templui/profiles/internal/model"
	"github.com/templui/profiles/internal/repository"
)

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepository(users ...*model.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: map[string]*model.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepository) ByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepository) ByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepository) Update(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// fakeProfileRepository enforces one profile per user like the UNIQUE index.
type fakeProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]*model.Profile
	seq      int
	// skipExists makes ExistsForUser always report false, simulating a
	// concurrent request that passed the check before our insert landed.
	skipExists bool
}

func newFakeProfileRepository() *fakeProfileRepository {
	return &fakeProfileRepository{profiles: map[string]*model.Profile{}}
}

func (r *fakeProfileRepository) Create(_ context.Context, profile *model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == profile.UserID {
			return repository.ErrDuplicateProfile
		}
	}
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	r.seq++
	profile.CreatedAt = time.Unix(int64(r.seq), 0)
	profile.UpdatedAt = profile.CreatedAt
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeProfileRepository) ByID(_ context.Context, id string) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepository) ByUserID(_ context.Context, userID string) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repository.ErrProfileNotFound
}

func (r *fakeProfileRepository) ExistsForUser(_ context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.skipExists {
		return false, nil
	}
	for _, p := range r.profiles {
		if p.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProfileRepository) List(_ context.Context, limit, offset int) ([]*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*model.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		copied := *p
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })

	if offset >= len(all) {
		return []*model.Profile{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeProfileRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.profiles), nil
}

func (r *fakeProfileRepository) Update(_ context.Context, profile *model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.profiles[profile.ID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	copied := *profile
	copied.UserID = existing.UserID
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeProfileRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[id]; !ok {
		return repository.ErrProfileNotFound
	}
	delete(r.profiles, id)
	return nil
}

func (r *fakeProfileRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.profiles)
}
