package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/templui/profiles/internal/model"
	"github.com/templui/profiles/internal/policy"
	"github.com/templui/profiles/internal/repository"
	"github.com/templui/profiles/internal/validation"
)

var ErrUserNotFound = errors.New("user not found")

// UserService is the user directory.
type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

func (s *UserService) ByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepository.ByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UserUpdate is the admin user edit form.
type UserUpdate struct {
	Name    string
	IsAdmin string
}

// UpdateByAdmin changes another account's name and admin flag.
func (s *UserService) UpdateByAdmin(ctx context.Context, actor *model.User, id string, in UserUpdate) (*model.User, error) {
	if !policy.IsAdmin(actor) {
		return nil, ErrUnauthorized
	}

	errs := validation.Errors{}
	name := strings.TrimSpace(in.Name)
	if err := validation.ValidateName(name); err != nil {
		errs["name"] = err.Error()
	}
	isAdmin, err := validation.ParseBool(in.IsAdmin)
	if err != nil {
		errs["is_admin"] = "The is admin field must be true or false."
	}
	if len(errs) > 0 {
		return nil, errs
	}

	user, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.IsAdmin = isAdmin

	err = s.userRepository.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	slog.Info("user updated by admin", "user_id", user.ID, "admin_id", actor.ID, "is_admin", user.IsAdmin)
	return user, nil
}

// SetAdmin grants or revokes admin privilege by email. Used by the operator CLI.
func (s *UserService) SetAdmin(ctx context.Context, email string, isAdmin bool) (*model.User, error) {
	user, err := s.userRepository.ByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.IsAdmin = isAdmin
	err = s.userRepository.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
