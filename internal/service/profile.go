package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/templui/profiles/internal/flash"
	"github.com/templui/profiles/internal/model"
	"github.com/templui/profiles/internal/policy"
	"github.com/templui/profiles/internal/repository"
	"github.com/templui/profiles/internal/validation"
)

var (
	ErrNotFound      = errors.New("profile not found")
	ErrUnauthorized  = errors.New("not authorized")
	ErrNoProfile     = errors.New("user has no profile yet")
	ErrProfileExists = errors.New("user already has a profile")
)

// Destination tells the handler where to send the user after an operation.
type Destination int

const (
	DestinationOwnProfile Destination = iota
	DestinationCreateForm
	DestinationProfileList
	DestinationHome
)

// ProfileView is a profile together with its owner.
type ProfileView struct {
	Profile *model.Profile
	User    *model.User
}

// ProfileService runs the profile lifecycle. Every operation that discloses
// or mutates a profile checks the policy package first:
//
//	read, edit form:  admin or owner
//	update, delete:   owner only, admins included
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	pageSize    int
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, pageSize int) *ProfileService {
	if pageSize < 1 {
		pageSize = 10
	}
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		pageSize:    pageSize,
	}
}

// List returns one page of all profiles. Callers gate it to admins.
func (s *ProfileService) List(ctx context.Context, page int) (*model.ProfilePage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.profileRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count profiles: %w", err)
	}

	result := &model.ProfilePage{
		Page:    page,
		PerPage: s.pageSize,
		Total:   total,
	}
	// Pages past the end show the last page; this also keeps the offset
	// from overflowing on absurd page numbers.
	if last := result.TotalPages(); result.Page > last {
		result.Page = last
	}

	result.Profiles, err = s.profileRepo.List(ctx, s.pageSize, (result.Page-1)*s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return result, nil
}

func (s *ProfileService) ExistsFor(ctx context.Context, actor *model.User) (bool, error) {
	exists, err := s.profileRepo.ExistsForUser(ctx, actor.ID)
	if err != nil {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}
	return exists, nil
}

// DetermineRoute sends users with a profile to it and everyone else to the
// creation form. GET /profile/create makes the same decision.
func (s *ProfileService) DetermineRoute(ctx context.Context, actor *model.User) (Destination, error) {
	exists, err := s.ExistsFor(ctx, actor)
	if err != nil {
		return DestinationHome, err
	}
	if exists {
		return DestinationOwnProfile, nil
	}
	return DestinationCreateForm, nil
}

// CreateForm reports whether the actor may see the empty creation form
// (DestinationCreateForm) or already has a profile to go to instead.
func (s *ProfileService) CreateForm(ctx context.Context, actor *model.User) (Destination, error) {
	return s.DetermineRoute(ctx, actor)
}

func (s *ProfileService) ViewOwn(ctx context.Context, actor *model.User) (*ProfileView, error) {
	profile, err := s.profileRepo.ByUserID(ctx, actor.ID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load own profile: %w", err)
	}

	if !policy.IsAdminOrOwner(actor, profile) {
		return nil, ErrUnauthorized
	}

	return s.withOwner(ctx, profile)
}

func (s *ProfileService) Create(ctx context.Context, actor *model.User, in validation.ProfileInput) (*ProfileView, error) {
	fields, err := validation.ValidateProfile(in)
	if err != nil {
		return nil, err
	}

	exists, err := s.ExistsFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrProfileExists
	}

	owner, err := s.userRepo.ByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile owner: %w", err)
	}

	profile := &model.Profile{UserID: actor.ID}
	fields.Apply(profile)

	err = s.profileRepo.Create(ctx, profile)
	if errors.Is(err, repository.ErrDuplicateProfile) {
		// Lost a race with a concurrent submission by the same user.
		return nil, ErrProfileExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	slog.Info("profile created", "profile_id", profile.ID, "user_id", actor.ID)
	flash.Success(ctx, "Congrats!", "You made your profile")

	return &ProfileView{Profile: profile, User: owner}, nil
}

func (s *ProfileService) Get(ctx context.Context, actor *model.User, id string) (*ProfileView, error) {
	profile, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.IsAdminOrOwner(actor, profile) {
		return nil, ErrUnauthorized
	}

	return s.withOwner(ctx, profile)
}

func (s *ProfileService) EditForm(ctx context.Context, actor *model.User, id string) (*model.Profile, error) {
	profile, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.IsAdminOrOwner(actor, profile) {
		return nil, ErrUnauthorized
	}

	return profile, nil
}

// Update is owner-only: unlike reads, admin privilege does not apply.
func (s *ProfileService) Update(ctx context.Context, actor *model.User, id string, in validation.ProfileInput) (Destination, error) {
	fields, err := validation.ValidateProfile(in)
	if err != nil {
		return DestinationOwnProfile, err
	}

	profile, err := s.find(ctx, id)
	if err != nil {
		return DestinationOwnProfile, err
	}

	if !policy.IsOwner(actor, profile) {
		return DestinationOwnProfile, ErrUnauthorized
	}

	fields.Apply(profile)
	err = s.profileRepo.Update(ctx, profile)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return DestinationOwnProfile, ErrNotFound
	}
	if err != nil {
		return DestinationOwnProfile, fmt.Errorf("failed to update profile: %w", err)
	}

	slog.Info("profile updated", "profile_id", profile.ID, "user_id", actor.ID)
	flash.Success(ctx, "Congrats", "You updated your profile")

	return DestinationOwnProfile, nil
}

// Delete is owner-only, like Update. Admins deleting their own profile
// land on the profile list, everyone else on the home page.
func (s *ProfileService) Delete(ctx context.Context, actor *model.User, id string) (Destination, error) {
	profile, err := s.find(ctx, id)
	if err != nil {
		return DestinationHome, err
	}

	if !policy.IsOwner(actor, profile) {
		return DestinationHome, ErrUnauthorized
	}

	err = s.profileRepo.Delete(ctx, profile.ID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return DestinationHome, ErrNotFound
	}
	if err != nil {
		return DestinationHome, fmt.Errorf("failed to delete profile: %w", err)
	}

	slog.Info("profile deleted", "profile_id", profile.ID, "user_id", actor.ID)
	flash.Overlay(ctx, "Attention!", "You deleted a profile")

	if policy.IsAdmin(actor) {
		return DestinationProfileList, nil
	}
	return DestinationHome, nil
}

func (s *ProfileService) find(ctx context.Context, id string) (*model.Profile, error) {
	profile, err := s.profileRepo.ByID(ctx, id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) withOwner(ctx context.Context, profile *model.Profile) (*ProfileView, error) {
	user, err := s.userRepo.ByID(ctx, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile owner: %w", err)
	}
	return &ProfileView{Profile: profile, User: user}, nil
}
