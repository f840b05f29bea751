package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"wallfit/internal/cache"
	"wallfit/internal/errors"
	"wallfit/internal/model"
	"wallfit/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// Profile is a user record enriched with derived health metrics.
type Profile struct {
	*model.User
	BMI         *float64 `json:"bmi,omitempty"`
	BMICategory string   `json:"bmi_category,omitempty"`
}

// ProfileUpdate carries the replaceable scalar profile fields.
type ProfileUpdate struct {
	Name   string
	Age    *int
	Weight *float64
	Height *float64
	Goal   string
}

// ProfileService exposes profile read/replace operations.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*Profile, error)
}

type profileService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewProfileService builds a ProfileService with repository and cache.
func NewProfileService(repo repository.UserRepository, cache *cache.Client) ProfileService {
	return &profileService{repo: repo, cache: cache}
}

func profileCacheKey(userID uint) string {
	return fmt.Sprintf("profile:%d", userID)
}

func (s *profileService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	var cached Profile
	if s.cache.GetJSON(ctx, profileCacheKey(userID), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	profile := buildProfile(user)
	s.cache.SetJSON(ctx, profileCacheKey(userID), profile, profileCacheTTL)
	return profile, nil
}

// UpdateProfile replaces the scalar profile fields wholesale. Range checks
// on age/weight/height are a client concern and deliberately absent here.
func (s *profileService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*Profile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	user.Age = update.Age
	user.Weight = update.Weight
	user.Height = update.Height
	user.Goal = update.Goal

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, profileCacheKey(userID))
	return buildProfile(user), nil
}

func buildProfile(user *model.User) *Profile {
	profile := &Profile{User: user}
	if user.Height != nil && user.Weight != nil {
		if bmi, ok := calculateBMI(*user.Height, *user.Weight); ok {
			profile.BMI = &bmi
			profile.BMICategory = bmiCategory(bmi)
		}
	}
	return profile
}
