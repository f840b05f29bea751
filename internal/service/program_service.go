package service

import (
	"context"

	"gorm.io/gorm"

	"wallfit/internal/cache"
	"wallfit/internal/data"
	"wallfit/internal/errors"
	"wallfit/internal/model"
	"wallfit/internal/repository"
)

// ProgramService exposes program read/replace and the sample catalog.
type ProgramService interface {
	SetProgram(ctx context.Context, userID uint, program model.Program) (*model.Program, error)
	GetProgram(ctx context.Context, userID uint) (*model.Program, error)
	SamplePrograms() []model.Program
}

type programService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewProgramService builds a ProgramService.
func NewProgramService(repo repository.UserRepository, cache *cache.Client) ProgramService {
	return &programService{repo: repo, cache: cache}
}

// SetProgram replaces the user's program wholesale; there is no partial merge.
func (s *programService) SetProgram(ctx context.Context, userID uint, program model.Program) (*model.Program, error) {
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if err := s.repo.ReplaceProgram(ctx, userID, &program); err != nil {
		return nil, err
	}

	// The cached profile embeds the program.
	_ = s.cache.Delete(ctx, profileCacheKey(userID))
	return &program, nil
}

func (s *programService) GetProgram(ctx context.Context, userID uint) (*model.Program, error) {
	program, err := s.repo.FindProgram(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// SamplePrograms returns the fixed template catalog. Read-only and public.
func (s *programService) SamplePrograms() []model.Program {
	return data.SamplePrograms
}
