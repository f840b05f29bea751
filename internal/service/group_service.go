package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"wallfit/internal/errors"
	"wallfit/internal/model"
	"wallfit/internal/repository"
)

// GroupService enforces membership and ownership rules on groups.
type GroupService interface {
	CreateGroup(ctx context.Context, creatorID uint, name, description, image string) (*model.Group, error)
	ListGroups(ctx context.Context) ([]model.Group, error)
	GetGroup(ctx context.Context, id uint) (*model.Group, error)
	JoinGroup(ctx context.Context, userID, groupID uint) (*model.Group, error)
	LeaveGroup(ctx context.Context, userID, groupID uint) (*model.Group, error)
}

type groupService struct {
	groups repository.GroupRepository
}

// NewGroupService creates a new group service.
func NewGroupService(groups repository.GroupRepository) GroupService {
	return &groupService{groups: groups}
}

// CreateGroup creates a group whose member set is exactly the creator.
func (s *groupService) CreateGroup(ctx context.Context, creatorID uint, name, description, image string) (*model.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ErrGroupNameRequired
	}

	group := &model.Group{
		Name:        name,
		Description: strings.TrimSpace(description),
		Image:       image,
		CreatorID:   creatorID,
		Members:     []model.User{{ID: creatorID}},
	}

	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}
	return s.groups.FindByID(ctx, group.ID)
}

func (s *groupService) ListGroups(ctx context.Context) ([]model.Group, error) {
	return s.groups.List(ctx)
}

func (s *groupService) GetGroup(ctx context.Context, id uint) (*model.Group, error) {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

// JoinGroup appends the user to the member set. A duplicate join is
// rejected, not ignored.
func (s *groupService) JoinGroup(ctx context.Context, userID, groupID uint) (*model.Group, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGroupNotFound
		}
		return nil, err
	}

	if group.HasMember(userID) {
		return nil, errors.ErrAlreadyMember
	}

	if err := s.groups.AddMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.groups.FindByID(ctx, groupID)
}

// LeaveGroup removes the user from the member set. The creator can never
// leave. Leaving a group one is not in yields the unchanged group, not an
// error — an asymmetry with JoinGroup carried over deliberately.
func (s *groupService) LeaveGroup(ctx context.Context, userID, groupID uint) (*model.Group, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGroupNotFound
		}
		return nil, err
	}

	if group.CreatorID == userID {
		return nil, errors.ErrCreatorCannotLeave
	}

	if err := s.groups.RemoveMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.groups.FindByID(ctx, groupID)
}
