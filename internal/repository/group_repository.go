package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wallfit/internal/model"
)

// GroupRepository defines group and membership persistence operations.
type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	FindByID(ctx context.Context, id uint) (*model.Group, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
	IsMember(ctx context.Context, groupID, userID uint) (bool, error)
	AddMember(ctx context.Context, groupID, userID uint) error
	RemoveMember(ctx context.Context, groupID, userID uint) error
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// Create persists the group together with its initial member set.
func (r *groupRepository) Create(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// FindByID loads a group with creator and members resolved.
func (r *groupRepository) FindByID(ctx context.Context, id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).
		Preload("Creator").Preload("Members").
		First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindByIDForUpdate loads a group with a row-level lock. Membership is not
// preloaded; callers inside a transaction use IsMember against the same tx.
func (r *groupRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// List returns all groups, newest first, with creator and members resolved.
func (r *groupRepository) List(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	if err := r.db.WithContext(ctx).
		Preload("Creator").Preload("Members").
		Order("created_at DESC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepository) IsMember(ctx context.Context, groupID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("group_members").
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *groupRepository) AddMember(ctx context.Context, groupID, userID uint) error {
	return r.db.WithContext(ctx).
		Exec("INSERT INTO group_members (group_id, user_id) VALUES (?, ?)", groupID, userID).Error
}

// RemoveMember deletes the membership row. Removing a non-member is a no-op.
func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID uint) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM group_members WHERE group_id = ? AND user_id = ?", groupID, userID).Error
}
