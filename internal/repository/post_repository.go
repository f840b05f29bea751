package repository

import (
	"context"

	"gorm.io/gorm"

	"wallfit/internal/model"
)

// PostRepository defines post and reply persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	ListByGroup(ctx context.Context, groupID *uint) ([]model.Post, error)
	AppendReply(ctx context.Context, reply *model.Reply) error
	// WithTransaction runs fn with post and group repositories bound to the
	// same database transaction, so a membership check and a post insert
	// cannot interleave with a concurrent membership change.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, posts PostRepository, groups GroupRepository) error) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID loads a post with author, group and replies resolved.
// Replies come back in append order.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Group").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.id ASC")
		}).
		Preload("Replies.User").
		First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByGroup returns posts for one group, or the global feed when groupID
// is nil. Newest posts come first.
func (r *postRepository) ListByGroup(ctx context.Context, groupID *uint) ([]model.Post, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Group").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.id ASC")
		}).
		Preload("Replies.User").
		Order("created_at DESC")

	if groupID != nil {
		query = query.Where("group_id = ?", *groupID)
	} else {
		query = query.Where("group_id IS NULL")
	}

	var posts []model.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) AppendReply(ctx context.Context, reply *model.Reply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *postRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, posts PostRepository, groups GroupRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &postRepository{db: tx}, &groupRepository{db: tx})
	})
}
