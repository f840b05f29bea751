package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"wallfit/internal/errors"
	"wallfit/internal/model"
	"wallfit/internal/repository"
)

// CommunityService enforces membership rules on posts and replies.
type CommunityService interface {
	ListPosts(ctx context.Context, groupID *uint) ([]model.Post, error)
	CreatePost(ctx context.Context, authorID uint, content string, groupID *uint, isQuestion bool) (*model.Post, error)
	ReplyToPost(ctx context.Context, authorID, postID uint, content string) (*model.Post, error)
}

type communityService struct {
	posts  repository.PostRepository
	groups repository.GroupRepository
}

// NewCommunityService creates a new community service.
func NewCommunityService(posts repository.PostRepository, groups repository.GroupRepository) CommunityService {
	return &communityService{posts: posts, groups: groups}
}

// ListPosts returns the global feed when groupID is nil, otherwise the
// posts of that group. Newest first.
func (s *communityService) ListPosts(ctx context.Context, groupID *uint) ([]model.Post, error) {
	return s.posts.ListByGroup(ctx, groupID)
}

// CreatePost persists a post with an empty reply list. Posting into a group
// requires membership; the check and the insert run in one transaction with
// the group row locked, so a concurrent leave cannot slip in between.
func (s *communityService) CreatePost(ctx context.Context, authorID uint, content string, groupID *uint, isQuestion bool) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.ErrContentRequired
	}

	post := &model.Post{
		UserID:     authorID,
		Content:    content,
		GroupID:    groupID,
		IsQuestion: isQuestion,
		Replies:    []model.Reply{},
	}

	if groupID == nil {
		if err := s.posts.Create(ctx, post); err != nil {
			return nil, err
		}
		return s.posts.FindByID(ctx, post.ID)
	}

	err := s.posts.WithTransaction(ctx, func(ctx context.Context, posts repository.PostRepository, groups repository.GroupRepository) error {
		if _, err := groups.FindByIDForUpdate(ctx, *groupID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrGroupNotFound
			}
			return err
		}

		member, err := groups.IsMember(ctx, *groupID, authorID)
		if err != nil {
			return err
		}
		if !member {
			return errors.ErrNotGroupMember
		}

		return posts.Create(ctx, post)
	})
	if err != nil {
		return nil, err
	}

	return s.posts.FindByID(ctx, post.ID)
}

// ReplyToPost appends a reply and returns the post with all replies
// resolved. Replies deliberately carry no membership gate: anyone may
// answer a question surfaced in the feed.
func (s *communityService) ReplyToPost(ctx context.Context, authorID, postID uint, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.ErrContentRequired
	}

	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, err
	}

	reply := &model.Reply{
		PostID:  postID,
		UserID:  authorID,
		Content: content,
	}
	if err := s.posts.AppendReply(ctx, reply); err != nil {
		return nil, err
	}

	return s.posts.FindByID(ctx, postID)
}
