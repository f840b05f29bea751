package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wallfit/internal/data"
	"wallfit/internal/model"
	"wallfit/internal/repository"
)

// SeedResult summarizes what a demo seed run created.
type SeedResult struct {
	Users  int `json:"users"`
	Groups int `json:"groups"`
	Posts  int `json:"posts"`
}

// SeedService loads the demo fixture so a fresh install is explorable.
type SeedService interface {
	SeedDemo(ctx context.Context) (*SeedResult, error)
}

type seedService struct {
	users  repository.UserRepository
	groups repository.GroupRepository
	posts  repository.PostRepository
}

// NewSeedService creates a new seed service.
func NewSeedService(users repository.UserRepository, groups repository.GroupRepository, posts repository.PostRepository) SeedService {
	return &seedService{users: users, groups: groups, posts: posts}
}

// SeedDemo creates the demo users, groups and posts that do not exist yet.
// Running it twice adds nothing the second time, except demo posts which
// are skipped entirely when any user already existed.
func (s *seedService) SeedDemo(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}
	usersByEmail := make(map[string]*model.User, len(data.DemoUsers))
	freshInstall := true

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.DemoPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	for _, fixture := range data.DemoUsers {
		existing, err := s.users.FindByEmail(ctx, fixture.Email)
		if err == nil {
			usersByEmail[fixture.Email] = existing
			freshInstall = false
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("look up demo user %s: %w", fixture.Email, err)
		}

		user := &model.User{
			Name:         fixture.Name,
			Email:        fixture.Email,
			PasswordHash: string(hashed),
			Goal:         fixture.Goal,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create demo user %s: %w", fixture.Email, err)
		}
		usersByEmail[fixture.Email] = user
		result.Users++
	}

	if !freshInstall {
		return result, nil
	}

	groupsByName := make(map[string]*model.Group, len(data.DemoGroups))
	for _, fixture := range data.DemoGroups {
		creator := usersByEmail[fixture.CreatorEmail]
		members := []model.User{{ID: creator.ID}}
		for _, email := range fixture.MemberEmails {
			members = append(members, model.User{ID: usersByEmail[email].ID})
		}

		group := &model.Group{
			Name:        fixture.Name,
			Description: fixture.Description,
			CreatorID:   creator.ID,
			Members:     members,
		}
		if err := s.groups.Create(ctx, group); err != nil {
			return nil, fmt.Errorf("create demo group %s: %w", fixture.Name, err)
		}
		groupsByName[fixture.Name] = group
		result.Groups++
	}

	for _, fixture := range data.DemoPosts {
		post := &model.Post{
			UserID:     usersByEmail[fixture.AuthorEmail].ID,
			Content:    fixture.Content,
			IsQuestion: fixture.IsQuestion,
		}
		if fixture.GroupName != "" {
			groupID := groupsByName[fixture.GroupName].ID
			post.GroupID = &groupID
		}
		if err := s.posts.Create(ctx, post); err != nil {
			return nil, fmt.Errorf("create demo post: %w", err)
		}
		result.Posts++
	}

	return result, nil
}
