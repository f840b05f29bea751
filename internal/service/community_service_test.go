package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"wallfit/internal/errors"
	"wallfit/internal/model"
	"wallfit/internal/repository"
)

// MockPostRepository is a mock implementation of PostRepository. Its
// WithTransaction runs the callback against the mock itself and the linked
// group mock, standing in for a real database transaction.
type MockPostRepository struct {
	mock.Mock
	groups *MockGroupRepository
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) ListByGroup(ctx context.Context, groupID *uint) ([]model.Post, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) AppendReply(ctx context.Context, reply *model.Reply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

func (m *MockPostRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, posts repository.PostRepository, groups repository.GroupRepository) error) error {
	return fn(ctx, m, m.groups)
}

var _ repository.PostRepository = (*MockPostRepository)(nil)

func groupIDPtr(id uint) *uint { return &id }

func TestCommunityService_CreatePost(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		groupID       *uint
		setupMock     func(posts *MockPostRepository, groups *MockGroupRepository)
		expectedError error
	}{
		{
			name:    "global feed post",
			content: "  hello world  ",
			groupID: nil,
			setupMock: func(posts *MockPostRepository, groups *MockGroupRepository) {
				posts.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
					Run(func(args mock.Arguments) {
						post := args.Get(1).(*model.Post)
						post.ID = 11
						assert.Equal(t, "hello world", post.Content)
						assert.Nil(t, post.GroupID)
						assert.Empty(t, post.Replies)
					}).Return(nil)
				posts.On("FindByID", mock.Anything, uint(11)).Return(&model.Post{
					ID:      11,
					UserID:  1,
					User:    model.User{ID: 1, Name: "Amelia"},
					Content: "hello world",
					Replies: []model.Reply{},
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "empty content is rejected",
			content:       "   ",
			groupID:       nil,
			setupMock:     func(posts *MockPostRepository, groups *MockGroupRepository) {},
			expectedError: errors.ErrContentRequired,
		},
		{
			name:    "group post requires the group to exist",
			content: "hi",
			groupID: groupIDPtr(7),
			setupMock: func(posts *MockPostRepository, groups *MockGroupRepository) {
				groups.On("FindByIDForUpdate", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrGroupNotFound,
		},
		{
			name:    "group post requires membership",
			content: "hi",
			groupID: groupIDPtr(7),
			setupMock: func(posts *MockPostRepository, groups *MockGroupRepository) {
				groups.On("FindByIDForUpdate", mock.Anything, uint(7)).Return(&model.Group{ID: 7, CreatorID: 2}, nil)
				groups.On("IsMember", mock.Anything, uint(7), uint(1)).Return(false, nil)
			},
			expectedError: errors.ErrNotGroupMember,
		},
		{
			name:    "member posts into a group",
			content: "hi",
			groupID: groupIDPtr(7),
			setupMock: func(posts *MockPostRepository, groups *MockGroupRepository) {
				groups.On("FindByIDForUpdate", mock.Anything, uint(7)).Return(&model.Group{ID: 7, CreatorID: 2}, nil)
				groups.On("IsMember", mock.Anything, uint(7), uint(1)).Return(true, nil)
				posts.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.Post).ID = 12
					}).Return(nil)
				posts.On("FindByID", mock.Anything, uint(12)).Return(&model.Post{
					ID:      12,
					UserID:  1,
					Content: "hi",
					GroupID: groupIDPtr(7),
					Group:   &model.Group{ID: 7, Name: "Yoga"},
					Replies: []model.Reply{},
				}, nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGroups := new(MockGroupRepository)
			mockPosts := &MockPostRepository{groups: mockGroups}
			tt.setupMock(mockPosts, mockGroups)

			service := NewCommunityService(mockPosts, mockGroups)
			post, err := service.CreatePost(context.Background(), 1, tt.content, tt.groupID, false)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, post)
				mockPosts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, post)
				assert.Empty(t, post.Replies)
				if tt.groupID != nil {
					assert.NotNil(t, post.Group)
					assert.Equal(t, *tt.groupID, post.Group.ID)
				}
			}

			mockPosts.AssertExpectations(t)
			mockGroups.AssertExpectations(t)
		})
	}
}

func TestCommunityService_ReplyToPost(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		setupMock     func(posts *MockPostRepository)
		expectedError error
	}{
		{
			name:    "reply is appended and the post returned resolved",
			content: "welcome back!",
			setupMock: func(posts *MockPostRepository) {
				posts.On("FindByID", mock.Anything, uint(11)).Return(&model.Post{
					ID:      11,
					UserID:  1,
					Content: "question",
					Replies: []model.Reply{},
				}, nil).Once()
				posts.On("AppendReply", mock.Anything, mock.AnythingOfType("*model.Reply")).
					Run(func(args mock.Arguments) {
						reply := args.Get(1).(*model.Reply)
						assert.Equal(t, uint(11), reply.PostID)
						assert.Equal(t, uint(2), reply.UserID)
						assert.Equal(t, "welcome back!", reply.Content)
					}).Return(nil)
				posts.On("FindByID", mock.Anything, uint(11)).Return(&model.Post{
					ID:      11,
					UserID:  1,
					Content: "question",
					Replies: []model.Reply{
						{ID: 1, PostID: 11, UserID: 2, User: model.User{ID: 2, Name: "Priya"}, Content: "welcome back!"},
					},
				}, nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "empty reply is rejected",
			content:       " ",
			setupMock:     func(posts *MockPostRepository) {},
			expectedError: errors.ErrContentRequired,
		},
		{
			name:    "missing post",
			content: "hi",
			setupMock: func(posts *MockPostRepository) {
				posts.On("FindByID", mock.Anything, uint(11)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPosts := &MockPostRepository{groups: new(MockGroupRepository)}
			tt.setupMock(mockPosts)

			service := NewCommunityService(mockPosts, mockPosts.groups)
			post, err := service.ReplyToPost(context.Background(), 2, 11, tt.content)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, post)
				mockPosts.AssertNotCalled(t, "AppendReply", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Len(t, post.Replies, 1)
				assert.Equal(t, "Priya", post.Replies[0].User.Name)
			}

			mockPosts.AssertExpectations(t)
		})
	}
}

func TestCommunityService_ListPosts(t *testing.T) {
	mockPosts := &MockPostRepository{groups: new(MockGroupRepository)}
	service := NewCommunityService(mockPosts, mockPosts.groups)

	// No group: the repository is asked for the global feed.
	mockPosts.On("ListByGroup", mock.Anything, (*uint)(nil)).Return([]model.Post{
		{ID: 3, Content: "newest"},
		{ID: 2, Content: "older"},
	}, nil).Once()

	posts, err := service.ListPosts(context.Background(), nil)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, uint(3), posts[0].ID)

	// With a group the filter is passed through untouched.
	groupID := groupIDPtr(7)
	mockPosts.On("ListByGroup", mock.Anything, groupID).Return([]model.Post{
		{ID: 5, GroupID: groupID},
	}, nil).Once()

	posts, err = service.ListPosts(context.Background(), groupID)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, groupID, posts[0].GroupID)

	mockPosts.AssertExpectations(t)
}
