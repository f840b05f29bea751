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

// MockGroupRepository is a mock implementation of GroupRepository.
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *model.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) FindByID(ctx context.Context, id uint) (*model.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepository) List(ctx context.Context) ([]model.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Group), args.Error(1)
}

func (m *MockGroupRepository) IsMember(ctx context.Context, groupID, userID uint) (bool, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupRepository) AddMember(ctx context.Context, groupID, userID uint) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MockGroupRepository) RemoveMember(ctx context.Context, groupID, userID uint) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func TestGroupService_CreateGroup(t *testing.T) {
	tests := []struct {
		name          string
		groupName     string
		setupMock     func(*MockGroupRepository)
		expectedError error
	}{
		{
			name:      "creator becomes the sole member",
			groupName: "Yoga",
			setupMock: func(m *MockGroupRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Group")).
					Run(func(args mock.Arguments) {
						group := args.Get(1).(*model.Group)
						group.ID = 7
						assert.Equal(t, uint(1), group.CreatorID)
						assert.Len(t, group.Members, 1)
						assert.Equal(t, uint(1), group.Members[0].ID)
					}).Return(nil)
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.Group{
					ID:        7,
					Name:      "Yoga",
					CreatorID: 1,
					Creator:   model.User{ID: 1},
					Members:   []model.User{{ID: 1}},
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "empty name is rejected",
			groupName:     "   ",
			setupMock:     func(m *MockGroupRepository) {},
			expectedError: errors.ErrGroupNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockGroupRepository)
			tt.setupMock(mockRepo)

			service := NewGroupService(mockRepo)
			group, err := service.CreateGroup(context.Background(), 1, tt.groupName, "", "")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, group)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, group)
				assert.True(t, group.HasMember(group.CreatorID))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGroupService_JoinGroup(t *testing.T) {
	tests := []struct {
		name          string
		userID        uint
		setupMock     func(*MockGroupRepository)
		expectedError error
	}{
		{
			name:   "new member is appended",
			userID: 2,
			setupMock: func(m *MockGroupRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.Group{
					ID:        7,
					CreatorID: 1,
					Members:   []model.User{{ID: 1}},
				}, nil).Once()
				m.On("AddMember", mock.Anything, uint(7), uint(2)).Return(nil)
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.Group{
					ID:        7,
					CreatorID: 1,
					Members:   []model.User{{ID: 1}, {ID: 2}},
				}, nil).Once()
			},
			expectedError: nil,
		},
		{
			name:   "duplicate join is rejected",
			userID: 2,
			setupMock: func(m *MockGroupRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.Group{
					ID:        7,
					CreatorID: 1,
					Members:   []model.User{{ID: 1}, {ID: 2}},
				}, nil)
			},
			expectedError: errors.ErrAlreadyMember,
		},
		{
			name:   "missing group",
			userID: 2,
			setupMock: func(m *MockGroupRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrGroupNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockGroupRepository)
			tt.setupMock(mockRepo)

			service := NewGroupService(mockRepo)
			group, err := service.JoinGroup(context.Background(), tt.userID, 7)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, group)
				mockRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Len(t, group.Members, 2)
				assert.True(t, group.HasMember(tt.userID))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGroupService_LeaveGroup(t *testing.T) {
	tests := []struct {
		name          string
		userID        uint
		setupMock     func(*MockGroupRepository)
		expectedError error
	}{
		{
			name:   "member leaves",
			userID: 2,
			setupMock: func(m *MockGroupRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.Group{
					ID:        7,
					CreatorID: 1,
					Members:   []model.User{{ID: 1}, {ID: 2}},
				}, nil).Once()
				m.On("RemoveMember", mock.Anything, uint(7), uint(2)).Return(nil)
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.Group{
					ID:        7,
					CreatorID: 1,
					Members:   []model.User{{ID: 1}},
				}, nil).Once()
			},
			expectedError: nil,
		},
		{
			name:   "creator can never leave",
			userID: 1,
			setupMock: func(m *MockGroupRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.Group{
					ID:        7,
					CreatorID: 1,
					Members:   []model.User{{ID: 1}, {ID: 2}},
				}, nil)
			},
			expectedError: errors.ErrCreatorCannotLeave,
		},
		{
			name:   "leave without membership is a no-op",
			userID: 3,
			setupMock: func(m *MockGroupRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.Group{
					ID:        7,
					CreatorID: 1,
					Members:   []model.User{{ID: 1}},
				}, nil)
				m.On("RemoveMember", mock.Anything, uint(7), uint(3)).Return(nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockGroupRepository)
			tt.setupMock(mockRepo)

			service := NewGroupService(mockRepo)
			group, err := service.LeaveGroup(context.Background(), tt.userID, 7)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, group)
				mockRepo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, group)
				// The creator stays in the member set no matter who left.
				assert.True(t, group.HasMember(group.CreatorID))
				assert.False(t, group.HasMember(tt.userID))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

var _ repository.GroupRepository = (*MockGroupRepository)(nil)
