package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "actipoint/internal/errors"
	"actipoint/internal/model"
)

// MockActivityRepository is a mock implementation of ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) FindByNameAndDate(ctx context.Context, name, date string) (*model.Activity, error) {
	args := m.Called(ctx, name, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListByDate(ctx context.Context) ([]model.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListAll(ctx context.Context) ([]model.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func intPtr(v int) *int { return &v }

func TestActivityService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         CreateActivityInput
		setupMock     func(*MockActivityRepository)
		check         func(*testing.T, *model.Activity)
		expectedError error
	}{
		{
			name: "full input",
			input: CreateActivityInput{
				Name:                 "Beach Cleanup",
				Date:                 "2025-06-01",
				Time:                 "09:00",
				Location:             "Haeundae Beach",
				Organizer:            "Green Crew",
				Description:          "Bring gloves",
				Cost:                 intPtr(5),
				RequiredParticipants: intPtr(10),
				CurrentParticipants:  intPtr(2),
			},
			setupMock: func(m *MockActivityRepository) {
				m.On("FindByNameAndDate", mock.Anything, "Beach Cleanup", "2025-06-01").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(nil)
			},
			check: func(t *testing.T, a *model.Activity) {
				assert.Equal(t, "Beach Cleanup", a.Name)
				assert.Equal(t, 5, a.Cost)
				assert.Equal(t, 10, a.RequiredParticipants)
				assert.Equal(t, 2, a.CurrentParticipants)
			},
		},
		{
			name: "absent optional fields get placeholders",
			input: CreateActivityInput{
				Name: "Garden Day",
				Date: "2025-06-14",
			},
			setupMock: func(m *MockActivityRepository) {
				m.On("FindByNameAndDate", mock.Anything, "Garden Day", "2025-06-14").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(nil)
			},
			check: func(t *testing.T, a *model.Activity) {
				assert.Equal(t, "未設定", a.Time)
				assert.Equal(t, "未設定", a.Location)
				assert.Equal(t, "管理者", a.Organizer)
				assert.Equal(t, "", a.Description)
				assert.Equal(t, 0, a.Cost)
				assert.Equal(t, 1, a.RequiredParticipants)
				assert.Equal(t, 0, a.CurrentParticipants)
			},
		},
		{
			name: "explicit zero cost is not defaulted",
			input: CreateActivityInput{
				Name:                 "Free Walk",
				Date:                 "2025-07-01",
				Cost:                 intPtr(0),
				RequiredParticipants: intPtr(3),
			},
			setupMock: func(m *MockActivityRepository) {
				m.On("FindByNameAndDate", mock.Anything, "Free Walk", "2025-07-01").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(nil)
			},
			check: func(t *testing.T, a *model.Activity) {
				assert.Equal(t, 0, a.Cost)
				assert.Equal(t, 3, a.RequiredParticipants)
			},
		},
		{
			name: "duplicate name and date",
			input: CreateActivityInput{
				Name: "Beach Cleanup",
				Date: "2025-06-01",
			},
			setupMock: func(m *MockActivityRepository) {
				m.On("FindByNameAndDate", mock.Anything, "Beach Cleanup", "2025-06-01").Return(&model.Activity{
					ID:   1,
					Name: "Beach Cleanup",
					Date: "2025-06-01",
				}, nil)
			},
			expectedError: apperrors.ErrDuplicateActivity,
		},
		{
			name: "unique index race reported as duplicate",
			input: CreateActivityInput{
				Name: "Beach Cleanup",
				Date: "2025-06-01",
			},
			setupMock: func(m *MockActivityRepository) {
				m.On("FindByNameAndDate", mock.Anything, "Beach Cleanup", "2025-06-01").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrDuplicateActivity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockActivityRepository)
			tt.setupMock(mockRepo)

			service := NewActivityService(mockRepo, nil)
			activity, err := service.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, activity)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, activity)
				tt.check(t, activity)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestActivityService_List(t *testing.T) {
	sorted := []model.Activity{
		{ID: 2, Name: "Beach Cleanup", Date: "2025-06-01"},
		{ID: 1, Name: "Garden Day", Date: "2025-06-14"},
	}

	mockRepo := new(MockActivityRepository)
	mockRepo.On("ListByDate", mock.Anything).Return(sorted, nil)

	service := NewActivityService(mockRepo, nil)
	activities, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, sorted, activities)
	mockRepo.AssertExpectations(t)
}

func TestActivityService_Details(t *testing.T) {
	all := []model.Activity{
		{ID: 1, Name: "Garden Day", Date: "2025-06-14"},
		{ID: 2, Name: "Beach Cleanup", Date: "2025-06-01"},
	}

	mockRepo := new(MockActivityRepository)
	mockRepo.On("ListAll", mock.Anything).Return(all, nil)

	service := NewActivityService(mockRepo, nil)
	activities, err := service.Details(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, all, activities)
	mockRepo.AssertExpectations(t)
}
