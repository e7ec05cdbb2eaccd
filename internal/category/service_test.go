package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCategories(ctx context.Context, filter *string, limit, page *int32) ([]*Category, error) {
	args := m.Called(ctx, filter, limit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

func (m *MockRepository) AddCategory(ctx context.Context, name string) (*Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

// --- Tests ---

func TestService_GetCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_WithPagination", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		limit := int32(10)
		page := int32(2)
		filter := "test"
		expected := []*Category{{ID: "cat-1", Name: "Cameras"}}

		mockRepo.On("GetCategories", ctx, &filter, &limit, &page).Return(expected, nil)

		res, err := svc.GetCategories(ctx, &filter, &limit, &page)
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetCategories", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("db error"))

		_, err := svc.GetCategories(ctx, nil, nil, nil)
		assert.Error(t, err)
	})
}

func TestService_AddCategory(t *testing.T) {
	ctx := context.Background()
	name := "Electronics"

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		expected := &Category{ID: "cat-1", Name: name}
		mockRepo.On("AddCategory", ctx, name).Return(expected, nil)

		res, err := svc.AddCategory(ctx, name)
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("AddCategory", ctx, name).Return(nil, errors.New("db error"))
		_, err := svc.AddCategory(ctx, name)
		assert.Error(t, err)
	})
}
