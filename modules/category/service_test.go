package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blog/modules/category"
	"github.com/dmitrymomot/blog/pkg/validator"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) List(ctx context.Context) ([]category.Category, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]category.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStorage) Get(ctx context.Context, id int64) (category.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(category.Category), args.Error(1)
}

func (m *mockStorage) Create(ctx context.Context, in category.EditorInput) (category.Category, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(category.Category), args.Error(1)
}

func (m *mockStorage) Update(ctx context.Context, id int64, in category.EditorInput) (category.Category, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(category.Category), args.Error(1)
}

func (m *mockStorage) Delete(ctx context.Context, id int64) (category.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(category.Category), args.Error(1)
}

func TestService_CreateValidatesBeforeStorage(t *testing.T) {
	t.Parallel()

	storage := &mockStorage{}
	svc := category.NewService(storage, nil)

	_, err := svc.Create(context.Background(), category.EditorInput{Slug: "tech"})
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err))
	storage.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_UpdateValidatesBeforeStorage(t *testing.T) {
	t.Parallel()

	storage := &mockStorage{}
	svc := category.NewService(storage, nil)

	_, err := svc.Update(context.Background(), 1, category.EditorInput{Name: "Tech", Slug: "Bad Slug"})
	assert.True(t, validator.IsValidationError(err))
	storage.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_DelegatesToStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := category.EditorInput{Name: "Tech", Slug: "tech"}
	created := category.Category{ID: 1, Name: "Tech", Slug: "tech"}

	storage := &mockStorage{}
	storage.On("Create", ctx, in).Return(created, nil).Once()
	storage.On("Get", ctx, int64(1)).Return(created, nil).Once()
	storage.On("List", ctx).Return([]category.Category{created}, nil).Once()
	storage.On("Delete", ctx, int64(1)).Return(created, nil).Once()

	svc := category.NewService(storage, nil)

	got, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	got, err = svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []category.Category{created}, list)

	got, err = svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	storage.AssertExpectations(t)
}

func TestService_PropagatesStorageErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := category.EditorInput{Name: "Tech", Slug: "tech"}
	dbErr := errors.New("connection reset")

	storage := &mockStorage{}
	storage.On("List", ctx).Return(nil, dbErr)
	storage.On("Update", ctx, int64(9), in).Return(category.Category{}, category.ErrNotFound)
	storage.On("Create", ctx, in).Return(category.Category{}, errors.Join(category.ErrConflict, dbErr))

	svc := category.NewService(storage, nil)

	list, err := svc.List(ctx)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, list)

	_, err = svc.Update(ctx, 9, in)
	assert.ErrorIs(t, err, category.ErrNotFound)

	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, category.ErrConflict)
}
