package address

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"orinoco/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ByShopper(ctx context.Context, shopperID int64) ([]Address, error) {
	args := m.Called(ctx, shopperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Address), args.Error(1)
}

func (m *MockRepository) TextByID(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// MockPrompter is a mock for the selection prompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Select(title, noun string, options []prompt.Option) (int64, error) {
	args := m.Called(title, noun, options)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPrompter) ReadLine(promptText string) (string, error) {
	args := m.Called(promptText)
	return args.String(0), args.Error(1)
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("ZeroAddresses_CapturesNew", func(t *testing.T) {
		repo := new(MockRepository)
		prompter := new(MockPrompter)
		svc := NewService(repo, prompter)
		out := &bytes.Buffer{}

		repo.On("ByShopper", ctx, int64(7)).Return([]Address{}, nil)
		prompter.On("ReadLine", "Please enter a new delivery address: ").Return("12 Main St", nil)

		res, err := svc.Resolve(ctx, out, 7)
		require.NoError(t, err)
		assert.Equal(t, Resolution{Text: "12 Main St", New: true}, res)
		assert.Contains(t, out.String(), "No delivery address found.")
	})

	t.Run("OneAddress_UsedSilently", func(t *testing.T) {
		repo := new(MockRepository)
		prompter := new(MockPrompter)
		svc := NewService(repo, prompter)
		out := &bytes.Buffer{}

		repo.On("ByShopper", ctx, int64(7)).Return([]Address{
			{ID: 1, ShopperID: 7, Text: "3 Old Lane"},
		}, nil)

		res, err := svc.Resolve(ctx, out, 7)
		require.NoError(t, err)
		assert.Equal(t, Resolution{Text: "3 Old Lane"}, res)
		assert.Contains(t, out.String(), "Delivery Address: 3 Old Lane")
		prompter.AssertNotCalled(t, "Select", mock.Anything, mock.Anything, mock.Anything)
		prompter.AssertNotCalled(t, "ReadLine", mock.Anything)
	})

	t.Run("ManyAddresses_PromptedChoice", func(t *testing.T) {
		repo := new(MockRepository)
		prompter := new(MockPrompter)
		svc := NewService(repo, prompter)

		repo.On("ByShopper", ctx, int64(7)).Return([]Address{
			{ID: 2, Text: "12 Main St"},
			{ID: 1, Text: "3 Old Lane"},
		}, nil)
		prompter.On("Select", "DELIVERY ADDRESSES", "address", []prompt.Option{
			{Code: 2, Label: "12 Main St"},
			{Code: 1, Label: "3 Old Lane"},
		}).Return(int64(1), nil)
		repo.On("TextByID", ctx, int64(1)).Return("3 Old Lane", nil)

		out := &bytes.Buffer{}
		res, err := svc.Resolve(ctx, out, 7)
		require.NoError(t, err)
		assert.Equal(t, Resolution{Text: "3 Old Lane"}, res)
		assert.Contains(t, out.String(), "Select a delivery address:")
		prompter.AssertExpectations(t)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockPrompter))

		repo.On("ByShopper", ctx, int64(7)).Return(nil, errors.New("db error"))

		_, err := svc.Resolve(ctx, &bytes.Buffer{}, 7)
		assert.Error(t, err)
	})
}
