package basket

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"orinoco/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CurrentForShopper(ctx context.Context, shopperID int64) (State, error) {
	args := m.Called(ctx, shopperID)
	return args.Get(0).(State), args.Error(1)
}

func (m *MockRepository) AddLine(ctx context.Context, state State, shopperID int64, params LineParams) (State, error) {
	args := m.Called(ctx, state, shopperID, params)
	return args.Get(0).(State), args.Error(1)
}

func (m *MockRepository) Contents(ctx context.Context, basketID int64) ([]Line, error) {
	args := m.Called(ctx, basketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Line), args.Error(1)
}

// MockCatalog is a mock for the catalog repository
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Categories(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCatalog) ProductsInCategory(ctx context.Context, categoryID int64) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockCatalog) OffersForProduct(ctx context.Context, productID int64) ([]catalog.Offer, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Offer), args.Error(1)
}

func (m *MockCatalog) OfferPrice(ctx context.Context, productID, sellerID int64) (float64, error) {
	args := m.Called(ctx, productID, sellerID)
	return args.Get(0).(float64), args.Error(1)
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("SnapshotsOfferPrice", func(t *testing.T) {
		repo := new(MockRepository)
		cat := new(MockCatalog)
		svc := NewService(repo, cat)

		cat.On("OfferPrice", ctx, int64(11), int64(2)).Return(219.99, nil)
		repo.On("AddLine", ctx, State{}, int64(7), LineParams{
			ProductID: 11, SellerID: 2, Quantity: 3, Price: 219.99,
		}).Return(State{ID: 5}, nil)

		state, err := svc.AddItem(ctx, 7, State{}, 11, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(5), state.ID)
		repo.AssertExpectations(t)
		cat.AssertExpectations(t)
	})

	t.Run("RejectsNonPositiveQuantity", func(t *testing.T) {
		repo := new(MockRepository)
		cat := new(MockCatalog)
		svc := NewService(repo, cat)

		_, err := svc.AddItem(ctx, 7, State{}, 11, 2, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		cat.AssertNotCalled(t, "OfferPrice", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "AddLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	// Pins the decision that a missing offer is a hard error rather than a
	// silent zero price.
	t.Run("NoOffer", func(t *testing.T) {
		repo := new(MockRepository)
		cat := new(MockCatalog)
		svc := NewService(repo, cat)

		cat.On("OfferPrice", ctx, int64(11), int64(99)).Return(0.0, catalog.ErrNoOffer)

		state, err := svc.AddItem(ctx, 7, State{ID: 5}, 11, 99, 1)
		assert.ErrorIs(t, err, catalog.ErrNoOffer)
		assert.Equal(t, int64(5), state.ID)
		repo.AssertNotCalled(t, "AddLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		cat := new(MockCatalog)
		svc := NewService(repo, cat)

		cat.On("OfferPrice", ctx, int64(11), int64(2)).Return(219.99, nil)
		repo.On("AddLine", ctx, State{}, int64(7), mock.Anything).
			Return(State{}, errors.New("db error"))

		state, err := svc.AddItem(ctx, 7, State{}, 11, 2, 1)
		assert.Error(t, err)
		assert.False(t, state.Open())
	})
}

func TestService_View(t *testing.T) {
	ctx := context.Background()

	t.Run("NoOpenBasket", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockCatalog))
		out := &bytes.Buffer{}

		err := svc.View(ctx, out, State{})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Your basket is empty")
		repo.AssertNotCalled(t, "Contents", mock.Anything, mock.Anything)
	})

	t.Run("OpenButNoLines", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockCatalog))
		out := &bytes.Buffer{}

		repo.On("Contents", ctx, int64(5)).Return([]Line{}, nil)

		err := svc.View(ctx, out, State{ID: 5})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Your basket is empty")
	})

	t.Run("TotalsAreSumOfSnapshottedPrices", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockCatalog))
		out := &bytes.Buffer{}

		repo.On("Contents", ctx, int64(5)).Return([]Line{
			{Product: "Widget", Seller: "SellerA", Quantity: 2, Price: 9.99},
			{Product: "Gadget", Seller: "SellerB", Quantity: 1, Price: 19.99},
		}, nil)

		err := svc.View(ctx, out, State{ID: 5})
		require.NoError(t, err)

		display := out.String()
		assert.Contains(t, display, "YOUR SHOPPING BASKET")
		assert.Contains(t, display, "Widget")
		assert.Contains(t, display, "£19.98")
		assert.Contains(t, display, "£19.99")
		assert.Contains(t, display, "BASKET TOTAL")
		assert.Contains(t, display, "£39.97")
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockCatalog))

		repo.On("Contents", ctx, int64(5)).Return(nil, errors.New("db error"))

		err := svc.View(ctx, &bytes.Buffer{}, State{ID: 5})
		assert.Error(t, err)
	})
}

func TestService_Resume(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	svc := NewService(repo, new(MockCatalog))

	repo.On("CurrentForShopper", ctx, int64(7)).Return(State{ID: 4}, nil)

	state, err := svc.Resume(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), state.ID)
}

func TestService_Lines(t *testing.T) {
	ctx := context.Background()

	t.Run("ClosedBasketHasNoLines", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockCatalog))

		lines, err := svc.Lines(ctx, State{})
		require.NoError(t, err)
		assert.Empty(t, lines)
		repo.AssertNotCalled(t, "Contents", mock.Anything, mock.Anything)
	})

	t.Run("DelegatesToRepository", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockCatalog))

		repo.On("Contents", ctx, int64(5)).Return([]Line{{Product: "Widget"}}, nil)

		lines, err := svc.Lines(ctx, State{ID: 5})
		require.NoError(t, err)
		assert.Len(t, lines, 1)
	})
}
