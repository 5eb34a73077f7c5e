package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/document"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/memory"
	mockRepo "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/mocks/repository"
	mockService "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/mocks/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOwner = "session-1"

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service usecase.CartUsecase
	store   repository.KeyValueStore
	metrics *mockService.MockMetrics
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	store := memory.NewKeyValueStore()
	metrics := newLenientMetrics(t)

	return cartServiceFixtures{
		service: NewCartService(CartServiceParams{
			CartRepo: document.NewCartRepository(store),
			Metrics:  metrics,
			Logger:   newTestLogger(),
		}),
		store:   store,
		metrics: metrics,
	}
}

func membershipItem(id string, price float64, quantity int) *usecase.CartItemInput {
	return &usecase.CartItemInput{
		ID:       id,
		Name:     "Membership " + id,
		Price:    price,
		Quantity: quantity,
		Type:     entity.ItemTypeMembership,
	}
}

func TestCartService_AddItem_MergesByID(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, testOwner, membershipItem("vip", 50, 1))
	require.NoError(t, err)

	second := membershipItem("vip", 999, 2)
	second.Name = "ignored"
	view, err := fx.service.AddItem(ctx, testOwner, second)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, "Membership vip", view.Items[0].Name)
	assert.InDelta(t, 50.0, view.Items[0].Price, 0)
	assert.Equal(t, 3, view.TotalItems)
	assert.True(t, view.IsOpen)
}

func TestCartService_RemoveItem_Idempotent(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, testOwner, membershipItem("a", 10, 1))
	require.NoError(t, err)
	_, err = fx.service.AddItem(ctx, testOwner, membershipItem("b", 20, 1))
	require.NoError(t, err)

	once, err := fx.service.RemoveItem(ctx, testOwner, "a")
	require.NoError(t, err)
	twice, err := fx.service.RemoveItem(ctx, testOwner, "a")
	require.NoError(t, err)

	assert.Equal(t, once.Items, twice.Items)
	require.Len(t, twice.Items, 1)
	assert.Equal(t, "b", twice.Items[0].ID)

	absent, err := fx.service.RemoveItem(ctx, testOwner, "never-added")
	require.NoError(t, err)
	assert.Equal(t, twice.Items, absent.Items)
}

func TestCartService_Totals_ExactDecimalArithmetic(t *testing.T) {
	tests := []struct {
		name           string
		items          []*usecase.CartItemInput
		wantTotal      float64
		wantFormatted  string
		wantTotalItems int
	}{
		{
			name:           "empty cart",
			wantTotal:      0,
			wantFormatted:  "€0.00",
			wantTotalItems: 0,
		},
		{
			name:           "floating point classics",
			items:          []*usecase.CartItemInput{membershipItem("a", 0.1, 3), membershipItem("b", 0.2, 1)},
			wantTotal:      0.5,
			wantFormatted:  "€0.50",
			wantTotalItems: 4,
		},
		{
			name:           "rounding happens at display only",
			items:          []*usecase.CartItemInput{membershipItem("a", 33.335, 1), membershipItem("b", 0.001, 2)},
			wantTotal:      33.337,
			wantFormatted:  "€33.34",
			wantTotalItems: 3,
		},
		{
			name:           "realistic basket",
			items:          []*usecase.CartItemInput{membershipItem("vip", 49.99, 2), membershipItem("boot", 297, 1)},
			wantTotal:      396.98,
			wantFormatted:  "€396.98",
			wantTotalItems: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)
			ctx := context.Background()

			for _, item := range tt.items {
				_, err := fx.service.AddItem(ctx, testOwner, item)
				require.NoError(t, err)
			}

			view, err := fx.service.GetCart(ctx, testOwner)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, view.TotalPrice)
			assert.Equal(t, tt.wantFormatted, view.FormattedTotal)
			assert.Equal(t, tt.wantTotalItems, view.TotalItems)
		})
	}
}

func TestCartService_AddItem_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     *usecase.CartItemInput
		wantField string
	}{
		{name: "zero quantity", input: membershipItem("a", 10, 0), wantField: "quantity"},
		{name: "negative price", input: membershipItem("a", -1, 1), wantField: "price"},
		{name: "missing id", input: membershipItem("", 10, 1), wantField: "id"},
		{
			name:      "unknown type",
			input:     &usecase.CartItemInput{ID: "x", Name: "x", Price: 1, Quantity: 1, Type: "course"},
			wantField: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)

			_, err := fx.service.AddItem(context.Background(), testOwner, tt.input)
			require.Error(t, err)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields(), tt.wantField)
		})
	}
}

func TestCartService_UpdateItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, testOwner, membershipItem("a", 10, 1))
	require.NoError(t, err)

	quantity := 4
	view, err := fx.service.UpdateItem(ctx, testOwner, "a", &usecase.CartItemPatch{Quantity: &quantity})
	require.NoError(t, err)
	assert.Equal(t, 4, view.Items[0].Quantity)
	assert.InDelta(t, 40.0, view.TotalPrice, 1e-9)

	unknown, err := fx.service.UpdateItem(ctx, testOwner, "missing", &usecase.CartItemPatch{Quantity: &quantity})
	require.NoError(t, err)
	assert.Equal(t, view.Items, unknown.Items)

	zero := 0
	_, err = fx.service.UpdateItem(ctx, testOwner, "a", &usecase.CartItemPatch{Quantity: &zero})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_PersistsAndHydrates(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, testOwner, membershipItem("a", 10, 2))
	require.NoError(t, err)

	restarted := NewCartService(CartServiceParams{
		CartRepo: document.NewCartRepository(fx.store),
		Metrics:  fx.metrics,
		Logger:   newTestLogger(),
	})

	view, err := restarted.GetCart(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.False(t, view.IsOpen, "drawer state is not persisted")

	other, err := restarted.GetCart(ctx, "another-session")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCartService_CorruptDocumentStartsEmpty(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	require.NoError(t, fx.store.Set(ctx, "cart:"+testOwner, []byte("{not json")))

	view, err := fx.service.GetCart(ctx, testOwner)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, "€0.00", view.FormattedTotal)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, testOwner, membershipItem("a", 10, 2))
	require.NoError(t, err)
	require.NoError(t, fx.service.ClearCart(ctx, testOwner))

	snapshot, err := fx.service.Snapshot(ctx, testOwner)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
}

func TestCartService_WriteFailureIsCountedNotReturned(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	metrics := mockService.NewMockMetrics(t)
	svc := NewCartService(CartServiceParams{CartRepo: cartRepo, Metrics: metrics, Logger: newTestLogger()})
	ctx := context.Background()

	cartRepo.EXPECT().LoadCart(mock.Anything, testOwner).Return([]entity.CartItem{}, nil).Once()
	cartRepo.EXPECT().SaveCart(mock.Anything, testOwner, mock.Anything).Return(errors.New("disk full")).Once()
	metrics.EXPECT().StoreWriteFailed("cart:").Once()

	view, err := svc.AddItem(ctx, testOwner, membershipItem("a", 10, 1))
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestCartService_SnapshotIsACopy(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	item := membershipItem("scan", 30, 1)
	item.Type = entity.ItemTypeScanner
	item.Details = &entity.CartItemDetails{TradingViewUsername: "trader"}
	_, err := fx.service.AddItem(ctx, testOwner, item)
	require.NoError(t, err)

	snapshot, err := fx.service.Snapshot(ctx, testOwner)
	require.NoError(t, err)
	snapshot.Items[0].Quantity = 99
	snapshot.Items[0].Details.TradingViewUsername = "changed"

	view, err := fx.service.GetCart(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.Equal(t, "trader", view.Items[0].Details.TradingViewUsername)
}

func TestCartService_ReadsDoNotCacheEmptyCarts(t *testing.T) {
	fx := createTestCartService(t)
	impl, ok := fx.service.(*cartService)
	require.True(t, ok)
	ctx := context.Background()

	for i := range 1000 {
		ownerID := fmt.Sprintf("anonymous-%d", i)
		_, err := fx.service.GetCart(ctx, ownerID)
		require.NoError(t, err)
		_, err = fx.service.Snapshot(ctx, ownerID)
		require.NoError(t, err)
	}
	assert.Empty(t, impl.carts)
	assert.Empty(t, impl.lastUsed)

	_, err := fx.service.AddItem(ctx, testOwner, membershipItem("a", 10, 1))
	require.NoError(t, err)
	assert.Len(t, impl.carts, 1)

	require.NoError(t, fx.service.ClearCart(ctx, testOwner))
	assert.Empty(t, impl.carts)
}

func TestCartService_EvictsIdleCarts(t *testing.T) {
	fx := createTestCartService(t)
	impl, ok := fx.service.(*cartService)
	require.True(t, ok)
	clock := &fixedClock{t: time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)}
	impl.now = clock.now
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, "idle-owner", membershipItem("a", 10, 2))
	require.NoError(t, err)

	clock.advance(cartIdleTTL + time.Minute)
	_, err = fx.service.AddItem(ctx, testOwner, membershipItem("b", 5, 1))
	require.NoError(t, err)

	assert.NotContains(t, impl.carts, "idle-owner")
	assert.Contains(t, impl.carts, testOwner)

	view, err := fx.service.GetCart(ctx, "idle-owner")
	require.NoError(t, err)
	require.Len(t, view.Items, 1, "evicted carts are reloaded from storage")
	assert.Equal(t, 2, view.Items[0].Quantity)
}
