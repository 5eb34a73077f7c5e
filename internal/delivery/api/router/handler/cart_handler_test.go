package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	mockUsecase "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/mocks/usecase"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCartHandler(t *testing.T) (*CartHandler, *mockUsecase.MockCartUsecase) {
	cartUC := mockUsecase.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: slog.Default()}), cartUC
}

func TestCartHandler_MissingSession(t *testing.T) {
	h, _ := createTestCartHandler(t)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/api/cart", "")
	require.NoError(t, h.GetCart(c))

	requireErrorCode(t, rec, http.StatusBadRequest, "MISSING_SESSION")
}

func TestCartHandler_AddItem(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	e := newTestEcho()

	view := &usecase.CartView{
		OwnerID:        testSessionID,
		Items:          []entity.CartItem{{ID: "bootcamp-mtm", Name: "Bootcamp", Price: 200, Quantity: 1, Type: entity.ItemTypeBootcamp}},
		TotalItems:     1,
		TotalPrice:     200,
		FormattedTotal: "€200.00",
	}
	cartUC.EXPECT().
		AddItem(mock.Anything, testSessionID, mock.MatchedBy(func(in *usecase.CartItemInput) bool {
			return in.ID == "bootcamp-mtm" && in.Quantity == 1 && in.Type == entity.ItemTypeBootcamp
		})).
		Return(view, nil)

	body := `{"id":"bootcamp-mtm","name":"Bootcamp","price":200,"quantity":1,"type":"bootcamp"}`
	c, rec := newSessionContext(e, http.MethodPost, "/api/cart/items", body)
	require.NoError(t, h.AddItem(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got usecase.CartView
	decodeData(t, rec, &got)
	assert.Equal(t, 1, got.TotalItems)
	assert.Equal(t, "€200.00", got.FormattedTotal)
}

func TestCartHandler_AddItem_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing name",
			body:      `{"id":"a","price":1,"quantity":1,"type":"bootcamp"}`,
			wantField: "name",
		},
		{
			name:      "zero quantity",
			body:      `{"id":"a","name":"A","price":1,"quantity":0,"type":"bootcamp"}`,
			wantField: "quantity",
		},
		{
			name:      "unknown type",
			body:      `{"id":"a","name":"A","price":1,"quantity":1,"type":"ebook"}`,
			wantField: "type",
		},
		{
			name: "malformed body",
			body: `{"id":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestCartHandler(t)
			e := newTestEcho()

			c, rec := newSessionContext(e, http.MethodPost, "/api/cart/items", tt.body)
			require.NoError(t, h.AddItem(c))

			errInfo := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
			if tt.wantField != "" {
				fields, ok := errInfo.Details.(map[string]any)
				require.True(t, ok, "details should list the rejected fields")
				assert.Contains(t, fields, tt.wantField)
			}
		})
	}
}

func TestCartHandler_ClearCartReturnsEmptyView(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	e := newTestEcho()

	cartUC.EXPECT().ClearCart(mock.Anything, testSessionID).Return(nil)
	cartUC.EXPECT().GetCart(mock.Anything, testSessionID).Return(&usecase.CartView{OwnerID: testSessionID, Items: []entity.CartItem{}}, nil)

	c, rec := newSessionContext(e, http.MethodDelete, "/api/cart", "")
	require.NoError(t, h.ClearCart(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got usecase.CartView
	decodeData(t, rec, &got)
	assert.Empty(t, got.Items)
	assert.Zero(t, got.TotalPrice)
}

func TestCartHandler_SetOpen(t *testing.T) {
	t.Run("requires open flag", func(t *testing.T) {
		h, _ := createTestCartHandler(t)
		e := newTestEcho()

		c, rec := newSessionContext(e, http.MethodPut, "/api/cart/open", `{}`)
		require.NoError(t, h.SetOpen(c))

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("closing is a valid value", func(t *testing.T) {
		h, cartUC := createTestCartHandler(t)
		e := newTestEcho()

		cartUC.EXPECT().SetOpen(mock.Anything, testSessionID, false).Return(&usecase.CartView{OwnerID: testSessionID}, nil)

		c, rec := newSessionContext(e, http.MethodPut, "/api/cart/open", `{"open":false}`)
		require.NoError(t, h.SetOpen(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCartHandler_UpdateItem(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	e := newTestEcho()

	cartUC.EXPECT().
		UpdateItem(mock.Anything, testSessionID, "bootcamp-mtm", mock.MatchedBy(func(p *usecase.CartItemPatch) bool {
			return p.Quantity != nil && *p.Quantity == 3 && p.Name == nil
		})).
		Return(&usecase.CartView{OwnerID: testSessionID, TotalItems: 3}, nil)

	c, rec := newSessionContext(e, http.MethodPatch, "/api/cart/items/bootcamp-mtm", `{"quantity":3}`)
	c.SetParamNames("id")
	c.SetParamValues("bootcamp-mtm")
	require.NoError(t, h.UpdateItem(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
