// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/util"

	"go.uber.org/fx"
)

const (
	cartIdleTTL       = 2 * time.Hour
	cartSweepInterval = time.Minute
)

// cartService implements the CartUsecase interface. Carts are hydrated on first use
// and written back whole after every mutation. The in-memory copy is a cache: idle
// entries are evicted and empty carts are never cached by reads.
type cartService struct {
	mu        sync.Mutex
	carts     map[string]*entity.Cart
	lastUsed  map[string]time.Time
	lastSweep time.Time
	cartRepo  repository.CartRepository
	metrics   service.Metrics
	now       func() time.Time
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	Metrics  service.Metrics
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		carts:    make(map[string]*entity.Cart),
		lastUsed: make(map[string]time.Time),
		cartRepo: params.CartRepo,
		metrics:  params.Metrics,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) GetCart(ctx context.Context, ownerID string) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return toCartView(srv.lookupLocked(ctx, ownerID)), nil
}

func (srv *cartService) Snapshot(ctx context.Context, ownerID string) (*entity.Cart, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.lookupLocked(ctx, ownerID).Clone(), nil
}

func (srv *cartService) AddItem(ctx context.Context, ownerID string, input *usecase.CartItemInput) (*usecase.CartView, error) {
	if err := validateCartItem(input); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart := srv.cartLocked(ctx, ownerID)
	if idx := cart.IndexOf(input.ID); idx >= 0 {
		// existing line: only the quantity changes
		cart.Items[idx].Quantity += input.Quantity
	} else {
		item := entity.CartItem{
			ID:       input.ID,
			Name:     input.Name,
			Price:    input.Price,
			Quantity: input.Quantity,
			Type:     input.Type,
		}
		if input.Details != nil {
			details := *input.Details
			item.Details = &details
		}
		cart.Items = append(cart.Items, item)
	}
	cart.IsOpen = true

	srv.persistLocked(ctx, cart)

	return toCartView(cart), nil
}

func (srv *cartService) RemoveItem(ctx context.Context, ownerID, itemID string) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart := srv.cartLocked(ctx, ownerID)
	idx := cart.IndexOf(itemID)
	if idx < 0 {
		return toCartView(cart), nil
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	srv.persistLocked(ctx, cart)

	return toCartView(cart), nil
}

func (srv *cartService) UpdateItem(ctx context.Context, ownerID, itemID string, patch *usecase.CartItemPatch) (*usecase.CartView, error) {
	if err := validateCartPatch(patch); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart := srv.cartLocked(ctx, ownerID)
	idx := cart.IndexOf(itemID)
	if idx < 0 {
		return toCartView(cart), nil
	}

	item := &cart.Items[idx]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Details != nil {
		details := *patch.Details
		item.Details = &details
	}

	srv.persistLocked(ctx, cart)

	return toCartView(cart), nil
}

func (srv *cartService) ClearCart(ctx context.Context, ownerID string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart := srv.cartLocked(ctx, ownerID)
	cart.Items = []entity.CartItem{}
	srv.persistLocked(ctx, cart)
	srv.forgetLocked(ownerID)

	return nil
}

// SetOpen only changes presentation state and is never persisted.
func (srv *cartService) SetOpen(ctx context.Context, ownerID string, open bool) (*usecase.CartView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart := srv.cartLocked(ctx, ownerID)
	cart.IsOpen = open

	return toCartView(cart), nil
}

// lookupLocked returns the owner's cart for reading. A cart that is neither cached
// nor stored with items is returned without being cached. Callers must hold srv.mu.
func (srv *cartService) lookupLocked(ctx context.Context, ownerID string) *entity.Cart {
	if cart, ok := srv.carts[ownerID]; ok {
		srv.lastUsed[ownerID] = srv.now()

		return cart
	}

	cart := srv.loadCart(ctx, ownerID)
	if len(cart.Items) > 0 {
		srv.cacheLocked(cart)
	}

	return cart
}

// cartLocked returns the owner's cart for writing, caching it. Callers must hold srv.mu.
func (srv *cartService) cartLocked(ctx context.Context, ownerID string) *entity.Cart {
	srv.sweepLocked()

	if cart, ok := srv.carts[ownerID]; ok {
		srv.lastUsed[ownerID] = srv.now()

		return cart
	}

	cart := srv.loadCart(ctx, ownerID)
	srv.cacheLocked(cart)

	return cart
}

// loadCart reads the stored items. Unreadable data yields an empty cart.
func (srv *cartService) loadCart(ctx context.Context, ownerID string) *entity.Cart {
	items, err := srv.cartRepo.LoadCart(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load cart, starting empty",
			slog.String("owner_id", ownerID),
			slog.Any("error", err),
		)
		items = []entity.CartItem{}
	}

	return &entity.Cart{OwnerID: ownerID, Items: items}
}

func (srv *cartService) cacheLocked(cart *entity.Cart) {
	srv.carts[cart.OwnerID] = cart
	srv.lastUsed[cart.OwnerID] = srv.now()
}

func (srv *cartService) forgetLocked(ownerID string) {
	delete(srv.carts, ownerID)
	delete(srv.lastUsed, ownerID)
}

// sweepLocked evicts carts idle for longer than cartIdleTTL. Their items stay in storage.
func (srv *cartService) sweepLocked() {
	now := srv.now()
	if now.Sub(srv.lastSweep) < cartSweepInterval {
		return
	}
	srv.lastSweep = now

	for ownerID, used := range srv.lastUsed {
		if now.Sub(used) > cartIdleTTL {
			srv.forgetLocked(ownerID)
		}
	}
}

func (srv *cartService) persistLocked(ctx context.Context, cart *entity.Cart) {
	if err := srv.cartRepo.SaveCart(ctx, cart.OwnerID, cart.Items); err != nil {
		srv.log(ctx).Error("Failed to persist cart",
			slog.String("owner_id", cart.OwnerID),
			slog.Any("error", err),
		)
		srv.metrics.StoreWriteFailed(constants.KeyCartPrefix)
	}
}

func validateCartItem(input *usecase.CartItemInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("item is required")
	}

	return validateStruct(input)
}

func validateCartPatch(patch *usecase.CartItemPatch) error {
	if patch == nil {
		return domainerrors.ErrValidationFailed.WithDetails("patch is required")
	}

	return validateStruct(patch)
}

func toCartView(cart *entity.Cart) *usecase.CartView {
	snapshot := cart.Clone()
	total := snapshot.TotalPrice()

	return &usecase.CartView{
		OwnerID:        snapshot.OwnerID,
		Items:          snapshot.Items,
		IsOpen:         snapshot.IsOpen,
		TotalItems:     snapshot.TotalItems(),
		TotalPrice:     total.InexactFloat64(),
		FormattedTotal: util.FormatCurrency(total),
	}
}
