// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/shopspring/decimal"
)

// ItemType is the product family a cart line belongs to.
type ItemType string

const (
	// ItemTypeMembership is a member platform subscription.
	ItemTypeMembership ItemType = "membership"
	// ItemTypeBootcamp is a bootcamp/course seat.
	ItemTypeBootcamp ItemType = "bootcamp"
	// ItemTypeScanner is a TradingView scanner licence. It requires a TradingView username at checkout.
	ItemTypeScanner ItemType = "scanner"
	// ItemTypeCopytrading is a copytrading subscription.
	ItemTypeCopytrading ItemType = "copytrading"
)

// IsValid checks if the ItemType is a known value.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeMembership, ItemTypeBootcamp, ItemTypeScanner, ItemTypeCopytrading:
		return true
	default:
		return false
	}
}

// CartItemDetails carries optional product-specific data captured when the item is added.
type CartItemDetails struct {
	TradingViewUsername string `json:"tradingViewUsername,omitempty"`
	AffiliateCode       string `json:"affiliateCode,omitempty"`
	Duration            string `json:"duration,omitempty"`
}

// CartItem is one line of a cart. A cart holds at most one line per ID.
type CartItem struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Price    float64          `json:"price"`
	Quantity int              `json:"quantity"`
	Type     ItemType         `json:"type"`
	Details  *CartItemDetails `json:"details,omitempty"`
}

// LineTotal returns price * quantity without rounding.
func (i CartItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the set of lines owned by one browser session.
type Cart struct {
	OwnerID string     `json:"ownerId"`
	Items   []CartItem `json:"items"`
	IsOpen  bool       `json:"isOpen"`
}

// TotalItems returns the sum of quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

// TotalPrice returns the exact sum of price * quantity over all lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// HasItemType reports whether any line has the given type.
func (c *Cart) HasItemType(itemType ItemType) bool {
	for _, item := range c.Items {
		if item.Type == itemType {
			return true
		}
	}

	return false
}

// IndexOf returns the position of the line with the given id, or -1.
func (c *Cart) IndexOf(id string) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}

	return -1
}

// Clone returns a deep copy so callers cannot mutate the stored lines.
func (c *Cart) Clone() *Cart {
	items := make([]CartItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = item
		if item.Details != nil {
			details := *item.Details
			items[i].Details = &details
		}
	}

	return &Cart{
		OwnerID: c.OwnerID,
		Items:   items,
		IsOpen:  c.IsOpen,
	}
}
