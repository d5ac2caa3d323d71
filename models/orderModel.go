package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderItem is one line on an order: a snapshot of the menu item plus a
// quantity.
type OrderItem struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

func (oi OrderItem) LineTotal() decimal.Decimal {
	return oi.Item.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

// Order groups the items for one reservation. ReservationID is a weak
// reference; the sheet does not validate it on creation.
type Order struct {
	ID            string      `json:"id"`
	ReservationID string      `json:"reservationId"`
	Items         []OrderItem `json:"items"`
}

// AddItem appends a line, merging the quantity into an existing line when the
// menu item name already appears on the order.
func (o *Order) AddItem(item MenuItem, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: order quantity must be positive", ErrInvalidInput)
	}
	for i := range o.Items {
		if o.Items[i].Item.Name == item.Name {
			o.Items[i].Quantity += quantity
			return nil
		}
	}
	o.Items = append(o.Items, OrderItem{Item: item, Quantity: quantity})
	return nil
}

func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}
