package model

import "time"

// CartLine is a product snapshot with its quantity. A cart holds at most
// one line per product id.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is price × quantity.
func (l CartLine) LineTotal() int {
	return l.Price * l.Quantity
}

type Address struct {
	FullName string `json:"fullName,omitempty" validate:"required"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state"`
	Pincode  string `json:"pincode" validate:"required,numeric,len=6"`
	Country  string `json:"country"`
	Phone    string `json:"phone,omitempty" validate:"required,min=10,max=15"`
}

type PaymentMethod string

const (
	PaymentCard       PaymentMethod = "card"
	PaymentUPI        PaymentMethod = "upi"
	PaymentWallet     PaymentMethod = "wallet"
	PaymentNetBanking PaymentMethod = "netbanking"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentUPI, PaymentWallet, PaymentNetBanking:
		return true
	}
	return false
}

// Payment is what the shopper submits at checkout or booking.
type Payment struct {
	Method PaymentMethod `json:"method"`
	UPIID  string        `json:"upiId,omitempty"`
}

type OrderStatus string

const (
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered, OrderCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransitionTo reports whether s → next is an edge of the order state machine.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is an immutable snapshot of a cart at checkout; only Status changes.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Items           []CartLine  `json:"items"`
	Total           int         `json:"total"`
	Date            time.Time   `json:"date"`
	Status          OrderStatus `json:"status"`
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
}
