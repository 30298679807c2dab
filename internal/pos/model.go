package pos

import "github.com/josepha8674-lab/Best-restaurant/internal/menu"

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentQRCode PaymentMethod = "qrcode"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentQRCode
}

// CartItem is one line of the open cart: a snapshot of the menu item at the
// moment it was added, plus a per-line id and a quantity of at least 1.
type CartItem struct {
	menu.MenuItem

	CartID string `json:"cartId" firestore:"cartId"`
	Qty    int    `json:"qty" firestore:"qty"`
}

// Sale is the immutable record of a completed checkout. Totals are computed
// once at checkout and frozen; the sales log is append-only.
type Sale struct {
	ID            string        `json:"id" firestore:"-"`
	Timestamp     int64         `json:"timestamp" firestore:"timestamp"`
	Items         []CartItem    `json:"items" firestore:"items"`
	TotalAmount   float64       `json:"totalAmount" firestore:"totalAmount"`
	TotalCost     float64       `json:"totalCost" firestore:"totalCost"`
	PaymentMethod PaymentMethod `json:"paymentMethod" firestore:"paymentMethod"`
}
