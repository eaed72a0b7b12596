package fixture

import "time"

type OrderStatus string

const (
	OrderDelivered OrderStatus = "DELIVERED"
	OrderShipping  OrderStatus = "SHIPPING"
	OrderPending   OrderStatus = "PENDING"
	OrderCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "PAID"
	PaymentPending  PaymentStatus = "PENDING"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type PaymentMethod string

const (
	MethodStripe PaymentMethod = "STRIPE"
	MethodCash   PaymentMethod = "CASH"
)

type Order struct {
	ID              int
	Code            string
	CustomerID      int
	TotalAmount     int
	Status          OrderStatus
	ShippingFee     int
	ShippingAddress string
	Note            *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem snapshots product name, image and unit price at generation time,
// so later catalog edits never rewrite history.
type OrderItem struct {
	OrderID      int
	ProductID    int
	UnitPrice    int
	Quantity     int
	TotalPrice   int
	ProductName  string
	ProductImage string
}

type Payment struct {
	OrderID       int
	Amount        int
	Method        PaymentMethod
	TransactionID string
	Status        PaymentStatus
	PaidAt        *time.Time
	CreatedAt     time.Time
}

// Dataset is the result of one generation run: three collections linked by
// the synthetic order id.
type Dataset struct {
	Orders   []Order
	Items    []OrderItem
	Payments []Payment
}
