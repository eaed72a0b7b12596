// Package fixture builds a year of synthetic bakery orders, line items and
// payments. All randomness flows through one explicitly seeded math/rand
// instance, so a fixed seed reproduces the same dataset byte for byte. The
// draw sequence per order is fixed: customer, item count, product subset,
// quantities, hour, minute, status index, update delta, note, paid delta.
//
// The PRNG is Go's math/rand rather than the generator the original seed
// script used; output is reproducible across runs of this tool, not across
// implementations.
package fixture

import (
	"fmt"
	"math/rand"
	"time"

	"bakery-seed/internal/catalog"
)

const (
	// fixtureYear is stamped into every order timestamp. The month window
	// and the future cutoff are computed from Config.Today instead; the
	// mismatch is inherited behavior and kept as is.
	fixtureYear = 2025

	daysPerMonth = 10
	shippingFee  = 30000

	// Ids below these belong to hand-written demo rows in the schema dump.
	startOrderID   = 21
	startOrderCode = 2001
)

// The three tables are indexed by a single status draw in [0,9], so one draw
// fixes the order status, payment status and payment method together. They
// must stay aligned position by position; the array types pin the length.
var (
	orderStatuses = [10]OrderStatus{
		OrderDelivered, OrderDelivered, OrderDelivered, OrderDelivered,
		OrderDelivered, OrderDelivered, OrderShipping, OrderPending,
		OrderPending, OrderCancelled,
	}
	paymentStatuses = [10]PaymentStatus{
		PaymentPaid, PaymentPaid, PaymentPaid, PaymentPaid,
		PaymentPaid, PaymentPaid, PaymentPaid, PaymentPending,
		PaymentPending, PaymentRefunded,
	}
	paymentMethods = [10]PaymentMethod{
		MethodStripe, MethodStripe, MethodStripe, MethodStripe,
		MethodCash, MethodCash, MethodStripe, MethodStripe,
		MethodCash, MethodStripe,
	}
)

// noteChoices[0] is the "no note" outcome.
var noteChoices = [6]string{
	"",
	"Giao vào buổi sáng",
	"Giao trước 12h",
	"Giao vào buổi chiều",
	"Giao vào buổi tối",
	"Giao vào cuối tuần",
}

type Config struct {
	Seed      int64
	Today     time.Time
	Products  []catalog.Product
	Customers []catalog.Customer
}

type Generator struct {
	rng       *rand.Rand
	products  []catalog.Product
	customers []catalog.Customer
	today     time.Time
}

func New(cfg Config) (*Generator, error) {
	if len(cfg.Products) == 0 {
		return nil, fmt.Errorf("products: %w", catalog.ErrEmptyTable)
	}
	if len(cfg.Customers) == 0 {
		return nil, fmt.Errorf("customers: %w", catalog.ErrEmptyTable)
	}
	return &Generator{
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		products:  cfg.Products,
		customers: cfg.Customers,
		today:     cfg.Today,
	}, nil
}

// Generate runs the sampling loop once: up to ten representative days for
// every month of the fixture year, one order per day, capped at Today.
func (g *Generator) Generate() *Dataset {
	ds := &Dataset{}

	orderID := startOrderID
	orderCode := startOrderCode

	currentMonth := int(g.today.Month())
	currentDay := g.today.Day()

	for month := 1; month <= 12; month++ {
		days := daysPerMonth
		if !(month < currentMonth || (month == 12 && currentMonth == 12)) {
			days = min(daysPerMonth, currentDay)
		}

		for offset := 0; offset < days; offset++ {
			day := offset + 1
			if month == currentMonth && day > currentDay {
				break
			}

			customer := g.customers[g.rng.Intn(len(g.customers))]

			numItems := 2 + g.rng.Intn(3)
			selected := g.sampleProducts(numItems)

			items := make([]OrderItem, 0, numItems)
			totalAmount := 0
			for _, p := range selected {
				quantity := 1 + g.rng.Intn(3)
				totalPrice := p.Price * quantity
				totalAmount += totalPrice
				items = append(items, OrderItem{
					ProductID:    p.ID,
					UnitPrice:    p.Price,
					Quantity:     quantity,
					TotalPrice:   totalPrice,
					ProductName:  p.Name,
					ProductImage: p.Image,
				})
			}
			totalAmount += shippingFee

			orderDay := min(day, 28)
			if month == currentMonth {
				orderDay = min(day, currentDay)
			}
			hour := 8 + g.rng.Intn(13)
			minute := g.rng.Intn(60)
			createdAt := time.Date(fixtureYear, time.Month(month), orderDay, hour, minute, 0, 0, time.UTC)

			// Skip-and-continue: a future-dated order is dropped whole,
			// counters untouched.
			if createdAt.After(g.today) {
				continue
			}

			statusIdx := g.rng.Intn(len(orderStatuses))
			status := orderStatuses[statusIdx]

			updatedAt := createdAt
			switch status {
			case OrderDelivered:
				updatedAt = createdAt.Add(time.Duration(4+g.rng.Intn(5)) * time.Hour)
			case OrderShipping:
				updatedAt = createdAt.Add(time.Duration(1+g.rng.Intn(3)) * time.Hour)
			}

			var note *string
			if n := noteChoices[g.rng.Intn(len(noteChoices))]; n != "" {
				note = &n
			}

			ds.Orders = append(ds.Orders, Order{
				ID:              orderID,
				Code:            fmt.Sprintf("ORD%d", orderCode),
				CustomerID:      customer.ID,
				TotalAmount:     totalAmount,
				Status:          status,
				ShippingFee:     shippingFee,
				ShippingAddress: customer.Address,
				Note:            note,
				CreatedAt:       createdAt,
				UpdatedAt:       updatedAt,
			})

			for _, it := range items {
				it.OrderID = orderID
				ds.Items = append(ds.Items, it)
			}

			paymentStatus := paymentStatuses[statusIdx]
			var paidAt *time.Time
			if paymentStatus == PaymentPaid {
				t := createdAt.Add(time.Duration(5+g.rng.Intn(26)) * time.Minute)
				paidAt = &t
			}
			ds.Payments = append(ds.Payments, Payment{
				OrderID:       orderID,
				Amount:        totalAmount,
				Method:        paymentMethods[statusIdx],
				TransactionID: fmt.Sprintf("TXN%d", orderCode),
				Status:        paymentStatus,
				PaidAt:        paidAt,
				CreatedAt:     createdAt,
			})

			orderID++
			orderCode++
		}
	}

	return ds
}

// sampleProducts picks n distinct products, uniform without replacement.
func (g *Generator) sampleProducts(n int) []catalog.Product {
	perm := g.rng.Perm(len(g.products))
	out := make([]catalog.Product, n)
	for i := 0; i < n; i++ {
		out[i] = g.products[perm[i]]
	}
	return out
}
