// Package sqlgen renders a generated dataset as three multi-row INSERT
// statements, one per table, in a fixed order: orders, order_items, payments.
package sqlgen

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"

	"bakery-seed/internal/fixture"
)

const timeLayout = "2006-01-02 15:04:05"

// Render writes the full seed script to w. String literals go through
// pq.QuoteLiteral, so embedded single quotes come out doubled and the text
// is safe to pipe straight into psql.
func Render(w io.Writer, ds *fixture.Dataset) error {
	var b strings.Builder

	renderOrders(&b, ds.Orders)
	b.WriteString("\n")
	renderItems(&b, ds.Items)
	b.WriteString("\n")
	renderPayments(&b, ds.Payments)

	_, err := io.WriteString(w, b.String())
	return err
}

func renderOrders(b *strings.Builder, orders []fixture.Order) {
	b.WriteString("-- Orders for 2025 (up to 10 per month)\n")
	b.WriteString("INSERT INTO orders (code, customer_id, total_amount, status, shipping_fee, shipping_address, note, created_at, updated_at) VALUES\n")
	for i, o := range orders {
		fmt.Fprintf(b, "(%s, %d, %d, %s, %d, %s, %s, %s, %s)%s\n",
			quote(o.Code),
			o.CustomerID,
			o.TotalAmount,
			quote(string(o.Status)),
			o.ShippingFee,
			quote(o.ShippingAddress),
			quoteNullable(o.Note),
			quoteTime(o.CreatedAt),
			quoteTime(o.UpdatedAt),
			terminator(i, len(orders)),
		)
	}
}

func renderItems(b *strings.Builder, items []fixture.OrderItem) {
	// Grouped by order regardless of how the generator appended them.
	sorted := make([]fixture.OrderItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderID < sorted[j].OrderID
	})

	b.WriteString("-- Order items for 2025 orders\n")
	b.WriteString("INSERT INTO order_items (order_id, product_id, unit_price, quantity, total_price, product_name, product_image) VALUES\n")
	for i, it := range sorted {
		fmt.Fprintf(b, "(%d, %d, %d, %d, %d, %s, %s)%s\n",
			it.OrderID,
			it.ProductID,
			it.UnitPrice,
			it.Quantity,
			it.TotalPrice,
			quote(it.ProductName),
			quote(it.ProductImage),
			terminator(i, len(sorted)),
		)
	}
}

func renderPayments(b *strings.Builder, payments []fixture.Payment) {
	b.WriteString("-- Payments for 2025 orders\n")
	b.WriteString("INSERT INTO payments (order_id, amount, method, transaction_id, status, paid_at, created_at) VALUES\n")
	for i, p := range payments {
		fmt.Fprintf(b, "(%d, %d, %s, %s, %s, %s, %s)%s\n",
			p.OrderID,
			p.Amount,
			quote(string(p.Method)),
			quote(p.TransactionID),
			quote(string(p.Status)),
			quoteNullableTime(p.PaidAt),
			quoteTime(p.CreatedAt),
			terminator(i, len(payments)),
		)
	}
}

func quote(s string) string {
	return pq.QuoteLiteral(s)
}

func quoteNullable(s *string) string {
	if s == nil {
		return "NULL"
	}
	return quote(*s)
}

func quoteTime(t time.Time) string {
	return quote(t.Format(timeLayout))
}

func quoteNullableTime(t *time.Time) string {
	if t == nil {
		return "NULL"
	}
	return quoteTime(*t)
}

func terminator(i, n int) string {
	if i == n-1 {
		return ";"
	}
	return ","
}
