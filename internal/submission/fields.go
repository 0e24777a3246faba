package submission

import (
	"fmt"
	"strings"

	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/pkg/money"
)

// NoPaymentID stands in for the payment id on manually confirmed orders.
const NoPaymentID = "N/A"

// Fields flattens an order into the named fields shared by the email template and webhook form.
func Fields(rec orders.Record) map[string]string {
	paymentID := rec.PaymentID
	if paymentID == "" {
		paymentID = NoPaymentID
	}
	return map[string]string{
		"order_id":         rec.OrderID,
		"to_name":          rec.Customer.Name,
		"to_email":         rec.Customer.Email,
		"customer_name":    rec.Customer.Name,
		"customer_email":   rec.Customer.Email,
		"customer_phone":   rec.Customer.Phone,
		"customer_address": rec.Customer.Address,
		"order_items":      ItemList(rec.Items),
		"subtotal":         money.Format(rec.Subtotal),
		"shipping":         money.Format(rec.Shipping),
		"tax":              money.Format(rec.Tax),
		"total":            money.Format(rec.Total),
		"payment_status":   rec.PaymentStatus.String(),
		"payment_method":   rec.PaymentMethod.String(),
		"payment_id":       paymentID,
		"order_date":       rec.OrderDate,
		"order_time":       rec.OrderTime,
	}
}

// ItemList renders one "Name x Qty - ₹line total" entry per line.
func ItemList(items []orders.Item) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s x %d - %s", item.Name, item.Quantity, money.Format(item.Price*int64(item.Quantity))))
	}
	return strings.Join(lines, "\n")
}
