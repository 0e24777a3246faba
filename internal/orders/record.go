// Package orders defines the order record written by checkout and reads it back for tracking.
package orders

import (
	"time"

	"github.com/naturesnacks/snackstore/pkg/enums"
)

const (
	orderKeyPrefix = "order_"
	// IndexKey holds the JSON array of Summary entries, oldest first.
	IndexKey = "orders_index"
)

// OrderKey is the backup key for one order record.
func OrderKey(orderID string) string {
	return orderKeyPrefix + orderID
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// Record is the immutable snapshot of one checkout attempt. A retry creates a new record.
type Record struct {
	OrderID string `json:"order_id"`
	// SessionID is the storefront session that placed the order; lookups are scoped to it.
	SessionID     string              `json:"session_id"`
	Customer      Customer            `json:"customer"`
	Items         []Item              `json:"items"`
	Subtotal      int64               `json:"subtotal"`
	Shipping      int64               `json:"shipping"`
	Tax           int64               `json:"tax"`
	Total         int64               `json:"total"`
	PaymentStatus enums.PaymentStatus `json:"payment_status"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	PaymentID     string              `json:"payment_id,omitempty"`
	OrderDate     string              `json:"order_date"`
	OrderTime     string              `json:"order_time"`
	CreatedAt     time.Time           `json:"created_at"`
}

// Summary is the lightweight index entry kept for every backed-up order.
type Summary struct {
	OrderID      string `json:"order_id"`
	SessionID    string `json:"session_id"`
	CustomerName string `json:"customer_name"`
	Total        int64  `json:"total"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

func (r Record) Summary() Summary {
	return Summary{
		OrderID:      r.OrderID,
		SessionID:    r.SessionID,
		CustomerName: r.Customer.Name,
		Total:        r.Total,
		Date:         r.OrderDate,
		Time:         r.OrderTime,
	}
}
