package orders

import "time"

type StepStatus string

const (
	StepDone    StepStatus = "done"
	StepCurrent StepStatus = "current"
	StepPending StepStatus = "pending"
)

type TrackingStep struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      StepStatus `json:"status"`
}

type Tracking struct {
	OrderID string         `json:"order_id"`
	Order   Record         `json:"order"`
	Steps   []TrackingStep `json:"steps"`
}

var (
	processingAfter = time.Hour
	shippedAfter    = 24 * time.Hour
	deliveredAfter  = 72 * time.Hour
)

var trackingSteps = []TrackingStep{
	{Title: "Order Placed", Description: "Your order has been received"},
	{Title: "Processing", Description: "We're preparing your order"},
	{Title: "Shipped", Description: "Your order is on the way"},
	{Title: "Delivered", Description: "Expected delivery: Tomorrow"},
}

// BuildTracking derives the fulfilment timeline from the order's age.
func BuildTracking(rec Record, now time.Time) Tracking {
	age := now.Sub(rec.CreatedAt)
	reached := 0
	switch {
	case age >= deliveredAfter:
		reached = 3
	case age >= shippedAfter:
		reached = 2
	case age >= processingAfter:
		reached = 1
	}

	steps := make([]TrackingStep, len(trackingSteps))
	for i, step := range trackingSteps {
		switch {
		case i < reached:
			step.Status = StepDone
		case i == reached:
			step.Status = StepCurrent
		default:
			step.Status = StepPending
		}
		steps[i] = step
	}
	if reached == len(steps)-1 {
		steps[reached].Status = StepDone
		steps[reached].Description = "Your order has been delivered"
	}
	return Tracking{OrderID: rec.OrderID, Order: rec, Steps: steps}
}
