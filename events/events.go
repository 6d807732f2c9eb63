package events

import (
	"context"
	"time"

	"github.com/yeremiapane/crm-backend/utils"
)

const (
	EnquiryCreated         = "enquiry.created"
	EnquiryUpdated         = "enquiry.updated"
	EnquiryDeleted         = "enquiry.deleted"
	EnquiryStatusChanged   = "enquiry.status_changed"
	EnquiryContacted       = "enquiry.contacted"
	EnquiryPickupScheduled = "enquiry.pickup_scheduled"

	PickupCreated         = "pickup.created"
	PickupStatusChanged   = "pickup.status_changed"
	PickupAssigned        = "pickup.assigned"
	PickupAmountUpdated   = "pickup.amount_updated"
	PickupReceivedDetails = "pickup.received_details"
	PickupDeleted         = "pickup.deleted"
)

type Event struct {
	Type       string      `json:"event"`
	ID         uint        `json:"id"`
	Data       interface{} `json:"data,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Publisher delivers domain events after the corresponding write has been
// committed. Delivery is best-effort.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Multi fans an event out to every publisher and returns the first error.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, evt Event) error {
	var first error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, evt); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Emit publishes evt and logs, rather than returns, any failure.
func Emit(ctx context.Context, p Publisher, evt Event) {
	if p == nil {
		return
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now()
	}
	if err := p.Publish(ctx, evt); err != nil {
		utils.ErrorLogger.Printf("Failed to publish %s event for id %d: %v", evt.Type, evt.ID, err)
	}
}
