package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PickupStatusScheduled = "scheduled"
	PickupStatusAssigned  = "assigned"
	PickupStatusCollected = "collected"
	PickupStatusReceived  = "received"
)

// PickupStatuses lists the accepted pickup states in their usual order.
// Transitions between them are not enforced.
var PickupStatuses = []string{
	PickupStatusScheduled,
	PickupStatusAssigned,
	PickupStatusCollected,
	PickupStatusReceived,
}

func IsValidPickupStatus(status string) bool {
	for _, s := range PickupStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// PickupRequest snapshots the customer and product fields of its enquiry at
// creation time. Later edits to the enquiry are not reflected here.
type PickupRequest struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	EnquiryID     uint            `gorm:"not null;index" json:"enquiry_id"`
	CustomerName  string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	Phone         string          `gorm:"type:varchar(50);not null" json:"phone"`
	Address       string          `gorm:"type:varchar(255);not null" json:"address"`
	Product       string          `gorm:"type:varchar(255);not null" json:"product"`
	Quantity      int             `gorm:"not null;default:1" json:"quantity"`
	AssignedTo    string          `gorm:"type:varchar(255)" json:"assigned_to"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	ScheduledDate *time.Time      `json:"scheduled_date"`
	Status        string          `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CollectedDate *time.Time      `json:"collected_date"`
	ReceivedDate  *time.Time      `json:"received_date"`
	ReceivedPhoto *string         `gorm:"type:varchar(500)" json:"received_photo"`
	ReceivedNotes *string         `gorm:"type:text" json:"received_notes"`
	ItemCondition *string         `gorm:"type:varchar(100)" json:"item_condition"`
	CreatedAt     time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (PickupRequest) TableName() string {
	return "pickup_requests"
}
