package models

import "time"

const (
	EnquiryStatusPending   = "pending"
	EnquiryStatusFollowup  = "followup"
	EnquiryStatusConverted = "converted"
)

type Enquiry struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Name              string     `gorm:"type:varchar(255);not null" json:"name"`
	Phone             string     `gorm:"type:varchar(50);not null" json:"phone"`
	Location          string     `gorm:"type:varchar(255);not null" json:"location"`
	Message           *string    `gorm:"type:text" json:"message"`
	InquiryType       string     `gorm:"type:varchar(100);not null" json:"inquiry_type"`
	Product           string     `gorm:"type:varchar(255);not null" json:"product"`
	Quantity          int        `gorm:"not null;default:1" json:"quantity"`
	Status            string     `gorm:"type:varchar(50);not null;default:'pending';index" json:"status"`
	CreatedAt         time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	ContactedAt       *time.Time `json:"contacted_at"`
	ScheduledPickupAt *time.Time `json:"scheduled_pickup_at"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}
