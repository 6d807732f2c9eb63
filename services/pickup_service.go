package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/crm-backend/cache"
	"github.com/yeremiapane/crm-backend/events"
	"github.com/yeremiapane/crm-backend/models"
	"gorm.io/gorm"
)

var ErrPickupNotFound = errors.New("pickup not found")

type CreatePickupInput struct {
	AssignedTo string
	Amount     decimal.Decimal
	// ScheduledDate defaults to the current time when nil.
	ScheduledDate *time.Time
}

type ReceivedDetails struct {
	PhotoURL  string
	Notes     *string
	Condition *string
}

type PickupService interface {
	CreateFromEnquiry(ctx context.Context, enquiryID uint, input CreatePickupInput) (uint, error)
	FindAll(ctx context.Context, filter PickupFilter) ([]models.PickupRequest, error)
	FindByID(ctx context.Context, id uint) (*models.PickupRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	AssignPickup(ctx context.Context, id uint, staffName string) error
	UpdateAmount(ctx context.Context, id uint, amount decimal.Decimal) error
	AddReceivedDetails(ctx context.Context, id uint, details ReceivedDetails) error
	Delete(ctx context.Context, id uint) error
	DashboardStats(ctx context.Context) (*models.PickupStats, error)
	FindByStatus(ctx context.Context, status string) ([]models.PickupRequest, error)
}

type pickupService struct {
	db        *gorm.DB
	enquiries EnquiryService
	options
}

func NewPickupService(db *gorm.DB, enquiries EnquiryService, opts ...Option) PickupService {
	return &pickupService{
		db:        db,
		enquiries: enquiries,
		options:   buildOptions(opts),
	}
}

// CreateFromEnquiry copies the enquiry's customer and product fields into a
// new scheduled pickup. The lookup and the insert are separate statements.
func (s *pickupService) CreateFromEnquiry(ctx context.Context, enquiryID uint, input CreatePickupInput) (uint, error) {
	enquiry, err := s.enquiries.FindByID(ctx, enquiryID)
	if err != nil {
		return 0, err
	}

	now := s.now()
	scheduled := input.ScheduledDate
	if scheduled == nil {
		scheduled = &now
	}
	quantity := enquiry.Quantity
	if quantity == 0 {
		quantity = 1
	}

	pickup := models.PickupRequest{
		EnquiryID:     enquiry.ID,
		CustomerName:  enquiry.Name,
		Phone:         enquiry.Phone,
		Address:       enquiry.Location,
		Product:       enquiry.Product,
		Quantity:      quantity,
		AssignedTo:    input.AssignedTo,
		Amount:        input.Amount,
		ScheduledDate: scheduled,
		Status:        models.PickupStatusScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.db.WithContext(ctx).Create(&pickup).Error; err != nil {
		return 0, err
	}

	s.invalidate(ctx, cache.PickupDashboardKey)
	s.emit(ctx, events.PickupCreated, pickup.ID, pickup)
	return pickup.ID, nil
}

func (s *pickupService) FindAll(ctx context.Context, filter PickupFilter) ([]models.PickupRequest, error) {
	return s.list(ctx, filter.Scopes()...)
}

func (s *pickupService) FindByID(ctx context.Context, id uint) (*models.PickupRequest, error) {
	var pickup models.PickupRequest
	if err := s.db.WithContext(ctx).First(&pickup, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPickupNotFound
		}
		return nil, err
	}
	return &pickup, nil
}

// UpdateStatus stores status as given. Moving to collected or received also
// stamps the matching date; no other status has a side effect.
func (s *pickupService) UpdateStatus(ctx context.Context, id uint, status string) error {
	columns := map[string]interface{}{"status": status}
	switch status {
	case models.PickupStatusCollected:
		columns["collected_date"] = s.now()
	case models.PickupStatusReceived:
		columns["received_date"] = s.now()
	}
	if err := s.patch(ctx, id, columns); err != nil {
		return err
	}
	s.emit(ctx, events.PickupStatusChanged, id, map[string]string{"status": status})
	return nil
}

// AssignPickup sets the staff member and forces the assigned status whatever
// the current one is.
func (s *pickupService) AssignPickup(ctx context.Context, id uint, staffName string) error {
	err := s.patch(ctx, id, map[string]interface{}{
		"assigned_to": staffName,
		"status":      models.PickupStatusAssigned,
	})
	if err != nil {
		return err
	}
	s.emit(ctx, events.PickupAssigned, id, map[string]string{"assigned_to": staffName})
	return nil
}

func (s *pickupService) UpdateAmount(ctx context.Context, id uint, amount decimal.Decimal) error {
	if err := s.patch(ctx, id, map[string]interface{}{"amount": amount}); err != nil {
		return err
	}
	s.emit(ctx, events.PickupAmountUpdated, id, map[string]decimal.Decimal{"amount": amount})
	return nil
}

func (s *pickupService) AddReceivedDetails(ctx context.Context, id uint, details ReceivedDetails) error {
	err := s.patch(ctx, id, map[string]interface{}{
		"received_photo": details.PhotoURL,
		"received_notes": details.Notes,
		"item_condition": details.Condition,
	})
	if err != nil {
		return err
	}
	s.emit(ctx, events.PickupReceivedDetails, id, nil)
	return nil
}

// Delete removes the row without checking it exists. The originating enquiry
// is left untouched.
func (s *pickupService) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.PickupRequest{}, id).Error; err != nil {
		return err
	}
	s.invalidate(ctx, cache.PickupDashboardKey)
	s.emit(ctx, events.PickupDeleted, id, nil)
	return nil
}

func (s *pickupService) DashboardStats(ctx context.Context) (*models.PickupStats, error) {
	var stats models.PickupStats
	err := s.cachedStats(ctx, cache.PickupDashboardKey, &stats, func() error {
		counts := []struct {
			dest   *int64
			status string
		}{
			{&stats.Total, ""},
			{&stats.Scheduled, models.PickupStatusScheduled},
			{&stats.Assigned, models.PickupStatusAssigned},
			{&stats.Collected, models.PickupStatusCollected},
			{&stats.Received, models.PickupStatusReceived},
		}
		for _, c := range counts {
			q := s.db.WithContext(ctx).Model(&models.PickupRequest{})
			if c.status != "" {
				q = q.Scopes(FieldEquals("status", c.status))
			}
			if err := q.Count(c.dest).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *pickupService) FindByStatus(ctx context.Context, status string) ([]models.PickupRequest, error) {
	return s.list(ctx, FieldEquals("status", status))
}

func (s *pickupService) list(ctx context.Context, scopes ...Scope) ([]models.PickupRequest, error) {
	pickups := []models.PickupRequest{}
	err := s.db.WithContext(ctx).
		Scopes(scopes...).
		Scopes(NewestFirst).
		Find(&pickups).Error
	if err != nil {
		return nil, err
	}
	return pickups, nil
}

func (s *pickupService) patch(ctx context.Context, id uint, columns map[string]interface{}) error {
	columns["updated_at"] = s.now()
	err := s.db.WithContext(ctx).
		Model(&models.PickupRequest{}).
		Where("id = ?", id).
		Updates(columns).Error
	if err != nil {
		return err
	}
	s.invalidate(ctx, cache.PickupDashboardKey)
	return nil
}
