package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/crm-backend/cache"
	"github.com/yeremiapane/crm-backend/events"
	"github.com/yeremiapane/crm-backend/models"
	"gorm.io/gorm"
)

var ErrEnquiryNotFound = errors.New("enquiry not found")

// EnquiryFields carries the writable columns of an enquiry. Status is ignored
// on create.
type EnquiryFields struct {
	Name        string
	Phone       string
	Location    string
	Message     *string
	InquiryType string
	Product     string
	Quantity    int
	Status      string
}

type EnquiryService interface {
	Create(ctx context.Context, fields EnquiryFields) (uint, error)
	FindAll(ctx context.Context, filter EnquiryFilter) ([]models.Enquiry, error)
	FindByID(ctx context.Context, id uint) (*models.Enquiry, error)
	Update(ctx context.Context, id uint, fields EnquiryFields) error
	Delete(ctx context.Context, id uint) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	MarkContacted(ctx context.Context, id uint) error
	SchedulePickup(ctx context.Context, id uint) error
	DashboardStats(ctx context.Context) (*models.EnquiryStats, error)
	FindByStatus(ctx context.Context, status string) ([]models.Enquiry, error)
	GetThisMonth(ctx context.Context) ([]models.Enquiry, error)
	GetThisWeek(ctx context.Context) ([]models.Enquiry, error)
	GetConverted(ctx context.Context) ([]models.Enquiry, error)
}

type enquiryService struct {
	db *gorm.DB
	options
}

func NewEnquiryService(db *gorm.DB, opts ...Option) EnquiryService {
	return &enquiryService{
		db:      db,
		options: buildOptions(opts),
	}
}

// Create stores a new enquiry in the pending state. Required fields are the
// caller's responsibility.
func (s *enquiryService) Create(ctx context.Context, fields EnquiryFields) (uint, error) {
	now := s.now()
	quantity := fields.Quantity
	if quantity == 0 {
		quantity = 1
	}

	enquiry := models.Enquiry{
		Name:        fields.Name,
		Phone:       fields.Phone,
		Location:    fields.Location,
		Message:     fields.Message,
		InquiryType: fields.InquiryType,
		Product:     fields.Product,
		Quantity:    quantity,
		Status:      models.EnquiryStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.db.WithContext(ctx).Create(&enquiry).Error; err != nil {
		return 0, err
	}

	s.invalidate(ctx, cache.EnquiryDashboardKey)
	s.emit(ctx, events.EnquiryCreated, enquiry.ID, enquiry)
	return enquiry.ID, nil
}

func (s *enquiryService) FindAll(ctx context.Context, filter EnquiryFilter) ([]models.Enquiry, error) {
	return s.list(ctx, filter.Scopes(s.now())...)
}

func (s *enquiryService) FindByID(ctx context.Context, id uint) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	if err := s.db.WithContext(ctx).First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

// Update overwrites every writable column, including clearing message when
// fields.Message is nil.
func (s *enquiryService) Update(ctx context.Context, id uint, fields EnquiryFields) error {
	quantity := fields.Quantity
	if quantity == 0 {
		quantity = 1
	}

	err := s.patch(ctx, id, map[string]interface{}{
		"name":         fields.Name,
		"phone":        fields.Phone,
		"location":     fields.Location,
		"message":      fields.Message,
		"inquiry_type": fields.InquiryType,
		"product":      fields.Product,
		"quantity":     quantity,
		"status":       fields.Status,
	})
	if err != nil {
		return err
	}
	s.emit(ctx, events.EnquiryUpdated, id, nil)
	return nil
}

func (s *enquiryService) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Enquiry{}, id).Error; err != nil {
		return err
	}
	s.invalidate(ctx, cache.EnquiryDashboardKey)
	s.emit(ctx, events.EnquiryDeleted, id, nil)
	return nil
}

func (s *enquiryService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if err := s.patch(ctx, id, map[string]interface{}{"status": status}); err != nil {
		return err
	}
	s.emit(ctx, events.EnquiryStatusChanged, id, map[string]string{"status": status})
	return nil
}

func (s *enquiryService) MarkContacted(ctx context.Context, id uint) error {
	if err := s.patch(ctx, id, map[string]interface{}{"contacted_at": s.now()}); err != nil {
		return err
	}
	s.emit(ctx, events.EnquiryContacted, id, nil)
	return nil
}

func (s *enquiryService) SchedulePickup(ctx context.Context, id uint) error {
	if err := s.patch(ctx, id, map[string]interface{}{"scheduled_pickup_at": s.now()}); err != nil {
		return err
	}
	s.emit(ctx, events.EnquiryPickupScheduled, id, nil)
	return nil
}

func (s *enquiryService) DashboardStats(ctx context.Context) (*models.EnquiryStats, error) {
	var stats models.EnquiryStats
	err := s.cachedStats(ctx, cache.EnquiryDashboardKey, &stats, func() error {
		now := s.now()
		counts := []struct {
			dest  *int64
			scope Scope
		}{
			{&stats.Total, nil},
			{&stats.ThisMonth, CreatedThisMonth(now)},
			{&stats.ThisWeek, CreatedThisWeek(now)},
			{&stats.Converted, FieldEquals("status", models.EnquiryStatusConverted)},
			{&stats.PendingFollowup, func(db *gorm.DB) *gorm.DB {
				return db.Where("status IN ?", []string{models.EnquiryStatusPending, models.EnquiryStatusFollowup})
			}},
		}
		for _, c := range counts {
			q := s.db.WithContext(ctx).Model(&models.Enquiry{})
			if c.scope != nil {
				q = q.Scopes(c.scope)
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

func (s *enquiryService) FindByStatus(ctx context.Context, status string) ([]models.Enquiry, error) {
	return s.list(ctx, FieldEquals("status", status))
}

func (s *enquiryService) GetThisMonth(ctx context.Context) ([]models.Enquiry, error) {
	return s.list(ctx, CreatedThisMonth(s.now()))
}

func (s *enquiryService) GetThisWeek(ctx context.Context) ([]models.Enquiry, error) {
	return s.list(ctx, CreatedThisWeek(s.now()))
}

func (s *enquiryService) GetConverted(ctx context.Context) ([]models.Enquiry, error) {
	return s.FindByStatus(ctx, models.EnquiryStatusConverted)
}

func (s *enquiryService) list(ctx context.Context, scopes ...Scope) ([]models.Enquiry, error) {
	enquiries := []models.Enquiry{}
	err := s.db.WithContext(ctx).
		Scopes(scopes...).
		Scopes(NewestFirst).
		Find(&enquiries).Error
	if err != nil {
		return nil, err
	}
	return enquiries, nil
}

// patch applies columns plus updated_at to one row. A missing row is not an
// error here; callers check existence first.
func (s *enquiryService) patch(ctx context.Context, id uint, columns map[string]interface{}) error {
	columns["updated_at"] = s.now()
	err := s.db.WithContext(ctx).
		Model(&models.Enquiry{}).
		Where("id = ?", id).
		Updates(columns).Error
	if err != nil {
		return err
	}
	s.invalidate(ctx, cache.EnquiryDashboardKey)
	return nil
}
