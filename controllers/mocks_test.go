package controllers_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/yeremiapane/crm-backend/models"
	"github.com/yeremiapane/crm-backend/services"
)

type mockEnquiryService struct {
	mock.Mock
}

func (m *mockEnquiryService) Create(ctx context.Context, fields services.EnquiryFields) (uint, error) {
	args := m.Called(ctx, fields)
	return args.Get(0).(uint), args.Error(1)
}

func (m *mockEnquiryService) FindAll(ctx context.Context, filter services.EnquiryFilter) ([]models.Enquiry, error) {
	args := m.Called(ctx, filter)
	enquiries, _ := args.Get(0).([]models.Enquiry)
	return enquiries, args.Error(1)
}

func (m *mockEnquiryService) FindByID(ctx context.Context, id uint) (*models.Enquiry, error) {
	args := m.Called(ctx, id)
	enquiry, _ := args.Get(0).(*models.Enquiry)
	return enquiry, args.Error(1)
}

func (m *mockEnquiryService) Update(ctx context.Context, id uint, fields services.EnquiryFields) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockEnquiryService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEnquiryService) UpdateStatus(ctx context.Context, id uint, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockEnquiryService) MarkContacted(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEnquiryService) SchedulePickup(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEnquiryService) DashboardStats(ctx context.Context) (*models.EnquiryStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*models.EnquiryStats)
	return stats, args.Error(1)
}

func (m *mockEnquiryService) FindByStatus(ctx context.Context, status string) ([]models.Enquiry, error) {
	args := m.Called(ctx, status)
	enquiries, _ := args.Get(0).([]models.Enquiry)
	return enquiries, args.Error(1)
}

func (m *mockEnquiryService) GetThisMonth(ctx context.Context) ([]models.Enquiry, error) {
	args := m.Called(ctx)
	enquiries, _ := args.Get(0).([]models.Enquiry)
	return enquiries, args.Error(1)
}

func (m *mockEnquiryService) GetThisWeek(ctx context.Context) ([]models.Enquiry, error) {
	args := m.Called(ctx)
	enquiries, _ := args.Get(0).([]models.Enquiry)
	return enquiries, args.Error(1)
}

func (m *mockEnquiryService) GetConverted(ctx context.Context) ([]models.Enquiry, error) {
	args := m.Called(ctx)
	enquiries, _ := args.Get(0).([]models.Enquiry)
	return enquiries, args.Error(1)
}

type mockPickupService struct {
	mock.Mock
}

func (m *mockPickupService) CreateFromEnquiry(ctx context.Context, enquiryID uint, input services.CreatePickupInput) (uint, error) {
	args := m.Called(ctx, enquiryID, input)
	return args.Get(0).(uint), args.Error(1)
}

func (m *mockPickupService) FindAll(ctx context.Context, filter services.PickupFilter) ([]models.PickupRequest, error) {
	args := m.Called(ctx, filter)
	pickups, _ := args.Get(0).([]models.PickupRequest)
	return pickups, args.Error(1)
}

func (m *mockPickupService) FindByID(ctx context.Context, id uint) (*models.PickupRequest, error) {
	args := m.Called(ctx, id)
	pickup, _ := args.Get(0).(*models.PickupRequest)
	return pickup, args.Error(1)
}

func (m *mockPickupService) UpdateStatus(ctx context.Context, id uint, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockPickupService) AssignPickup(ctx context.Context, id uint, staffName string) error {
	return m.Called(ctx, id, staffName).Error(0)
}

func (m *mockPickupService) UpdateAmount(ctx context.Context, id uint, amount decimal.Decimal) error {
	return m.Called(ctx, id, amount).Error(0)
}

func (m *mockPickupService) AddReceivedDetails(ctx context.Context, id uint, details services.ReceivedDetails) error {
	return m.Called(ctx, id, details).Error(0)
}

func (m *mockPickupService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPickupService) DashboardStats(ctx context.Context) (*models.PickupStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*models.PickupStats)
	return stats, args.Error(1)
}

func (m *mockPickupService) FindByStatus(ctx context.Context, status string) ([]models.PickupRequest, error) {
	args := m.Called(ctx, status)
	pickups, _ := args.Get(0).([]models.PickupRequest)
	return pickups, args.Error(1)
}
