package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/crm-backend/models"
	"github.com/yeremiapane/crm-backend/services"
	"github.com/yeremiapane/crm-backend/utils"
)

type PickupController struct {
	Service services.PickupService
}

func NewPickupController(service services.PickupService) *PickupController {
	return &PickupController{Service: service}
}

// validAmount reports whether the bound amount is present and non-zero.
// Amounts may arrive as JSON numbers or numeric strings.
func validAmount(amount decimal.NullDecimal) bool {
	return amount.Valid && !amount.Decimal.IsZero()
}

// CreatePickup -> POST /api/pickup/from-enquiry/:enquiryId
func (pc *PickupController) CreatePickup(c *gin.Context) {
	enquiryID, ok := parseID(c, "enquiryId", "Enquiry not found")
	if !ok {
		return
	}

	var req struct {
		AssignedTo    string              `json:"assigned_to" binding:"required"`
		Amount        decimal.NullDecimal `json:"amount"`
		ScheduledDate *string             `json:"scheduled_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Assigned staff and amount are required", err)
		return
	}
	if !validAmount(req.Amount) {
		utils.RespondError(c, http.StatusBadRequest, "Assigned staff and amount are required", nil)
		return
	}

	input := services.CreatePickupInput{
		AssignedTo: req.AssignedTo,
		Amount:     req.Amount.Decimal,
	}
	if req.ScheduledDate != nil && *req.ScheduledDate != "" {
		scheduled, err := parseDate(*req.ScheduledDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid scheduled_date", err)
			return
		}
		input.ScheduledDate = &scheduled
	}

	id, err := pc.Service.CreateFromEnquiry(c.Request.Context(), enquiryID, input)
	if err != nil {
		respondServiceError(c, err, "Enquiry not found", "Error scheduling pickup")
		return
	}

	utils.InfoLogger.Printf("Pickup %d scheduled from enquiry %d (assigned to %s)", id, enquiryID, req.AssignedTo)
	utils.RespondJSON(c, http.StatusCreated, "Pickup scheduled successfully", gin.H{"id": id})
}

// GetAllPickups -> GET /api/pickup?search=&status=
func (pc *PickupController) GetAllPickups(c *gin.Context) {
	filter := services.PickupFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	pickups, err := pc.Service.FindAll(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching pickups", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pickups fetched successfully", pickups)
}

func (pc *PickupController) GetPickupByID(c *gin.Context) {
	id, ok := parseID(c, "id", "Pickup not found")
	if !ok {
		return
	}

	pickup, err := pc.Service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Pickup not found", "Error fetching pickup")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pickup fetched successfully", pickup)
}

// UpdatePickupStatus accepts only the four pickup states, in any order.
func (pc *PickupController) UpdatePickupStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "Pickup not found")
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := bindOptionalJSON(c, &body); err != nil || !models.IsValidPickupStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid status", err)
		return
	}

	if !pc.exists(c, id, "Error updating pickup status") {
		return
	}
	if err := pc.Service.UpdateStatus(c.Request.Context(), id, body.Status); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error updating pickup status", err)
		return
	}

	utils.InfoLogger.Printf("Pickup %d status changed to %s", id, body.Status)
	utils.RespondJSON(c, http.StatusOK, "Pickup status updated successfully", nil)
}

func (pc *PickupController) AssignPickup(c *gin.Context) {
	id, ok := parseID(c, "id", "Pickup not found")
	if !ok {
		return
	}

	var body struct {
		AssignedTo string `json:"assigned_to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Staff name is required", err)
		return
	}

	if !pc.exists(c, id, "Error assigning pickup") {
		return
	}
	if err := pc.Service.AssignPickup(c.Request.Context(), id, body.AssignedTo); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error assigning pickup", err)
		return
	}

	utils.InfoLogger.Printf("Pickup %d assigned to %s", id, body.AssignedTo)
	utils.RespondJSON(c, http.StatusOK, "Pickup assigned successfully", nil)
}

func (pc *PickupController) UpdatePickupAmount(c *gin.Context) {
	id, ok := parseID(c, "id", "Pickup not found")
	if !ok {
		return
	}

	var body struct {
		Amount decimal.NullDecimal `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !validAmount(body.Amount) {
		utils.RespondError(c, http.StatusBadRequest, "Valid amount is required", err)
		return
	}

	if !pc.exists(c, id, "Error updating pickup amount") {
		return
	}
	if err := pc.Service.UpdateAmount(c.Request.Context(), id, body.Amount.Decimal); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error updating pickup amount", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pickup amount updated successfully", nil)
}

func (pc *PickupController) AddReceivedDetails(c *gin.Context) {
	id, ok := parseID(c, "id", "Pickup not found")
	if !ok {
		return
	}

	var body struct {
		PhotoURL  string  `json:"photo_url" binding:"required"`
		Notes     *string `json:"notes"`
		Condition *string `json:"condition"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Photo URL is required", err)
		return
	}

	if !pc.exists(c, id, "Error adding received details") {
		return
	}
	err := pc.Service.AddReceivedDetails(c.Request.Context(), id, services.ReceivedDetails{
		PhotoURL:  body.PhotoURL,
		Notes:     body.Notes,
		Condition: body.Condition,
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error adding received details", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Received details added successfully", nil)
}

// DeletePickup removes the pickup without a prior existence check, so deleting
// an unknown id still succeeds. An id that cannot name a row matches nothing.
func (pc *PickupController) DeletePickup(c *gin.Context) {
	id, ok := lookupID(c, "id")
	if !ok {
		utils.RespondJSON(c, http.StatusOK, "Pickup deleted successfully", nil)
		return
	}

	if err := pc.Service.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error deleting pickup", err)
		return
	}

	utils.InfoLogger.Printf("Pickup %d deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Pickup deleted successfully", nil)
}

func (pc *PickupController) GetPickupDashboardStats(c *gin.Context) {
	stats, err := pc.Service.DashboardStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching pickup stats", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pickup dashboard stats fetched", stats)
}

func (pc *PickupController) GetPickupsByStatus(c *gin.Context) {
	status := c.Param("status")
	pickups, err := pc.Service.FindByStatus(c.Request.Context(), status)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching pickups", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("%s pickups fetched successfully", status), pickups)
}

func (pc *PickupController) exists(c *gin.Context, id uint, failMsg string) bool {
	if _, err := pc.Service.FindByID(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Pickup not found", failMsg)
		return false
	}
	return true
}
