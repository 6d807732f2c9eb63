package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/crm-backend/services"
	"github.com/yeremiapane/crm-backend/utils"
)

type EnquiryController struct {
	Service services.EnquiryService
}

func NewEnquiryController(service services.EnquiryService) *EnquiryController {
	return &EnquiryController{Service: service}
}

type enquiryRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Location    string  `json:"location"`
	Message     *string `json:"message"`
	InquiryType string  `json:"inquiry_type"`
	Product     string  `json:"product"`
	Quantity    *int    `json:"quantity"`
	Status      string  `json:"status"`
}

func (r enquiryRequest) fields() services.EnquiryFields {
	quantity := 1
	if r.Quantity != nil && *r.Quantity > 0 {
		quantity = *r.Quantity
	}
	return services.EnquiryFields{
		Name:        r.Name,
		Phone:       r.Phone,
		Location:    r.Location,
		Message:     r.Message,
		InquiryType: r.InquiryType,
		Product:     r.Product,
		Quantity:    quantity,
		Status:      r.Status,
	}
}

// AddEnquiry -> POST /api/enquiry
func (ec *EnquiryController) AddEnquiry(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Phone       string  `json:"phone" binding:"required"`
		Location    string  `json:"location" binding:"required"`
		Message     *string `json:"message"`
		InquiryType string  `json:"inquiry_type" binding:"required"`
		Product     string  `json:"product" binding:"required"`
		Quantity    *int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Required fields missing", err)
		return
	}

	id, err := ec.Service.Create(c.Request.Context(), enquiryRequest{
		Name:        req.Name,
		Phone:       req.Phone,
		Location:    req.Location,
		Message:     req.Message,
		InquiryType: req.InquiryType,
		Product:     req.Product,
		Quantity:    req.Quantity,
	}.fields())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error adding enquiry", err)
		return
	}

	utils.InfoLogger.Printf("New enquiry created: %d (%s, %s)", id, req.Name, req.Product)
	utils.RespondJSON(c, http.StatusCreated, "Enquiry added successfully", gin.H{"id": id})
}

// GetAllEnquiries -> GET /api/enquiry?search=&status=&inquiry_type=&product=&thisMonth=&thisWeek=
func (ec *EnquiryController) GetAllEnquiries(c *gin.Context) {
	filter := services.EnquiryFilter{
		Search:      c.Query("search"),
		Status:      c.Query("status"),
		InquiryType: c.Query("inquiry_type"),
		Product:     c.Query("product"),
		ThisMonth:   c.Query("thisMonth") == "true",
		ThisWeek:    c.Query("thisWeek") == "true",
	}

	enquiries, err := ec.Service.FindAll(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching enquiries", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Enquiries fetched successfully", enquiries)
}

func (ec *EnquiryController) GetEnquiryByID(c *gin.Context) {
	id, ok := parseID(c, "id", "Enquiry not found")
	if !ok {
		return
	}

	enquiry, err := ec.Service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Enquiry not found", "Error fetching enquiry")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Enquiry fetched successfully", enquiry)
}

// UpdateEnquiry overwrites every writable field with the body, so omitted
// fields are cleared. An empty body clears all of them.
func (ec *EnquiryController) UpdateEnquiry(c *gin.Context) {
	id, ok := parseID(c, "id", "Enquiry not found")
	if !ok {
		return
	}

	var req enquiryRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !ec.exists(c, id, "Error updating enquiry") {
		return
	}
	if err := ec.Service.Update(c.Request.Context(), id, req.fields()); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error updating enquiry", err)
		return
	}

	utils.InfoLogger.Printf("Enquiry %d updated", id)
	utils.RespondJSON(c, http.StatusOK, "Enquiry updated successfully", nil)
}

func (ec *EnquiryController) DeleteEnquiry(c *gin.Context) {
	id, ok := parseID(c, "id", "Enquiry not found")
	if !ok {
		return
	}

	if !ec.exists(c, id, "Error deleting enquiry") {
		return
	}
	if err := ec.Service.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error deleting enquiry", err)
		return
	}

	utils.InfoLogger.Printf("Enquiry %d deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Enquiry deleted successfully", nil)
}

func (ec *EnquiryController) GetDashboardStats(c *gin.Context) {
	stats, err := ec.Service.DashboardStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching stats", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats fetched", stats)
}

// UpdateStatus stores any status string; enquiry statuses are not restricted.
func (ec *EnquiryController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "Enquiry not found")
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := bindOptionalJSON(c, &body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !ec.exists(c, id, "Error updating status") {
		return
	}
	if err := ec.Service.UpdateStatus(c.Request.Context(), id, body.Status); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error updating status", err)
		return
	}

	utils.InfoLogger.Printf("Enquiry %d status changed to %s", id, body.Status)
	utils.RespondJSON(c, http.StatusOK, "Status updated successfully", nil)
}

func (ec *EnquiryController) MarkContacted(c *gin.Context) {
	id, ok := parseID(c, "id", "Enquiry not found")
	if !ok {
		return
	}

	if !ec.exists(c, id, "Error updating enquiry") {
		return
	}
	if err := ec.Service.MarkContacted(c.Request.Context(), id); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error updating enquiry", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Enquiry marked as contacted", nil)
}

func (ec *EnquiryController) SchedulePickup(c *gin.Context) {
	id, ok := parseID(c, "id", "Enquiry not found")
	if !ok {
		return
	}

	if !ec.exists(c, id, "Error scheduling pickup") {
		return
	}
	if err := ec.Service.SchedulePickup(c.Request.Context(), id); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error scheduling pickup", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pickup scheduled", nil)
}

func (ec *EnquiryController) GetThisMonthEnquiries(c *gin.Context) {
	enquiries, err := ec.Service.GetThisMonth(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching this month enquiries", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "This month enquiries fetched", enquiries)
}

func (ec *EnquiryController) GetThisWeekEnquiries(c *gin.Context) {
	enquiries, err := ec.Service.GetThisWeek(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching this week enquiries", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "This week enquiries fetched", enquiries)
}

func (ec *EnquiryController) GetConvertedEnquiries(c *gin.Context) {
	enquiries, err := ec.Service.GetConverted(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching converted enquiries", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Converted enquiries fetched", enquiries)
}

// exists reads the enquiry only to answer 404 before a write.
func (ec *EnquiryController) exists(c *gin.Context, id uint, failMsg string) bool {
	if _, err := ec.Service.FindByID(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Enquiry not found", failMsg)
		return false
	}
	return true
}
