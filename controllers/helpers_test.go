package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/crm-backend/controllers"
	"github.com/yeremiapane/crm-backend/database"
	"github.com/yeremiapane/crm-backend/services"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

type envelope struct {
	Success     bool            `json:"success"`
	StatusCode  int             `json:"statusCode"`
	ResponseMsg string          `json:"responseMsg"`
	ErrorMsg    *string         `json:"errorMsg"`
	Response    json.RawMessage `json:"response"`
}

func (e envelope) decode(t *testing.T, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(e.Response, dest))
}

func routes(enquiryCtrl *controllers.EnquiryController, pickupCtrl *controllers.PickupController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	if enquiryCtrl != nil {
		e := r.Group("/api/enquiry")
		e.GET("/dashboard", enquiryCtrl.GetDashboardStats)
		e.POST("", enquiryCtrl.AddEnquiry)
		e.GET("", enquiryCtrl.GetAllEnquiries)
		e.GET("/:id", enquiryCtrl.GetEnquiryByID)
		e.PUT("/:id", enquiryCtrl.UpdateEnquiry)
		e.DELETE("/:id", enquiryCtrl.DeleteEnquiry)
		e.GET("/filter/this-month", enquiryCtrl.GetThisMonthEnquiries)
		e.GET("/filter/this-week", enquiryCtrl.GetThisWeekEnquiries)
		e.GET("/filter/converted", enquiryCtrl.GetConvertedEnquiries)
		e.PATCH("/:id/status", enquiryCtrl.UpdateStatus)
		e.PATCH("/:id/contacted", enquiryCtrl.MarkContacted)
		e.PATCH("/:id/pickup", enquiryCtrl.SchedulePickup)
	}

	if pickupCtrl != nil {
		p := r.Group("/api/pickup")
		p.GET("/dashboard", pickupCtrl.GetPickupDashboardStats)
		p.POST("/from-enquiry/:enquiryId", pickupCtrl.CreatePickup)
		p.GET("", pickupCtrl.GetAllPickups)
		p.GET("/:id", pickupCtrl.GetPickupByID)
		p.DELETE("/:id", pickupCtrl.DeletePickup)
		p.PATCH("/:id/status", pickupCtrl.UpdatePickupStatus)
		p.PATCH("/:id/assign", pickupCtrl.AssignPickup)
		p.PATCH("/:id/amount", pickupCtrl.UpdatePickupAmount)
		p.PATCH("/:id/received-details", pickupCtrl.AddReceivedDetails)
		p.GET("/status/:status", pickupCtrl.GetPickupsByStatus)
	}
	return r
}

type testApp struct {
	db        *gorm.DB
	router    *gin.Engine
	enquiries services.EnquiryService
	pickups   services.PickupService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db := database.NewTestDB(t)
	clock := func() time.Time { return fixedNow }
	enquiries := services.NewEnquiryService(db, services.WithClock(clock))
	pickups := services.NewPickupService(db, enquiries, services.WithClock(clock))
	return &testApp{
		db:        db,
		router:    routes(controllers.NewEnquiryController(enquiries), controllers.NewPickupController(pickups)),
		enquiries: enquiries,
		pickups:   pickups,
	}
}

// request sends body (a string is sent verbatim, anything else as JSON) and
// decodes the envelope.
func request(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, strings.NewReader(b))
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}
