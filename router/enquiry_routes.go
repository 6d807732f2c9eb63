package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/crm-backend/controllers"
)

func registerEnquiryRoutes(rg *gin.RouterGroup, ctrl *controllers.EnquiryController) {
	rg.GET("/dashboard", ctrl.GetDashboardStats)

	rg.POST("", ctrl.AddEnquiry)
	rg.GET("", ctrl.GetAllEnquiries)
	rg.GET("/:id", ctrl.GetEnquiryByID)
	rg.PUT("/:id", ctrl.UpdateEnquiry)
	rg.DELETE("/:id", ctrl.DeleteEnquiry)

	rg.GET("/filter/this-month", ctrl.GetThisMonthEnquiries)
	rg.GET("/filter/this-week", ctrl.GetThisWeekEnquiries)
	rg.GET("/filter/converted", ctrl.GetConvertedEnquiries)

	rg.PATCH("/:id/status", ctrl.UpdateStatus)
	rg.PATCH("/:id/contacted", ctrl.MarkContacted)
	rg.PATCH("/:id/pickup", ctrl.SchedulePickup)
}
