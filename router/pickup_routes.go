package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/crm-backend/controllers"
)

func registerPickupRoutes(rg *gin.RouterGroup, ctrl *controllers.PickupController) {
	rg.GET("/dashboard", ctrl.GetPickupDashboardStats)

	rg.POST("/from-enquiry/:enquiryId", ctrl.CreatePickup)
	rg.GET("", ctrl.GetAllPickups)
	rg.GET("/:id", ctrl.GetPickupByID)
	rg.DELETE("/:id", ctrl.DeletePickup)

	rg.PATCH("/:id/status", ctrl.UpdatePickupStatus)
	rg.PATCH("/:id/assign", ctrl.AssignPickup)
	rg.PATCH("/:id/amount", ctrl.UpdatePickupAmount)
	rg.PATCH("/:id/received-details", ctrl.AddReceivedDetails)

	rg.GET("/status/:status", ctrl.GetPickupsByStatus)
}
