package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/now"
	"github.com/yeremiapane/crm-backend/services"
	"github.com/yeremiapane/crm-backend/utils"
)

// parseID reads a positive integer path parameter. An id that cannot name a
// row answers 404 with notFoundMsg, and ok is false.
func parseID(c *gin.Context, param, notFoundMsg string) (uint, bool) {
	id, ok := lookupID(c, param)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, notFoundMsg, nil)
	}
	return id, ok
}

func lookupID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// bindOptionalJSON binds the body when there is one. An empty body leaves dest
// untouched.
func bindOptionalJSON(c *gin.Context, dest interface{}) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	if err := c.ShouldBindJSON(dest); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// respondServiceError maps a service error to 404 for the not-found sentinels
// and to 500 with the raw error text for everything else.
func respondServiceError(c *gin.Context, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, services.ErrEnquiryNotFound) || errors.Is(err, services.ErrPickupNotFound) {
		utils.RespondError(c, http.StatusNotFound, notFoundMsg, nil)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, failMsg, err)
}

// parseDate accepts RFC 3339 timestamps as well as the looser layouts
// understood by jinzhu/now, such as "2024-05-01" or "2024-05-01 14:30".
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return now.Parse(value)
}
