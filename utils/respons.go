package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// JSONResponse is the envelope every API endpoint answers with.
type JSONResponse struct {
	Success     bool        `json:"success"`
	StatusCode  int         `json:"statusCode"`
	ResponseMsg string      `json:"responseMsg"`
	ErrorMsg    *string     `json:"errorMsg"`
	Response    interface{} `json:"response"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Success:     code >= 200 && code < 300,
		StatusCode:  code,
		ResponseMsg: message,
		Response:    data,
	})
}

// RespondError writes a failure envelope. err may be nil, in which case
// errorMsg is null. Server errors are logged and attached to the gin context
// so error reporting middleware can pick them up.
func RespondError(c *gin.Context, code int, message string, err error) {
	resp := JSONResponse{
		Success:     false,
		StatusCode:  code,
		ResponseMsg: message,
	}
	if err != nil {
		msg := err.Error()
		resp.ErrorMsg = &msg
		if code >= 500 {
			ErrorLogger.WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).Errorf("%s: %v", message, err)
			_ = c.Error(err)
		}
	}
	c.AbortWithStatusJSON(code, resp)
}
