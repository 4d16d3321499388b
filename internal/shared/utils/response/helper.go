package response

import "github.com/gin-gonic/gin"

// RespondJSON writes the standard envelope every booking and catalog
// endpoint returns. Validation details (payment field errors, admin form
// errors) go in errors, the payload in data.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
