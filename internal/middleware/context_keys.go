package middleware

import "github.com/gin-gonic/gin"

// operatorKey is the key used to store the authenticated operator's username.
const operatorKey = contextKey("operator")

// GetOperatorFromContext retrieves the authenticated operator from the request context.
// It returns the username and a boolean indicating if it was found.
func GetOperatorFromContext(c *gin.Context) (string, bool) {
	operator, ok := c.Request.Context().Value(operatorKey).(string)
	if !ok || operator == "" {
		return "", false
	}
	return operator, true
}
