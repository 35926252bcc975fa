package utils

import "github.com/gin-gonic/gin"

// Respond writes the API envelope: {statusCode, message, ...extra}.
func Respond(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{"statusCode": status, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"statusCode": status, "message": message})
}
