package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope:
// {success, data?, message?, count?}.

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func SuccessWithCount(c *gin.Context, statusCode int, data any, count int) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func SuccessWithMessage(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
