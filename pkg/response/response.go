package response

import (
	"github.com/gin-gonic/gin"
)

// Wire shapes are fixed by the public API contract: successful mutations
// answer {"message": ...} and every failure answers {"detail": ...}.

type MessageBody struct {
	Message string `json:"message"`
}

type ErrorBody struct {
	Detail string `json:"detail"`
}

// Message writes a {"message": ...} payload.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageBody{Message: msg})
}

// Detail writes a {"detail": ...} failure payload.
func Detail(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorBody{Detail: detail})
}

// AbortDetail writes a failure payload and stops the handler chain.
// Middleware must use this so rejected requests never reach business logic.
func AbortDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorBody{Detail: detail})
}
