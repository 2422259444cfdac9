package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func handleGRPCError(c *gin.Context, err error) {
	st, ok := status.FromError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	switch st.Code() {
	case codes.Unauthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{"errors": st.Message()})
	case codes.InvalidArgument:
		c.JSON(http.StatusBadRequest, gin.H{"errors": st.Message()})
	case codes.NotFound:
		c.JSON(http.StatusNotFound, gin.H{"errors": st.Message()})
	case codes.FailedPrecondition:
		c.JSON(http.StatusConflict, gin.H{"errors": st.Message()})
	case codes.Unavailable:
		c.JSON(http.StatusBadGateway, gin.H{"errors": st.Message()})
	case codes.DeadlineExceeded:
		c.JSON(http.StatusGatewayTimeout, gin.H{"errors": st.Message()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
