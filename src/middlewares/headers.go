package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func SecureHeaders(ctx *gin.Context) {
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("X-Frame-Options", "DENY")
	ctx.Next()
}

// RequestID tags every request so log lines from the deferred bulk path can
// be correlated with the request that queued them.
func RequestID(ctx *gin.Context) {
	rid := ctx.GetHeader("X-Request-ID")
	if rid == "" {
		rid = uuid.NewString()
	}
	ctx.Set("request_id", rid)
	ctx.Header("X-Request-ID", rid)
	ctx.Next()
}
