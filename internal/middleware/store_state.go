package middleware

import (
	"errors"
	"net/http"

	"github.com/josepha8674-lab/Best-restaurant/internal/store"

	"github.com/gin-gonic/gin"
)

// StoreState is the slice of the live cache the gate inspects.
type StoreState interface {
	Failure() error
}

// RequireStore blocks data routes while the system cannot talk to the
// document store. The three degraded states take priority over every data
// view: unconfigured, permission-denied (with remediation instructions) and
// a generic error with a retry action.
func RequireStore(configured bool, state StoreState) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !configured {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"state": "unconfigured",
				"error": "document store credentials are not set; set FIRESTORE_PROJECT_ID to enable data features",
			})
			c.Abort()
			return
		}

		err := state.Failure()
		if err == nil {
			c.Next()
			return
		}

		switch {
		case errors.Is(err, store.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"state": "permission-denied",
				"error": "the store rejected access; fix the security rules for the ingredients, menuItems and sales collections, then restart the session",
			})
		case errors.Is(err, store.ErrQuotaExceeded):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"state": "quota-exceeded",
				"error": "store quota exceeded; retry later",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"state": "error",
				"error": "store connection failed; reload to retry",
			})
		}
		c.Abort()
	}
}
