// server/internal/api/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"agri-traceability-api-server/internal/ledger"

	"github.com/gin-gonic/gin"
)

// respondLedgerError ánh xạ lỗi của ledger sang HTTP status tương ứng.
func respondLedgerError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var le *ledger.Error
	if errors.As(err, &le) {
		switch le.Kind {
		case ledger.KindAccessControl:
			status = http.StatusForbidden
		case ledger.KindValidation:
			status = http.StatusBadRequest
		case ledger.KindNotFound:
			status = http.StatusNotFound
		case ledger.KindConflict:
			status = http.StatusConflict
		}
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// callerID lấy danh tính ledger của người gọi từ context (do middleware
// Authenticate đặt vào).
func callerID(c *gin.Context) string {
	return c.GetString("user_actor_id")
}
