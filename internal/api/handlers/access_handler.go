// server/internal/api/handlers/access_handler.go
package handlers

import (
	"net/http"

	"agri-traceability-api-server/internal/ledger"

	"github.com/gin-gonic/gin"
)

// AccessHandler phục vụ các thao tác quản trị quyền của registry.
// Ledger tự kiểm tra caller có phải admin/owner hay không; middleware phía
// trên chỉ chặn thô theo vai trò tài khoản.
type AccessHandler struct {
	Ledger *ledger.Ledger
}

type UserIDRequest struct {
	UserID string `json:"userID" binding:"required"`
}

type SetCapabilityRequest struct {
	UserID  string `json:"userID" binding:"required"`
	Enabled *bool  `json:"enabled" binding:"required"`
}

// AuthorizeUser cấp quyền ghi cho một danh tính.
func (h *AccessHandler) AuthorizeUser(c *gin.Context) {
	var req UserIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Ledger.AuthorizeUser(callerID(c), req.UserID); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "userID": req.UserID})
}

// DeauthorizeUser thu hồi quyền ghi của một danh tính.
func (h *AccessHandler) DeauthorizeUser(c *gin.Context) {
	var req UserIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Ledger.DeauthorizeUser(callerID(c), req.UserID); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "userID": req.UserID})
}

// SetFarmOwner bật/tắt capability farm-owner cho một danh tính.
func (h *AccessHandler) SetFarmOwner(c *gin.Context) {
	var req SetCapabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Ledger.SetFarmOwner(callerID(c), req.UserID, *req.Enabled); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "userID": req.UserID})
}

// SetProductVerifier bật/tắt capability product-verifier cho một danh tính.
func (h *AccessHandler) SetProductVerifier(c *gin.Context) {
	var req SetCapabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Ledger.SetProductVerifier(callerID(c), req.UserID, *req.Enabled); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "userID": req.UserID})
}

// UpdateAdmin chuyển quyền admin của registry sang danh tính khác (chỉ owner).
func (h *AccessHandler) UpdateAdmin(c *gin.Context) {
	var req UserIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Ledger.UpdateAdmin(callerID(c), req.UserID); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "admin": req.UserID})
}

// GetCapabilities trả về các capability của một danh tính.
func (h *AccessHandler) GetCapabilities(c *gin.Context) {
	userID := c.Param("userID")
	c.JSON(http.StatusOK, gin.H{
		"userID":            userID,
		"isAuthorized":      h.Ledger.IsAuthorized(userID),
		"isFarmOwner":       h.Ledger.IsFarmOwner(userID),
		"isProductVerifier": h.Ledger.IsProductVerifier(userID),
	})
}
