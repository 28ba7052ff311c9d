// server/internal/api/handlers/trace_handler.go
package handlers

import (
	"net/http"

	"agri-traceability-api-server/internal/ledger"

	"github.com/gin-gonic/gin"
)

type TraceHandler struct {
	Ledger *ledger.Ledger
}

// GetProductTrace trả về chuỗi nguồn gốc đầy đủ của một sản phẩm.
// API công khai, không cần JWT — người tiêu dùng quét QR sẽ gọi thẳng vào đây.
func (h *TraceHandler) GetProductTrace(c *gin.Context) {
	trace, err := h.Ledger.GetCompleteProductTraceability(c.Param("code"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, trace)
}

// GetContractInfo trả về thông tin tự mô tả của registry.
func (h *TraceHandler) GetContractInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.Info())
}

// GetTotals trả về số lượng farm và sản phẩm đã đăng ký.
func (h *TraceHandler) GetTotals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"totalFarms":    h.Ledger.TotalFarms(),
		"totalProducts": h.Ledger.TotalProducts(),
	})
}
