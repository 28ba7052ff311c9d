// server/internal/api/handlers/category_handler.go
package handlers

import (
	"net/http"

	"agri-traceability-api-server/internal/ledger"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	Ledger *ledger.Ledger
}

type AddCategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}

// AddCategory thêm một danh mục sản phẩm mới.
func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var req AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Ledger.AddCategory(callerID(c), req.Name, req.UserID); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "name": req.Name})
}

// GetAllCategories trả về tên mọi danh mục.
func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Ledger.AllCategories()})
}

// GetCategoriesByUser trả về các danh mục do một user tạo.
func (h *CategoryHandler) GetCategoriesByUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Ledger.CategoriesByUserID(c.Param("userID"))})
}

// CheckCategoryExists kiểm tra một tên danh mục đã tồn tại chưa.
func (h *CategoryHandler) CheckCategoryExists(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"exists": h.Ledger.CategoryExists(c.Param("name"))})
}
