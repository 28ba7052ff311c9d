// server/internal/api/handlers/product_handler.go
package handlers

import (
	"net/http"

	"agri-traceability-api-server/internal/ledger"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	Ledger *ledger.Ledger
}

type AddProductRequest struct {
	FarmCode           string `json:"farmCode" binding:"required"`
	ProductCode        string `json:"productCode" binding:"required"`
	CategoryName       string `json:"categoryName"`
	Name               string `json:"name" binding:"required"`
	Quantity           string `json:"quantity"`
	Price              string `json:"price"`
	Description        string `json:"description"`
	Image              string `json:"image"`
	BatchCode          string `json:"batchCode"`
	Certification      string `json:"certification"`
	CertificationLevel uint8  `json:"certificationLevel" binding:"max=4"`
}

type UpdateProductRequest struct {
	Name          string `json:"name" binding:"required"`
	Quantity      string `json:"quantity"`
	Price         string `json:"price"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	BatchCode     string `json:"batchCode"`
	Certification string `json:"certification"`
}

// AddProduct thêm một sản phẩm mới, gắn với một trang trại đã đăng ký.
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Ledger.AddProduct(callerID(c), ledger.ProductInput{
		FarmCode:           req.FarmCode,
		ProductCode:        req.ProductCode,
		CategoryName:       req.CategoryName,
		Name:               req.Name,
		Quantity:           req.Quantity,
		Price:              req.Price,
		Description:        req.Description,
		Image:              req.Image,
		BatchCode:          req.BatchCode,
		Certification:      req.Certification,
		CertificationLevel: ledger.CertificationLevel(req.CertificationLevel),
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "productCode": req.ProductCode})
}

// UpdateProduct cập nhật các trường cho phép của sản phẩm.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productCode := c.Param("code")

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Ledger.UpdateProduct(callerID(c), productCode, ledger.ProductUpdate{
		Name:          req.Name,
		Quantity:      req.Quantity,
		Price:         req.Price,
		Description:   req.Description,
		Image:         req.Image,
		BatchCode:     req.BatchCode,
		Certification: req.Certification,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "productCode": productCode})
}

// DeactivateProduct chuyển sản phẩm sang trạng thái INACTIVE.
func (h *ProductHandler) DeactivateProduct(c *gin.Context) {
	productCode := c.Param("code")

	if err := h.Ledger.DeactivateProduct(callerID(c), productCode); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "productCode": productCode})
}

// GetProduct trả về thông tin sản phẩm theo productCode.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.Ledger.GetProduct(c.Param("code"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetAllProducts trả về snapshot toàn bộ sản phẩm.
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.GetAllProducts())
}
