// server/internal/api/handlers/farm_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"agri-traceability-api-server/internal/ledger"

	"github.com/gin-gonic/gin"
)

type FarmHandler struct {
	Ledger *ledger.Ledger
}

type RegisterFarmRequest struct {
	FarmCode    string   `json:"farmCode" binding:"required"`
	Fullname    string   `json:"fullname" binding:"required"`
	NameFarm    string   `json:"nameFarm" binding:"required"`
	UserID      string   `json:"userId" binding:"required"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Area        uint64   `json:"area" binding:"required"`
	Images      []string `json:"images"`
}

type UpdateFarmRequest struct {
	NameFarm    string   `json:"nameFarm" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Area        uint64   `json:"area" binding:"required"`
	Images      []string `json:"images"`
}

type AddFarmImageRequest struct {
	URL string `json:"url" binding:"required"`
}

// RegisterFarm đăng ký một trang trại mới vào registry.
func (h *FarmHandler) RegisterFarm(c *gin.Context) {
	var req RegisterFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Ledger.RegisterFarm(callerID(c), ledger.FarmInput{
		FarmCode:    req.FarmCode,
		Fullname:    req.Fullname,
		NameFarm:    req.NameFarm,
		UserID:      req.UserID,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
		Location:    req.Location,
		Area:        req.Area,
		Images:      req.Images,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "farmCode": req.FarmCode})
}

// UpdateFarm cập nhật thông tin trang trại theo farmCode.
func (h *FarmHandler) UpdateFarm(c *gin.Context) {
	farmCode := c.Param("code")

	var req UpdateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Ledger.UpdateFarm(callerID(c), farmCode, ledger.FarmUpdate{
		NameFarm:    req.NameFarm,
		Description: req.Description,
		Location:    req.Location,
		Area:        req.Area,
		Images:      req.Images,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "farmCode": farmCode})
}

// DeactivateFarm đánh dấu trang trại ngừng hoạt động (soft delete).
func (h *FarmHandler) DeactivateFarm(c *gin.Context) {
	farmCode := c.Param("code")

	if err := h.Ledger.DeactivateFarm(callerID(c), farmCode); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "farmCode": farmCode})
}

// AddFarmImage thêm một ảnh vào danh sách ảnh của trang trại.
func (h *FarmHandler) AddFarmImage(c *gin.Context) {
	farmCode := c.Param("code")

	var req AddFarmImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Ledger.AddFarmImage(callerID(c), farmCode, req.URL); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "farmCode": farmCode})
}

// RemoveFarmImage xoá ảnh tại vị trí index trong danh sách ảnh.
func (h *FarmHandler) RemoveFarmImage(c *gin.Context) {
	farmCode := c.Param("code")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image index"})
		return
	}

	if err := h.Ledger.RemoveFarmImage(callerID(c), farmCode, index); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "farmCode": farmCode})
}

// GetFarm trả về thông tin trang trại theo farmCode.
func (h *FarmHandler) GetFarm(c *gin.Context) {
	farm, err := h.Ledger.GetFarm(c.Param("code"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, farm)
}

// GetFarmImages trả về danh sách ảnh của trang trại.
func (h *FarmHandler) GetFarmImages(c *gin.Context) {
	images, err := h.Ledger.GetFarmImages(c.Param("code"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

// GetAllFarms trả về snapshot toàn bộ trang trại.
func (h *FarmHandler) GetAllFarms(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.GetAllFarms())
}

// GetFarmsByUser trả về các trang trại đăng ký dưới một userId.
func (h *FarmHandler) GetFarmsByUser(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.GetFarmsByUserID(c.Param("userID")))
}

// CheckUserExists kiểm tra một userId đã đăng ký farm nào chưa.
func (h *FarmHandler) CheckUserExists(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"exists": h.Ledger.UserExists(c.Param("userID"))})
}

// GetProductsByFarm trả về các sản phẩm thuộc một trang trại.
func (h *FarmHandler) GetProductsByFarm(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.GetProductsByFarm(c.Param("code")))
}
