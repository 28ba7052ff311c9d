// server/internal/api/handlers/upload_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"agri-traceability-api-server/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	S3Uploader *s3.Uploader
}

// UploadImage nhận ảnh multipart, đẩy lên S3 và trả về URL.
// Caller dùng URL này làm image reference khi đăng ký farm/sản phẩm.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Key theo ngày + uuid để không đè lên nhau
	objectKey := fmt.Sprintf("images/%s/%s%s",
		time.Now().Format("20060102"),
		uuid.New().String(),
		filepath.Ext(fileHeader.Filename),
	)

	url, err := h.S3Uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "url": url})
}
