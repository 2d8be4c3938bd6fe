package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/ctx"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/storage"
)

// UploadController accepts product images on the multipart "product"
// field. By default the file is read and dropped; UPLOAD_DISK=local|s3
// persists it through the storage layer. This route alone uses numeric
// success flags, a storefront quirk the clients depend on.
type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

func (uc *UploadController) Upload(c *ctx.Context) {
	file, header, err := c.FormFile("product")
	if err != nil {
		c.JSON(http.StatusBadRequest, map[string]any{"success": 0, "error": "No file uploaded"})
		return
	}
	defer file.Close()

	message := "File received (not stored)"

	if diskName := config.UploadDisk(); diskName != "" {
		disk, err := storage.MustUse(diskName)
		if err != nil {
			logger.WithCtx(c.Context()).Error("upload disk missing", "disk", diskName, "error", err)
			c.JSON(http.StatusInternalServerError, map[string]any{"success": 0})
			return
		}

		filename := fmt.Sprintf("product_%d%s", time.Now().UnixMilli(), filepath.Ext(header.Filename))
		if err := disk.PutStream("images/"+filename, file); err != nil {
			logger.WithCtx(c.Context()).Error("upload store failed", "disk", diskName, "error", err)
			c.JSON(http.StatusInternalServerError, map[string]any{"success": 0})
			return
		}
		message = "File received"
		logger.WithCtx(c.Context()).Info("upload stored", "disk", diskName, "file", filename)
	}

	c.JSON(http.StatusOK, map[string]any{"success": 1, "message": message})
}
