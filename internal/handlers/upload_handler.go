package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"matchday/internal/utils"
	"matchday/pkg/storage"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	provider   storage.Provider
	production bool
}

func NewUploadHandler(provider storage.Provider, production bool) *UploadHandler {
	return &UploadHandler{provider: provider, production: production}
}

type uploadedFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// Upload handles POST /api/uploads/:kind (admin). Accepts multipart form
// files under the "images" field.
func (h *UploadHandler) Upload(c *gin.Context) {
	kind := c.Param("kind")
	if !isUploadKind(kind) {
		utils.BadRequestResponse(c, "Invalid upload kind")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No files provided")
		return
	}
	if len(files) > utils.MaxFilesPerUpload {
		utils.BadRequestResponse(c, fmt.Sprintf("At most %d files per upload", utils.MaxFilesPerUpload))
		return
	}

	var uploaded []uploadedFile
	for _, header := range files {
		if header.Size > utils.MaxImageSize {
			utils.BadRequestResponse(c, fmt.Sprintf("%s exceeds the %dMB size limit", header.Filename, utils.MaxImageSize/(1024*1024)))
			return
		}

		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
		if !isAllowedImageType(ext) {
			utils.BadRequestResponse(c, fmt.Sprintf("%s is not an allowed image type", header.Filename))
			return
		}

		file, err := header.Open()
		if err != nil {
			utils.InternalErrorResponse(c, utils.ErrFileUploadFailed, err, h.production)
			return
		}

		key := utils.GenerateUploadKey(kind, header.Filename)
		contentType := header.Header.Get("Content-Type")
		url, err := h.provider.Upload(c.Request.Context(), key, contentType, header.Size, file)
		file.Close()
		if err != nil {
			utils.InternalErrorResponse(c, utils.ErrFileUploadFailed, err, h.production)
			return
		}

		uploaded = append(uploaded, uploadedFile{
			Filename: header.Filename,
			URL:      url,
			Size:     header.Size,
		})
	}

	utils.CreatedResponse(c, "Files uploaded", uploaded)
}

func isUploadKind(kind string) bool {
	for _, k := range utils.UploadKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func isAllowedImageType(ext string) bool {
	for _, t := range utils.AllowedImageTypes {
		if t == ext {
			return true
		}
	}
	return false
}
