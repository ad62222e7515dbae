package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jayantx07/Education-Point/internal/models"
	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
	"github.com/Jayantx07/Education-Point/pkg/response"
)

// multipartOverhead leaves room for boundaries and part headers on top of the file limit.
const multipartOverhead = 64 * 1024

type uploadService interface {
	Save(ctx context.Context, size int64, r io.Reader) (*models.UploadResult, error)
}

// UploadHandler accepts admin image uploads.
type UploadHandler struct {
	service  uploadService
	maxBytes int64
}

// NewUploadHandler constructs the handler.
func NewUploadHandler(service uploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{service: service, maxBytes: maxBytes}
}

// Upload godoc
// @Summary Upload image
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Success 201 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Failure 415 {object} response.Envelope
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, appErrors.Clone(appErrors.ErrPayloadTooLarge, "file exceeds the upload size limit"))
			return
		}
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "file is required"))
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Internal(err, "failed to open file"))
		return
	}
	defer src.Close()

	result, err := h.service.Save(c.Request.Context(), fileHeader.Size, src)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
