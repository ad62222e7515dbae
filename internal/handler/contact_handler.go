package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jayantx07/Education-Point/internal/models"
	"github.com/Jayantx07/Education-Point/pkg/response"
)

type contactService interface {
	Submit(ctx context.Context, req models.SubmitContactRequest) (*models.Contact, error)
	List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	Get(ctx context.Context, id string) (*models.Contact, error)
	UpdateStatus(ctx context.Context, id string, req models.UpdateContactStatusRequest) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, format string) (*models.ExportFile, error)
}

// ContactHandler serves the public contact form and the admin inbox.
type ContactHandler struct {
	service contactService
}

// NewContactHandler constructs the handler.
func NewContactHandler(service contactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit godoc
// @Summary Submit contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body models.SubmitContactRequest true "Contact message"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.SubmitContactRequest
	if !bindJSON(c, &req, "invalid contact payload") {
		return
	}
	contact, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, contact)
}

// List godoc
// @Summary List contact messages
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param status query string false "Read or Unread"
// @Success 200 {object} response.Envelope
// @Router /contact [get]
func (h *ContactHandler) List(c *gin.Context) {
	filter := models.ContactFilter{Status: models.ContactStatus(strings.TrimSpace(c.Query("status")))}
	contacts, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contacts)
}

// Get godoc
// @Summary Get contact message
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} response.Envelope
// @Router /contact/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	contact, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contact)
}

// UpdateStatus godoc
// @Summary Mark contact message read or unread
// @Tags Contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param payload body models.UpdateContactStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Router /contact/{id} [put]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateContactStatusRequest
	if !bindJSON(c, &req, "invalid status payload") {
		return
	}
	contact, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contact)
}

// Delete godoc
// @Summary Delete contact message
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} response.Envelope
// @Router /contact/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, response.Message{Message: "Contact removed"})
}

// Export godoc
// @Summary Export contact messages
// @Tags Contact
// @Produce octet-stream
// @Security BearerAuth
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} binary
// @Router /contact/export [get]
func (h *ContactHandler) Export(c *gin.Context) {
	file, err := h.service.Export(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
