package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jayantx07/Education-Point/internal/models"
	"github.com/Jayantx07/Education-Point/pkg/response"
)

type testimonialService interface {
	List(ctx context.Context, includeInactive bool) ([]models.Testimonial, error)
	Get(ctx context.Context, id string) (*models.Testimonial, error)
	Create(ctx context.Context, req models.CreateTestimonialRequest) (*models.Testimonial, error)
	Update(ctx context.Context, id string, req models.UpdateTestimonialRequest) (*models.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

// TestimonialHandler exposes testimonials.
type TestimonialHandler struct {
	service testimonialService
}

// NewTestimonialHandler constructs the handler.
func NewTestimonialHandler(service testimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// List godoc
// @Summary List testimonials
// @Tags Testimonials
// @Produce json
// @Param includeInactive query bool false "Include inactive testimonials (admin only)"
// @Success 200 {object} response.Envelope
// @Router /testimonials [get]
func (h *TestimonialHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), includeInactive(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get testimonial
// @Tags Testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.Envelope
// @Router /testimonials/{id} [get]
func (h *TestimonialHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Create testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreateTestimonialRequest true "Testimonial payload"
// @Success 201 {object} response.Envelope
// @Router /testimonials [post]
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req models.CreateTestimonialRequest
	if !bindJSON(c, &req, "invalid testimonial payload") {
		return
	}
	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Param payload body models.UpdateTestimonialRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /testimonials/{id} [put]
func (h *TestimonialHandler) Update(c *gin.Context) {
	var req models.UpdateTestimonialRequest
	if !bindJSON(c, &req, "invalid testimonial payload") {
		return
	}
	item, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete testimonial
// @Tags Testimonials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.Envelope
// @Router /testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, response.Message{Message: "Testimonial removed"})
}
