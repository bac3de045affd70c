package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JMacalaguing/DynaHCare-V2/internal/application"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/formbuilder"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/response"
	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	service *application.TemplateService
}

func NewTemplateHandler(service *application.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.service.ListTemplates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := h.service.FindTemplateByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Template not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var input formbuilder.CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "templatename and schema are required"})
		return
	}

	t, err := h.service.CreateTemplate(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input formbuilder.UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request body"})
		return
	}

	t, err := h.service.UpdateTemplate(id, input)
	switch {
	case errors.Is(err, application.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Template not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.service.DeleteTemplate(id)
	switch {
	case errors.Is(err, application.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Template not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Forms lists the forms built from this template.
func (h *TemplateHandler) Forms(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	forms, err := h.service.ListFormsForTemplate(id)
	switch {
	case errors.Is(err, application.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Template not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, forms)
}

func pathID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return 0, false
	}
	return uint(id64), true
}
