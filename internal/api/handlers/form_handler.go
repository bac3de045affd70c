package handlers

import (
	"errors"
	"net/http"

	"github.com/JMacalaguing/DynaHCare-V2/internal/application"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/formbuilder"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/response"
	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	forms     *application.FormService
	responses *application.ResponseService
}

func NewFormHandler(forms *application.FormService, responses *application.ResponseService) *FormHandler {
	return &FormHandler{forms: forms, responses: responses}
}

func (h *FormHandler) List(c *gin.Context) {
	forms, err := h.forms.ListForms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, forms)
}

func (h *FormHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	f, err := h.forms.FindFormByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) Create(c *gin.Context) {
	var input formbuilder.CreateFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "title and schema are required"})
		return
	}

	f, err := h.forms.CreateForm(input)
	switch {
	case errors.Is(err, application.ErrInvalidFormStatus):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FormHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input formbuilder.UpdateFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request body"})
		return
	}

	f, err := h.forms.UpdateForm(id, input)
	switch {
	case errors.Is(err, application.ErrFormNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		return
	case errors.Is(err, application.ErrInvalidFormStatus):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input formbuilder.UpdateFormStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "status is required"})
		return
	}

	f, err := h.forms.UpdateFormStatus(id, input.Status)
	switch {
	case errors.Is(err, application.ErrInvalidFormStatus):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, application.ErrFormNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.forms.DeleteForm(id)
	switch {
	case errors.Is(err, application.ErrFormNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Submit stores a submission for the form. The immunization form merges
// per-patient records, so callers get 200 with the merged record instead of
// 201 when an existing one absorbed the submission.
func (h *FormHandler) Submit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input formbuilder.SubmitResponseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "response_data is required"})
		return
	}

	resp, created, err := h.responses.SubmitResponse(id, input)
	switch {
	case errors.Is(err, application.ErrFormNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		return
	case errors.Is(err, application.ErrMissingResponseData),
		errors.Is(err, application.ErrIncompleteImmunization):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	c.JSON(code, response.SubmitResponse{Message: "Form submitted successfully", Data: resp})
}
