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

type ResponseHandler struct {
	service *application.ResponseService
}

func NewResponseHandler(service *application.ResponseService) *ResponseHandler {
	return &ResponseHandler{service: service}
}

// List returns every stored response, optionally narrowed with ?form_id=.
func (h *ResponseHandler) List(c *gin.Context) {
	var formID *uint
	if raw := c.Query("form_id"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid form_id"})
			return
		}
		id := uint(id64)
		formID = &id
	}

	responses, err := h.service.ListResponses(formID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, responses)
}

func (h *ResponseHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.FindResponseByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Response not found"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ResponseHandler) Create(c *gin.Context) {
	var input formbuilder.CreateResponseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "form and response_data are required"})
		return
	}

	resp, err := h.service.CreateResponse(input)
	switch {
	case errors.Is(err, application.ErrFormNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ResponseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.service.DeleteResponse(id)
	switch {
	case errors.Is(err, application.ErrResponseNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Response not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ForForm lists the responses of one form; unknown forms yield an empty list.
func (h *ResponseHandler) ForForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	responses, err := h.service.ResponsesForForm(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, responses)
}

// ClearForForm deletes every response belonging to the form.
func (h *ResponseHandler) ClearForForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.service.ClearResponses(id)
	switch {
	case errors.Is(err, application.ErrFormNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "All responses have been cleared."})
}

func (h *ResponseHandler) UpdateData(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input formbuilder.UpdateResponseDataInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "response_data is required"})
		return
	}

	resp, err := h.service.UpdateResponseData(id, input.ResponseData)
	switch {
	case errors.Is(err, application.ErrMissingResponseData):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, application.ErrResponseNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Response not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
