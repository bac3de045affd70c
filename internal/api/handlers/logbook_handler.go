package handlers

import (
	"net/http"

	"github.com/JMacalaguing/DynaHCare-V2/internal/application"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/logbook"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/response"
	"github.com/gin-gonic/gin"
)

type LogbookHandler struct {
	service *application.LogbookService
}

func NewLogbookHandler(service *application.LogbookService) *LogbookHandler {
	return &LogbookHandler{service: service}
}

func (h *LogbookHandler) Create(c *gin.Context) {
	var input logbook.CreateLogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "name is required"})
		return
	}

	entry, err := h.service.CreateEntry(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *LogbookHandler) List(c *gin.Context) {
	entries, err := h.service.ListEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ClearAll wipes the whole logbook.
func (h *LogbookHandler) ClearAll(c *gin.Context) {
	if err := h.service.ClearAllEntries(); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
