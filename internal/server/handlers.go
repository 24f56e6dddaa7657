package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/planner"
	"github.com/julianstephens/routinely/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	planner *planner.Service
	store   storage.Provider
}

func (h *handler) health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *handler) generate(c *gin.Context) {
	var raw models.RawRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("%w: malformed body: %v", models.ErrInvalidRequest, err))
		return
	}

	result, err := h.planner.GenerateRaw(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRequest) {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) listItems(c *gin.Context) {
	items, err := h.store.GetAllItems()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	if items == nil {
		items = []models.RoutineItem{}
	}
	c.JSON(http.StatusOK, gin.H{"routineItems": items})
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, errorResponse{Error: err.Error()})
}
