package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vantage/internal/repository"
)

// ContactHandler exposes the person directory (internal team members and
// affiliate partners) to admins.
type ContactHandler struct {
	personRepo *repository.PersonRepository
}

func NewContactHandler(personRepo *repository.PersonRepository) *ContactHandler {
	return &ContactHandler{personRepo: personRepo}
}

func (h *ContactHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	persons, total, err := h.personRepo.List(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "contact lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": persons, "total": total, "page": page})
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}
	person, err := h.personRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
		return
	}
	c.JSON(http.StatusOK, person)
}
