package handlers

import (
	"net/http"

	"agri-program-api-server/internal/shape"
	"agri-program-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

// RegistryHandler serves the fixed-collection registry reads.
type RegistryHandler struct {
	Store store.Store
}

// Imported participant rows carry these columns with mixed raw types, the
// API promises them as strings.
var participantFields = shape.StringFields(
	"ID",
	"Name",
	"Gender",
	"Sector",
	"District",
	"Ethnic Background",
)

func (h *RegistryHandler) GetParticipants(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	docs, err := h.Store.FindAll(ctx, participantsCollection)
	if err != nil {
		serverError(c, "query participants", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": shape.Documents(docs, participantFields)})
}

func (h *RegistryHandler) GetDealers(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	docs, err := h.Store.FindAll(ctx, dealersCollection)
	if err != nil {
		serverError(c, "query dealers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": docs})
}

func (h *RegistryHandler) GetCooperatives(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	docs, err := h.Store.FindAll(ctx, cooperativesCollection)
	if err != nil {
		serverError(c, "query cooperatives", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": docs})
}
