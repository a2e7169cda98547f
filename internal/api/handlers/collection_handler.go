package handlers

import (
	"net/http"

	"agri-program-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	Store store.Store
}

// ListCollections lists all collection names known to the database.
func (h *CollectionHandler) ListCollections(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	names, err := h.Store.ListCollectionNames(ctx)
	if err != nil {
		serverError(c, "list collections", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "collections": names})
}

// GetCollectionByName dumps an allow-listed collection verbatim. Names
// outside the allow-list (the credential collection included) get a 404.
func (h *CollectionHandler) GetCollectionByName(c *gin.Context) {
	name := c.Param("collectionName")
	if !readableCollections[name] {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Collection not found"})
		return
	}

	ctx, cancel := queryContext(c)
	defer cancel()

	docs, err := h.Store.FindAll(ctx, name)
	if err != nil {
		serverError(c, "query "+name, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": docs})
}
