package handlers

import (
	"net/http"

	"agri-program-api-server/internal/shape"
	"agri-program-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

// FinanceHandler serves the access-to-finance and access-to-markets survey
// reads.
type FinanceHandler struct {
	Store store.Store
}

var a2fFields = shape.NumberFields(
	"Age",
	"Loan Amount Applied",
	"Loan Amount Approved",
	"Loan Period",
	"Interest Rate",
	"Insurance Premium",
	"Insurance Period",
	"Insurance Coverage",
)

var a2mFields = shape.NumberFields(
	"Age",
	"Marginalized",
	"Phone Ownership",
	"Quantity Sold",
	"Amount Sold",
	"Price Per Unit",
)

func (h *FinanceHandler) GetA2F(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	docs, err := h.Store.FindAll(ctx, a2fCollection)
	if err != nil {
		serverError(c, "query a2f", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": shape.Documents(docs, a2fFields)})
}

func (h *FinanceHandler) GetA2M(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	docs, err := h.Store.FindAll(ctx, a2mCollection)
	if err != nil {
		serverError(c, "query a2m", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": shape.Documents(docs, a2mFields)})
}
