package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"agri-program-api-server/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Collection names as created by the external import pipeline.
const (
	usersCollection        = "users"
	participantsCollection = "participants"
	dealersCollection      = "dealers"
	cooperativesCollection = "cooperatives"
	leveragesCollection    = "leverages"
	productivityCollection = "productivity"
	a2fCollection          = "a2f"
	a2mCollection          = "a2m"
)

// surveyCollections maps each market-survey response field to its sector
// collection.
var surveyCollections = []struct {
	Field      string
	Collection string
}{
	{"maize", "maizesurveys"},
	{"poultry", "poultrysurveys"},
	{"dairy", "dairysurveys"},
	{"horticulture", "horticulturesurveys"},
	{"soybean", "soybeansurveys"},
	{"aquaculture", "aquaculturesurveys"},
}

// readableCollections is the allow-list for the by-name collection route.
// The credential collection is deliberately absent.
var readableCollections = map[string]bool{
	participantsCollection: true,
	dealersCollection:      true,
	cooperativesCollection: true,
	leveragesCollection:    true,
	productivityCollection: true,
	a2fCollection:          true,
	a2mCollection:          true,
	"maizesurveys":         true,
	"poultrysurveys":       true,
	"dairysurveys":         true,
	"horticulturesurveys":  true,
	"soybeansurveys":       true,
	"aquaculturesurveys":   true,
}

const queryTimeout = 30 * time.Second

func queryContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), queryTimeout)
}

// serverError logs the real error server-side and answers with the fixed
// envelope; callers never see internal detail.
func serverError(c *gin.Context, op string, err error) {
	log.Printf("request %s: %s: %v", c.GetString(middleware.RequestIDKey), op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}
