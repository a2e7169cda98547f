package handlers

import (
	"net/http"
	"sort"

	"agri-program-api-server/internal/shape"
	"agri-program-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"
)

// ReportHandler serves the aggregated and reshaped report routes.
type ReportHandler struct {
	Store store.Store
}

// GetLeverages sums leverage amounts per entity plus a grand total.
// Non-numeric amounts count as 0.
func (h *ReportHandler) GetLeverages(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	docs, err := h.Store.FindAll(ctx, leveragesCollection)
	if err != nil {
		serverError(c, "query leverages", err)
		return
	}

	entityTotals := map[string]float64{}
	var total float64
	for _, doc := range docs {
		amount := shape.ToNumber(doc["Amount"])
		entityTotals[shape.ToString(doc["Entity"])] += amount
		total += amount
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": entityTotals, "total": total})
}

// GetMarketSurveys counts each sector survey collection concurrently.
// One failed count fails the whole response, no partial results.
func (h *ReportHandler) GetMarketSurveys(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	counts := make([]int64, len(surveyCollections))
	for i, sc := range surveyCollections {
		i, sc := i, sc
		g.Go(func() error {
			n, err := h.Store.Count(ctx, sc.Collection)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		serverError(c, "count market surveys", err)
		return
	}

	resp := gin.H{"success": true}
	for i, sc := range surveyCollections {
		resp[sc.Field] = counts[i]
	}
	c.JSON(http.StatusOK, resp)
}

// GetProductivity transposes the row-oriented productivity documents into
// four parallel arrays; callers zip them back by index.
func (h *ReportHandler) GetProductivity(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	docs, err := h.Store.FindAll(ctx, productivityCollection)
	if err != nil {
		serverError(c, "query productivity", err)
		return
	}

	sectors := make([]string, 0, len(docs))
	baseline := make([]float64, 0, len(docs))
	earlyAssessment := make([]float64, 0, len(docs))
	growth := make([]float64, 0, len(docs))
	for _, doc := range docs {
		sectors = append(sectors, shape.ToString(doc["Sector"]))
		baseline = append(baseline, shape.ToNumber(doc["BaseLine"]))
		earlyAssessment = append(earlyAssessment, shape.ToNumber(doc["Early Productivity Assessment"]))
		growth = append(growth, shape.ToNumber(doc["% Growth"]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"sectors":         sectors,
		"baseline":        baseline,
		"earlyassessment": earlyAssessment,
		"growth":          growth,
	})
}

// GetDataStructure returns the sorted field-name set of one sample document
// from three fixed collections, for schema discovery. An empty collection
// yields an empty field list.
func (h *ReportHandler) GetDataStructure(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	result := gin.H{}
	for _, name := range []string{participantsCollection, a2fCollection, a2mCollection} {
		doc, err := h.Store.FindOne(ctx, name, bson.M{})
		if err != nil {
			if err == store.ErrNotFound {
				result[name] = []string{}
				continue
			}
			serverError(c, "sample "+name, err)
			return
		}

		keys := make([]string, 0, len(doc))
		for k := range doc {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		result[name] = keys
	}

	c.JSON(http.StatusOK, result)
}
