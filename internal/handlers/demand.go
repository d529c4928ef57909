package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sill-Liu/test-platform/internal/query"
	"github.com/Sill-Liu/test-platform/internal/store"
)

// ListDemands returns the demands of one iteration, narrowed by the optional
// keyword/status/priority query filters (AND-combined).
func ListDemands(ctx *gin.Context) {
	iterationID := ctx.Param("iteration_id")

	filtered := query.Demands(stores.Demands.ByIteration(iterationID), query.DemandFilter{
		Keyword:  ctx.Query("keyword"),
		Status:   ctx.Query("status"),
		Priority: ctx.Query("priority"),
	})

	ctx.JSON(http.StatusOK, filtered)
}

// CreateDemand adds a demand to an iteration. The iteration's counters are
// updated by a deferred cascade, so a list read immediately after the
// response may still see the previous counters.
func CreateDemand(ctx *gin.Context) {
	var body store.NewDemand

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	body.IterationID = ctx.Param("iteration_id")

	if err := body.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, validationBody(err))
		return
	}

	ctx.JSON(http.StatusCreated, stores.Demands.Add(body))
}

func UpdateDemand(ctx *gin.Context) {
	var patch store.DemandPatch

	if err := ctx.BindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if patch.Status != nil && !patch.Status.IsValid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown priority"})
		return
	}

	demand, ok := stores.Demands.Edit(ctx.Param("demand_id"), patch)

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
		return
	}

	ctx.JSON(http.StatusOK, demand)
}

func DeleteDemand(ctx *gin.Context) {
	if !stores.Demands.Delete(ctx.Param("demand_id")) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
