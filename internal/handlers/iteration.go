package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sill-Liu/test-platform/internal/store"
)

// ListIterations returns the iterations of one project, in store order.
func ListIterations(ctx *gin.Context) {
	projectID := ctx.Param("project_id")

	if _, ok := stores.Projects.Get(projectID); !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if keyword, ok := ctx.GetQuery("keyword"); ok {
		ctx.JSON(http.StatusOK, stores.Iterations.Search(keyword))
		return
	}

	ctx.JSON(http.StatusOK, stores.Iterations.ByProject(projectID))
}

func CreateIteration(ctx *gin.Context) {
	projectID := ctx.Param("project_id")

	if _, ok := stores.Projects.Get(projectID); !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var body store.NewIteration

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	body.ProjectID = projectID

	if err := body.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, validationBody(err))
		return
	}

	ctx.JSON(http.StatusCreated, stores.Iterations.Add(body))
}

func UpdateIteration(ctx *gin.Context) {
	var patch store.IterationPatch

	if err := ctx.BindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	iteration, ok := stores.Iterations.Edit(ctx.Param("iteration_id"), patch)

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Iteration not found"})
		return
	}

	ctx.JSON(http.StatusOK, iteration)
}

// DeleteIteration removes the iteration only. Its demands stay behind with a
// dangling iterationId; cascades against the deleted id become no-ops.
func DeleteIteration(ctx *gin.Context) {
	if !stores.Iterations.Delete(ctx.Param("iteration_id")) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Iteration not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
