package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sill-Liu/test-platform/internal/models"
	"github.com/Sill-Liu/test-platform/internal/store"
)

// validationBody renders a ValidationError as a field-by-field payload so the
// client can mark every failing input, not just the first.
func validationBody(err error) gin.H {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return gin.H{"error": "Validation failed", "fields": verr.Fields}
	}
	return gin.H{"error": err.Error()}
}

// ListProjects returns the managed project collection. A keyword query
// narrows it via the store's search.
func ListProjects(ctx *gin.Context) {
	if keyword, ok := ctx.GetQuery("keyword"); ok {
		ctx.JSON(http.StatusOK, stores.Projects.Search(keyword))
		return
	}
	ctx.JSON(http.StatusOK, stores.Projects.List())
}

func CreateProject(ctx *gin.Context) {
	var body store.NewProject

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := body.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, validationBody(err))
		return
	}

	ctx.JSON(http.StatusCreated, stores.Projects.Add(body))
}

func UpdateProject(ctx *gin.Context) {
	var patch store.ProjectPatch

	if err := ctx.BindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, ok := stores.Projects.Edit(ctx.Param("project_id"), patch)

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func DeleteProject(ctx *gin.Context) {
	if !stores.Projects.Delete(ctx.Param("project_id")) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
