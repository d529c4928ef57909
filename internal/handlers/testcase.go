package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sill-Liu/test-platform/internal/store"
)

// ListTestCases returns test cases, optionally narrowed to one project.
func ListTestCases(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, stores.TestCases.ByProject(ctx.Query("projectId")))
}

func CreateTestCase(ctx *gin.Context) {
	var body store.NewTestCase

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := body.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, validationBody(err))
		return
	}

	// Resolve the display name from the managed projects when possible.
	if body.ProjectName == "" {
		if p, ok := stores.Projects.Get(body.ProjectID); ok {
			body.ProjectName = p.Name
		}
	}

	ctx.JSON(http.StatusCreated, stores.TestCases.Add(body))
}

func DeleteTestCase(ctx *gin.Context) {
	if !stores.TestCases.Delete(ctx.Param("case_id")) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Test case not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
