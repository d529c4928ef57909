package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sill-Liu/test-platform/internal/models"
	"github.com/Sill-Liu/test-platform/internal/query"
	"github.com/Sill-Liu/test-platform/internal/store"
)

// ListBugs returns the bug list narrowed by keyword (case-insensitive title
// match) and exact-match filters, AND-combined.
func ListBugs(ctx *gin.Context) {
	filtered := query.Bugs(stores.Bugs.List(), query.BugFilter{
		Keyword:            ctx.Query("keyword"),
		RelatedRequirement: ctx.Query("relatedRequirement"),
		Status:             ctx.Query("status"),
		Handler:            ctx.Query("handler"),
	})

	ctx.JSON(http.StatusOK, filtered)
}

func CreateBug(ctx *gin.Context) {
	var body store.NewBug

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := body.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, validationBody(err))
		return
	}

	ctx.JSON(http.StatusCreated, stores.Bugs.Add(body))
}

type UpdateBugStatusRequest struct {
	Status models.BugStatus `json:"status" binding:"required"`
}

func UpdateBugStatus(ctx *gin.Context) {
	var req UpdateBugStatusRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	switch req.Status {
	case models.BugPending, models.BugInProgress, models.BugClosed:
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	bug, ok := stores.Bugs.UpdateStatus(ctx.Param("bug_id"), req.Status)

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Bug not found"})
		return
	}

	ctx.JSON(http.StatusOK, bug)
}

func DeleteBug(ctx *gin.Context) {
	if !stores.Bugs.Delete(ctx.Param("bug_id")) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Bug not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
	Creator string `json:"creator" binding:"required"`
}

func CreateBugComment(ctx *gin.Context) {
	var req CreateCommentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment, ok := stores.Bugs.AddComment(ctx.Param("bug_id"), req.Content, req.Creator)

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Bug not found"})
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

func ListBugComments(ctx *gin.Context) {
	bugID := ctx.Param("bug_id")

	if _, ok := stores.Bugs.Get(bugID); !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Bug not found"})
		return
	}

	ctx.JSON(http.StatusOK, stores.Bugs.CommentsFor(bugID))
}
