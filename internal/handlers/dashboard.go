package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Sill-Liu/test-platform/internal/mocknet"
	"github.com/Sill-Liu/test-platform/internal/models"
	"github.com/Sill-Liu/test-platform/internal/query"
)

// These endpoints proxy the mock transport: the shim's latency and its
// {code, message, data} envelope are part of the contract, so the envelope is
// passed through and its code doubles as the HTTP status.

func GetDashboard(ctx *gin.Context) {
	resp := mock.Get("/api/dashboard")
	ctx.JSON(resp.Code, resp)
}

func GetProjectOverviews(ctx *gin.Context) {
	resp := mock.Get("/api/projects")
	ctx.JSON(resp.Code, resp)
}

func ListRequirements(ctx *gin.Context) {
	resp := mock.Get("/api/requirements")

	if resp.Code == mocknet.CodeOK {
		if list, ok := resp.Data.([]models.Requirement); ok {
			resp.Data = query.Requirements(list, query.RequirementFilter{
				Keyword:   ctx.Query("keyword"),
				ProjectID: ctx.Query("projectId"),
				Type:      ctx.Query("type"),
			})
		}
	}

	ctx.JSON(resp.Code, resp)
}

func GetRequirement(ctx *gin.Context) {
	resp := mock.Get("/api/requirements/" + ctx.Param("req_id"))
	ctx.JSON(resp.Code, resp)
}
