package mocknet

import "github.com/Sill-Liu/test-platform/internal/models"

// Canned payloads. Each route builds them fresh so a caller mutating a
// returned slice cannot corrupt later responses.

func projectOverviews() []models.ProjectOverview {
	return []models.ProjectOverview{
		{
			ProjectID:      "proj_001",
			ProjectName:    "Test Platform V1",
			IterationCycle: "2026-02-04~2026-03-04",
			DemandCount:    12,
			BugCount:       8,
			TaskCount:      5,
			Progress:       60,
			CreateTime:     "2024-01-01 10:00:00",
		},
		{
			ProjectID:      "proj_002",
			ProjectName:    "User Center Rework",
			IterationCycle: "2026-02-10~2026-03-10",
			DemandCount:    9,
			BugCount:       3,
			TaskCount:      7,
			Progress:       35,
			CreateTime:     "2024-02-15 14:30:00",
		},
	}
}

func requirementList() []models.Requirement {
	return []models.Requirement{
		{
			ReqID:          "req_001",
			ProjectID:      "proj_001",
			Title:          "Companion drag interaction rework",
			Content:        "Keep the companion dialog state stable while dragging.",
			Type:           "PRODUCT",
			Scale:          "M",
			Handler:        "Zhang San",
			Priority:       "High",
			ExpectedStart:  "2026-02-04",
			ExpectedEnd:    "2026-02-20",
			EstimatedHours: "40",
			Tester:         "Wang Wu",
			Developer:      "Li Si",
			CreateTime:     "2026-02-01 09:30:00",
		},
		{
			ReqID:          "req_002",
			ProjectID:      "proj_001",
			Title:          "Code check result caching",
			Content:        "Cache check results so re-running a step is instant.",
			Type:           "TOOLS",
			Scale:          "S",
			Handler:        "Li Si",
			Priority:       "Middle",
			ExpectedStart:  "2026-02-10",
			ExpectedEnd:    "2026-02-18",
			EstimatedHours: "16",
			Tester:         "Wang Wu",
			Developer:      "Zhang Si",
			CreateTime:     "2026-02-03 14:00:00",
		},
		{
			ReqID:          "req_003",
			ProjectID:      "proj_002",
			Title:          "Account merge flow",
			Content:        "Merge legacy accounts into the new user center.",
			Type:           "TASK",
			Scale:          "L",
			Handler:        "Wang Wu",
			Priority:       "High",
			ExpectedStart:  "2026-02-12",
			ExpectedEnd:    "2026-03-05",
			EstimatedHours: "80",
			Tester:         "Zhang San",
			Developer:      "Zhao Liu",
			CreateTime:     "2026-02-05 10:15:00",
		},
	}
}

func requirementDetails() map[string]models.Requirement {
	details := make(map[string]models.Requirement)
	for _, r := range requirementList() {
		r.ParentRequirement = "none"
		r.ReviewTime = "2026-02-02 10:00:00"
		r.SubmitTime = "2026-02-02 11:00:00"
		details[r.ReqID] = r
	}
	return details
}

func dashboardData() models.DashboardData {
	return models.DashboardData{
		Overview: models.Overview{
			TotalProjects:         2,
			TotalRequirements:     21,
			TotalBugs:             11,
			TotalTasks:            12,
			CompletedRequirements: 9,
			ClosedBugs:            4,
			CompletedTasks:        6,
			ProgressRate:          43,
		},
		IterationTrend: []models.IterationTrendItem{
			{Name: "V1.0 Iteration", Progress: 60},
			{Name: "V1.1 Iteration", Progress: 25},
			{Name: "User Center Sprint 1", Progress: 35},
		},
		RequirementTypeDistribution: []models.DistributionItem{
			{Name: "PRODUCT", Value: 8},
			{Name: "TOOLS", Value: 5},
			{Name: "TASK", Value: 6},
			{Name: "QUESTION", Value: 2},
		},
		BugStatusDistribution: []models.DistributionItem{
			{Name: "PENDING", Value: 4},
			{Name: "IN_PROGRESS", Value: 3},
			{Name: "CLOSED", Value: 4},
		},
		PendingItems: []models.PendingItem{
			{ID: "req_001", Title: "Companion drag interaction rework", Type: "REQUIREMENT", Deadline: "2026-02-20"},
			{ID: "BUG-1002", Title: "[PC py-companion] companion drag failure issue", Type: "BUG", Deadline: "2026-01-12"},
			{ID: "task_004", Title: "Regression suite for payment API", Type: "TASK", Deadline: "2026-02-25"},
		},
	}
}
