package models

// Types for the canned dashboard and project-overview payloads served by the
// mock transport. The per-project counts here are fixture data, deliberately
// not derived from the entity stores.

type Overview struct {
	TotalProjects         int `json:"totalProjects"`
	TotalRequirements     int `json:"totalRequirements"`
	TotalBugs             int `json:"totalBugs"`
	TotalTasks            int `json:"totalTasks"`
	CompletedRequirements int `json:"completedRequirements"`
	ClosedBugs            int `json:"closedBugs"`
	CompletedTasks        int `json:"completedTasks"`
	ProgressRate          int `json:"progressRate"`
}

type IterationTrendItem struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

type DistributionItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type PendingItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"` // REQUIREMENT, BUG or TASK
	Deadline string `json:"deadline"`
}

type DashboardData struct {
	Overview                    Overview             `json:"overview"`
	IterationTrend              []IterationTrendItem `json:"iterationTrend"`
	RequirementTypeDistribution []DistributionItem   `json:"requirementTypeDistribution"`
	BugStatusDistribution       []DistributionItem   `json:"bugStatusDistribution"`
	PendingItems                []PendingItem        `json:"pendingItems"`
}

type ProjectOverview struct {
	ProjectID      string `json:"projectId"`
	ProjectName    string `json:"projectName"`
	IterationCycle string `json:"iterationCycle"`
	DemandCount    int    `json:"demandCount"`
	BugCount       int    `json:"bugCount"`
	TaskCount      int    `json:"taskCount"`
	Progress       int    `json:"progress"`
	CreateTime     string `json:"createTime"`
}
