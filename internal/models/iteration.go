package models

// Iteration carries three derived counters owned by the cascade rules in the
// store layer: DemandCount, FinishedDemandCount and Progress. Direct edits to
// them go through the same mutation path as cascades.
type Iteration struct {
	ID                  string `json:"id"`
	ProjectID           string `json:"projectId"`
	Name                string `json:"name"`
	Creator             string `json:"creator"`
	Admin               string `json:"admin"`
	StartTime           string `json:"startTime"`
	CreateTime          string `json:"createTime"`
	DemandCount         int    `json:"demandCount"`
	FinishedDemandCount int    `json:"finishedDemandCount"`
	Progress            int    `json:"progress"`
}
