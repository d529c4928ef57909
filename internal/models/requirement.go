package models

// Requirement mirrors the read-only payload served by the mock transport.
// Requirements are not editable through the stores.
type Requirement struct {
	ReqID              string `json:"reqId"`
	ProjectID          string `json:"projectId"`
	Title              string `json:"title"`
	Content            string `json:"content"`
	Type               string `json:"type"` // TOOLS, TASK, PRODUCT, QUESTION
	Scale              string `json:"scale"`
	Handler            string `json:"handler"`
	Priority           string `json:"priority"`
	ExpectedStart      string `json:"expectedStart"`
	ExpectedEnd        string `json:"expectedEnd"`
	ParentRequirement  string `json:"parentRequirement"`
	CCPerson           string `json:"ccPerson"`
	ReviewTime         string `json:"reviewTime"`
	TestCaseReviewTime string `json:"testCaseReviewTime"`
	SubmitTime         string `json:"submitTime"`
	TestStartTime      string `json:"testStartTime"`
	OnlineDeadline     string `json:"onlineDeadline"`
	EstimatedHours     string `json:"estimatedHours"`
	Client             string `json:"client"`
	Tester             string `json:"tester"`
	Developer          string `json:"developer"`
	Producter          string `json:"producter"`
	Designer           string `json:"designer"`
	CreateTime         string `json:"createTime"`
}
