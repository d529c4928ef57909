package models

type BugSeverity string

const (
	SeverityMinor    BugSeverity = "MINOR"
	SeverityMajor    BugSeverity = "MAJOR"
	SeverityCritical BugSeverity = "CRITICAL"
)

type BugStatus string

const (
	BugPending    BugStatus = "PENDING"
	BugInProgress BugStatus = "IN_PROGRESS"
	BugClosed     BugStatus = "CLOSED"
)

type Bug struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Type               string      `json:"type"`
	Version            string      `json:"version"`
	Severity           BugSeverity `json:"severity"`
	Priority           Priority    `json:"priority"`
	Status             BugStatus   `json:"status"`
	Handler            string      `json:"handler"`
	StartDate          string      `json:"startDate"`
	EndDate            string      `json:"endDate"`
	Creator            string      `json:"creator"`
	CreateTime         string      `json:"createTime"`
	Platform           string      `json:"platform"`
	TestData           string      `json:"testData"`
	APIURL             string      `json:"apiUrl"`
	TestSteps          string      `json:"testSteps"`
	TestResult         string      `json:"testResult"`
	ExpectedResult     string      `json:"expectedResult"`
	RelatedRequirement string      `json:"relatedRequirement"`
	ReproduceRule      string      `json:"reproduceRule"`
	Attachment         string      `json:"attachment"`
}

type Comment struct {
	ID         string `json:"id"`
	BugID      string `json:"bugId"`
	Content    string `json:"content"`
	Creator    string `json:"creator"`
	CreateTime string `json:"createTime"`
}
