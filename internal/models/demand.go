package models

type DemandStatus string

const (
	StatusPendingReview DemandStatus = "PENDING_REVIEW"
	StatusReviewed      DemandStatus = "REVIEWED"
	StatusDeveloping    DemandStatus = "DEVELOPING"
	StatusPendingTest   DemandStatus = "PENDING_TEST"
	StatusTesting       DemandStatus = "TESTING"
	StatusTestFinished  DemandStatus = "TEST_FINISHED"
	StatusOnline        DemandStatus = "ONLINE"
)

// IsFinished reports whether the status counts toward an iteration's
// finished demand total.
func (s DemandStatus) IsFinished() bool {
	return s == StatusTestFinished || s == StatusOnline
}

// IsValid reports whether the status is one of the known lifecycle states.
func (s DemandStatus) IsValid() bool {
	switch s {
	case StatusPendingReview, StatusReviewed, StatusDeveloping,
		StatusPendingTest, StatusTesting, StatusTestFinished, StatusOnline:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMiddle Priority = "MIDDLE"
	PriorityLow    Priority = "LOW"
)

func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMiddle || p == PriorityLow
}

type Demand struct {
	ID            string       `json:"id"`
	IterationID   string       `json:"iterationId"`
	Name          string       `json:"name"`
	Creator       string       `json:"creator"`
	Priority      Priority     `json:"priority"`
	Status        DemandStatus `json:"status"`
	CreateTime    string       `json:"createTime"`
	ExpectEndTime string       `json:"expectEndTime"`
}
