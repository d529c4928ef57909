package store

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sill-Liu/test-platform/internal/models"
)

// Seed data mirrors the fixtures the dashboard ships with. The iteration
// counters are part of the fixture and intentionally not derived from the
// demand seed.

func seedProjects() []models.Project {
	return []models.Project{
		{
			ID:         "proj_001",
			Name:       "Test Platform V1",
			Owner:      "Zhang San",
			Admin:      "Li Si",
			CreateTime: "2024-01-01 10:00:00",
		},
		{
			ID:         "proj_002",
			Name:       "User Center Rework",
			Owner:      "Wang Wu",
			Admin:      "Zhao Liu",
			CreateTime: "2024-02-15 14:30:00",
		},
	}
}

func seedIterations() []models.Iteration {
	return []models.Iteration{
		{
			ID:                  "iter_001",
			ProjectID:           "proj_001",
			Name:                "V1.0 Iteration",
			Creator:             "Zhang San",
			Admin:               "Li Si",
			StartTime:           "2024-01-05",
			CreateTime:          "2024-01-02 09:00:00",
			DemandCount:         5,
			FinishedDemandCount: 3,
			Progress:            60,
		},
		{
			ID:                  "iter_002",
			ProjectID:           "proj_001",
			Name:                "V1.1 Iteration",
			Creator:             "Zhang San",
			Admin:               "Li Si",
			StartTime:           "2024-02-01",
			CreateTime:          "2024-01-20 11:00:00",
			DemandCount:         8,
			FinishedDemandCount: 2,
			Progress:            25,
		},
	}
}

func seedDemands() []models.Demand {
	return []models.Demand{
		{
			ID:            "demand_001",
			IterationID:   "iter_001",
			Name:          "Login feature development",
			Creator:       "Zhang San",
			Priority:      models.PriorityHigh,
			Status:        models.StatusOnline,
			CreateTime:    "2024-01-06 10:00:00",
			ExpectEndTime: "2024-01-15",
		},
		{
			ID:            "demand_002",
			IterationID:   "iter_001",
			Name:          "User list display",
			Creator:       "Li Si",
			Priority:      models.PriorityMiddle,
			Status:        models.StatusTesting,
			CreateTime:    "2024-01-08 11:00:00",
			ExpectEndTime: "2024-01-20",
		},
	}
}

// bugSeedBase is the first id in the seeded BUG-<n> range; the store's
// monotonic sequence continues right after it.
const bugSeedBase = 1000

func seedBugs(count int) []models.Bug {
	severities := []models.BugSeverity{models.SeverityMinor, models.SeverityMajor, models.SeverityCritical}
	priorities := []models.Priority{models.PriorityLow, models.PriorityMiddle, models.PriorityHigh}
	statuses := []models.BugStatus{models.BugClosed, models.BugInProgress, models.BugPending}
	platforms := []string{"Frontend", "Product/Design", "Backend"}
	handlers := []string{"Zhang San", "Wang Wu", "Zhang Si"}
	creators := []string{"Zhang San", "Wang Wu"}

	bugs := make([]models.Bug, 0, count)
	for i := 0; i < count; i++ {
		subject := "code check"
		if i%2 == 0 {
			subject = "companion drag"
		}
		failure := "failure"
		if i%3 == 0 {
			failure = "out of range"
		}
		bugs = append(bugs, models.Bug{
			ID:                 fmt.Sprintf("BUG-%d", bugSeedBase+i),
			Title:              fmt.Sprintf("[PC py-companion] %s %s issue", subject, failure),
			Type:               "BUG",
			Version:            "iteration build",
			Severity:           severities[i%len(severities)],
			Priority:           priorities[i%len(priorities)],
			Status:             statuses[i%len(statuses)],
			Handler:            handlers[i%len(handlers)],
			StartDate:          fmt.Sprintf("2026-01-%02d", 8+i%5),
			EndDate:            fmt.Sprintf("2026-01-%02d", 9+i%5),
			Creator:            creators[i%len(creators)],
			CreateTime:         fmt.Sprintf("2026-01-%02d %02d:%02d", 8+i%5, 14+i%4, 30+i%30),
			Platform:           platforms[i%len(platforms)],
			TestData:           "account: 1661170010 password: 123456 course: yb_pyA101",
			APIURL:             "https://api.test.com/py-student/companion",
			TestSteps:          "1. Enter the companion Python step\n2. Trigger the check\n3. Failure dialog appears\n4. Drag the companion",
			TestResult:         "dialog falls back to the initial help state instead of keeping the failure state",
			ExpectedResult:     "dialog keeps its current state instead of resetting",
			RelatedRequirement: "REQ-1148699533001179235",
			ReproduceRule:      "always",
			Attachment:         "https://picsum.photos/id/237/600/400",
		})
	}
	return bugs
}

func seedTestCases() []models.TestCase {
	return []models.TestCase{
		{ID: "tc_001", Name: "Login flow test", ProjectID: "proj_001", ProjectName: "Test Platform V1", CreateTime: "2024-01-10 09:30:00"},
		{ID: "tc_002", Name: "Order placement test", ProjectID: "proj_001", ProjectName: "Test Platform V1", CreateTime: "2024-01-11 10:00:00"},
		{ID: "tc_003", Name: "Payment API test", ProjectID: "proj_002", ProjectName: "User Center Rework", CreateTime: "2024-02-20 15:00:00"},
	}
}

func seedUsers() []models.User {
	users := []struct {
		username string
		name     string
		password string
	}{
		{"admin", "Administrator", "admin123"},
		{"zhangsan", "Zhang San", "zhangsan123"},
	}

	out := make([]models.User, 0, len(users))
	for i, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash seed password for %s: %v", u.username, err)
			continue
		}
		out = append(out, models.User{
			ID:           fmt.Sprintf("user_%03d", i+1),
			Username:     u.username,
			Name:         u.name,
			PasswordHash: string(hash),
			CreateTime:   "2024-01-01 09:00:00",
		})
	}
	return out
}
