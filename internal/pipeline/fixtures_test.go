package pipeline_test

import (
	"fmt"
	"time"

	"userdeck/internal/domain"
)

func user(name, username, email, nat, dob string) domain.UserRecord {
	born, _ := domain.ParseDate(dob)
	return domain.UserRecord{
		ID:              email,
		DisplayName:     name,
		Username:        username,
		DateOfBirth:     born,
		NationalityCode: nat,
		Email:           email,
	}
}

func sampleDataset() []domain.UserRecord {
	return []domain.UserRecord{
		user("John Smith", "bluecat123", "john.smith@example.com", "US", "1985-03-02"),
		user("Amelia Clarke", "tinyfrog77", "amelia.clarke@example.com", "GB", "2000-06-15"),
		user("Lucas Martin", "johnnyb", "lucas.martin@example.com", "FR", "1999-12-31"),
		user("Emma Johnson", "redpanda", "emma.johnson@example.com", "US", "2000-12-31"),
		user("Noah Wilson", "silverfox", "noah.wilson@example.com", "AU", "2001-01-01"),
		user("Mia Tanaka", "greenowl", "mia.tanaka@example.com", "GB", ""),
	}
}

// largeDataset produces n records cycling through nationalities and birth years
func largeDataset(n int) []domain.UserRecord {
	nats := []string{"US", "GB", "FR", "DE", "AU"}
	base := time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)
	users := make([]domain.UserRecord, 0, n)
	for i := 0; i < n; i++ {
		email := fmt.Sprintf("person%03d@example.com", i)
		users = append(users, domain.UserRecord{
			ID:              email,
			DisplayName:     fmt.Sprintf("Person %03d", i),
			Username:        fmt.Sprintf("user%03d", i),
			DateOfBirth:     base.AddDate(0, i*5, i),
			NationalityCode: nats[i%len(nats)],
			Email:           email,
		})
	}
	return users
}

func ids(users []domain.UserRecord) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}
