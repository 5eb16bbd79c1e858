package datasource

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"userdeck/internal/domain"
)

// toRecord maps one wire user onto a UserRecord
func toRecord(u apiUser) domain.UserRecord {
	email := strings.TrimSpace(u.Email)
	born, _ := domain.ParseDate(u.Dob.Date)
	return domain.UserRecord{
		ID:              email,
		DisplayName:     strings.TrimSpace(u.Name.First + " " + u.Name.Last),
		Username:        u.Login.Username,
		DateOfBirth:     born,
		NationalityCode: strings.ToUpper(strings.TrimSpace(u.Nat)),
		Email:           email,
		ThumbnailURL:    u.Picture.Thumbnail,
	}
}

// mapUsers converts the batch in order, dropping records that fail
// validation or repeat an email already seen.
func mapUsers(users []apiUser, validate *validator.Validate, logger *zap.SugaredLogger) []domain.UserRecord {
	records := make([]domain.UserRecord, 0, len(users))
	seen := make(map[string]bool, len(users))
	for i, u := range users {
		record := toRecord(u)
		if err := validate.Struct(record); err != nil {
			logger.Warnw("dropping invalid user record", "index", i, "email", record.Email, "error", err)
			continue
		}
		if seen[record.ID] {
			logger.Warnw("dropping duplicate user record", "index", i, "email", record.Email)
			continue
		}
		seen[record.ID] = true
		if !record.HasDateOfBirth() {
			logger.Debugw("user record has no usable date of birth", "email", record.Email, "raw", u.Dob.Date)
		}
		records = append(records, record)
	}
	return records
}
