package timezone

import (
	"time"

	"github.com/agendopro/agendopro-api/internal/models"
)

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// NowForProfile resolve o timezone da clínica do usuário.
func NowForProfile(p *models.Profile) time.Time {
	if p == nil {
		return Now()
	}
	return NowIn(p.Timezone)
}

// ParseDate interpreta "2006-01-02" no timezone da clínica.
func ParseDate(p *models.Profile, dateStr string) (time.Time, error) {
	tz := DefaultTimezone
	if p != nil && p.Timezone != "" {
		tz = p.Timezone
	}
	return time.ParseInLocation("2006-01-02", dateStr, Location(tz))
}
