package model

import (
	"time"

	"github.com/google/uuid"

	"library-catalog/internal/shared/dates"
	"library-catalog/internal/shared/paths"
)

const MaxNameLength = 100

// Author is a biographical record. Display fields are methods over the stored
// fields and are recomputed on every call.
type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	FamilyName  string     `json:"family_name" db:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty" db:"date_of_death"`
}

// Name is "Family, First" when both names are present and "" otherwise;
// a partial name never yields a partial display name.
func (a *Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

func (a *Author) DateOfBirthFormatted() string {
	return dates.Medium(a.DateOfBirth)
}

func (a *Author) DateOfDeathFormatted() string {
	return dates.Medium(a.DateOfDeath)
}

// DOBInputFormat is the yyyy-mm-dd value for a date input, "" when unknown.
func (a *Author) DOBInputFormat() string {
	return dates.Input(a.DateOfBirth)
}

// DODInputFormat is the yyyy-mm-dd value for a date input, "" when unknown.
func (a *Author) DODInputFormat() string {
	return dates.Input(a.DateOfDeath)
}

func (a *Author) URL() string {
	return paths.For(paths.Author, a.ID)
}
