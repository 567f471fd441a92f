package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthorResponse carries the stored fields plus every derived display field
// a view needs.
type AuthorResponse struct {
	ID                   uuid.UUID  `json:"id"`
	FirstName            string     `json:"first_name"`
	FamilyName           string     `json:"family_name"`
	DateOfBirth          *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath          *time.Time `json:"date_of_death,omitempty"`
	Name                 string     `json:"name"`
	DateOfBirthFormatted string     `json:"date_of_birth_formatted"`
	DateOfDeathFormatted string     `json:"date_of_death_formatted"`
	DOBInputFormat       string     `json:"dob_input_format"`
	DODInputFormat       string     `json:"dod_input_format"`
	URL                  string     `json:"url"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:                   a.ID,
		FirstName:            a.FirstName,
		FamilyName:           a.FamilyName,
		DateOfBirth:          a.DateOfBirth,
		DateOfDeath:          a.DateOfDeath,
		Name:                 a.Name(),
		DateOfBirthFormatted: a.DateOfBirthFormatted(),
		DateOfDeathFormatted: a.DateOfDeathFormatted(),
		DOBInputFormat:       a.DOBInputFormat(),
		DODInputFormat:       a.DODInputFormat(),
		URL:                  a.URL(),
	}
}

// FormValues is what the author form shows in its inputs.
type FormValues struct {
	ID          string `json:"id,omitempty"`
	FirstName   string `json:"first_name"`
	FamilyName  string `json:"family_name"`
	DateOfBirth string `json:"date_of_birth"`
	DateOfDeath string `json:"date_of_death"`
}

func (a *Author) ToFormValues() *FormValues {
	v := &FormValues{
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: a.DOBInputFormat(),
		DateOfDeath: a.DODInputFormat(),
	}
	if a.ID != uuid.Nil {
		v.ID = a.ID.String()
	}
	return v
}
