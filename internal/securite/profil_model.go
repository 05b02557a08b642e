package securite

import (
	"time"
	"unicode/utf8"
)

type Profil struct {
	ID               int64
	Libelle          string
	Droits           Droits `db:"ignore"`
	DateCreation     time.Time
	DateModification time.Time
}

func (p Profil) Validate() error {
	if p.ID < 0 {
		return NewValidationErrf("Invalid profile, id can not be negative")
	}

	if p.Libelle == "" {
		return NewValidationErrf("Invalid profile, label can not be empty")
	}

	if utf8.RuneCountInString(p.Libelle) > 100 {
		return NewValidationErrf("Invalid profile, label %q exceeds 100 characters", p.Libelle)
	}

	seen := make(map[string]bool, len(p.Droits))
	for _, droit := range p.Droits {
		_, err := NewDroit(droit.Code)
		if err != nil {
			return NewValidationErrf("Invalid profile %q: %v", p.Libelle, err)
		}

		if seen[string(droit.Code)] {
			return NewValidationErrf("Invalid profile %q, right %q is granted more than once", p.Libelle, droit.Code)
		}

		seen[string(droit.Code)] = true
	}

	return nil
}

type Profils []Profil
