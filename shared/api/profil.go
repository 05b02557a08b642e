package api

import (
	"time"
)

// ProfilWrite defines the writable fields of a user profile.
//
// swagger:model
type ProfilWrite struct {
	// Label of the profile
	// Example: Administrateur
	Libelle string `json:"libelle" yaml:"libelle"`

	// Rights granted by the profile
	// Example: ["CREATE", "READ"]
	Droits []DroitCode `json:"droits" yaml:"droits"`
}

// ProfilRead represents a user profile as returned by the API.
//
// swagger:model
type ProfilRead struct {
	// Id of the profile
	// Example: 1
	ID int64 `json:"id" yaml:"id"`

	// Label of the profile
	// Example: Administrateur
	Libelle string `json:"libelle" yaml:"libelle"`

	// Rights granted by the profile
	// Example: ["CREATE", "READ"]
	Droits []DroitCode `json:"droits" yaml:"droits"`

	// Creation date
	// Example: 2025-01-01T12:00:00Z
	DateCreation time.Time `json:"date_creation" yaml:"date_creation"`

	// Last modification date
	// Example: 2025-01-01T12:00:00Z
	DateModification time.Time `json:"date_modification" yaml:"date_modification"`
}
