package api

import (
	"time"
)

// UtilisateurWrite defines the writable fields of a user.
//
// swagger:model
type UtilisateurWrite struct {
	// Last name
	// Example: Doe
	Nom string `json:"nom" yaml:"nom"`

	// First name
	// Example: John
	Prenom string `json:"prenom" yaml:"prenom"`

	// Email address
	// Example: john.doe@example.com
	Email string `json:"email" yaml:"email"`

	// Date of birth
	// Example: 1990-01-01
	DateNaissance *Date `json:"date_naissance,omitempty" yaml:"date_naissance,omitempty"`

	// Postal address
	// Example: 123 Main St
	Adresse string `json:"adresse" yaml:"adresse"`

	// Whether the user is active
	// Example: true
	Actif bool `json:"actif" yaml:"actif"`

	// Id of the user's profile
	// Example: 1
	ProfilID *int64 `json:"profil_id,omitempty" yaml:"profil_id,omitempty"`

	// Code of the user's type
	// Example: ADMIN
	TypeUtilisateurCode TypeUtilisateurCode `json:"type_utilisateur_code" yaml:"type_utilisateur_code"`
}

// UtilisateurRead represents a user as returned by the API.
//
// swagger:model
type UtilisateurRead struct {
	// Id of the user
	// Example: 1
	ID int64 `json:"id" yaml:"id"`

	// Last name
	// Example: Doe
	Nom string `json:"nom" yaml:"nom"`

	// First name
	// Example: John
	Prenom string `json:"prenom" yaml:"prenom"`

	// Email address
	// Example: john.doe@example.com
	Email string `json:"email" yaml:"email"`

	// Date of birth
	// Example: 1990-01-01
	DateNaissance *Date `json:"date_naissance,omitempty" yaml:"date_naissance,omitempty"`

	// Postal address
	// Example: 123 Main St
	Adresse string `json:"adresse" yaml:"adresse"`

	// Whether the user is active
	// Example: true
	Actif bool `json:"actif" yaml:"actif"`

	// Id of the user's profile
	// Example: 1
	ProfilID *int64 `json:"profil_id,omitempty" yaml:"profil_id,omitempty"`

	// Code of the user's type
	// Example: ADMIN
	TypeUtilisateurCode TypeUtilisateurCode `json:"type_utilisateur_code" yaml:"type_utilisateur_code"`

	// Creation date
	// Example: 2025-01-01T12:00:00Z
	DateCreation time.Time `json:"date_creation" yaml:"date_creation"`

	// Last modification date
	// Example: 2025-01-01T12:00:00Z
	DateModification time.Time `json:"date_modification" yaml:"date_modification"`
}

// UtilisateurFilterable is the environment include expressions on users are
// evaluated against.
type UtilisateurFilterable struct {
	ID                  int64    `expr:"id"`
	Nom                 string   `expr:"nom"`
	Prenom              string   `expr:"prenom"`
	Email               string   `expr:"email"`
	Adresse             string   `expr:"adresse"`
	Actif               bool     `expr:"actif"`
	ProfilID            int64    `expr:"profil_id"`
	ProfilLibelle       string   `expr:"profil"`
	TypeUtilisateurCode string   `expr:"type_utilisateur"`
	DateNaissance       string   `expr:"date_naissance"`
	Droits              []string `expr:"droits"`
}
