package api

import (
	"fmt"
	"slices"
)

// TypeDroitCode is the code of a rights type.
type TypeDroitCode string

const (
	TYPEDROITCODE_ADMIN TypeDroitCode = "ADMIN"
	TYPEDROITCODE_READ  TypeDroitCode = "READ"
	TYPEDROITCODE_WRITE TypeDroitCode = "WRITE"
)

// TypeDroitCodes lists all known rights type codes.
func TypeDroitCodes() []TypeDroitCode {
	return []TypeDroitCode{TYPEDROITCODE_ADMIN, TYPEDROITCODE_READ, TYPEDROITCODE_WRITE}
}

func (c TypeDroitCode) Validate() error {
	if !slices.Contains(TypeDroitCodes(), c) {
		return fmt.Errorf("Unknown rights type code %q", c)
	}

	return nil
}

// DroitCode is the code of a single right.
type DroitCode string

const (
	DROITCODE_CREATE DroitCode = "CREATE"
	DROITCODE_READ   DroitCode = "READ"
	DROITCODE_UPDATE DroitCode = "UPDATE"
	DROITCODE_DELETE DroitCode = "DELETE"
)

// DroitCodes lists all known right codes.
func DroitCodes() []DroitCode {
	return []DroitCode{DROITCODE_CREATE, DROITCODE_READ, DROITCODE_UPDATE, DROITCODE_DELETE}
}

func (c DroitCode) Validate() error {
	if !slices.Contains(DroitCodes(), c) {
		return fmt.Errorf("Unknown right code %q", c)
	}

	return nil
}

// TypeUtilisateurCode is the code of a user type.
type TypeUtilisateurCode string

const (
	TYPEUTILISATEURCODE_ADMIN  TypeUtilisateurCode = "ADMIN"
	TYPEUTILISATEURCODE_GEST   TypeUtilisateurCode = "GEST"
	TYPEUTILISATEURCODE_CLIENT TypeUtilisateurCode = "CLIENT"
)

// TypeUtilisateurCodes lists all known user type codes.
func TypeUtilisateurCodes() []TypeUtilisateurCode {
	return []TypeUtilisateurCode{TYPEUTILISATEURCODE_ADMIN, TYPEUTILISATEURCODE_GEST, TYPEUTILISATEURCODE_CLIENT}
}

func (c TypeUtilisateurCode) Validate() error {
	if !slices.Contains(TypeUtilisateurCodes(), c) {
		return fmt.Errorf("Unknown user type code %q", c)
	}

	return nil
}

// TypeDroit represents a row of the rights type reference list.
//
// swagger:model
type TypeDroit struct {
	// Code of the rights type
	// Example: ADMIN
	Code TypeDroitCode `json:"code" yaml:"code"`

	// Translated label
	// Example: Administration
	Libelle string `json:"libelle" yaml:"libelle"`

	// Resource key of the label
	// Example: securite.profil.typeDroit.values.Admin
	Resource string `json:"resource" yaml:"resource"`
}

// Droit represents a row of the rights reference list.
//
// swagger:model
type Droit struct {
	// Code of the right
	// Example: CREATE
	Code DroitCode `json:"code" yaml:"code"`

	// Translated label
	// Example: Création
	Libelle string `json:"libelle" yaml:"libelle"`

	// Resource key of the label
	// Example: securite.profil.droit.values.Create
	Resource string `json:"resource" yaml:"resource"`

	// Code of the rights type the right belongs to
	// Example: WRITE
	TypeDroitCode TypeDroitCode `json:"type_droit_code" yaml:"type_droit_code"`
}

// TypeUtilisateur represents a row of the user type reference list.
//
// swagger:model
type TypeUtilisateur struct {
	// Code of the user type
	// Example: CLIENT
	Code TypeUtilisateurCode `json:"code" yaml:"code"`

	// Translated label
	// Example: Client
	Libelle string `json:"libelle" yaml:"libelle"`

	// Resource key of the label
	// Example: securite.utilisateur.typeUtilisateur.values.Client
	Resource string `json:"resource" yaml:"resource"`
}
