package securite

import (
	"fmt"
	"slices"

	"github.com/FuturFusion/security-manager/shared/api"
)

// Mappers copy fields between the persistence records and their Read/Write
// representations. Every mapper rejects a nil source with ErrIllegalArgument.
// A nil target allocates a new value, any other target is filled in place
// and returned.

// CreateProfilRead maps a profile to its read representation.
func CreateProfilRead(source *Profil, target *api.ProfilRead) (*api.ProfilRead, error) {
	if source == nil {
		return nil, fmt.Errorf("Profile to map can not be nil: %w", ErrIllegalArgument)
	}

	if target == nil {
		target = &api.ProfilRead{}
	}

	target.ID = source.ID
	target.Libelle = source.Libelle
	target.Droits = source.Droits.Codes()
	target.DateCreation = source.DateCreation
	target.DateModification = source.DateModification

	return target, nil
}

// ToProfil copies the label and the rights of source into target.
func ToProfil(source *Profil, target *Profil) (*Profil, error) {
	if source == nil {
		return nil, fmt.Errorf("Profile to map can not be nil: %w", ErrIllegalArgument)
	}

	if target == nil {
		target = &Profil{}
	}

	target.Libelle = source.Libelle
	target.Droits = slices.Clone(source.Droits)

	return target, nil
}

// ToProfilFromWrite maps the writable fields of a profile. Right codes are
// resolved to their reference values.
func ToProfilFromWrite(source *api.ProfilWrite, target *Profil) (*Profil, error) {
	if source == nil {
		return nil, fmt.Errorf("Profile to map can not be nil: %w", ErrIllegalArgument)
	}

	droits := make(Droits, 0, len(source.Droits))
	for _, code := range source.Droits {
		droit, err := NewDroit(code)
		if err != nil {
			return nil, err
		}

		droits = append(droits, droit)
	}

	if target == nil {
		target = &Profil{}
	}

	target.Libelle = source.Libelle
	target.Droits = droits

	return target, nil
}

// CreateUtilisateurRead maps a user to its read representation. The profile
// is reduced to its id and the user type to its code.
func CreateUtilisateurRead(source *Utilisateur, target *api.UtilisateurRead) (*api.UtilisateurRead, error) {
	if source == nil {
		return nil, fmt.Errorf("User to map can not be nil: %w", ErrIllegalArgument)
	}

	if target == nil {
		target = &api.UtilisateurRead{}
	}

	target.ID = source.ID
	target.Nom = source.Nom
	target.Prenom = source.Prenom
	target.Email = source.Email
	target.DateNaissance = cloneDate(source.DateNaissance)
	target.Adresse = source.Adresse
	target.Actif = source.Actif

	target.ProfilID = nil
	if source.Profil != nil {
		id := source.Profil.ID
		target.ProfilID = &id
	}

	target.TypeUtilisateurCode = ""
	if source.TypeUtilisateur != nil {
		target.TypeUtilisateurCode = source.TypeUtilisateur.Code
	}

	target.DateCreation = source.DateCreation
	target.DateModification = source.DateModification

	return target, nil
}

// ToUtilisateur maps the writable fields of a user. The profile id becomes a
// profile reference holding only that id.
func ToUtilisateur(source *api.UtilisateurWrite, target *Utilisateur) (*Utilisateur, error) {
	if source == nil {
		return nil, fmt.Errorf("User to map can not be nil: %w", ErrIllegalArgument)
	}

	var typeUtilisateur *TypeUtilisateur
	if source.TypeUtilisateurCode != "" {
		value, err := NewTypeUtilisateur(source.TypeUtilisateurCode)
		if err != nil {
			return nil, err
		}

		typeUtilisateur = &value
	}

	if target == nil {
		target = &Utilisateur{}
	}

	target.Nom = source.Nom
	target.Prenom = source.Prenom
	target.Email = source.Email
	target.DateNaissance = cloneDate(source.DateNaissance)
	target.Adresse = source.Adresse
	target.Actif = source.Actif

	target.Profil = nil
	if source.ProfilID != nil {
		target.Profil = &Profil{ID: *source.ProfilID}
	}

	target.TypeUtilisateur = typeUtilisateur

	return target, nil
}

func cloneDate(d *api.Date) *api.Date {
	if d == nil {
		return nil
	}

	date := *d
	return &date
}
