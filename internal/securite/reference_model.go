package securite

import (
	"slices"

	"github.com/FuturFusion/security-manager/shared/api"
)

// TypeDroit is a row of the read-only rights type reference table.
type TypeDroit struct {
	Code    api.TypeDroitCode `db:"primary=yes"`
	Libelle string
}

var (
	TypeDroitAdmin = TypeDroit{Code: api.TYPEDROITCODE_ADMIN, Libelle: "securite.profil.typeDroit.values.Admin"}
	TypeDroitRead  = TypeDroit{Code: api.TYPEDROITCODE_READ, Libelle: "securite.profil.typeDroit.values.Read"}
	TypeDroitWrite = TypeDroit{Code: api.TYPEDROITCODE_WRITE, Libelle: "securite.profil.typeDroit.values.Write"}
)

type TypeDroits []TypeDroit

// NewTypeDroit returns the reference value for the given code.
func NewTypeDroit(code api.TypeDroitCode) (TypeDroit, error) {
	switch code {
	case api.TYPEDROITCODE_ADMIN:
		return TypeDroitAdmin, nil
	case api.TYPEDROITCODE_READ:
		return TypeDroitRead, nil
	case api.TYPEDROITCODE_WRITE:
		return TypeDroitWrite, nil
	}

	return TypeDroit{}, NewValidationErrf("Invalid rights type code %q", code)
}

// Droit is a row of the read-only rights reference table.
type Droit struct {
	Code      api.DroitCode `db:"primary=yes"`
	Libelle   string
	TypeDroit TypeDroit `db:"join=type_droit.code"`
}

var (
	DroitCreate = Droit{Code: api.DROITCODE_CREATE, Libelle: "securite.profil.droit.values.Create", TypeDroit: TypeDroitWrite}
	DroitRead   = Droit{Code: api.DROITCODE_READ, Libelle: "securite.profil.droit.values.Read", TypeDroit: TypeDroitRead}
	DroitUpdate = Droit{Code: api.DROITCODE_UPDATE, Libelle: "securite.profil.droit.values.Update", TypeDroit: TypeDroitWrite}
	DroitDelete = Droit{Code: api.DROITCODE_DELETE, Libelle: "securite.profil.droit.values.Delete", TypeDroit: TypeDroitAdmin}
)

// NewDroit returns the reference value for the given code.
func NewDroit(code api.DroitCode) (Droit, error) {
	switch code {
	case api.DROITCODE_CREATE:
		return DroitCreate, nil
	case api.DROITCODE_READ:
		return DroitRead, nil
	case api.DROITCODE_UPDATE:
		return DroitUpdate, nil
	case api.DROITCODE_DELETE:
		return DroitDelete, nil
	}

	return Droit{}, NewValidationErrf("Invalid right code %q", code)
}

type Droits []Droit

// Codes returns the codes of the rights, in order.
func (d Droits) Codes() []api.DroitCode {
	codes := make([]api.DroitCode, 0, len(d))
	for _, droit := range d {
		codes = append(codes, droit.Code)
	}

	return codes
}

// ContainsAll reports whether every given code is granted.
func (d Droits) ContainsAll(codes ...api.DroitCode) bool {
	granted := d.Codes()
	for _, code := range codes {
		if !slices.Contains(granted, code) {
			return false
		}
	}

	return true
}

// SameCodes reports whether both lists grant the same set of rights.
func (d Droits) SameCodes(other Droits) bool {
	return d.ContainsAll(other.Codes()...) && other.ContainsAll(d.Codes()...)
}

// TypeUtilisateur is a row of the read-only user type reference table.
type TypeUtilisateur struct {
	Code    api.TypeUtilisateurCode `db:"primary=yes"`
	Libelle string
}

var (
	TypeUtilisateurAdmin  = TypeUtilisateur{Code: api.TYPEUTILISATEURCODE_ADMIN, Libelle: "securite.utilisateur.typeUtilisateur.values.Admin"}
	TypeUtilisateurGest   = TypeUtilisateur{Code: api.TYPEUTILISATEURCODE_GEST, Libelle: "securite.utilisateur.typeUtilisateur.values.Gestionnaire"}
	TypeUtilisateurClient = TypeUtilisateur{Code: api.TYPEUTILISATEURCODE_CLIENT, Libelle: "securite.utilisateur.typeUtilisateur.values.Client"}
)

type TypeUtilisateurs []TypeUtilisateur

// NewTypeUtilisateur returns the reference value for the given code.
func NewTypeUtilisateur(code api.TypeUtilisateurCode) (TypeUtilisateur, error) {
	switch code {
	case api.TYPEUTILISATEURCODE_ADMIN:
		return TypeUtilisateurAdmin, nil
	case api.TYPEUTILISATEURCODE_GEST:
		return TypeUtilisateurGest, nil
	case api.TYPEUTILISATEURCODE_CLIENT:
		return TypeUtilisateurClient, nil
	}

	return TypeUtilisateur{}, NewValidationErrf("Invalid user type code %q", code)
}
