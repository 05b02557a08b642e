package securite

import (
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/lxc/incus/v6/shared/validate"

	"github.com/FuturFusion/security-manager/shared/api"
)

type Utilisateur struct {
	ID               int64
	Nom              string
	Prenom           string
	Email            string
	DateNaissance    *api.Date
	Adresse          string
	Actif            bool
	Profil           *Profil          `db:"join=profil.id"`
	TypeUtilisateur  *TypeUtilisateur `db:"join=type_utilisateur.code"`
	DateCreation     time.Time
	DateModification time.Time
}

func (u Utilisateur) Validate() error {
	if u.ID < 0 {
		return NewValidationErrf("Invalid user, id can not be negative")
	}

	for _, field := range []struct {
		name   string
		value  string
		maxLen int
	}{
		{name: "last name", value: u.Nom, maxLen: 100},
		{name: "first name", value: u.Prenom, maxLen: 100},
		{name: "email", value: u.Email, maxLen: 50},
	} {
		err := validate.IsNotEmpty(field.value)
		if err != nil {
			return NewValidationErrf("Invalid user, %s can not be empty", field.name)
		}

		if utf8.RuneCountInString(field.value) > field.maxLen {
			return NewValidationErrf("Invalid user, %s %q exceeds %d characters", field.name, field.value, field.maxLen)
		}
	}

	addr, err := mail.ParseAddress(u.Email)
	if err != nil || addr.Address != u.Email {
		return NewValidationErrf("Invalid user, email %q is not a valid address", u.Email)
	}

	if utf8.RuneCountInString(u.Adresse) > 200 {
		return NewValidationErrf("Invalid user, address exceeds 200 characters")
	}

	if u.Profil != nil && u.Profil.ID <= 0 {
		return NewValidationErrf("Invalid user, profile reference requires a positive id")
	}

	if u.TypeUtilisateur == nil {
		return NewValidationErrf("Invalid user, user type can not be empty")
	}

	_, err = NewTypeUtilisateur(u.TypeUtilisateur.Code)
	if err != nil {
		return NewValidationErrf("Invalid user: %v", err)
	}

	return nil
}

func (u Utilisateur) ToFilterable() api.UtilisateurFilterable {
	filterable := api.UtilisateurFilterable{
		ID:      u.ID,
		Nom:     u.Nom,
		Prenom:  u.Prenom,
		Email:   u.Email,
		Adresse: u.Adresse,
		Actif:   u.Actif,
		Droits:  []string{},
	}

	if u.DateNaissance != nil {
		filterable.DateNaissance = u.DateNaissance.String()
	}

	if u.Profil != nil {
		filterable.ProfilID = u.Profil.ID
		filterable.ProfilLibelle = u.Profil.Libelle
		for _, code := range u.Profil.Droits.Codes() {
			filterable.Droits = append(filterable.Droits, string(code))
		}
	}

	if u.TypeUtilisateur != nil {
		filterable.TypeUtilisateurCode = string(u.TypeUtilisateur.Code)
	}

	return filterable
}

func (u Utilisateur) MatchesCriteria(expression string) (bool, error) {
	filterable, includeExpr, err := u.CompileIncludeExpression(expression)
	if err != nil {
		return false, fmt.Errorf("Failed to compile include expression %q: %v", expression, err)
	}

	output, err := expr.Run(includeExpr, filterable)
	if err != nil {
		return false, fmt.Errorf("Failed to run include expression %q with user %v: %v", expression, filterable, err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("Include expression %q does not evaluate to boolean result: %v", expression, output)
	}

	return result, nil
}

func (u Utilisateur) CompileIncludeExpression(expression string) (*api.UtilisateurFilterable, *vm.Program, error) {
	filterable := u.ToFilterable()

	// Instantiate all nil fields when compiling the expression for consistency.
	baseEnv := api.UtilisateurFilterable{Droits: []string{}}
	options := append([]expr.Option{expr.Env(baseEnv)}, dateFunctions...)

	expression = matchNomAlias(expression, options...)

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, nil, err
	}

	return &filterable, program, nil
}

type Utilisateurs []Utilisateur
