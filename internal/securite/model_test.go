package securite_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/FuturFusion/security-manager/internal/securite"
	"github.com/FuturFusion/security-manager/shared/api"
)

func requireValidationErr(tt require.TestingT, err error, a ...any) {
	var verr securite.ValidationErr
	require.ErrorAs(tt, err, &verr, a...)
}

func TestNewReferenceValues(t *testing.T) {
	for _, code := range api.TypeDroitCodes() {
		typeDroit, err := securite.NewTypeDroit(code)
		require.NoError(t, err)
		require.Equal(t, code, typeDroit.Code)
		require.True(t, strings.HasPrefix(typeDroit.Libelle, "securite.profil.typeDroit.values."))
	}

	for _, code := range api.DroitCodes() {
		droit, err := securite.NewDroit(code)
		require.NoError(t, err)
		require.Equal(t, code, droit.Code)
		require.NotEmpty(t, droit.TypeDroit.Code)
	}

	for _, code := range api.TypeUtilisateurCodes() {
		typeUtilisateur, err := securite.NewTypeUtilisateur(code)
		require.NoError(t, err)
		require.Equal(t, code, typeUtilisateur.Code)
	}

	_, err := securite.NewTypeDroit("NONE")
	requireValidationErr(t, err)

	_, err = securite.NewDroit("NONE")
	requireValidationErr(t, err)

	_, err = securite.NewTypeUtilisateur("NONE")
	requireValidationErr(t, err)

	require.Equal(t, "securite.profil.typeDroit.values.Admin", securite.TypeDroitAdmin.Libelle)
	require.Equal(t, securite.TypeDroitAdmin, securite.DroitDelete.TypeDroit)
}

func TestDroits_SameCodes(t *testing.T) {
	a := securite.Droits{securite.DroitCreate, securite.DroitDelete}
	b := securite.Droits{securite.DroitDelete, securite.DroitCreate}
	c := securite.Droits{securite.DroitDelete}

	require.True(t, a.SameCodes(b))
	require.False(t, a.SameCodes(c))
	require.False(t, c.SameCodes(a))
	require.True(t, a.ContainsAll(api.DROITCODE_CREATE))
	require.False(t, c.ContainsAll(api.DROITCODE_CREATE, api.DROITCODE_DELETE))
}

func TestProfil_Validate(t *testing.T) {
	tests := []struct {
		name   string
		profil securite.Profil

		assertErr require.ErrorAssertionFunc
	}{
		{
			name: "valid",
			profil: securite.Profil{
				ID:      1,
				Libelle: "Administrateur",
				Droits:  securite.Droits{securite.DroitCreate, securite.DroitRead},
			},

			assertErr: require.NoError,
		},
		{
			name: "error - negative id",
			profil: securite.Profil{
				ID:      -1,
				Libelle: "Administrateur",
			},

			assertErr: requireValidationErr,
		},
		{
			name:   "error - empty label",
			profil: securite.Profil{},

			assertErr: requireValidationErr,
		},
		{
			name: "error - label too long",
			profil: securite.Profil{
				Libelle: strings.Repeat("é", 101),
			},

			assertErr: requireValidationErr,
		},
		{
			name: "error - duplicate right",
			profil: securite.Profil{
				Libelle: "Lecteur",
				Droits:  securite.Droits{securite.DroitRead, securite.DroitRead},
			},

			assertErr: requireValidationErr,
		},
		{
			name: "error - unknown right",
			profil: securite.Profil{
				Libelle: "Lecteur",
				Droits:  securite.Droits{{Code: "EXECUTE"}},
			},

			assertErr: requireValidationErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.profil.Validate()

			tc.assertErr(t, err)
		})
	}
}

func validUtilisateur() securite.Utilisateur {
	return securite.Utilisateur{
		ID:              1,
		Nom:             "Doe",
		Prenom:          "John",
		Email:           "john.doe@example.com",
		DateNaissance:   ptr(api.NewDate(1990, time.January, 1)),
		Adresse:         "123 Main St",
		Actif:           true,
		Profil:          &securite.Profil{ID: 2},
		TypeUtilisateur: ptr(securite.TypeUtilisateurAdmin),
	}
}

func TestUtilisateur_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(u *securite.Utilisateur)

		assertErr require.ErrorAssertionFunc
	}{
		{
			name:   "valid",
			modify: func(u *securite.Utilisateur) {},

			assertErr: require.NoError,
		},
		{
			name: "valid - without profile and birth date",
			modify: func(u *securite.Utilisateur) {
				u.Profil = nil
				u.DateNaissance = nil
			},

			assertErr: require.NoError,
		},
		{
			name:   "error - negative id",
			modify: func(u *securite.Utilisateur) { u.ID = -1 },

			assertErr: requireValidationErr,
		},
		{
			name:   "error - empty last name",
			modify: func(u *securite.Utilisateur) { u.Nom = "" },

			assertErr: requireValidationErr,
		},
		{
			name:   "error - empty first name",
			modify: func(u *securite.Utilisateur) { u.Prenom = "" },

			assertErr: requireValidationErr,
		},
		{
			name:   "error - last name too long",
			modify: func(u *securite.Utilisateur) { u.Nom = strings.Repeat("a", 101) },

			assertErr: requireValidationErr,
		},
		{
			name:   "error - email too long",
			modify: func(u *securite.Utilisateur) { u.Email = strings.Repeat("a", 40) + "@example.com" },

			assertErr: requireValidationErr,
		},
		{
			name:   "error - invalid email",
			modify: func(u *securite.Utilisateur) { u.Email = "john.doe" },

			assertErr: requireValidationErr,
		},
		{
			name:   "error - email with display name",
			modify: func(u *securite.Utilisateur) { u.Email = "John <john@example.com>" },

			assertErr: requireValidationErr,
		},
		{
			name:   "error - address too long",
			modify: func(u *securite.Utilisateur) { u.Adresse = strings.Repeat("a", 201) },

			assertErr: requireValidationErr,
		},
		{
			name:   "error - profile without id",
			modify: func(u *securite.Utilisateur) { u.Profil = &securite.Profil{} },

			assertErr: requireValidationErr,
		},
		{
			name:   "error - missing user type",
			modify: func(u *securite.Utilisateur) { u.TypeUtilisateur = nil },

			assertErr: requireValidationErr,
		},
		{
			name:   "error - unknown user type",
			modify: func(u *securite.Utilisateur) { u.TypeUtilisateur = &securite.TypeUtilisateur{Code: "GUEST"} },

			assertErr: requireValidationErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			utilisateur := validUtilisateur()
			tc.modify(&utilisateur)

			err := utilisateur.Validate()

			tc.assertErr(t, err)
		})
	}
}

func TestUtilisateur_MatchesCriteria(t *testing.T) {
	utilisateur := validUtilisateur()
	utilisateur.Profil = &securite.Profil{
		ID:      2,
		Libelle: "Administrateur",
		Droits:  securite.Droits{securite.DroitCreate, securite.DroitDelete},
	}

	tests := []struct {
		name       string
		expression string

		assertErr require.ErrorAssertionFunc
		want      bool
	}{
		{
			name:       "field comparison",
			expression: `prenom == "John" && actif`,

			assertErr: require.NoError,
			want:      true,
		},
		{
			name:       "user type",
			expression: `type_utilisateur == "CLIENT"`,

			assertErr: require.NoError,
			want:      false,
		},
		{
			name:       "profile rights",
			expression: `"DELETE" in droits && profil == "Administrateur"`,

			assertErr: require.NoError,
			want:      true,
		},
		{
			name:       "birth year",
			expression: `year(date_naissance) == 1990`,

			assertErr: require.NoError,
			want:      true,
		},
		{
			name:       "age",
			expression: `age(date_naissance) >= 18`,

			assertErr: require.NoError,
			want:      true,
		},
		{
			name:       "bare identifier matches last name",
			expression: `Doe`,

			assertErr: require.NoError,
			want:      true,
		},
		{
			name:       "bare regexp not matching last name",
			expression: `^Smi.*`,

			assertErr: require.NoError,
			want:      false,
		},
		{
			name:       "error - not a boolean",
			expression: `nom + prenom`,

			assertErr: require.Error,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := utilisateur.MatchesCriteria(tc.expression)

			tc.assertErr(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
