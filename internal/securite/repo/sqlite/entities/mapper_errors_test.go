package entities_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lxc/incus/v6/shared/api"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/FuturFusion/security-manager/internal/securite"
	"github.com/FuturFusion/security-manager/internal/securite/repo/sqlite/entities"
	"github.com/FuturFusion/security-manager/internal/testing/boom"
	sharedapi "github.com/FuturFusion/security-manager/shared/api"
)

func TestGetUtilisateurs_mapErr(t *testing.T) {
	tests := []struct {
		name     string
		queryErr error

		assertErr require.ErrorAssertionFunc
	}{
		{
			name:     "sqlite constraint",
			queryErr: sqlite3.Error{Code: sqlite3.ErrConstraint},

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, securite.ErrConstraintViolation, a...)
			},
		},
		{
			name:     "constraint reported as text",
			queryErr: errors.New("UNIQUE constraint failed: utilisateur.uti_email"),

			assertErr: func(tt require.TestingT, err error, a ...any) {
				_, ok := api.StatusErrorMatch(err, http.StatusBadRequest)
				require.True(tt, ok, a...)
			},
		},
		{
			name:     "other error",
			queryErr: boom.Error,

			assertErr: boom.ErrorIs,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery("SELECT .* FROM utilisateur").WillReturnError(tc.queryErr)

			_, err = entities.GetUtilisateurs(context.Background(), db)

			tc.assertErr(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUtilisateurs_scan(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	columns := []string{
		"uti_id", "uti_nom", "uti_prenom", "uti_email", "uti_date_naissance", "uti_adresse", "uti_actif",
		"pro_id", "pro_libelle", "tut_code", "tut_libelle", "uti_date_creation", "uti_date_modification",
	}

	mock.ExpectQuery("SELECT .* FROM utilisateur .* WHERE").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Dupont", "Jean", "jean.dupont@example.com", "1990-05-17", "1 rue de la Paix", true,
				int64(3), "Administrateurs", "ADMIN", "securite.utilisateur.typeUtilisateur.values.Admin", created, created))

	id := int64(1)
	utilisateurs, err := entities.GetUtilisateurs(context.Background(), db, entities.UtilisateurFilter{ID: &id})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	dateNaissance := sharedapi.NewDate(1990, time.May, 17)
	require.Equal(t, []securite.Utilisateur{
		{
			ID:            1,
			Nom:           "Dupont",
			Prenom:        "Jean",
			Email:         "jean.dupont@example.com",
			DateNaissance: &dateNaissance,
			Adresse:       "1 rue de la Paix",
			Actif:         true,
			Profil: &securite.Profil{
				ID:      3,
				Libelle: "Administrateurs",
			},
			TypeUtilisateur:  &securite.TypeUtilisateurAdmin,
			DateCreation:     created,
			DateModification: created,
		},
	}, utilisateurs)
}

func TestGetUtilisateurs_nullColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	columns := []string{
		"uti_id", "uti_nom", "uti_prenom", "uti_email", "uti_date_naissance", "uti_adresse", "uti_actif",
		"pro_id", "pro_libelle", "tut_code", "tut_libelle", "uti_date_creation", "uti_date_modification",
	}

	mock.ExpectQuery("SELECT .* FROM utilisateur").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(2), "Martin", "Claire", "claire.martin@example.com", nil, "", false,
				nil, nil, "CLIENT", "securite.utilisateur.typeUtilisateur.values.Client", created, created))

	utilisateurs, err := entities.GetUtilisateurs(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, utilisateurs, 1)
	require.Nil(t, utilisateurs[0].DateNaissance)
	require.Nil(t, utilisateurs[0].Profil)
	require.Equal(t, securite.TypeUtilisateurClient, *utilisateurs[0].TypeUtilisateur)
}
