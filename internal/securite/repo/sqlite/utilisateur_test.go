package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/FuturFusion/security-manager/internal/securite"
	"github.com/FuturFusion/security-manager/internal/securite/repo/sqlite"
	"github.com/FuturFusion/security-manager/shared/api"
)

func TestUtilisateurDatabaseActions(t *testing.T) {
	created := time.Date(2025, time.March, 4, 10, 11, 12, 0, time.UTC)
	dateNaissance := api.NewDate(1985, time.October, 3)

	ctx := context.Background()

	db := newTestDB(t)
	profil := sqlite.NewProfil(db)
	utilisateur := sqlite.NewUtilisateur(db)

	profilID, err := profil.Create(ctx, securite.Profil{
		Libelle:          "Gestionnaires",
		Droits:           securite.Droits{securite.DroitRead},
		DateCreation:     created,
		DateModification: created,
	})
	require.NoError(t, err)

	utilisateurA := securite.Utilisateur{
		Nom:              "Dupont",
		Prenom:           "Jean",
		Email:            "jean.dupont@example.com",
		DateNaissance:    &dateNaissance,
		Adresse:          "1 rue de la Paix, Paris",
		Actif:            true,
		Profil:           &securite.Profil{ID: profilID, Libelle: "Gestionnaires"},
		TypeUtilisateur:  &securite.TypeUtilisateurGest,
		DateCreation:     created,
		DateModification: created,
	}

	utilisateurB := securite.Utilisateur{
		Nom:              "Martin",
		Prenom:           "Claire",
		Email:            "claire.martin@example.com",
		TypeUtilisateur:  &securite.TypeUtilisateurClient,
		DateCreation:     created,
		DateModification: created,
	}

	// Add utilisateurA.
	utilisateurA.ID, err = utilisateur.Create(ctx, utilisateurA)
	require.NoError(t, err)

	// Add utilisateurB, without profile nor birth date.
	utilisateurB.ID, err = utilisateur.Create(ctx, utilisateurB)
	require.NoError(t, err)

	// Ensure we have two entries.
	utilisateurs, err := utilisateur.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, securite.Utilisateurs{utilisateurA, utilisateurB}, utilisateurs)

	// Filter on the database side.
	actif := true
	utilisateurs, err = utilisateur.GetAllWithFilter(ctx, securite.UtilisateurFilter{Actif: &actif})
	require.NoError(t, err)
	require.Equal(t, securite.Utilisateurs{utilisateurA}, utilisateurs)

	code := api.TYPEUTILISATEURCODE_CLIENT
	utilisateurs, err = utilisateur.GetAllWithFilter(ctx, securite.UtilisateurFilter{TypeUtilisateurCode: &code})
	require.NoError(t, err)
	require.Equal(t, securite.Utilisateurs{utilisateurB}, utilisateurs)

	nom := "art"
	utilisateurs, err = utilisateur.GetAllWithFilter(ctx, securite.UtilisateurFilter{Nom: &nom})
	require.NoError(t, err)
	require.Equal(t, securite.Utilisateurs{utilisateurB}, utilisateurs)

	utilisateurs, err = utilisateur.GetAllWithFilter(ctx, securite.UtilisateurFilter{ProfilID: &profilID})
	require.NoError(t, err)
	require.Equal(t, securite.Utilisateurs{utilisateurA}, utilisateurs)

	// Should get back utilisateurA unchanged.
	dbUtilisateurA, err := utilisateur.GetByID(ctx, utilisateurA.ID)
	require.NoError(t, err)
	require.Equal(t, utilisateurA, *dbUtilisateurA)

	// Test updating a user.
	utilisateurB.Actif = true
	utilisateurB.TypeUtilisateur = &securite.TypeUtilisateurAdmin
	utilisateurB.Profil = &securite.Profil{ID: profilID, Libelle: "Gestionnaires"}
	err = utilisateur.Update(ctx, utilisateurB)
	require.NoError(t, err)
	dbUtilisateurB, err := utilisateur.GetByID(ctx, utilisateurB.ID)
	require.NoError(t, err)
	require.Equal(t, utilisateurB, *dbUtilisateurB)

	// Can't delete a profile still referenced by users.
	err = profil.DeleteByID(ctx, profilID)
	require.ErrorIs(t, err, securite.ErrConstraintViolation)

	// Can't reference an unknown profile.
	utilisateurB.Profil = &securite.Profil{ID: 999}
	err = utilisateur.Update(ctx, utilisateurB)
	require.ErrorIs(t, err, securite.ErrConstraintViolation)

	// Emails are not unique.
	duplicate := utilisateurA
	duplicate.ID = 0
	duplicateID, err := utilisateur.Create(ctx, duplicate)
	require.NoError(t, err)
	require.NotEqual(t, utilisateurA.ID, duplicateID)

	// Delete a user.
	err = utilisateur.DeleteByID(ctx, utilisateurA.ID)
	require.NoError(t, err)
	_, err = utilisateur.GetByID(ctx, utilisateurA.ID)
	require.ErrorIs(t, err, securite.ErrNotFound)

	// Can't delete a user that doesn't exist.
	err = utilisateur.DeleteByID(ctx, utilisateurA.ID)
	require.ErrorIs(t, err, securite.ErrNotFound)

	// Can't update a user that doesn't exist.
	err = utilisateur.Update(ctx, utilisateurA)
	require.ErrorIs(t, err, securite.ErrNotFound)
}
