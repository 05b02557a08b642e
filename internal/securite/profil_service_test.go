package securite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/FuturFusion/security-manager/internal/securite"
	"github.com/FuturFusion/security-manager/internal/securite/repo/mock"
	"github.com/FuturFusion/security-manager/internal/testing/boom"
)

var (
	created = time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	updated = time.Date(2025, time.February, 3, 4, 5, 6, 0, time.UTC)
)

func TestProfilService_Create(t *testing.T) {
	tests := []struct {
		name          string
		profil        securite.Profil
		repoCreateID  int64
		repoCreateErr error

		assertErr  require.ErrorAssertionFunc
		wantProfil securite.Profil
	}{
		{
			name: "success",
			profil: securite.Profil{
				Libelle: "Administrateurs",
				Droits:  securite.Droits{securite.DroitCreate, securite.DroitRead},
			},
			repoCreateID: 1,

			assertErr: require.NoError,
			wantProfil: securite.Profil{
				ID:               1,
				Libelle:          "Administrateurs",
				Droits:           securite.Droits{securite.DroitCreate, securite.DroitRead},
				DateCreation:     created,
				DateModification: created,
			},
		},
		{
			name: "error - label empty",
			profil: securite.Profil{
				Libelle: "", // empty
			},

			assertErr: requireValidationErr,
		},
		{
			name: "error - duplicate right",
			profil: securite.Profil{
				Libelle: "Administrateurs",
				Droits:  securite.Droits{securite.DroitRead, securite.DroitRead}, // duplicate
			},

			assertErr: requireValidationErr,
		},
		{
			name: "error - repo",
			profil: securite.Profil{
				Libelle: "Administrateurs",
			},
			repoCreateErr: boom.Error,

			assertErr: boom.ErrorIs,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			repo := &mock.ProfilRepoMock{
				CreateFunc: func(ctx context.Context, in securite.Profil) (int64, error) {
					require.Equal(t, created, in.DateCreation)
					require.Equal(t, created, in.DateModification)
					return tc.repoCreateID, tc.repoCreateErr
				},
			}

			profilSvc := securite.NewProfilService(repo, securite.WithProfilNow(func() time.Time { return created }))

			// Run test
			profil, err := profilSvc.Create(context.Background(), tc.profil)

			// Assert
			tc.assertErr(t, err)
			require.Equal(t, tc.wantProfil, profil)
		})
	}
}

func TestProfilService_GetAll(t *testing.T) {
	tests := []struct {
		name              string
		repoGetAllProfils securite.Profils
		repoGetAllErr     error

		assertErr require.ErrorAssertionFunc
		count     int
	}{
		{
			name: "success",
			repoGetAllProfils: securite.Profils{
				securite.Profil{
					ID:      1,
					Libelle: "one",
				},
				securite.Profil{
					ID:      2,
					Libelle: "two",
				},
			},

			assertErr: require.NoError,
			count:     2,
		},
		{
			name:          "error - repo",
			repoGetAllErr: boom.Error,

			assertErr: boom.ErrorIs,
			count:     0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			repo := &mock.ProfilRepoMock{
				GetAllFunc: func(ctx context.Context) (securite.Profils, error) {
					return tc.repoGetAllProfils, tc.repoGetAllErr
				},
			}

			profilSvc := securite.NewProfilService(repo)

			// Run test
			profils, err := profilSvc.GetAll(context.Background())

			// Assert
			tc.assertErr(t, err)
			require.Len(t, profils, tc.count)
		})
	}
}

func TestProfilService_GetByID(t *testing.T) {
	tests := []struct {
		name              string
		idArg             int64
		repoGetByIDProfil *securite.Profil
		repoGetByIDErr    error

		assertErr require.ErrorAssertionFunc
	}{
		{
			name:  "success",
			idArg: 1,
			repoGetByIDProfil: &securite.Profil{
				ID:      1,
				Libelle: "one",
			},

			assertErr: require.NoError,
		},
		{
			name:  "error - invalid id",
			idArg: 0,

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, securite.ErrOperationNotPermitted, a...)
			},
		},
		{
			name:           "error - repo",
			idArg:          1,
			repoGetByIDErr: securite.ErrNotFound,

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, securite.ErrNotFound, a...)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			repo := &mock.ProfilRepoMock{
				GetByIDFunc: func(ctx context.Context, id int64) (*securite.Profil, error) {
					return tc.repoGetByIDProfil, tc.repoGetByIDErr
				},
			}

			profilSvc := securite.NewProfilService(repo)

			// Run test
			profil, err := profilSvc.GetByID(context.Background(), tc.idArg)

			// Assert
			tc.assertErr(t, err)
			require.Equal(t, tc.repoGetByIDProfil, profil)
		})
	}
}

func TestProfilService_Update(t *testing.T) {
	tests := []struct {
		name              string
		profil            *securite.Profil
		repoGetByIDProfil *securite.Profil
		repoGetByIDErr    error
		repoUpdateErr     error

		assertErr  require.ErrorAssertionFunc
		wantProfil *securite.Profil
	}{
		{
			name: "success",
			profil: &securite.Profil{
				ID:      1,
				Libelle: "Lecteurs",
				Droits:  securite.Droits{securite.DroitRead},
			},
			repoGetByIDProfil: &securite.Profil{
				ID:               1,
				Libelle:          "Invités",
				DateCreation:     created,
				DateModification: created,
			},

			assertErr: require.NoError,
			wantProfil: &securite.Profil{
				ID:               1,
				Libelle:          "Lecteurs",
				Droits:           securite.Droits{securite.DroitRead},
				DateCreation:     created,
				DateModification: updated,
			},
		},
		{
			name:   "error - nil profile",
			profil: nil,

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, securite.ErrIllegalArgument, a...)
			},
		},
		{
			name: "error - invalid id",
			profil: &securite.Profil{
				ID:      0, // invalid
				Libelle: "Lecteurs",
			},

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, securite.ErrOperationNotPermitted, a...)
			},
			wantProfil: &securite.Profil{
				Libelle: "Lecteurs",
			},
		},
		{
			name: "error - validation",
			profil: &securite.Profil{
				ID:      1,
				Libelle: "", // empty
			},

			assertErr: requireValidationErr,
			wantProfil: &securite.Profil{
				ID: 1,
			},
		},
		{
			name: "error - repo.GetByID",
			profil: &securite.Profil{
				ID:      1,
				Libelle: "Lecteurs",
			},
			repoGetByIDErr: securite.ErrNotFound,

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, securite.ErrNotFound, a...)
			},
			wantProfil: &securite.Profil{
				ID:      1,
				Libelle: "Lecteurs",
			},
		},
		{
			name: "error - repo.Update",
			profil: &securite.Profil{
				ID:      1,
				Libelle: "Lecteurs",
			},
			repoGetByIDProfil: &securite.Profil{
				ID:           1,
				Libelle:      "Invités",
				DateCreation: created,
			},
			repoUpdateErr: boom.Error,

			assertErr: boom.ErrorIs,
			wantProfil: &securite.Profil{
				ID:               1,
				Libelle:          "Lecteurs",
				DateCreation:     created,
				DateModification: updated,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			repo := &mock.ProfilRepoMock{
				GetByIDFunc: func(ctx context.Context, id int64) (*securite.Profil, error) {
					return tc.repoGetByIDProfil, tc.repoGetByIDErr
				},
				UpdateFunc: func(ctx context.Context, in securite.Profil) error {
					require.Equal(t, *tc.wantProfil, in)
					return tc.repoUpdateErr
				},
			}

			profilSvc := securite.NewProfilService(repo, securite.WithProfilNow(func() time.Time { return updated }))

			// Run test
			err := profilSvc.Update(context.Background(), tc.profil)

			// Assert
			tc.assertErr(t, err)
			require.Equal(t, tc.wantProfil, tc.profil)
		})
	}
}

func TestProfilService_DeleteByID(t *testing.T) {
	tests := []struct {
		name          string
		idArg         int64
		repoDeleteErr error

		assertErr require.ErrorAssertionFunc
	}{
		{
			name:  "success",
			idArg: 1,

			assertErr: require.NoError,
		},
		{
			name:  "error - invalid id",
			idArg: -1,

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, securite.ErrOperationNotPermitted, a...)
			},
		},
		{
			name:          "error - still referenced",
			idArg:         1,
			repoDeleteErr: securite.ErrConstraintViolation,

			assertErr: func(tt require.TestingT, err error, a ...any) {
				require.ErrorIs(tt, err, securite.ErrConstraintViolation, a...)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			repo := &mock.ProfilRepoMock{
				DeleteByIDFunc: func(ctx context.Context, id int64) error {
					return tc.repoDeleteErr
				},
			}

			profilSvc := securite.NewProfilService(repo)

			// Run test
			err := profilSvc.DeleteByID(context.Background(), tc.idArg)

			// Assert
			tc.assertErr(t, err)
		})
	}
}
