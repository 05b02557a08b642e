package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	dbschema "github.com/FuturFusion/security-manager/internal/db"
	dbdriver "github.com/FuturFusion/security-manager/internal/db/sqlite"
	"github.com/FuturFusion/security-manager/internal/securite"
	"github.com/FuturFusion/security-manager/internal/securite/repo/sqlite"
	"github.com/FuturFusion/security-manager/internal/securite/repo/sqlite/entities"
	"github.com/FuturFusion/security-manager/internal/transaction"
)

func newTestDB(t *testing.T) *transaction.DB {
	t.Helper()

	tmpDir := t.TempDir()

	db, err := dbdriver.Open(tmpDir)
	require.NoError(t, err)

	t.Cleanup(func() {
		err = db.Close()
		require.NoError(t, err)
	})

	_, err = dbschema.EnsureSchema(db, tmpDir)
	require.NoError(t, err)

	tx := transaction.Enable(db)
	entities.PreparedStmts, err = entities.PrepareStmts(tx, false)
	require.NoError(t, err)

	return tx
}

func TestReferenceDatabaseActions(t *testing.T) {
	ctx := context.Background()

	reference := sqlite.NewReference(newTestDB(t))

	typeDroits, err := reference.GetTypeDroits(ctx)
	require.NoError(t, err)
	require.Equal(t, securite.TypeDroits{securite.TypeDroitAdmin, securite.TypeDroitRead, securite.TypeDroitWrite}, typeDroits)

	droits, err := reference.GetDroits(ctx)
	require.NoError(t, err)
	require.Equal(t, securite.Droits{securite.DroitCreate, securite.DroitDelete, securite.DroitRead, securite.DroitUpdate}, droits)

	typeUtilisateurs, err := reference.GetTypeUtilisateurs(ctx)
	require.NoError(t, err)
	require.Equal(t, securite.TypeUtilisateurs{securite.TypeUtilisateurAdmin, securite.TypeUtilisateurClient, securite.TypeUtilisateurGest}, typeUtilisateurs)
}
