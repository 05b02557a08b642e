package entities

import (
	"context"
	"fmt"

	"github.com/FuturFusion/security-manager/internal/securite"
)

var profilDroitObjects = RegisterStmt(`
SELECT profil_droit.pro_id, droit.dro_code, droit.dro_libelle, type_droit.tdr_code, type_droit.tdr_libelle
  FROM profil_droit
  JOIN droit ON profil_droit.dro_code = droit.dro_code
  JOIN type_droit ON droit.tdr_code = type_droit.tdr_code
  ORDER BY profil_droit.pro_id, droit.dro_code
`)

var profilDroitObjectsByProfilID = RegisterStmt(`
SELECT profil_droit.pro_id, droit.dro_code, droit.dro_libelle, type_droit.tdr_code, type_droit.tdr_libelle
  FROM profil_droit
  JOIN droit ON profil_droit.dro_code = droit.dro_code
  JOIN type_droit ON droit.tdr_code = type_droit.tdr_code
  WHERE profil_droit.pro_id = ?
  ORDER BY profil_droit.pro_id, droit.dro_code
`)

var profilDroitCreate = RegisterStmt(`
INSERT INTO profil_droit (pro_id, dro_code)
  VALUES (?, ?)
`)

var profilDroitDeleteByProfilID = RegisterStmt(`
DELETE FROM profil_droit WHERE pro_id = ?
`)

// GetProfilDroits returns the rights granted to the profiles, indexed by
// profile id. If profileID is nil, the rights of every profile are returned.
func GetProfilDroits(ctx context.Context, db dbtx, profileID *int64) (_ map[int64]securite.Droits, _err error) {
	defer func() {
		_err = mapErr(_err, "Profil_droit")
	}()

	var sqlStmt = profilDroitObjects
	var args []any
	if profileID != nil {
		sqlStmt = profilDroitObjectsByProfilID
		args = []any{*profileID}
	}

	stmt, err := Stmt(ctx, db, sqlStmt)
	if err != nil {
		return nil, fmt.Errorf("Failed to get \"profilDroitObjects\" prepared statement: %w", err)
	}

	index := map[int64]securite.Droits{}
	err = queryStmt(ctx, stmt, args, func(scan func(dest ...any) error) error {
		var id int64
		d := Droit{}
		err := scan(&id, &d.Code, &d.Libelle, &d.TypeDroit.Code, &d.TypeDroit.Libelle)
		if err != nil {
			return err
		}

		index[id] = append(index[id], d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch from \"profil_droit\" table: %w", err)
	}

	return index, nil
}

// UpdateProfilDroits replaces the rights granted to the given profile.
func UpdateProfilDroits(ctx context.Context, db dbtx, profileID int64, droits securite.Droits) (_err error) {
	defer func() {
		_err = mapErr(_err, "Profil_droit")
	}()

	deleteStmt, err := Stmt(ctx, db, profilDroitDeleteByProfilID)
	if err != nil {
		return fmt.Errorf("Failed to get \"profilDroitDeleteByProfilID\" prepared statement: %w", err)
	}

	_, err = deleteStmt.ExecContext(ctx, profileID)
	if err != nil {
		return fmt.Errorf("Delete \"profil_droit\" entries failed: %w", err)
	}

	createStmt, err := Stmt(ctx, db, profilDroitCreate)
	if err != nil {
		return fmt.Errorf("Failed to get \"profilDroitCreate\" prepared statement: %w", err)
	}

	for _, droit := range droits {
		_, err = createStmt.ExecContext(ctx, profileID, droit.Code)
		if err != nil {
			return fmt.Errorf("Insert \"profil_droit\" entry failed: %w", err)
		}
	}

	return nil
}
