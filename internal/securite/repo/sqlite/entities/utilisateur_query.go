package entities

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/FuturFusion/security-manager/shared/api"
)

// likeEscaper makes a name filter match literally, wildcards included.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var utilisateurColumns = []string{
	"utilisateur.uti_id",
	"utilisateur.uti_nom",
	"utilisateur.uti_prenom",
	"utilisateur.uti_email",
	"utilisateur.uti_date_naissance",
	"utilisateur.uti_adresse",
	"utilisateur.uti_actif",
	"utilisateur.pro_id",
	"profil.pro_libelle",
	"type_utilisateur.tut_code",
	"type_utilisateur.tut_libelle",
	"utilisateur.uti_date_creation",
	"utilisateur.uti_date_modification",
}

// utilisateurObjectsQuery builds the objects query for the given filters.
// Multiple filters are OR-ed, the fields of a single filter are AND-ed.
func utilisateurObjectsQuery(filters ...UtilisateurFilter) (string, []any, error) {
	builder := sq.Select(utilisateurColumns...).
		From("utilisateur").
		LeftJoin("profil ON utilisateur.pro_id = profil.pro_id").
		Join("type_utilisateur ON utilisateur.tut_code = type_utilisateur.tut_code").
		OrderBy("utilisateur.uti_id")

	or := sq.Or{}
	for _, filter := range filters {
		and := sq.And{}

		if filter.ID != nil {
			and = append(and, sq.Eq{"utilisateur.uti_id": *filter.ID})
		}

		if filter.Email != nil {
			and = append(and, sq.Eq{"utilisateur.uti_email": *filter.Email})
		}

		if filter.ProfilID != nil {
			and = append(and, sq.Eq{"utilisateur.pro_id": *filter.ProfilID})
		}

		if filter.TypeUtilisateurCode != nil {
			and = append(and, sq.Eq{"utilisateur.tut_code": string(*filter.TypeUtilisateurCode)})
		}

		if filter.Actif != nil {
			and = append(and, sq.Eq{"utilisateur.uti_actif": *filter.Actif})
		}

		if filter.Nom != nil {
			and = append(and, sq.Expr(`utilisateur.uti_nom LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(*filter.Nom)+"%"))
		}

		if len(and) == 0 {
			// An empty filter matches everything.
			or = nil
			break
		}

		or = append(or, and)
	}

	if len(or) > 0 {
		builder = builder.Where(or)
	}

	return builder.ToSql()
}

// GetUtilisateurs returns all available utilisateurs matching the filters.
func GetUtilisateurs(ctx context.Context, db dbtx, filters ...UtilisateurFilter) (_ []Utilisateur, _err error) {
	defer func() {
		_err = mapErr(_err, "Utilisateur")
	}()

	stmt, args, err := utilisateurObjectsQuery(filters...)
	if err != nil {
		return nil, fmt.Errorf("Failed to build \"utilisateur\" query: %w", err)
	}

	objects := make([]Utilisateur, 0)
	err = query(ctx, db, stmt, args, func(scan func(dest ...any) error) error {
		u := Utilisateur{}
		var dateNaissance sql.Null[api.Date]
		var profilID sql.NullInt64
		var profilLibelle sql.NullString
		typeUtilisateur := TypeUtilisateur{}

		err := scan(
			&u.ID, &u.Nom, &u.Prenom, &u.Email, &dateNaissance, &u.Adresse, &u.Actif,
			&profilID, &profilLibelle, &typeUtilisateur.Code, &typeUtilisateur.Libelle,
			&u.DateCreation, &u.DateModification,
		)
		if err != nil {
			return err
		}

		if dateNaissance.Valid {
			u.DateNaissance = &dateNaissance.V
		}

		if profilID.Valid {
			u.Profil = &Profil{
				ID:      profilID.Int64,
				Libelle: profilLibelle.String,
			}
		}

		u.TypeUtilisateur = &typeUtilisateur

		objects = append(objects, u)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch from \"utilisateur\" table: %w", err)
	}

	return objects, nil
}
