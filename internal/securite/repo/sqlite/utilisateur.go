package sqlite

import (
	"context"

	"github.com/FuturFusion/security-manager/internal/securite"
	"github.com/FuturFusion/security-manager/internal/securite/repo"
	"github.com/FuturFusion/security-manager/internal/securite/repo/sqlite/entities"
)

type utilisateur struct {
	db repo.DBTX
}

var _ securite.UtilisateurRepo = &utilisateur{}

func NewUtilisateur(db repo.DBTX) *utilisateur {
	return &utilisateur{
		db: db,
	}
}

func (u utilisateur) Create(ctx context.Context, in securite.Utilisateur) (int64, error) {
	return entities.CreateUtilisateur(ctx, u.db, in)
}

func (u utilisateur) GetAll(ctx context.Context) (securite.Utilisateurs, error) {
	return entities.GetUtilisateurs(ctx, u.db)
}

func (u utilisateur) GetAllWithFilter(ctx context.Context, filter securite.UtilisateurFilter) (securite.Utilisateurs, error) {
	return entities.GetUtilisateurs(ctx, u.db, entities.UtilisateurFilter{
		ProfilID:            filter.ProfilID,
		TypeUtilisateurCode: filter.TypeUtilisateurCode,
		Actif:               filter.Actif,
		Nom:                 filter.Nom,
	})
}

func (u utilisateur) GetByID(ctx context.Context, id int64) (*securite.Utilisateur, error) {
	return entities.GetUtilisateur(ctx, u.db, id)
}

func (u utilisateur) Update(ctx context.Context, in securite.Utilisateur) error {
	return entities.UpdateUtilisateur(ctx, u.db, in.ID, in)
}

func (u utilisateur) DeleteByID(ctx context.Context, id int64) error {
	return entities.DeleteUtilisateur(ctx, u.db, id)
}
