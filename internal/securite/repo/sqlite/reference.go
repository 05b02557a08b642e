package sqlite

import (
	"context"

	"github.com/FuturFusion/security-manager/internal/securite"
	"github.com/FuturFusion/security-manager/internal/securite/repo"
	"github.com/FuturFusion/security-manager/internal/securite/repo/sqlite/entities"
)

type reference struct {
	db repo.DBTX
}

var _ securite.ReferenceRepo = &reference{}

func NewReference(db repo.DBTX) *reference {
	return &reference{
		db: db,
	}
}

func (r reference) GetTypeDroits(ctx context.Context) (securite.TypeDroits, error) {
	return entities.GetTypeDroits(ctx, r.db)
}

func (r reference) GetDroits(ctx context.Context) (securite.Droits, error) {
	return entities.GetDroits(ctx, r.db)
}

func (r reference) GetTypeUtilisateurs(ctx context.Context) (securite.TypeUtilisateurs, error) {
	return entities.GetTypeUtilisateurs(ctx, r.db)
}
