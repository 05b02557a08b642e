package sqlite

import (
	"context"

	"github.com/FuturFusion/security-manager/internal/securite"
	"github.com/FuturFusion/security-manager/internal/securite/repo"
	"github.com/FuturFusion/security-manager/internal/securite/repo/sqlite/entities"
)

type profil struct {
	db repo.DBTX
}

var _ securite.ProfilRepo = &profil{}

func NewProfil(db repo.DBTX) *profil {
	return &profil{
		db: db,
	}
}

func (p profil) Create(ctx context.Context, in securite.Profil) (int64, error) {
	return entities.CreateProfil(ctx, p.db, in)
}

func (p profil) GetAll(ctx context.Context) (securite.Profils, error) {
	return entities.GetProfils(ctx, p.db)
}

func (p profil) GetByID(ctx context.Context, id int64) (*securite.Profil, error) {
	return entities.GetProfil(ctx, p.db, id)
}

func (p profil) Update(ctx context.Context, in securite.Profil) error {
	return entities.UpdateProfil(ctx, p.db, in.ID, in)
}

func (p profil) DeleteByID(ctx context.Context, id int64) error {
	return entities.DeleteProfil(ctx, p.db, id)
}
