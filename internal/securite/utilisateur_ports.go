package securite

import (
	"context"

	"github.com/FuturFusion/security-manager/shared/api"
)

type UtilisateurService interface {
	Create(ctx context.Context, utilisateur Utilisateur) (Utilisateur, error)
	GetAll(ctx context.Context) (Utilisateurs, error)
	GetAllWithFilter(ctx context.Context, filter UtilisateurFilter, includeExpression string) (Utilisateurs, error)
	GetByID(ctx context.Context, id int64) (*Utilisateur, error)
	Update(ctx context.Context, utilisateur *Utilisateur) error
	DeleteByID(ctx context.Context, id int64) error
}

//go:generate go run github.com/matryer/moq -fmt goimports -pkg mock -out repo/mock/utilisateur_repo_mock_gen.go -rm . UtilisateurRepo
//go:generate go run github.com/hexdigest/gowrap/cmd/gowrap gen -g -i UtilisateurRepo -t ../logger/slog.gotmpl -o ./repo/middleware/utilisateur_slog_gen.go

type UtilisateurRepo interface {
	Create(ctx context.Context, utilisateur Utilisateur) (int64, error)
	GetAll(ctx context.Context) (Utilisateurs, error)
	GetAllWithFilter(ctx context.Context, filter UtilisateurFilter) (Utilisateurs, error)
	GetByID(ctx context.Context, id int64) (*Utilisateur, error)
	Update(ctx context.Context, utilisateur Utilisateur) error
	DeleteByID(ctx context.Context, id int64) error
}

// UtilisateurFilter narrows a user listing on the database side. Nil fields
// are not filtered on.
type UtilisateurFilter struct {
	ProfilID            *int64
	TypeUtilisateurCode *api.TypeUtilisateurCode
	Actif               *bool
	Nom                 *string
}
