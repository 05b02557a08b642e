package securite

import "context"

//go:generate go run github.com/matryer/moq -fmt goimports -pkg securite_test -out profil_service_mock_gen_test.go -rm . ProfilService

type ProfilService interface {
	Create(ctx context.Context, profil Profil) (Profil, error)
	GetAll(ctx context.Context) (Profils, error)
	GetByID(ctx context.Context, id int64) (*Profil, error)
	Update(ctx context.Context, profil *Profil) error
	DeleteByID(ctx context.Context, id int64) error
}

//go:generate go run github.com/matryer/moq -fmt goimports -pkg mock -out repo/mock/profil_repo_mock_gen.go -rm . ProfilRepo
//go:generate go run github.com/hexdigest/gowrap/cmd/gowrap gen -g -i ProfilRepo -t ../logger/slog.gotmpl -o ./repo/middleware/profil_slog_gen.go

type ProfilRepo interface {
	Create(ctx context.Context, profil Profil) (int64, error)
	GetAll(ctx context.Context) (Profils, error)
	GetByID(ctx context.Context, id int64) (*Profil, error)
	Update(ctx context.Context, profil Profil) error
	DeleteByID(ctx context.Context, id int64) error
}
