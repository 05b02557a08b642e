package securite

import "context"

type ReferenceService interface {
	GetTypeDroits(ctx context.Context) (TypeDroits, error)
	GetDroits(ctx context.Context) (Droits, error)
	GetTypeUtilisateurs(ctx context.Context) (TypeUtilisateurs, error)
}

//go:generate go run github.com/matryer/moq -fmt goimports -pkg mock -out repo/mock/reference_repo_mock_gen.go -rm . ReferenceRepo
//go:generate go run github.com/hexdigest/gowrap/cmd/gowrap gen -g -i ReferenceRepo -t ../logger/slog.gotmpl -o ./repo/middleware/reference_slog_gen.go

type ReferenceRepo interface {
	GetTypeDroits(ctx context.Context) (TypeDroits, error)
	GetDroits(ctx context.Context) (Droits, error)
	GetTypeUtilisateurs(ctx context.Context) (TypeUtilisateurs, error)
}
