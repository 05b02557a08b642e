package securite

import "context"

type referenceService struct {
	repo ReferenceRepo
}

var _ ReferenceService = &referenceService{}

func NewReferenceService(repo ReferenceRepo) referenceService {
	return referenceService{
		repo: repo,
	}
}

func (s referenceService) GetTypeDroits(ctx context.Context) (TypeDroits, error) {
	return s.repo.GetTypeDroits(ctx)
}

func (s referenceService) GetDroits(ctx context.Context) (Droits, error) {
	return s.repo.GetDroits(ctx)
}

func (s referenceService) GetTypeUtilisateurs(ctx context.Context) (TypeUtilisateurs, error) {
	return s.repo.GetTypeUtilisateurs(ctx)
}
