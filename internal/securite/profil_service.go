package securite

import (
	"context"
	"fmt"
	"time"

	"github.com/FuturFusion/security-manager/internal/transaction"
)

type profilService struct {
	repo ProfilRepo

	now func() time.Time
}

var _ ProfilService = &profilService{}

type ProfilServiceOption func(s *profilService)

func NewProfilService(repo ProfilRepo, opts ...ProfilServiceOption) profilService {
	profilSvc := profilService{
		repo: repo,
		now:  now,
	}

	for _, opt := range opts {
		opt(&profilSvc)
	}

	return profilSvc
}

// now returns the current time in UTC. The database stores timestamps with
// second precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func (s profilService) Create(ctx context.Context, newProfil Profil) (Profil, error) {
	err := newProfil.Validate()
	if err != nil {
		return Profil{}, err
	}

	newProfil.DateCreation = s.now()
	newProfil.DateModification = newProfil.DateCreation

	newProfil.ID, err = s.repo.Create(ctx, newProfil)
	if err != nil {
		return Profil{}, err
	}

	return newProfil, nil
}

func (s profilService) GetAll(ctx context.Context) (Profils, error) {
	return s.repo.GetAll(ctx)
}

func (s profilService) GetByID(ctx context.Context, id int64) (*Profil, error) {
	if id <= 0 {
		return nil, fmt.Errorf("Profile id must be positive: %w", ErrOperationNotPermitted)
	}

	return s.repo.GetByID(ctx, id)
}

// Update replaces the label and the rights of an existing profile. The
// creation date is kept, the modification date is set to now.
func (s profilService) Update(ctx context.Context, profil *Profil) error {
	if profil == nil {
		return fmt.Errorf("Profile to update can not be nil: %w", ErrIllegalArgument)
	}

	if profil.ID <= 0 {
		return fmt.Errorf("Profile id must be positive: %w", ErrOperationNotPermitted)
	}

	err := profil.Validate()
	if err != nil {
		return err
	}

	return transaction.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, profil.ID)
		if err != nil {
			return fmt.Errorf("Failed to get profile %d: %w", profil.ID, err)
		}

		profil.DateCreation = existing.DateCreation
		profil.DateModification = s.now()

		return s.repo.Update(ctx, *profil)
	})
}

func (s profilService) DeleteByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("Profile id must be positive: %w", ErrOperationNotPermitted)
	}

	return s.repo.DeleteByID(ctx, id)
}
