package securite

import (
	"context"
	"fmt"
	"time"

	"github.com/FuturFusion/security-manager/internal/transaction"
)

type utilisateurService struct {
	repo   UtilisateurRepo
	profil ProfilService

	now func() time.Time
}

var _ UtilisateurService = &utilisateurService{}

type UtilisateurServiceOption func(s *utilisateurService)

func NewUtilisateurService(repo UtilisateurRepo, profil ProfilService, opts ...UtilisateurServiceOption) utilisateurService {
	utilisateurSvc := utilisateurService{
		repo:   repo,
		profil: profil,
		now:    now,
	}

	for _, opt := range opts {
		opt(&utilisateurSvc)
	}

	return utilisateurSvc
}

// Create adds a new user. The referenced profile, if any, must exist.
func (s utilisateurService) Create(ctx context.Context, newUtilisateur Utilisateur) (Utilisateur, error) {
	err := newUtilisateur.Validate()
	if err != nil {
		return Utilisateur{}, err
	}

	err = transaction.Do(ctx, func(ctx context.Context) error {
		err := s.resolveProfil(ctx, &newUtilisateur)
		if err != nil {
			return err
		}

		newUtilisateur.DateCreation = s.now()
		newUtilisateur.DateModification = newUtilisateur.DateCreation

		newUtilisateur.ID, err = s.repo.Create(ctx, newUtilisateur)
		return err
	})
	if err != nil {
		return Utilisateur{}, err
	}

	return newUtilisateur, nil
}

func (s utilisateurService) GetAll(ctx context.Context) (Utilisateurs, error) {
	return s.repo.GetAll(ctx)
}

// GetAllWithFilter returns the users matching filter on the database side
// and the include expression, if given, on top of it. The include expression
// is evaluated with the full profile of each user, rights included.
func (s utilisateurService) GetAllWithFilter(ctx context.Context, filter UtilisateurFilter, includeExpression string) (Utilisateurs, error) {
	if includeExpression != "" {
		_, _, err := Utilisateur{}.CompileIncludeExpression(includeExpression)
		if err != nil {
			return nil, NewValidationErrf("Invalid include expression %q: %v", includeExpression, err)
		}
	}

	var utilisateurs Utilisateurs
	var profils map[int64]Profil

	err := transaction.Do(ctx, func(ctx context.Context) error {
		var err error
		utilisateurs, err = s.repo.GetAllWithFilter(ctx, filter)
		if err != nil {
			return err
		}

		if includeExpression == "" {
			return nil
		}

		allProfils, err := s.profil.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("Failed to get profiles: %w", err)
		}

		profils = make(map[int64]Profil, len(allProfils))
		for _, profil := range allProfils {
			profils[profil.ID] = profil
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if includeExpression == "" {
		return utilisateurs, nil
	}

	result := make(Utilisateurs, 0, len(utilisateurs))
	for _, utilisateur := range utilisateurs {
		if utilisateur.Profil != nil {
			profil, ok := profils[utilisateur.Profil.ID]
			if ok {
				utilisateur.Profil = &profil
			}
		}

		isMatch, err := utilisateur.MatchesCriteria(includeExpression)
		if err != nil {
			return nil, err
		}

		if isMatch {
			result = append(result, utilisateur)
		}
	}

	return result, nil
}

func (s utilisateurService) GetByID(ctx context.Context, id int64) (*Utilisateur, error) {
	if id <= 0 {
		return nil, fmt.Errorf("User id must be positive: %w", ErrOperationNotPermitted)
	}

	return s.repo.GetByID(ctx, id)
}

// Update replaces the fields of an existing user. The creation date is kept,
// the modification date is set to now.
func (s utilisateurService) Update(ctx context.Context, utilisateur *Utilisateur) error {
	if utilisateur == nil {
		return fmt.Errorf("User to update can not be nil: %w", ErrIllegalArgument)
	}

	if utilisateur.ID <= 0 {
		return fmt.Errorf("User id must be positive: %w", ErrOperationNotPermitted)
	}

	err := utilisateur.Validate()
	if err != nil {
		return err
	}

	return transaction.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, utilisateur.ID)
		if err != nil {
			return fmt.Errorf("Failed to get user %d: %w", utilisateur.ID, err)
		}

		err = s.resolveProfil(ctx, utilisateur)
		if err != nil {
			return err
		}

		utilisateur.DateCreation = existing.DateCreation
		utilisateur.DateModification = s.now()

		return s.repo.Update(ctx, *utilisateur)
	})
}

func (s utilisateurService) DeleteByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("User id must be positive: %w", ErrOperationNotPermitted)
	}

	return s.repo.DeleteByID(ctx, id)
}

// resolveProfil replaces the profile reference of the user by the stored
// profile.
func (s utilisateurService) resolveProfil(ctx context.Context, utilisateur *Utilisateur) error {
	if utilisateur.Profil == nil {
		return nil
	}

	profil, err := s.profil.GetByID(ctx, utilisateur.Profil.ID)
	if err != nil {
		return fmt.Errorf("Failed to get profile %d of user %q: %w", utilisateur.Profil.ID, utilisateur.Email, err)
	}

	utilisateur.Profil = profil
	return nil
}
