package securite

import "time"

func WithProfilNow(now func() time.Time) ProfilServiceOption {
	return func(s *profilService) {
		s.now = now
	}
}

func WithUtilisateurNow(now func() time.Time) UtilisateurServiceOption {
	return func(s *utilisateurService) {
		s.now = now
	}
}
