package entities

import (
	"github.com/FuturFusion/security-manager/internal/securite"
	"github.com/FuturFusion/security-manager/shared/api"
)

// Code generation directives.
//
//generate-database:mapper target utilisateur.mapper.go
//generate-database:mapper reset
//
//generate-database:mapper stmt -e utilisateur create table=utilisateur
//generate-database:mapper stmt -e utilisateur update table=utilisateur
//generate-database:mapper stmt -e utilisateur delete-by-ID table=utilisateur
//
//generate-database:mapper method -e utilisateur GetOne table=utilisateur
//generate-database:mapper method -e utilisateur Create table=utilisateur
//generate-database:mapper method -e utilisateur Update table=utilisateur
//generate-database:mapper method -e utilisateur DeleteOne-by-ID table=utilisateur

type Utilisateur = securite.Utilisateur

// UtilisateurFilter selects users. The objects query is built at runtime, see
// GetUtilisateurs.
type UtilisateurFilter struct {
	ID                  *int64
	Email               *string
	ProfilID            *int64
	TypeUtilisateurCode *api.TypeUtilisateurCode
	Actif               *bool
	Nom                 *string
}
