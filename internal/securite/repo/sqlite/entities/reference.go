package entities

import "github.com/FuturFusion/security-manager/internal/securite"

// Code generation directives.
//
//generate-database:mapper target reference.mapper.go
//generate-database:mapper reset
//
//generate-database:mapper stmt -e type_droit objects table=type_droit
//generate-database:mapper stmt -e droit objects table=droit
//generate-database:mapper stmt -e type_utilisateur objects table=type_utilisateur
//
//generate-database:mapper method -e type_droit GetMany table=type_droit
//generate-database:mapper method -e droit GetMany table=droit
//generate-database:mapper method -e type_utilisateur GetMany table=type_utilisateur

type (
	TypeDroit       = securite.TypeDroit
	Droit           = securite.Droit
	TypeUtilisateur = securite.TypeUtilisateur
)
