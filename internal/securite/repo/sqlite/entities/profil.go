package entities

import "github.com/FuturFusion/security-manager/internal/securite"

// Code generation directives.
//
//generate-database:mapper target profil.mapper.go
//generate-database:mapper reset
//
//generate-database:mapper stmt -e profil objects table=profil
//generate-database:mapper stmt -e profil objects-by-ID table=profil
//generate-database:mapper stmt -e profil create table=profil
//generate-database:mapper stmt -e profil update table=profil
//generate-database:mapper stmt -e profil delete-by-ID table=profil
//
//generate-database:mapper method -e profil GetMany table=profil
//generate-database:mapper method -e profil GetOne table=profil
//generate-database:mapper method -e profil Create table=profil
//generate-database:mapper method -e profil Update table=profil
//generate-database:mapper method -e profil DeleteOne-by-ID table=profil

type Profil = securite.Profil

type ProfilFilter struct {
	ID *int64
}
