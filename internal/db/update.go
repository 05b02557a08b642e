//go:build linux && cgo

package db

import (
	"context"
	"database/sql"

	"github.com/FuturFusion/security-manager/internal/db/schema"
)

// Schema for the local database.
func Schema() *schema.Schema {
	return schema.NewFromMap(updates)
}

/* Database updates are one-time actions that are needed to move an
   existing database from one version of the schema to the next.

   Those updates are applied at startup time before anything else
   is initialized. This means that they should be entirely
   self-contained and not touch anything but the database.

   Reference tables are read-only for the application, their rows are
   seeded by the updates themselves.

   Only append to the updates list, never remove entries and never re-order them.
*/

var updates = map[int]schema.Update{
	1: updateFromV0,
}

func updateFromV0(ctx context.Context, tx *sql.Tx) error {
	stmt := `
CREATE TABLE type_droit (
    tdr_code    VARCHAR(10) PRIMARY KEY NOT NULL,
    tdr_libelle VARCHAR(100) NOT NULL
);

CREATE TABLE droit (
    dro_code    VARCHAR(10) PRIMARY KEY NOT NULL,
    dro_libelle VARCHAR(100) NOT NULL,
    tdr_code    VARCHAR(10) NOT NULL,
    FOREIGN KEY (tdr_code) REFERENCES type_droit (tdr_code)
);

CREATE TABLE profil (
    pro_id                INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    pro_libelle           VARCHAR(100) NOT NULL,
    pro_date_creation     DATETIME NOT NULL,
    pro_date_modification DATETIME NOT NULL
);

CREATE TABLE profil_droit (
    pro_id   INTEGER NOT NULL,
    dro_code VARCHAR(10) NOT NULL,
    PRIMARY KEY (pro_id, dro_code),
    FOREIGN KEY (pro_id) REFERENCES profil (pro_id) ON DELETE CASCADE,
    FOREIGN KEY (dro_code) REFERENCES droit (dro_code)
);

CREATE TABLE type_utilisateur (
    tut_code    VARCHAR(10) PRIMARY KEY NOT NULL,
    tut_libelle VARCHAR(100) NOT NULL
);

CREATE TABLE utilisateur (
    uti_id                INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    uti_nom               VARCHAR(100) NOT NULL,
    uti_prenom            VARCHAR(100) NOT NULL,
    uti_email             VARCHAR(50) NOT NULL,
    uti_date_naissance    DATE,
    uti_adresse           VARCHAR(200) NOT NULL DEFAULT '',
    uti_actif             BOOLEAN NOT NULL DEFAULT 1,
    pro_id                INTEGER,
    tut_code              VARCHAR(10) NOT NULL,
    uti_date_creation     DATETIME NOT NULL,
    uti_date_modification DATETIME NOT NULL,
    FOREIGN KEY (pro_id) REFERENCES profil (pro_id),
    FOREIGN KEY (tut_code) REFERENCES type_utilisateur (tut_code)
);

CREATE INDEX utilisateur_pro_id_idx ON utilisateur (pro_id);

INSERT INTO type_droit (tdr_code, tdr_libelle) VALUES
    ('ADMIN', 'securite.profil.typeDroit.values.Admin'),
    ('READ', 'securite.profil.typeDroit.values.Read'),
    ('WRITE', 'securite.profil.typeDroit.values.Write');

INSERT INTO droit (dro_code, dro_libelle, tdr_code) VALUES
    ('CREATE', 'securite.profil.droit.values.Create', 'WRITE'),
    ('READ', 'securite.profil.droit.values.Read', 'READ'),
    ('UPDATE', 'securite.profil.droit.values.Update', 'WRITE'),
    ('DELETE', 'securite.profil.droit.values.Delete', 'ADMIN');

INSERT INTO type_utilisateur (tut_code, tut_libelle) VALUES
    ('ADMIN', 'securite.utilisateur.typeUtilisateur.values.Admin'),
    ('GEST', 'securite.utilisateur.typeUtilisateur.values.Gestionnaire'),
    ('CLIENT', 'securite.utilisateur.typeUtilisateur.values.Client');
`
	_, err := tx.ExecContext(ctx, stmt)
	return err
}
