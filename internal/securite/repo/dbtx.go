package repo

import "github.com/FuturFusion/security-manager/internal/transaction"

// DBTX is the database handle the sqlite repositories operate on. It is
// usually a *transaction.DB, which routes the statements into the
// transaction carried by the context.
type DBTX = transaction.DBTX
