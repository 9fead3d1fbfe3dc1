package session

import "github.com/m04kA/PacificPool/pkg/txmanager"

// DBExecutor *sql.DB или *sql.Tx
type DBExecutor = txmanager.DBExecutor
