package ledger

import "errors"

var (
	// ErrDuplicateEntry возвращается, когда запись с таким ключом идемпотентности
	// или такого вида для той же заявки уже есть в журнале
	ErrDuplicateEntry = errors.New("ledger.repository: duplicate ledger entry")

	ErrBuildQuery = errors.New("ledger.repository: failed to build query")
	ErrExecQuery  = errors.New("ledger.repository: failed to execute query")
	ErrScanRow    = errors.New("ledger.repository: failed to scan row")
)
