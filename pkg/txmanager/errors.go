package txmanager

import "errors"

var (
	// ErrBeginTx не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrRollbackTx не удалось откатить транзакцию
	ErrRollbackTx = errors.New("txmanager: failed to rollback transaction")
)
