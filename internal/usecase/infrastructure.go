package usecase

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor выполняет функцию внутри одной транзакции хранилища.
// Репозитории достают транзакцию из контекста (pkg/tr).
type Transactor interface {
	WithinTransaction(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
