package tr

import (
	"context"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
	"github.com/stokku/go-stock-backend/pkg/e"
)

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value("tx")
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}

// Manager оборачивает бизнес-операцию в одну транзакцию PostgreSQL.
// Транзакция кладётся в контекст, репозитории достают её через TxFromCtx.
type Manager struct {
	db transaction.Transactional
}

func NewManager(db transaction.Transactional) *Manager {
	return &Manager{db: db}
}

// WithinTransaction выполняет fn внутри транзакции с заданными опциями.
// При ошибке fn транзакция откатывается, иначе — коммитится.
func (m *Manager) WithinTransaction(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	ctx, tx, err := transaction.NewTransaction(ctx, opts, m.db)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()

	txCtx := context.WithValue(ctx, "tx", tx.Transaction())
	if err := fn(txCtx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
