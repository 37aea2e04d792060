package pgdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/internal/repository/pgdb/converter"
	"github.com/stokku/go-stock-backend/pkg/e"
)

// VariantRepo реализует репозиторий вариантов поверх PostgreSQL.
type VariantRepo struct {
	pool *pgxpool.Pool
	conv converter.VariantConverter
}

func NewVariantRepo(pool *pgxpool.Pool, conv converter.VariantConverter) *VariantRepo {
	return &VariantRepo{pool: pool, conv: conv}
}

func (v *VariantRepo) GetAll(ctx context.Context) ([]domain.Variant, error) {
	query := `
		SELECT id, name, created_at
		FROM variants
		ORDER BY created_at, id
	`

	rows, err := v.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Variant, 0)
	for rows.Next() {
		var model converter.VariantModel
		if err := rows.Scan(&model.ID, &model.Name, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *v.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (v *VariantRepo) Create(ctx context.Context, variant *domain.Variant) (*domain.Variant, error) {
	query := `
		INSERT INTO variants (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at
	`

	var model converter.VariantModel
	err := v.pool.QueryRow(ctx, query, variant.ID, variant.Name).
		Scan(&model.ID, &model.Name, &model.CreatedAt)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: variant %s already exists", whereami.WhereAmI(), variant.Name)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(&model), nil
}
