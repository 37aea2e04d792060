package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/pkg/e"
	"github.com/stokku/go-stock-backend/pkg/logger"
)

// ProductUseCase — CRUD продуктов с вариантами и справочник вариантов.
// Складские записи здесь только создаются и мягко удаляются; количества
// прошлых заказов не трогаются — историю держит леджер.
type ProductUseCase struct {
	productRepo ProductRepository
	variantRepo VariantRepository
	cacheRepo   CacheRepository
	txm         Transactor
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	variantRepo VariantRepository,
	cacheRepo CacheRepository,
	txm Transactor,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		variantRepo: variantRepo,
		cacheRepo:   cacheRepo,
		txm:         txm,
		logger:      logger,
	}
}

// CreateProduct создаёт продукт вместе со складскими записями его вариантов.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (string, error) {
	const op = "ProductUseCase.CreateProduct"

	if err := validateProduct(req.Name, req.Details); err != nil {
		return "", e.Wrap(op, err)
	}

	productID := newID("PR")
	details := toVariantStocks(productID, req.Details)

	err := p.txm.WithinTransaction(ctx, pgx.TxOptions{}, func(ctx context.Context) error {
		return p.productRepo.Create(ctx, domain.NewProduct(productID, req.Name), details)
	})
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return productID, nil
}

// UpdateProduct переименовывает продукт и приводит набор вариантов к заданному.
// Убранные из набора варианты мягко удаляются: прошлые заказы продолжают
// ссылаться на их складские записи.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) error {
	const op = "ProductUseCase.UpdateProduct"

	if err := validateProduct(req.Name, req.Details); err != nil {
		return e.Wrap(op, err)
	}

	details := toVariantStocks(req.ID, req.Details)

	err := p.txm.WithinTransaction(ctx, pgx.TxOptions{}, func(ctx context.Context) error {
		return p.productRepo.Update(ctx, domain.NewProduct(req.ID, req.Name), details)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateProductStocks(req.ID, req.Details)

	return nil
}

// DeleteProduct жёстко удаляет продукт. Допустимо только когда активных
// складских записей не осталось.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, productID string) error {
	const op = "ProductUseCase.DeleteProduct"

	if productID == "" {
		return e.Wrap(op, e.ErrProductNotFound)
	}

	err := p.txm.WithinTransaction(ctx, pgx.TxOptions{}, func(ctx context.Context) error {
		return p.productRepo.Delete(ctx, productID)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (p *ProductUseCase) GetProducts(ctx context.Context) ([]ProductWithDetails, error) {
	const op = "ProductUseCase.GetProducts"

	products, err := p.productRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

func (p *ProductUseCase) ListVariants(ctx context.Context) ([]VariantInfo, error) {
	const op = "ProductUseCase.ListVariants"

	variants, err := p.variantRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]VariantInfo, 0, len(variants))
	for _, v := range variants {
		result = append(result, VariantInfo{ID: v.ID, Name: v.Name})
	}

	return result, nil
}

func (p *ProductUseCase) CreateVariant(ctx context.Context, name string) (string, error) {
	const op = "ProductUseCase.CreateVariant"

	if strings.TrimSpace(name) == "" {
		return "", e.Wrap(op, e.ErrVariantNameRequired)
	}

	variant, err := p.variantRepo.Create(ctx, domain.NewVariant(newID("VR"), name))
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return variant.ID, nil
}

// invalidateProductStocks выбрасывает из кэша все остатки продукта после правки.
func (p *ProductUseCase) invalidateProductStocks(productID string, details []ProductDetailReq) {
	keys := make([]domain.StockKey, 0, len(details))
	for _, d := range details {
		keys = append(keys, domain.StockKey{ProductID: productID, VariantID: d.VariantID})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := p.cacheRepo.DeleteStocks(ctx, keys); err != nil {
		p.logger.Warnf("failed to invalidate product stock cache: %v", err)
	}
}

func validateProduct(name string, details []ProductDetailReq) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrProductNameRequired
	}

	if len(details) == 0 {
		return e.ErrNoVariantDetails
	}

	for _, d := range details {
		if d.VariantID == "" {
			return e.ErrMissingFields
		}
		if d.Qty < 0 {
			return e.ErrQtyMustBePositive
		}
		if d.Price.LessThan(decimal.Zero) {
			return e.ErrInvalidPrice
		}
	}

	return nil
}

func toVariantStocks(productID string, details []ProductDetailReq) []domain.VariantStock {
	result := make([]domain.VariantStock, 0, len(details))
	for _, d := range details {
		result = append(result, *domain.NewVariantStock(productID, d.VariantID, d.Qty, d.Price))
	}

	return result
}

// newID генерирует короткий идентификатор с человекочитаемым префиксом.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
