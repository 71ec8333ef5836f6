package service

import (
	"context"
	"fmt"

	"github.com/avc/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// CatalogService управляет товарами и промокодами
type CatalogService struct {
	productRepo domain.ProductRepository
	promoRepo   domain.PromoRepository
	rt          Runtime
}

// NewCatalogService создает новый CatalogService
func NewCatalogService(productRepo domain.ProductRepository, promoRepo domain.PromoRepository, rt Runtime) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		promoRepo:   promoRepo,
		rt:          rt,
	}
}

// CreateFromLine создает товар через фабрику линейки и сохраняет его.
// Фабрика ничего не выводит.
func (s *CatalogService) CreateFromLine(ctx context.Context, line domain.ProductLine, id int64, title string, price decimal.Decimal) (*domain.Product, error) {
	product, err := domain.NewProduct(line, id, title, price)
	if err != nil {
		s.rt.Observer.record("product", "create", err)
		return nil, err
	}

	if err := s.save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// CreateProduct сохраняет товар, собранный вызывающей стороной
func (s *CatalogService) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	p := &product
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}

	p.Create(s.rt.sink())
	return p, nil
}

func (s *CatalogService) save(ctx context.Context, product *domain.Product) error {
	if err := s.rt.guard().CheckProduct(product); err != nil {
		s.rt.Observer.record("product", "create", err)
		return err
	}

	err := s.productRepo.CreateProduct(ctx, product)
	s.rt.Observer.record("product", "create", err)
	if err != nil {
		return wrapErr("catalog", fmt.Sprintf("create product %d", product.ID), err)
	}

	s.rt.Observer.publish(ctx, domain.EventProductCreated, product.ID, map[string]any{
		"title":    product.Title,
		"price":    domain.FormatAmount(product.Price),
		"category": product.Category.Name,
	})
	return nil
}

// UpdateProduct заменяет данные товара, идентификатор сохраняется
func (s *CatalogService) UpdateProduct(ctx context.Context, productID int64, next domain.Product) (*domain.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		s.rt.Observer.record("product", "update", err)
		return nil, wrapErr("catalog", fmt.Sprintf("get product %d", productID), err)
	}

	next.ID = productID
	if err := s.rt.guard().CheckProduct(&next); err != nil {
		s.rt.Observer.record("product", "update", err)
		return nil, err
	}

	product.Update(next, s.rt.sink())
	err = s.productRepo.UpdateProduct(ctx, product)
	s.rt.Observer.record("product", "update", err)
	if err != nil {
		return nil, wrapErr("catalog", fmt.Sprintf("update product %d", productID), err)
	}

	return product, nil
}

// DeleteProduct удаляет товар из каталога
func (s *CatalogService) DeleteProduct(ctx context.Context, productID int64) error {
	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		s.rt.Observer.record("product", "delete", err)
		return wrapErr("catalog", fmt.Sprintf("get product %d", productID), err)
	}

	err = s.productRepo.DeleteProduct(ctx, productID)
	s.rt.Observer.record("product", "delete", err)
	if err != nil {
		return wrapErr("catalog", fmt.Sprintf("delete product %d", productID), err)
	}

	product.Delete(s.rt.sink())
	return nil
}

func (s *CatalogService) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return nil, wrapErr("catalog", fmt.Sprintf("get product %d", productID), err)
	}
	return product, nil
}

// AddPromoCode заводит промокод. Диапазон процента не проверяется.
func (s *CatalogService) AddPromoCode(ctx context.Context, code string, discountPercent decimal.Decimal) (*domain.PromoCode, error) {
	promo := &domain.PromoCode{Code: code, DiscountPercent: discountPercent}

	err := s.promoRepo.CreatePromoCode(ctx, promo)
	s.rt.Observer.record("promo", "create", err)
	if err != nil {
		return nil, wrapErr("catalog", fmt.Sprintf("create promo code %q", code), err)
	}

	return promo, nil
}

func (s *CatalogService) GetPromoCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	promo, err := s.promoRepo.GetPromoCode(ctx, code)
	if err != nil {
		return nil, wrapErr("catalog", fmt.Sprintf("get promo code %q", code), err)
	}
	return promo, nil
}
