package repositories

import "github.com/vsinha/churrasco/pkg/domain/entities"

// CatalogRepository provides access to the affiliate product catalog
type CatalogRepository interface {
	GetAllProducts() ([]*entities.AffiliateProduct, error)
	GetProduct(name string) (*entities.AffiliateProduct, error)
	LoadProducts(products []*entities.AffiliateProduct) error
}
