package memory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/churrasco/pkg/domain/entities"
	"github.com/vsinha/churrasco/pkg/domain/repositories"
)

// CatalogRepository provides in-memory affiliate product storage
type CatalogRepository struct {
	products    []entities.AffiliateProduct
	productsMap map[string]int
}

// NewCatalogRepository creates an empty in-memory catalog
func NewCatalogRepository(expectedProducts int) *CatalogRepository {
	return &CatalogRepository{
		products:    make([]entities.AffiliateProduct, 0, expectedProducts),
		productsMap: make(map[string]int, expectedProducts),
	}
}

// NewDefaultCatalogRepository creates a catalog holding the recommended barbecue accessories
func NewDefaultCatalogRepository() *CatalogRepository {
	products := DefaultProducts()
	repo := NewCatalogRepository(len(products))
	_ = repo.LoadProducts(products)
	return repo
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// LoadProducts loads products into the repository
func (r *CatalogRepository) LoadProducts(products []*entities.AffiliateProduct) error {
	for _, product := range products {
		if err := r.AddProduct(*product); err != nil {
			return err
		}
	}
	return nil
}

// AddProduct adds a product, rejecting duplicate names
func (r *CatalogRepository) AddProduct(product entities.AffiliateProduct) error {
	if _, exists := r.productsMap[product.Name]; exists {
		return fmt.Errorf("product %s already exists", product.Name)
	}
	r.productsMap[product.Name] = len(r.products)
	r.products = append(r.products, product)
	return nil
}

// GetProduct returns a product by name
func (r *CatalogRepository) GetProduct(name string) (*entities.AffiliateProduct, error) {
	index, exists := r.productsMap[name]
	if !exists {
		return nil, fmt.Errorf("product not found: %s", name)
	}
	return &r.products[index], nil
}

// GetAllProducts returns all products in catalog order
func (r *CatalogRepository) GetAllProducts() ([]*entities.AffiliateProduct, error) {
	products := make([]*entities.AffiliateProduct, 0, len(r.products))
	for i := range r.products {
		products = append(products, &r.products[i])
	}
	return products, nil
}

// DefaultProducts returns the built-in product recommendations
func DefaultProducts() []*entities.AffiliateProduct {
	return []*entities.AffiliateProduct{
		{
			Name:        "Kit Churrasco Inox",
			Emoji:       "🔥",
			Description: "Jogo de Churrasco Tradicional 3 Peças - Tramontina",
			Price:       decimal.RequireFromString("89.90"),
			URL:         "https://amzn.to/3O16yAd",
			Badge:       "Mais vendido",
		},
		{
			Name:        "Acendedor de Carvão",
			Emoji:       "♨️",
			Description: "Acendedor Carvão Lenha Bastão - 15 Unidades",
			Price:       decimal.RequireFromString("39.90"),
			URL:         "https://amzn.to/46CZ7W9",
		},
		{
			Name:        "Termômetro Digital",
			Emoji:       "🌡️",
			Description: "Ponto perfeito da carne toda vez",
			Price:       decimal.RequireFromString("25.00"),
			URL:         "https://amzn.to/4rcz14U",
			Badge:       "Essencial",
		},
		{
			Name:        "Luvas Térmicas",
			Emoji:       "🧤",
			Description: "Profissional Até 600ºC De 10 a 15 Segundo",
			Price:       decimal.RequireFromString("79.90"),
			URL:         "https://amzn.to/4tptoS2",
		},
		{
			Name:        "Tábua de Corte Bambu",
			Emoji:       "🪵",
			Description: "Grande, resistente e fácil de limpar",
			Price:       decimal.RequireFromString("54.90"),
			URL:         "https://amzn.to/4cf4Y7F",
		},
		{
			Name:        "Kit Temperos Premium",
			Emoji:       "🧂",
			Description: "Salsa, Páprica Doce, Tomilho, Manjericão e Mostarda e mais",
			Price:       decimal.RequireFromString("35"),
			URL:         "https://amzn.to/4qhTCmN",
		},
	}
}
