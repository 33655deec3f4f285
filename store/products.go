package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gr10greesh/E-commerce/models"
)

// Products is the catalog store.
type Products struct {
	db *gorm.DB
}

func NewProducts(db *gorm.DB) *Products {
	return &Products{db: db}
}

func (s *Products) Create(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Products) All(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// BySequentialID looks a product up by its human-facing sequential id.
func (s *Products) BySequentialID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).Where("seq_id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// ByRef looks a product up by its store-native reference, the key format
// cart items use.
func (s *Products) ByRef(ctx context.Context, ref uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, ref).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Products) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.db.WithContext(ctx).Where("category = ?", category).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// MaxSequentialID returns the highest sequential id, or 0 on an empty catalog.
func (s *Products) MaxSequentialID(ctx context.Context) (int, error) {
	var max int
	if err := s.db.WithContext(ctx).Raw("SELECT COALESCE(MAX(seq_id), 0) FROM products").Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}

// DeleteBySequentialID removes the matching product. Deleting an id with no
// match is not an error.
func (s *Products) DeleteBySequentialID(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Where("seq_id = ?", id).Delete(&models.Product{}).Error
}
