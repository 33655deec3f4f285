package productcontroller

import (
	"context"

	"github.com/Gr10greesh/E-commerce/models"
)

// Catalog is the slice of the product store the catalog endpoints use.
type Catalog interface {
	Create(ctx context.Context, p *models.Product) error
	All(ctx context.Context) ([]models.Product, error)
	BySequentialID(ctx context.Context, id int) (*models.Product, error)
	ByCategory(ctx context.Context, category string) ([]models.Product, error)
	MaxSequentialID(ctx context.Context) (int, error)
	DeleteBySequentialID(ctx context.Context, id int) error
}
