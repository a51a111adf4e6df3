package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Joaobosco1993/sales-api/internal/models"
)

var ErrNotFound = errors.New("product not found")

// GormStore is the read side of the catalog used by order placement.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
