package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Joaobosco1993/sales-api/internal/catalog"
	"github.com/Joaobosco1993/sales-api/internal/models"
)

// Catalog is the read side the builder resolves products through.
type Catalog interface {
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
}

// Repository persists whole orders. Save must be atomic: either the order
// row and every item row become visible together, or nothing does.
type Repository interface {
	Save(ctx context.Context, o *models.Order) error
	FindByUser(ctx context.Context, userID uint) ([]models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type Service struct {
	Catalog Catalog
	Repo    Repository
}

func NewService(cat Catalog, repo Repository) *Service {
	return &Service{Catalog: cat, Repo: repo}
}

// PlaceOrder validates the lines, snapshots each product's current price
// into an item, sums the total and persists the aggregate in one
// transaction. Each input line becomes one item, in input order.
func (s *Service) PlaceOrder(ctx context.Context, userID uint, lines []Line) (*models.Order, error) {
	if err := ValidateLines(lines); err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(lines))
	var total float64
	for _, ln := range lines {
		p, err := s.Catalog.GetProduct(ctx, ln.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, ln.ProductID)
			}
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		qty := uint(ln.Quantity)
		items = append(items, models.OrderItem{
			ProductID: p.ID,
			Quantity:  qty,
			Price:     p.Price,
		})
		total += p.Price * float64(qty)
	}

	o := &models.Order{
		UserID:    userID,
		Total:     total,
		CreatedAt: time.Now().Unix(),
		Items:     items,
	}
	if err := s.Repo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return o, nil
}

// ListOrders returns the user's orders oldest first, items in line order.
func (s *Service) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	orders, err := s.Repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	o, err := s.Repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if o == nil || o.UserID != userID {
		return nil, fmt.Errorf("%w: id %d", ErrOrderNotFound, orderID)
	}
	return o, nil
}

func (s *Service) DeleteOrder(ctx context.Context, userID, orderID uint) error {
	o, err := s.Repo.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if o == nil || o.UserID != userID {
		return fmt.Errorf("%w: id %d", ErrOrderNotFound, orderID)
	}

	existed, err := s.Repo.Delete(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !existed {
		return fmt.Errorf("%w: id %d", ErrOrderNotFound, orderID)
	}
	return nil
}
