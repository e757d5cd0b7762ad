package queries

import (
	"context"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/services"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/ports"
)

// GetSupplierScoresQueryHandler rates suppliers over the full order history.
// Goes through the order repository because the scorer operates on domain
// aggregates.
type GetSupplierScoresQueryHandler struct {
	orderRepository ports.OrderRepository
	scorer          services.SupplierScorer
}

// NewGetSupplierScoresQueryHandler creates a handler for supplier scoring.
func NewGetSupplierScoresQueryHandler(
	orderRepository ports.OrderRepository,
	scorer services.SupplierScorer,
) GetSupplierScoresQueryHandler {
	return GetSupplierScoresQueryHandler{
		orderRepository: orderRepository,
		scorer:          scorer,
	}
}

// Handle executes the scoring query.
// Loads every order on record and returns per-supplier scores in the order
// suppliers first appear.
func (h GetSupplierScoresQueryHandler) Handle(
	ctx context.Context,
	query GetSupplierScoresQuery,
) ([]services.SupplierScore, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return h.scorer.Score(orders), nil
}
