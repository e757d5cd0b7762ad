package queries

import (
	"errors"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/guard"
)

var (
	ErrGetSupplierScoresQueryIsNotConstructed = errors.New(
		"GetSupplierScoresQuery must be created via NewGetSupplierScoresQuery constructor",
	)
)

// GetSupplierScoresQuery computes delivery discipline scores for every
// supplier with at least one order on record.
//
// Example:
//
//	query := NewGetSupplierScoresQuery()
//	handler := NewGetSupplierScoresQueryHandler(orderRepo, scorer)
//
//	scores, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute supplier scores: %w", err)
//	}
type GetSupplierScoresQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSupplierScoresQuery creates a query to compute supplier scores.
// This is a parameterless query that scores over the full order history.
func NewGetSupplierScoresQuery() GetSupplierScoresQuery {
	return GetSupplierScoresQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSupplierScoresQueryIsNotConstructed if validation fails.
func (q GetSupplierScoresQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierScoresQueryIsNotConstructed)
}
