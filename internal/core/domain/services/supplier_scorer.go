package services

import (
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"
)

// Scoring weights. Every order starts from a perfect base; each delivery date
// change and each cancellation is a fixed deduction.
const (
	BaseScore              = 100
	DateChangePenalty      = 10
	CancellationPenalty    = 50
	gradeAThresholdScore   = 80
	gradeBThresholdScore   = 50
	perfectReliabilityPct  = 100
	depletedReliabilityPct = 0
)

// SupplierScore is the scoring outcome for one supplier.
//
// RawScore may go negative on repeated offences; Grade is assigned on the raw
// value while Reliability clamps it into a percentage for display.
type SupplierScore struct {
	SupplierName    string
	RawScore        int
	Grade           string
	Reliability     int
	TotalOrders     int
	DateChanges     int
	CancelledOrders int
}

// SupplierScorer is a domain service that rates suppliers by delivery
// discipline: how often they moved dates and how many of their orders ended
// up cancelled.
type SupplierScorer struct{}

// NewSupplierScorer creates a supplier scorer.
func NewSupplierScorer() SupplierScorer {
	return SupplierScorer{}
}

// Score aggregates a snapshot of orders into per-supplier scores.
//
// Orders are grouped by supplier name; suppliers are emitted in the order
// they first appear in the snapshot. A supplier with no offences scores 100,
// grade A, 100% reliability. An empty snapshot yields an empty slice.
func (s SupplierScorer) Score(orders []*order.Order) []SupplierScore {
	scores := make([]SupplierScore, 0)
	index := make(map[string]int)

	for _, o := range orders {
		name := o.SupplierName()
		i, ok := index[name]
		if !ok {
			i = len(scores)
			index[name] = i
			scores = append(scores, SupplierScore{SupplierName: name})
		}

		scores[i].TotalOrders++
		scores[i].DateChanges += o.DateChangeCount()
		if o.Status() == order.Cancelled {
			scores[i].CancelledOrders++
		}
	}

	for i := range scores {
		raw := BaseScore -
			scores[i].DateChanges*DateChangePenalty -
			scores[i].CancelledOrders*CancellationPenalty
		scores[i].RawScore = raw
		scores[i].Grade = gradeFor(raw)
		scores[i].Reliability = reliabilityFor(raw)
	}

	return scores
}

func gradeFor(raw int) string {
	switch {
	case raw >= gradeAThresholdScore:
		return "A"
	case raw >= gradeBThresholdScore:
		return "B"
	default:
		return "C"
	}
}

func reliabilityFor(raw int) int {
	if raw < depletedReliabilityPct {
		return depletedReliabilityPct
	}
	if raw > perfectReliabilityPct {
		return perfectReliabilityPct
	}
	return raw
}
