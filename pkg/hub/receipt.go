package hub

import (
	"time"

	"github.com/kart-io/dispatchhub/pkg/delivery"
)

// Receipt status values.
const (
	StatusDelivered = "delivered" // every channel succeeded
	StatusPartial   = "partial"   // some channels succeeded
	StatusFailed    = "failed"    // no channel succeeded
)

// Receipt aggregates the per-target outcomes of one processed request.
type Receipt struct {
	RequestID  string             `json:"request_id"`
	Kind       string             `json:"kind"`
	Format     string             `json:"format"`
	Status     string             `json:"status"`
	Results    []*delivery.Result `json:"results"`
	Successful int                `json:"successful"`
	Failed     int                `json:"failed"`
	Total      int                `json:"total"`
	Timestamp  time.Time          `json:"timestamp"`
}

func newReceipt(requestID, kind, format string, results []*delivery.Result, at time.Time) *Receipt {
	r := &Receipt{
		RequestID: requestID,
		Kind:      kind,
		Format:    format,
		Results:   results,
		Total:     len(results),
		Timestamp: at,
	}
	for _, res := range results {
		if res.Success {
			r.Successful++
		} else {
			r.Failed++
		}
	}
	switch {
	case r.Failed == 0 && r.Total > 0:
		r.Status = StatusDelivered
	case r.Successful > 0:
		r.Status = StatusPartial
	default:
		r.Status = StatusFailed
	}
	return r
}
