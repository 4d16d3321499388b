package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Gateway is the external payment collaborator. The stub implementation
// cannot fail; a production gateway would add a failed outcome plus a
// retry/cancel path behind the same contract.
type Gateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error)
	Name() string
}

// ChargeRequest describes one payment attempt.
type ChargeRequest struct {
	AttemptID string  `json:"attempt_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Method    Method  `json:"method"`
}

// ChargeResponse is the gateway's completion signal.
type ChargeResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Success       bool   `json:"success"`
}

// StubGateway simulates payment processing: it always succeeds after a
// fixed delay. The delay is the flow's only suspension point.
type StubGateway struct {
	delay time.Duration
}

func NewStubGateway(delay time.Duration) *StubGateway {
	return &StubGateway{delay: delay}
}

// Charge waits out the simulated processing delay, honoring context
// cancellation, then reports success.
func (g *StubGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("charge request is required")
	}

	if g.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(g.delay):
		}
	}

	return &ChargeResponse{
		TransactionID: fmt.Sprintf("stub_txn_%s", uuid.New().String()[:8]),
		Status:        "completed",
		Success:       true,
	}, nil
}

func (g *StubGateway) Name() string {
	return "stub"
}
