package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStubGateway_AlwaysSucceeds(t *testing.T) {
	gw := NewStubGateway(0)

	resp, err := gw.Charge(context.Background(), &ChargeRequest{
		AttemptID: "attempt-1",
		Amount:    400,
		Currency:  "INR",
		Method:    MethodCard,
	})
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "completed", resp.Status)
	assert.NotEmpty(t, resp.TransactionID)
}

func TestStubGateway_NilRequest(t *testing.T) {
	gw := NewStubGateway(0)
	_, err := gw.Charge(context.Background(), nil)
	assert.Error(t, err)
}

func TestStubGateway_ContextCancelledDuringDelay(t *testing.T) {
	gw := NewStubGateway(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gw.Charge(ctx, &ChargeRequest{AttemptID: "attempt-1", Amount: 150, Currency: "INR", Method: MethodGPay})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStubGateway_Name(t *testing.T) {
	assert.Equal(t, "stub", NewStubGateway(0).Name())
}
