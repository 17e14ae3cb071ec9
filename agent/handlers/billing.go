package handlers

import (
	"context"
	"fmt"

	contractx "deskrouter/agent/contract"
	domainx "deskrouter/domain"
)

type billingHandler struct {
	reader domainx.Reader
}

func (h *billingHandler) Handle(ctx context.Context, req contractx.HandlerRequest) (contractx.HandlerResponse, error) {
	payment, err := h.reader.MostRecentPaymentFor(ctx, req.UserID)
	if err != nil {
		return contractx.HandlerResponse{}, fmt.Errorf("look up payment for user %s: %w", req.UserID, err)
	}
	if payment == nil {
		return contractx.HandlerResponse{
			Content: "Billing Agent: There is no payment on file for your account.",
		}, nil
	}
	return contractx.HandlerResponse{
		Content: fmt.Sprintf("Billing Agent: Your last payment of $%.2f is %s.", payment.Amount, payment.Status),
	}, nil
}
