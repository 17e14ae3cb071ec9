package handlers

import (
	"context"
	"fmt"

	contractx "deskrouter/agent/contract"
	domainx "deskrouter/domain"
)

type orderHandler struct {
	reader domainx.Reader
}

func (h *orderHandler) Handle(ctx context.Context, req contractx.HandlerRequest) (contractx.HandlerResponse, error) {
	order, err := h.reader.MostRecentOrderFor(ctx, req.UserID)
	if err != nil {
		return contractx.HandlerResponse{}, fmt.Errorf("look up order for user %s: %w", req.UserID, err)
	}
	if order == nil {
		return contractx.HandlerResponse{
			Content: "Order Agent: I couldn't find any orders for your account.",
		}, nil
	}
	return contractx.HandlerResponse{
		Content: fmt.Sprintf("Order Agent: Your order %s is %s.", order.ID, order.Status),
	}, nil
}
