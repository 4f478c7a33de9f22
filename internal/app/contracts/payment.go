package contracts

import (
	"citamed-service/internal/pkg/dto/requests"
	"context"
)

type PaymentClient interface {
	ProcessPayment(ctx context.Context, request *requests.ProcessPayment) error
}
