package payments

import (
	"bytes"
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
	"citamed-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

type paymentClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewPaymentClient(baseUrl string, requestTimeout time.Duration) contracts.PaymentClient {
	return &paymentClient{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *paymentClient) ProcessPayment(ctx context.Context, request *requests.ProcessPayment) error {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+constvars.UpstreamPathProcessPayment, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		var upstreamErr responses.UpstreamError
		if err := json.NewDecoder(resp.Body).Decode(&upstreamErr); err != nil {
			return exceptions.ErrUpstreamCreateResource(err, constvars.UpstreamResourcePayment)
		}
		return exceptions.ErrUpstreamRejected(fmt.Errorf("backend returned status %d", resp.StatusCode), upstreamErr.Detail)
	}

	var result responses.UpstreamPaymentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return exceptions.ErrUpstreamDecodeResponse(err, constvars.UpstreamResourcePayment)
	}

	if result.Status != constvars.UpstreamPaymentSuccessStatus {
		return exceptions.ErrUpstreamRejected(fmt.Errorf("payment status %q", result.Status), "")
	}

	return nil
}
