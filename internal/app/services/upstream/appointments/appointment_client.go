package appointments

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

type appointmentClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewAppointmentClient(baseUrl string, requestTimeout time.Duration) contracts.AppointmentClient {
	return &appointmentClient{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *appointmentClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) error {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+constvars.UpstreamPathAppointments, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		var upstreamErr responses.UpstreamError
		if err := json.NewDecoder(resp.Body).Decode(&upstreamErr); err != nil {
			return exceptions.ErrUpstreamCreateResource(err, constvars.UpstreamResourceAppointment)
		}
		return exceptions.ErrUpstreamRejected(fmt.Errorf("backend returned status %d", resp.StatusCode), upstreamErr.Detail)
	}

	var result responses.UpstreamAppointmentCreated
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return exceptions.ErrUpstreamDecodeResponse(err, constvars.UpstreamResourceAppointment)
	}

	// The backend signals a booked appointment with a fixed confirmation
	// message. Anything else means the slot was not persisted.
	if result.Message != constvars.UpstreamAppointmentBookedMessage {
		return exceptions.ErrUpstreamRejected(fmt.Errorf("unexpected confirmation message: %q", result.Message), result.Message)
	}

	return nil
}
