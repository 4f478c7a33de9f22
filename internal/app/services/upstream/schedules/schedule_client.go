package schedules

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
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

type scheduleClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewScheduleClient(baseUrl string, requestTimeout time.Duration) contracts.ScheduleClient {
	return &scheduleClient{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *scheduleClient) FindByDoctorEmail(ctx context.Context, doctorEmail string) ([]responses.UpstreamScheduleEntry, error) {
	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.UpstreamPathSchedules, url.PathEscape(doctorEmail))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		var upstreamErr responses.UpstreamError
		if err := json.NewDecoder(resp.Body).Decode(&upstreamErr); err != nil {
			return nil, exceptions.ErrUpstreamGetResource(err, constvars.UpstreamResourceSchedule)
		}
		return nil, exceptions.ErrUpstreamRejected(fmt.Errorf("backend returned status %d", resp.StatusCode), upstreamErr.Detail)
	}

	var result responses.UpstreamScheduleList
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, constvars.UpstreamResourceSchedule)
	}

	return result.Schedules, nil
}

func (c *scheduleClient) RegisterSchedule(ctx context.Context, request *requests.RegisterSchedule) error {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+constvars.UpstreamPathRegisterSchedule, bytes.NewBuffer(requestJSON))
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
			return exceptions.ErrUpstreamCreateResource(err, constvars.UpstreamResourceSchedule)
		}
		return exceptions.ErrUpstreamRejected(fmt.Errorf("backend returned status %d", resp.StatusCode), upstreamErr.Detail)
	}

	return nil
}
