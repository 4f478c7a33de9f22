package doctors

import (
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/app/models"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/responses"
	"citamed-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

type doctorClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewDoctorClient(baseUrl string, requestTimeout time.Duration) contracts.DoctorClient {
	return &doctorClient{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *doctorClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return c.fetchDoctors(ctx, c.BaseUrl+constvars.UpstreamPathDoctors)
}

func (c *doctorClient) FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error) {
	endpoint := fmt.Sprintf("%s%s?specialty=%s", c.BaseUrl, constvars.UpstreamPathDoctors, url.QueryEscape(specialty))
	return c.fetchDoctors(ctx, endpoint)
}

func (c *doctorClient) SearchByName(ctx context.Context, name string) ([]models.Doctor, error) {
	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.UpstreamPathSearchDoctor, url.PathEscape(name))
	return c.fetchDoctors(ctx, endpoint)
}

func (c *doctorClient) DeleteByName(ctx context.Context, name string) error {
	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.UpstreamPathDeleteDoctor, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, endpoint, nil)
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
			return exceptions.ErrUpstreamDeleteResource(err, constvars.UpstreamResourceDoctor)
		}
		return exceptions.ErrUpstreamRejected(fmt.Errorf("backend returned status %d", resp.StatusCode), upstreamErr.Detail)
	}

	return nil
}

func (c *doctorClient) fetchDoctors(ctx context.Context, endpoint string) ([]models.Doctor, error) {
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
			return nil, exceptions.ErrUpstreamGetResource(err, constvars.UpstreamResourceDoctor)
		}
		return nil, exceptions.ErrUpstreamRejected(fmt.Errorf("backend returned status %d", resp.StatusCode), upstreamErr.Detail)
	}

	var result responses.UpstreamDoctorList
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, constvars.UpstreamResourceDoctor)
	}

	doctorModels := make([]models.Doctor, len(result.Doctors))
	for i, doctor := range result.Doctors {
		doctorModels[i] = models.Doctor{
			ID:        doctor.ID,
			Name:      doctor.Name,
			LastName:  doctor.LastName,
			Specialty: doctor.Specialty,
			Phone:     doctor.Phone,
			Email:     doctor.Email,
			Photo:     doctor.Photo,
		}
	}
	return doctorModels, nil
}
