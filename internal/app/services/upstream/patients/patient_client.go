package patients

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

type patientClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewPatientClient(baseUrl string, requestTimeout time.Duration) contracts.PatientClient {
	return &patientClient{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *patientClient) FindAll(ctx context.Context) ([]models.Patient, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+constvars.UpstreamPathPatients, nil)
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
			return nil, exceptions.ErrUpstreamGetResource(err, constvars.UpstreamResourcePatient)
		}
		return nil, exceptions.ErrUpstreamRejected(fmt.Errorf("backend returned status %d", resp.StatusCode), upstreamErr.Detail)
	}

	var result responses.UpstreamPatientList
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, constvars.UpstreamResourcePatient)
	}

	return toPatientModels(result.Patients), nil
}

func (c *patientClient) SearchByName(ctx context.Context, name string) ([]models.Patient, error) {
	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.UpstreamPathSearchPatient, url.PathEscape(name))
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
			return nil, exceptions.ErrUpstreamGetResource(err, constvars.UpstreamResourcePatient)
		}
		return nil, exceptions.ErrUpstreamRejected(fmt.Errorf("backend returned status %d", resp.StatusCode), upstreamErr.Detail)
	}

	var result responses.UpstreamPatientList
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, constvars.UpstreamResourcePatient)
	}

	return toPatientModels(result.Patients), nil
}

func (c *patientClient) DeleteByName(ctx context.Context, name string) error {
	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.UpstreamPathDeletePatient, url.PathEscape(name))
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
			return exceptions.ErrUpstreamDeleteResource(err, constvars.UpstreamResourcePatient)
		}
		return exceptions.ErrUpstreamRejected(fmt.Errorf("backend returned status %d", resp.StatusCode), upstreamErr.Detail)
	}

	return nil
}

func toPatientModels(patients []responses.Patient) []models.Patient {
	result := make([]models.Patient, len(patients))
	for i, patient := range patients {
		result[i] = models.Patient{
			ID:       patient.ID,
			Name:     patient.Name,
			LastName: patient.LastName,
			Email:    patient.Email,
		}
	}
	return result
}
