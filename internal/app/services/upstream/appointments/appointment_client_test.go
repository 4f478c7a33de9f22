package appointments

import (
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppointment(t *testing.T) {
	appointmentRequest := &requests.CreateAppointment{
		PatientEmail: "ana@example.com",
		DoctorEmail:  "luis@clinic.com",
		Date:         "2030-01-01 00:00:00",
		Time:         "10:00",
		Reason:       "Chequeo",
		Cost:         50,
		Specialty:    "Dermatology",
	}

	t.Run("confirmed booking", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/appointments", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			var received requests.CreateAppointment
			require.NoError(t, json.Unmarshal(body, &received))
			assert.Equal(t, "2030-01-01 00:00:00", received.Date)
			assert.Equal(t, 50, received.Cost)

			w.Write([]byte(`{"message":"Cita agendada exitosamente"}`))
		}))
		defer server.Close()

		client := NewAppointmentClient(server.URL, 5*time.Second)
		require.NoError(t, client.CreateAppointment(context.Background(), appointmentRequest))
	})

	t.Run("rejection detail passes through verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"La hora seleccionada ya está ocupada"}`))
		}))
		defer server.Close()

		client := NewAppointmentClient(server.URL, 5*time.Second)
		err := client.CreateAppointment(context.Background(), appointmentRequest)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, "La hora seleccionada ya está ocupada", customErr.ClientMessage)
	})

	t.Run("rejection without detail gets the fallback message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewAppointmentClient(server.URL, 5*time.Second)
		err := client.CreateAppointment(context.Background(), appointmentRequest)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, "Error desconocido", customErr.ClientMessage)
	})

	t.Run("unexpected confirmation message is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"message":"algo raro"}`))
		}))
		defer server.Close()

		client := NewAppointmentClient(server.URL, 5*time.Second)
		err := client.CreateAppointment(context.Background(), appointmentRequest)
		require.Error(t, err)
	})
}
