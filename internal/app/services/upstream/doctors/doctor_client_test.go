package doctors

import (
	"citamed-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/doctors", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"doctors":[{"id":"d1","name":"Luis","last_name":"Pérez","specialty":"Dermatology","email":"luis@clinic.com","photo":"luis.jpg"}]}`))
	}))
	defer server.Close()

	client := NewDoctorClient(server.URL, 5*time.Second)

	doctors, err := client.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Luis", doctors[0].Name)
	assert.Equal(t, "Dermatology", doctors[0].Specialty)
	assert.Equal(t, "luis.jpg", doctors[0].Photo)
}

func TestFindBySpecialty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Cardiology", r.URL.Query().Get("specialty"))
		w.Write([]byte(`{"doctors":[]}`))
	}))
	defer server.Close()

	client := NewDoctorClient(server.URL, 5*time.Second)

	doctors, err := client.FindBySpecialty(context.Background(), "Cardiology")
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestFindAllBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Servicio no disponible"}`))
	}))
	defer server.Close()

	client := NewDoctorClient(server.URL, 5*time.Second)

	_, err := client.FindAll(context.Background())
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "Servicio no disponible", customErr.ClientMessage)
}

func TestFindAllConnectionRefused(t *testing.T) {
	client := NewDoctorClient("http://127.0.0.1:1", 500*time.Millisecond)

	_, err := client.FindAll(context.Background())
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "No se recibió respuesta del servidor", customErr.ClientMessage)
}

func TestDeleteByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/delete_doctor/Luis Pérez", r.URL.Path)
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client := NewDoctorClient(server.URL, 5*time.Second)
	require.NoError(t, client.DeleteByName(context.Background(), "Luis Pérez"))
}
