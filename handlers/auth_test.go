package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrewGalowayDev/AIRBNB/config"
	"github.com/DrewGalowayDev/AIRBNB/handlers"
	"github.com/DrewGalowayDev/AIRBNB/models"
	"github.com/DrewGalowayDev/AIRBNB/services"
)

// stubProfileStore keeps profiles keyed by their stored (lowercase) email.
// Calls outside the register flow panic through the embedded nil interface.
type stubProfileStore struct {
	services.ReservationStore
	profiles map[string]models.Profile
	created  []models.Profile
}

func (s *stubProfileStore) GetProfileByEmail(_ context.Context, email string) (*models.Profile, error) {
	if p, ok := s.profiles[email]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *stubProfileStore) CreateProfile(_ context.Context, profile models.Profile) (*models.Profile, error) {
	s.created = append(s.created, profile)
	return &profile, nil
}

func registerRouter(store services.ReservationStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewAuthHandler(store, &config.Config{JWTSecret: "test-secret"})
	router := gin.New()
	router.POST("/register", handler.Register)
	return router
}

func TestRegister_DuplicateEmailIgnoresCasing(t *testing.T) {
	store := &stubProfileStore{
		profiles: map[string]models.Profile{
			"akinyi@example.com": {ID: "user-123", Email: "akinyi@example.com"},
		},
	}
	router := registerRouter(store)

	body := `{"full_name":"Akinyi Odhiambo","email":"Akinyi@Example.COM","phone":"+254700000000","password":"secret1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
	assert.Empty(t, store.created)
}

func TestRegister_StoresLowercasedEmail(t *testing.T) {
	store := &stubProfileStore{profiles: map[string]models.Profile{}}
	router := registerRouter(store)

	body := `{"full_name":"Akinyi Odhiambo","email":"Akinyi@Example.COM","phone":"+254700000000","password":"secret1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, "akinyi@example.com", store.created[0].Email)
	assert.NotEmpty(t, store.created[0].PasswordHash)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	store := &stubProfileStore{profiles: map[string]models.Profile{}}
	router := registerRouter(store)

	body := `{"full_name":"Akinyi Odhiambo","email":"akinyi@example.com","phone":"+254700000000","password":"abc"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Password must be at least 6 characters long")
	assert.Empty(t, store.created)
}
