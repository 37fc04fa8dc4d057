package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentify/internal/controllers"
	"rentify/internal/models"
	"rentify/internal/services"
	"rentify/internal/utils"
	"rentify/tests/mocks"
)

func setupAuthControllerWithMocks() (*controllers.AuthController, *mocks.MockConsumerRepository) {
	consumerRepo := new(mocks.MockConsumerRepository)
	propertyRepo := new(mocks.MockPropertyRepository)
	service := services.NewConsumerService(consumerRepo, propertyRepo)
	return controllers.NewAuthController(service), consumerRepo
}

func TestLogin(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	testPassword := "password123"
	hash, err := utils.HashPassword(testPassword)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockConsumerRepository)
		expectedStatus int
		checkToken     bool
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"email":    "jan@example.com",
				"password": testPassword,
			},
			setupMocks: func(consumers *mocks.MockConsumerRepository) {
				consumer := &models.Consumer{
					User: models.User{
						ID:       1,
						Email:    "jan@example.com",
						Password: hash,
						Role:     models.RoleTenant,
					},
					Status: models.ConsumerActive,
				}
				consumers.On("FindByEmail", "jan@example.com").Return(consumer, nil)
				consumers.On("Update", mock.AnythingOfType("*models.Consumer")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkToken:     true,
		},
		{
			name: "unknown email",
			requestBody: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": testPassword,
			},
			setupMocks: func(consumers *mocks.MockConsumerRepository) {
				consumers.On("FindByEmail", "nobody@example.com").Return(nil, models.NotFoundError("user", 0))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "wrong password",
			requestBody: map[string]interface{}{
				"email":    "jan@example.com",
				"password": "not-the-password",
			},
			setupMocks: func(consumers *mocks.MockConsumerRepository) {
				consumer := &models.Consumer{
					User: models.User{ID: 1, Email: "jan@example.com", Password: hash},
				}
				consumers.On("FindByEmail", "jan@example.com").Return(consumer, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "malformed email",
			requestBody: map[string]interface{}{
				"email":    "not-an-email",
				"password": testPassword,
			},
			setupMocks:     func(*mocks.MockConsumerRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, consumers := setupAuthControllerWithMocks()
			tt.setupMocks(consumers)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/auth/login", controller.Login)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.checkToken {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				data, ok := response["data"].(map[string]interface{})
				assert.True(t, ok)
				assert.NotEmpty(t, data["token"])
			}
		})
	}
}
