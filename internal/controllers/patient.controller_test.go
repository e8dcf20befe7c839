package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardiowell/internal/controllers"
	"cardiowell/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupPatientRouter(repo *MockPatientRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := controllers.NewPatientController(repo)

	router.POST("/patients", controller.CreatePatient)
	router.GET("/patients", controller.GetAllPatients)
	router.GET("/patients/latest", controller.GetLatestPatient)
	router.GET("/patients/:id", controller.GetPatientByID)
	router.PUT("/patients/:id", controller.UpdatePatient)
	router.PATCH("/patients/:id", controller.PatchPatient)
	router.DELETE("/patients/:id", controller.DeletePatient)
	return router
}

func intPtr(v int) *int { return &v }

func TestCreatePatient(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*MockPatientRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation computes bmi",
			body: models.Patient{
				FirstName: "Jane",
				LastName:  "Doe",
				Age:       38,
				Height:    intPtr(170),
				Weight:    intPtr(70),
			},
			setupMocks: func(repo *MockPatientRepository) {
				repo.On("Create", mock.MatchedBy(func(p *models.Patient) bool {
					return p.BMI != nil && *p.BMI == 24.2
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Patient created successfully",
		},
		{
			name: "client supplied bmi is discarded and recomputed",
			body: map[string]interface{}{
				"first_name": "Jane",
				"age":        38,
				"height":     170,
				"weight":     70,
				"bmi":        99.9,
			},
			setupMocks: func(repo *MockPatientRepository) {
				repo.On("Create", mock.MatchedBy(func(p *models.Patient) bool {
					return p.BMI != nil && *p.BMI == 24.2
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Patient created successfully",
		},
		{
			name: "negative age rejected",
			body: map[string]interface{}{
				"first_name": "Jane",
				"age":        -1,
			},
			setupMocks:     func(repo *MockPatientRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid patient data",
		},
		{
			name: "non positive height rejected",
			body: map[string]interface{}{
				"first_name": "Jane",
				"age":        38,
				"height":     -170,
			},
			setupMocks:     func(repo *MockPatientRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid patient data",
		},
		{
			name: "repository failure surfaces as 500",
			body: models.Patient{FirstName: "Jane", Age: 38},
			setupMocks: func(repo *MockPatientRepository) {
				repo.On("Create", mock.AnythingOfType("*models.Patient")).
					Return(errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create patient",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPatientRepository)
			tt.setupMocks(repo)
			router := setupPatientRouter(repo)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])
			repo.AssertExpectations(t)
		})
	}
}

func TestCreatePatientInvalidJSON(t *testing.T) {
	repo := new(MockPatientRepository)
	router := setupPatientRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLatestPatient(t *testing.T) {
	t.Run("returns most recent record", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindLatest").Return(&models.Patient{ID: 3, FirstName: "Jane"}, nil)
		router := setupPatientRouter(repo)

		req := httptest.NewRequest(http.MethodGet, "/patients/latest", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp["status"])
	})

	t.Run("404 when no records exist", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindLatest").Return(nil, errors.New("record not found"))
		router := setupPatientRouter(repo)

		req := httptest.NewRequest(http.MethodGet, "/patients/latest", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "No patient records found", resp["message"])
		assert.Equal(t, "Please complete patient details first", resp["error"])
	})
}

func TestGetAllPatients(t *testing.T) {
	t.Run("default limit is twenty", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindAll", 20).Return([]models.Patient{{ID: 1}, {ID: 2}}, nil)
		router := setupPatientRouter(repo)

		req := httptest.NewRequest(http.MethodGet, "/patients", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("explicit limit is honored", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindAll", 5).Return([]models.Patient{}, nil)
		router := setupPatientRouter(repo)

		req := httptest.NewRequest(http.MethodGet, "/patients?limit=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("rejects non positive limit", func(t *testing.T) {
		repo := new(MockPatientRepository)
		router := setupPatientRouter(repo)

		req := httptest.NewRequest(http.MethodGet, "/patients?limit=-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetPatientByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindByID", uint(1)).Return(&models.Patient{ID: 1}, nil)
		router := setupPatientRouter(repo)

		req := httptest.NewRequest(http.MethodGet, "/patients/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		repo := new(MockPatientRepository)
		router := setupPatientRouter(repo)

		req := httptest.NewRequest(http.MethodGet, "/patients/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindByID", uint(99)).Return(nil, errors.New("record not found"))
		router := setupPatientRouter(repo)

		req := httptest.NewRequest(http.MethodGet, "/patients/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdatePatientRecomputesBMI(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("FindByID", uint(1)).Return(&models.Patient{ID: 1, FirstName: "Jane"}, nil)
	repo.On("Update", mock.MatchedBy(func(p *models.Patient) bool {
		return p.ID == 1 && p.BMI != nil && *p.BMI == 26.4
	})).Return(nil)
	router := setupPatientRouter(repo)

	body, _ := json.Marshal(map[string]interface{}{
		"first_name": "Jane",
		"age":        40,
		"height":     165,
		"weight":     72,
		"bmi":        1.0,
	})
	req := httptest.NewRequest(http.MethodPut, "/patients/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestPatchPatient(t *testing.T) {
	t.Run("weight change recomputes bmi against stored height", func(t *testing.T) {
		repo := new(MockPatientRepository)
		existing := &models.Patient{ID: 1, Height: intPtr(170), Weight: intPtr(70)}
		repo.On("FindByID", uint(1)).Return(existing, nil)
		repo.On("Patch", uint(1), mock.MatchedBy(func(data map[string]interface{}) bool {
			bmi, ok := data["bmi"].(float64)
			return ok && bmi == 27.7
		})).Return(nil)
		router := setupPatientRouter(repo)

		body, _ := json.Marshal(map[string]interface{}{"weight": 80})
		req := httptest.NewRequest(http.MethodPatch, "/patients/1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("direct bmi patch is stripped", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindByID", uint(1)).Return(&models.Patient{ID: 1}, nil)
		repo.On("Patch", uint(1), mock.MatchedBy(func(data map[string]interface{}) bool {
			_, present := data["bmi"]
			return !present
		})).Return(nil)
		router := setupPatientRouter(repo)

		body, _ := json.Marshal(map[string]interface{}{"bmi": 99.9, "phone": "+1 (555) 111-2222"})
		req := httptest.NewRequest(http.MethodPatch, "/patients/1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})
}

func TestDeletePatient(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("Delete", uint(1)).Return(nil)
	router := setupPatientRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/patients/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}
