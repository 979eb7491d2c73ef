package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pardarsh/internal/database"
	"pardarsh/internal/domain"
	"pardarsh/internal/middleware"
	"pardarsh/internal/modules/auth"
	"pardarsh/internal/modules/complaint"
	"pardarsh/internal/modules/contractor"
	"pardarsh/internal/modules/project"
	"pardarsh/internal/modules/report"
	jwtsvc "pardarsh/internal/pkg/jwt"
	"pardarsh/internal/repository"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type TestResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   int         `json:"count,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	models := []interface{}{
		&domain.User{},
		&domain.Project{},
		&domain.ProjectReport{},
		&domain.Review{},
		&domain.Complaint{},
	}
	for _, model := range models {
		err := db.AutoMigrate(model)
		require.NoError(t, err, fmt.Sprintf("Failed to migrate %T", model))
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	reportRepo := repository.NewReportRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	projectHandler := project.NewHandler(project.NewService(projectRepo, userRepo))
	reportHandler := report.NewHandler(report.NewService(reportRepo, projectRepo))
	contractorHandler := contractor.NewHandler(contractor.NewService(userRepo, reviewRepo, projectRepo))
	complaintHandler := complaint.NewHandler(complaint.NewService(complaintRepo, projectRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	authHandler.RegisterPublicRoutes(api)
	projectHandler.RegisterPublicRoutes(api)
	reportHandler.RegisterPublicRoutes(api)
	contractorHandler.RegisterPublicRoutes(api)
	complaintHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	{
		authHandler.RegisterProtectedRoutes(protected)
		contractorHandler.RegisterProtectedRoutes(protected)

		contractorOnly := protected.Group("")
		contractorOnly.Use(middleware.RequireRole(domain.RoleContractor))
		{
			reportHandler.RegisterContractorRoutes(contractorOnly)
		}

		official := protected.Group("")
		official.Use(middleware.RequireRole(domain.RoleOfficial))
		{
			projectHandler.RegisterOfficialRoutes(official)
			complaintHandler.RegisterOfficialRoutes(official)
		}
	}

	return &E2ETestSuite{router: r, db: db}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	var resp TestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	return &resp
}

func dataMap(t *testing.T, resp *TestResponse) map[string]interface{} {
	m, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "expected object data, got %T", resp.Data)
	return m
}

// register creates an account through the API and returns its bearer token.
func (s *E2ETestSuite) register(t *testing.T, email, role, legalName string) string {
	body := map[string]interface{}{
		"email":     email,
		"password":  "Password123!",
		"legalName": legalName,
	}
	if role != "" {
		body["role"] = role
	}

	w := s.makeRequest("POST", "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	resp := parseResponse(t, w)
	token, _ := dataMap(t, resp)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestFlow_RegistrationAndAuth(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("register returns token and public user", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/auth/register", map[string]interface{}{
			"email":     "citizen@test.com",
			"password":  "Password123!",
			"legalName": "Test Citizen",
		}, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := parseResponse(t, w)
		assert.True(t, resp.Success)

		data := dataMap(t, resp)
		assert.NotEmpty(t, data["token"])

		user := data["user"].(map[string]interface{})
		assert.Equal(t, "citizen@test.com", user["email"])
		assert.Equal(t, "General User", user["role"], "omitted role defaults to General User")
		assert.NotContains(t, user, "passwordHash")
	})

	t.Run("duplicate email is rejected with 409", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/auth/register", map[string]interface{}{
			"email":     "citizen@test.com",
			"password":  "OtherPass456!",
			"legalName": "Imposter",
		}, "")

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := parseResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "User already exists", resp.Message)
	})

	t.Run("login with valid credentials", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/auth/login", map[string]interface{}{
			"email":    "citizen@test.com",
			"password": "Password123!",
		}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.NotEmpty(t, dataMap(t, resp)["token"])
	})

	t.Run("login failures do not reveal which field was wrong", func(t *testing.T) {
		wrongPass := suite.makeRequest("POST", "/api/auth/login", map[string]interface{}{
			"email":    "citizen@test.com",
			"password": "wrong",
		}, "")
		noSuchUser := suite.makeRequest("POST", "/api/auth/login", map[string]interface{}{
			"email":    "nobody@test.com",
			"password": "wrong",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.Equal(t, http.StatusUnauthorized, noSuchUser.Code)
		assert.Equal(t, parseResponse(t, wrongPass).Message, parseResponse(t, noSuchUser).Message)
	})

	t.Run("GET /auth/me returns the caller", func(t *testing.T) {
		token := suite.register(t, "me@test.com", "", "Me Myself")

		w := suite.makeRequest("GET", "/api/auth/me", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		data := dataMap(t, parseResponse(t, w))
		assert.Equal(t, "me@test.com", data["email"])
	})
}

func TestFlow_ProjectLifecycle(t *testing.T) {
	suite := setupTestSuite(t)

	officialToken := suite.register(t, "official@test.com", "Government Official", "PWD Officer")
	contractorToken := suite.register(t, "builder@test.com", "Contractor", "Builder Co")
	citizenToken := suite.register(t, "citizen@test.com", "", "A Citizen")

	var projectID float64
	var contractorID float64

	// fetch the contractor's id from the public directory
	w := suite.makeRequest("GET", "/api/contractors", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	listings := parseResponse(t, w).Data.([]interface{})
	require.Len(t, listings, 1)
	contractorID = listings[0].(map[string]interface{})["id"].(float64)

	t.Run("official creates a project", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/projects", map[string]interface{}{
			"name":        "Highway Bypass",
			"region":      "North District",
			"description": "8 km four-lane bypass",
			"deadline":    "2025-01-01",
		}, officialToken)

		assert.Equal(t, http.StatusCreated, w.Code)
		data := dataMap(t, parseResponse(t, w))
		assert.Equal(t, "Open", data["status"], "new projects start Open")
		projectID = data["id"].(float64)
	})

	t.Run("citizen cannot create a project", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/projects", map[string]interface{}{
			"name":        "Rogue Project",
			"region":      "Nowhere",
			"description": "should be rejected",
			"deadline":    "2025-01-01",
		}, citizenToken)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("contractor cannot create a project", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/projects", map[string]interface{}{
			"name":        "Self-Awarded",
			"region":      "Nowhere",
			"description": "should be rejected",
			"deadline":    "2025-01-01",
		}, contractorToken)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous can read the project list", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/projects", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("assignment moves the project to In Progress", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/projects/%.0f/assign", projectID),
			map[string]interface{}{"contractorId": int64(contractorID)}, officialToken)

		assert.Equal(t, http.StatusOK, w.Code)
		data := dataMap(t, parseResponse(t, w))
		assert.Equal(t, "In Progress", data["status"])
		assert.Equal(t, contractorID, data["contractorId"])
	})

	t.Run("assigning a non-contractor fails", func(t *testing.T) {
		// the citizen's id is not a contractor id
		var citizen domain.User
		require.NoError(t, suite.db.Where("email = ?", "citizen@test.com").First(&citizen).Error)

		w := suite.makeRequest("PUT", fmt.Sprintf("/api/projects/%.0f/assign", projectID),
			map[string]interface{}{"contractorId": citizen.ID}, officialToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid contractor", parseResponse(t, w).Message)
	})

	t.Run("partial update touches only the given fields", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/projects/%.0f", projectID),
			map[string]interface{}{"description": "8 km four-lane bypass with service roads"}, officialToken)

		assert.Equal(t, http.StatusOK, w.Code)
		data := dataMap(t, parseResponse(t, w))
		assert.Equal(t, "8 km four-lane bypass with service roads", data["description"])
		assert.Equal(t, "Highway Bypass", data["name"])
		assert.Equal(t, "In Progress", data["status"], "status untouched by partial update")
	})

	t.Run("contractor submits a weekly report", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/projects/%.0f/reports", projectID),
			map[string]interface{}{
				"weekNumber":    1,
				"weekStartDate": "2024-11-04",
				"expenses": map[string]interface{}{
					"materials": 12000.0,
					"labor":     4500.0,
					"equipment": 3000.0,
				},
				"progressDetails":      "Earthworks and soil compaction complete",
				"completionPercentage": 5,
			}, contractorToken)

		assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
		data := dataMap(t, parseResponse(t, w))
		assert.Equal(t, float64(1), data["weekNumber"])
		assert.Equal(t, "Submitted", data["status"])
	})

	t.Run("second report for the same week conflicts", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/projects/%.0f/reports", projectID),
			map[string]interface{}{
				"weekNumber":    1,
				"weekStartDate": "2024-11-04",
				"expenses": map[string]interface{}{
					"materials": 1.0,
					"labor":     1.0,
					"equipment": 1.0,
				},
				"progressDetails":      "duplicate",
				"completionPercentage": 5,
			}, contractorToken)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Report already submitted for this week", parseResponse(t, w).Message)
	})

	t.Run("citizen cannot submit a report", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/projects/%.0f/reports", projectID),
			map[string]interface{}{
				"weekNumber":    2,
				"weekStartDate": "2024-11-11",
				"expenses": map[string]interface{}{
					"materials": 1.0, "labor": 1.0, "equipment": 1.0,
				},
				"progressDetails":      "not a contractor",
				"completionPercentage": 5,
			}, citizenToken)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("report list shows exactly one week-1 report", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/projects/%.0f/reports", projectID), nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, 1, resp.Count)

		rows := resp.Data.([]interface{})
		require.Len(t, rows, 1)
		row := rows[0].(map[string]interface{})
		assert.Equal(t, float64(1), row["weekNumber"])
		assert.Equal(t, "Submitted", row["status"])
	})
}

func TestFlow_ContractorReviewsAndFaithScore(t *testing.T) {
	suite := setupTestSuite(t)

	officialToken := suite.register(t, "official@test.com", "Government Official", "PWD Officer")
	suite.register(t, "builder@test.com", "Contractor", "Builder Co")
	citizenToken := suite.register(t, "citizen@test.com", "", "A Citizen")

	var builder domain.User
	require.NoError(t, suite.db.Where("email = ?", "builder@test.com").First(&builder).Error)

	// a project to attach the review to
	w := suite.makeRequest("POST", "/api/projects", map[string]interface{}{
		"name":        "Canal Lining",
		"region":      "East District",
		"description": "Concrete lining of irrigation canal",
		"deadline":    "2025-06-30",
	}, officialToken)
	require.Equal(t, http.StatusCreated, w.Code)
	projectID := dataMap(t, parseResponse(t, w))["id"].(float64)

	t.Run("official reviews the contractor", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/contractors/%d/reviews", builder.ID),
			map[string]interface{}{
				"projectId": int64(projectID),
				"rating":    4,
				"comment":   "Steady progress, good site discipline",
			}, officialToken)

		assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	})

	t.Run("rating outside 1..5 is rejected", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/contractors/%d/reviews", builder.ID),
			map[string]interface{}{"projectId": int64(projectID), "rating": 6}, officialToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("citizen cannot review", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/contractors/%d/reviews", builder.ID),
			map[string]interface{}{"projectId": int64(projectID), "rating": 1}, citizenToken)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("official sets the faith score", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/contractors/%d/faith-score", builder.ID),
			map[string]interface{}{"faithScore": 72.5}, officialToken)

		assert.Equal(t, http.StatusOK, w.Code)
		data := dataMap(t, parseResponse(t, w))
		assert.Equal(t, 72.5, data["faithScore"])
	})

	t.Run("public profile carries the reviews", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/contractors/%d", builder.ID), nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		data := dataMap(t, parseResponse(t, w))

		reviews := data["reviews"].([]interface{})
		require.Len(t, reviews, 1)
		assert.Equal(t, float64(4), reviews[0].(map[string]interface{})["rating"])

		cm := data["contractor"].(map[string]interface{})
		assert.Equal(t, 72.5, cm["faithScore"])
	})
}

func TestFlow_AnonymousComplaints(t *testing.T) {
	suite := setupTestSuite(t)

	officialToken := suite.register(t, "official@test.com", "Government Official", "PWD Officer")
	citizenToken := suite.register(t, "citizen@test.com", "", "A Citizen")

	w := suite.makeRequest("POST", "/api/projects", map[string]interface{}{
		"name":        "Flyover Repair",
		"region":      "Central District",
		"description": "Expansion joint replacement",
		"deadline":    "2025-03-31",
	}, officialToken)
	require.Equal(t, http.StatusCreated, w.Code)
	projectID := dataMap(t, parseResponse(t, w))["id"].(float64)

	var trackingID string

	t.Run("anonymous submission returns a tracking token", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/complaints", map[string]interface{}{
			"projectId":   int64(projectID),
			"subject":     "Debris left on carriageway",
			"description": "Broken concrete pieces left overnight without warning signs",
			"evidence":    []string{"debris-photo.jpg"},
		}, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := parseResponse(t, w)
		assert.Contains(t, resp.Message, "Save your complaint ID")

		trackingID = dataMap(t, resp)["complaintId"].(string)
		assert.Len(t, trackingID, 12)
	})

	t.Run("complaint against an unknown project is a 404", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/complaints", map[string]interface{}{
			"projectId":   int64(999999),
			"subject":     "Ghost project",
			"description": "There is nothing here",
		}, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("tracking view is redacted", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/complaints/track/"+trackingID, nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		data := dataMap(t, parseResponse(t, w))
		assert.Equal(t, trackingID, data["complaintId"])
		assert.Equal(t, "Pending", data["status"])
		assert.NotContains(t, data, "id", "internal row id must not leak")
		assert.NotContains(t, data, "projectId")
	})

	t.Run("unknown tracking token is a 404", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/complaints/track/ffffffffffff", nil, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("citizen cannot list complaints", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/complaints", nil, citizenToken)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("official works the complaint to resolution", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/complaints", nil, officialToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, parseResponse(t, w).Count)

		w = suite.makeRequest("PUT", "/api/complaints/"+trackingID, map[string]interface{}{
			"status": "Under Investigation",
		}, officialToken)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("PUT", "/api/complaints/"+trackingID, map[string]interface{}{
			"status":   "Resolved",
			"response": "Debris cleared and barricades installed",
		}, officialToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("terminal complaints reject further transitions", func(t *testing.T) {
		w := suite.makeRequest("PUT", "/api/complaints/"+trackingID, map[string]interface{}{
			"status": "Pending",
		}, officialToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("submitter sees the resolution through tracking", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/complaints/track/"+trackingID, nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		data := dataMap(t, parseResponse(t, w))
		assert.Equal(t, "Resolved", data["status"])
		assert.Equal(t, "Debris cleared and barricades installed", data["response"])
	})
}
