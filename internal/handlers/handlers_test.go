// internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/codetrade/backend/internal/services"
	"github.com/codetrade/backend/internal/utils"
)

type HandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	mock   sqlmock.Sqlmock
	router *gin.Engine
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(suite.T(), err)
	suite.mock = mock

	suite.db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(suite.T(), err)

	projectService := services.NewProjectService(suite.db, nil)
	reviewService := services.NewReviewService(suite.db)

	projectHandler := NewProjectHandler(projectService, nil)
	reviewHandler := NewReviewHandler(reviewService)

	suite.router = gin.New()

	api := suite.router.Group("/api")
	api.GET("/projects/:id", projectHandler.GetProject)

	authed := api.Group("")
	authed.Use(func(c *gin.Context) {
		c.Set("user_id", uint(4))
		c.Next()
	})
	authed.POST("/reviews", reviewHandler.CreateReview)
}

func (suite *HandlerTestSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(suite.T(), err)

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestGetProjectNotFoundMapsTo404() {
	suite.mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE "projects"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req, _ := http.NewRequest(http.MethodGet, "/api/projects/404", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var response utils.APIResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(suite.T(), response.Success)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "NOT_FOUND", response.Error.Code)
}

func (suite *HandlerTestSuite) TestGetProjectInvalidID() {
	req, _ := http.NewRequest(http.MethodGet, "/api/projects/abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateReviewWithoutPurchaseMapsTo403() {
	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "purchases"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	w := suite.postJSON("/api/reviews", map[string]interface{}{
		"projectId": 11,
		"rating":    5,
		"comment":   "great",
	})

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	var response utils.APIResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "FORBIDDEN", response.Error.Code)
}

func (suite *HandlerTestSuite) TestCreateReviewInvalidRating() {
	w := suite.postJSON("/api/reviews", map[string]interface{}{
		"projectId": 11,
		"rating":    9,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
