package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/grievance-portal/grievance-api/internal/auth"
	"github.com/grievance-portal/grievance-api/internal/dto"
	apierrors "github.com/grievance-portal/grievance-api/internal/errors"
	"github.com/grievance-portal/grievance-api/internal/models"
	"github.com/grievance-portal/grievance-api/internal/repository"
	"github.com/grievance-portal/grievance-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ComplaintHandlerTestSuite defines the test suite for ComplaintHandler
type ComplaintHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ComplaintHandler
}

// SetupTest runs before each test
func (suite *ComplaintHandlerTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	complaintService := services.NewComplaintService(repository.NewComplaintRepository(suite.db), testLogger)
	suite.handler = NewComplaintHandler(complaintService)
}

func (suite *ComplaintHandlerTestSuite) create(body string, identity *auth.Identity) string {
	c, w := newTestContext(http.MethodPost, "/api/complaints", []byte(body), identity)
	suite.handler.CreateComplaint(c)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var response dto.CreateComplaintResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response.ComplaintID
}

const leakyPipeBody = `{"title":"Leaky Pipe","category":"Maintenance","description":"Water dripping in the east corridor","priority":"medium"}`

// TestCreateAnonymous_ThenTrack covers the anonymous submit and track flow
func (suite *ComplaintHandlerTestSuite) TestCreateAnonymous_ThenTrack() {
	complaintID := suite.create(leakyPipeBody, nil)
	suite.Regexp(`^GRP-[A-Z0-9]+-[A-Z0-9]+$`, complaintID)

	c, w := newTestContext(http.MethodGet, "/api/complaints/"+complaintID, nil, nil,
		gin.Param{Key: "complaintId", Value: complaintID})
	suite.handler.GetComplaint(c)

	suite.Require().Equal(http.StatusOK, w.Code)
	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(complaintID, body["complaintId"])
	suite.Equal("pending", body["status"])
	suite.Equal("Leaky Pipe", body["title"])
	suite.Nil(body["user_id"])
	suite.Nil(body["admin_comment"])
}

// TestCreate_WithIdentity attaches the submitter
func (suite *ComplaintHandlerTestSuite) TestCreate_WithIdentity() {
	user := createTestUser(suite.T(), suite.db, "citizen", models.RoleUser)
	complaintID := suite.create(leakyPipeBody, &auth.Identity{UserID: user.ID, Role: models.RoleUser})

	var stored models.Complaint
	suite.Require().NoError(suite.db.Where("complaint_id = ?", complaintID).First(&stored).Error)
	suite.Require().NotNil(stored.UserID)
	suite.Equal(user.ID, *stored.UserID)
}

// TestCreate_InvalidRequests rejects bad input before any store call
func (suite *ComplaintHandlerTestSuite) TestCreate_InvalidRequests() {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing title", `{"category":"Maintenance","description":"d","priority":"low"}`, "title is required"},
		{"missing priority", `{"title":"t","category":"Maintenance","description":"d"}`, "priority is required"},
		{"unknown priority", `{"title":"t","category":"c","description":"d","priority":"critical"}`, "priority must be one of low, medium, high, urgent"},
		{"blank title", `{"title":"   ","category":"c","description":"d","priority":"low"}`, "title is required"},
		{"unknown field", `{"title":"t","category":"c","description":"d","priority":"low","status":"resolved"}`, "Invalid request body"},
		{"malformed json", `{"title":`, "Invalid request body"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			c, w := newTestContext(http.MethodPost, "/api/complaints", []byte(tt.body), nil)
			suite.handler.CreateComplaint(c)

			suite.Equal(http.StatusBadRequest, w.Code)
			var response apierrors.APIError
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
			suite.Equal(apierrors.ErrCodeInvalidInput, response.Code)
			suite.Equal(tt.message, response.Message)
		})
	}

	var count int64
	suite.db.Model(&models.Complaint{}).Count(&count)
	suite.Zero(count)
}

// TestGetComplaint_NotFound returns 404 for unknown identifiers
func (suite *ComplaintHandlerTestSuite) TestGetComplaint_NotFound() {
	c, w := newTestContext(http.MethodGet, "/api/complaints/GRP-NOPE-0", nil, nil,
		gin.Param{Key: "complaintId", Value: "GRP-NOPE-0"})
	suite.handler.GetComplaint(c)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"code":"NOT_FOUND","message":"complaint not found"}`, w.Body.String())
}

// TestListUserComplaints covers self, other user and admin access
func (suite *ComplaintHandlerTestSuite) TestListUserComplaints() {
	owner := createTestUser(suite.T(), suite.db, "owner", models.RoleUser)
	other := createTestUser(suite.T(), suite.db, "other", models.RoleUser)
	admin := createTestUser(suite.T(), suite.db, "admin", models.RoleAdmin)
	suite.create(leakyPipeBody, &auth.Identity{UserID: owner.ID, Role: models.RoleUser})
	suite.create(leakyPipeBody, nil)

	path := gin.Param{Key: "userId", Value: "1"}

	c, w := newTestContext(http.MethodGet, "/api/complaints/user/1", nil, &auth.Identity{UserID: owner.ID, Role: models.RoleUser}, path)
	suite.handler.ListUserComplaints(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list []dto.ComplaintDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Len(list, 1)

	c, w = newTestContext(http.MethodGet, "/api/complaints/user/1", nil, &auth.Identity{UserID: other.ID, Role: models.RoleUser}, path)
	suite.handler.ListUserComplaints(c)
	suite.Equal(http.StatusForbidden, w.Code)

	c, w = newTestContext(http.MethodGet, "/api/complaints/user/1", nil, &auth.Identity{UserID: admin.ID, Role: models.RoleAdmin}, path)
	suite.handler.ListUserComplaints(c)
	suite.Equal(http.StatusOK, w.Code)

	c, w = newTestContext(http.MethodGet, "/api/complaints/user/1", nil, nil, path)
	suite.handler.ListUserComplaints(c)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

// TestListUserComplaints_EmptyIsArray returns [] rather than null
func (suite *ComplaintHandlerTestSuite) TestListUserComplaints_EmptyIsArray() {
	user := createTestUser(suite.T(), suite.db, "quiet", models.RoleUser)

	c, w := newTestContext(http.MethodGet, "/api/complaints/user/1", nil, &auth.Identity{UserID: user.ID, Role: models.RoleUser},
		gin.Param{Key: "userId", Value: "1"})
	suite.handler.ListUserComplaints(c)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

// TestListUserComplaints_InvalidUserID rejects non-numeric ids
func (suite *ComplaintHandlerTestSuite) TestListUserComplaints_InvalidUserID() {
	c, w := newTestContext(http.MethodGet, "/api/complaints/user/abc", nil, &auth.Identity{UserID: 1, Role: models.RoleAdmin},
		gin.Param{Key: "userId", Value: "abc"})
	suite.handler.ListUserComplaints(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestComplaintHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ComplaintHandlerTestSuite))
}
