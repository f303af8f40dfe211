package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamecenter-backend/internal/api/handlers"
	"gamecenter-backend/internal/auth"
	"gamecenter-backend/internal/config"
	"gamecenter-backend/internal/database/models"
	"gamecenter-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler. The handler
// wraps a real AuthService over a mocked account repository, so token
// signing is exercised end to end.
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockGMRepo *mocks.MockGameMasterRepositoryInterface
	handler    *handlers.AuthHandler
	router     *gin.Engine
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGMRepo = mocks.NewMockGameMasterRepositoryInterface(suite.ctrl)
	authService := auth.NewAuthService(&config.Config{
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
	}, suite.mockGMRepo)
	suite.handler = handlers.NewAuthHandler(authService)

	suite.router = gin.New()
	suite.router.POST("/auth/login", suite.handler.Login)
	suite.router.GET("/auth/me", func(c *gin.Context) {
		// stand-in for the auth middleware
		if token := c.GetHeader("X-Test-Claims"); token != "" {
			claims, err := authService.ValidateJWT(token)
			if err == nil {
				c.Set("auth_claims", claims)
			}
		}
		suite.handler.Me(c)
	})
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) login(email, password string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	gm := &models.GameMaster{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		FirstName:    "Lea",
		LastName:     "Fontaine",
		Email:        "lea.fontaine@gamecenter.local",
		Role:         models.GameMasterRoleAdmin,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	suite.mockGMRepo.EXPECT().GetByEmail(gm.Email).Return(gm, nil)

	w := suite.login(gm.Email, "correct-horse")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got auth.LoginResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(suite.T(), got.AccessToken)
	assert.Equal(suite.T(), "bearer", got.TokenType)
	assert.Equal(suite.T(), models.GameMasterRoleAdmin, got.Role)
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	gm := &models.GameMaster{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "lea.fontaine@gamecenter.local",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	suite.mockGMRepo.EXPECT().GetByEmail(gm.Email).Return(gm, nil)

	w := suite.login(gm.Email, "wrong-password")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownEmail() {
	suite.mockGMRepo.EXPECT().GetByEmail("nobody@test.com").Return(nil, gorm.ErrRecordNotFound)

	w := suite.login("nobody@test.com", "whatever-password")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := suite.login("", "")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestMe_WithValidToken() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	gm := &models.GameMaster{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		FirstName:    "Lea",
		LastName:     "Fontaine",
		Email:        "lea.fontaine@gamecenter.local",
		Role:         models.GameMasterRoleGM,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	suite.mockGMRepo.EXPECT().GetByEmail(gm.Email).Return(gm, nil)

	loginResp := suite.login(gm.Email, "correct-horse")
	assert.Equal(suite.T(), http.StatusOK, loginResp.Code)
	var login auth.LoginResponse
	assert.NoError(suite.T(), json.Unmarshal(loginResp.Body.Bytes(), &login))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("X-Test-Claims", login.AccessToken)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var claims auth.AuthClaims
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &claims))
	assert.Equal(suite.T(), gm.Email, claims.Email)
	assert.Equal(suite.T(), gm.ID.String(), claims.UserID)
}

func (suite *AuthHandlerTestSuite) TestMe_NotAuthenticated() {
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
