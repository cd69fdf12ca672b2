package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/interview-tracker/adapters/persistence"
	authUC "github.com/khoahotran/interview-tracker/internal/application/usecase/auth"
	"github.com/khoahotran/interview-tracker/internal/config"
	"github.com/khoahotran/interview-tracker/internal/domain/user"
	"github.com/khoahotran/interview-tracker/pkg/auth"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type AuthE2ETestSuite struct {
	suite.Suite
	Router   *gin.Engine
	dbPool   *pgxpool.Pool
	rdb      *redis.Client
	testUser user.User
	testPass string
}

func (s *AuthE2ETestSuite) SetupSuite() {
	cfg, err := config.LoadConfig("../..")
	if err != nil {
		s.T().Fatalf("Failed to load config for E2E test: %v", err)
	}

	s.dbPool, err = pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		s.T().Fatalf("E2E test failed to connect postgres: %v", err)
	}
	s.rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})

	appLogger := logger.NewZapLogger("development", "interview-tracker-e2e")

	s.testPass = "e2e_test_password_123"
	hash, _ := auth.HashPassword(s.testPass)
	s.testUser = user.User{
		ID:           uuid.New(),
		Email:        "e2e_test@example.com",
		PasswordHash: hash,
	}
	ctx := context.Background()
	_, err = s.dbPool.Exec(ctx, `DELETE FROM users WHERE email = $1`, s.testUser.Email)
	if err != nil {
		s.T().Fatalf("E2E test failed to clean user: %v", err)
	}
	_, err = s.dbPool.Exec(ctx, `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`,
		s.testUser.ID, s.testUser.Email, s.testUser.PasswordHash)
	if err != nil {
		s.T().Fatalf("E2E test failed to seed user: %v", err)
	}
	_, err = s.dbPool.Exec(ctx, `INSERT INTO profiles (id, name, verified) VALUES ($1, 'E2E', TRUE)`, s.testUser.ID)
	if err != nil {
		s.T().Fatalf("E2E test failed to seed profile: %v", err)
	}

	userRepo := persistence.NewPostgresUserRepo(s.dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(s.dbPool, appLogger)
	sessions := persistence.NewRedisSessionStore(s.rdb)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	authHandler := NewAuthHandler(
		authUC.NewSignUpUseCase(userRepo, appLogger),
		authUC.NewSignInUseCase(userRepo, profileRepo, jwtSvc, appLogger),
		authUC.NewSignOutUseCase(sessions),
		nil,
		authUC.NewUpdatePasswordUseCase(userRepo, sessions, appLogger),
		userRepo,
		appLogger,
	)
	authMiddleware := AuthMiddleware(jwtSvc, sessions, appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		api.POST("/auth/signin", authHandler.SignIn)
		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.POST("/auth/signout", authHandler.SignOut)
			private.GET("/auth/me", RequireVerified(profileRepo), authHandler.CurrentUser)
		}
	}

	s.Router = router
}

func (s *AuthE2ETestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, s.testUser.ID)
		s.dbPool.Close()
	}
	if s.rdb != nil {
		s.rdb.Close()
	}
}

func TestAuthE2E(t *testing.T) {
	if os.Getenv("E2E_TESTS") == "" {
		t.Skip("Skipping E2E tests. Set E2E_TESTS=1 to run.")
	}
	suite.Run(t, new(AuthE2ETestSuite))
}

func (s *AuthE2ETestSuite) Test_SignIn_SignOut_Flow() {
	bodyBad, _ := json.Marshal(gin.H{"email": s.testUser.Email, "password": "wrongpassword"})
	reqBad := httptest.NewRequest(http.MethodPost, "/api/auth/signin", bytes.NewBuffer(bodyBad))
	reqBad.Header.Set("Content-Type", "application/json")

	rrBad := httptest.NewRecorder()
	s.Router.ServeHTTP(rrBad, reqBad)

	assert.Equal(s.T(), http.StatusUnauthorized, rrBad.Code)

	bodyGood, _ := json.Marshal(gin.H{"email": s.testUser.Email, "password": s.testPass})
	reqGood := httptest.NewRequest(http.MethodPost, "/api/auth/signin", bytes.NewBuffer(bodyGood))
	reqGood.Header.Set("Content-Type", "application/json")

	rrGood := httptest.NewRecorder()
	s.Router.ServeHTTP(rrGood, reqGood)

	assert.Equal(s.T(), http.StatusOK, rrGood.Code)

	var signInResponse struct {
		Data AuthSessionDTO `json:"data"`
	}
	json.Unmarshal(rrGood.Body.Bytes(), &signInResponse)
	accessToken := signInResponse.Data.AccessToken
	assert.NotEmpty(s.T(), accessToken)

	reqMe := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	reqMe.Header.Set("Authorization", "Bearer "+accessToken)
	rrMe := httptest.NewRecorder()
	s.Router.ServeHTTP(rrMe, reqMe)
	assert.Equal(s.T(), http.StatusOK, rrMe.Code)

	reqOut := httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil)
	reqOut.Header.Set("Authorization", "Bearer "+accessToken)
	rrOut := httptest.NewRecorder()
	s.Router.ServeHTTP(rrOut, reqOut)
	assert.Equal(s.T(), http.StatusOK, rrOut.Code)

	reqAfter := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	reqAfter.Header.Set("Authorization", "Bearer "+accessToken)
	rrAfter := httptest.NewRecorder()
	s.Router.ServeHTTP(rrAfter, reqAfter)
	assert.Equal(s.T(), http.StatusUnauthorized, rrAfter.Code)
}
