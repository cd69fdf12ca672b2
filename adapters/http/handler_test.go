package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	adminUC "github.com/khoahotran/interview-tracker/internal/application/usecase/admin"
	analysisUC "github.com/khoahotran/interview-tracker/internal/application/usecase/analysis"
	authUC "github.com/khoahotran/interview-tracker/internal/application/usecase/auth"
	interviewUC "github.com/khoahotran/interview-tracker/internal/application/usecase/interview"
	standupUC "github.com/khoahotran/interview-tracker/internal/application/usecase/standup"
	"github.com/khoahotran/interview-tracker/internal/domain/interview"
	"github.com/khoahotran/interview-tracker/internal/domain/profile"
	"github.com/khoahotran/interview-tracker/internal/domain/standup"
	"github.com/khoahotran/interview-tracker/internal/mocks"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/auth"
	"github.com/khoahotran/interview-tracker/pkg/imaging"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	router     *gin.Engine
	jwtSvc     *auth.JWTService
	users      *mocks.MockUserRepository
	profiles   *mocks.MockProfileRepository
	interviews *mocks.MockInterviewRepository
	standups   *mocks.MockStandupRepository
	cache      *mocks.MockPageCache
	publisher  *mocks.MockEventPublisher
	revoker    *mocks.MockTokenRevoker
	llm        *mocks.MockLLMService
	ownerID    uuid.UUID
	token      string
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()

	s.ctrl = gomock.NewController(s.T())
	s.users = mocks.NewMockUserRepository(s.ctrl)
	s.profiles = mocks.NewMockProfileRepository(s.ctrl)
	s.interviews = mocks.NewMockInterviewRepository(s.ctrl)
	s.standups = mocks.NewMockStandupRepository(s.ctrl)
	s.cache = mocks.NewMockPageCache(s.ctrl)
	s.publisher = mocks.NewMockEventPublisher(s.ctrl)
	s.revoker = mocks.NewMockTokenRevoker(s.ctrl)
	s.llm = mocks.NewMockLLMService(s.ctrl)
	uploader := mocks.NewMockUploader(s.ctrl)
	tokens := mocks.NewMockResetTokenStore(s.ctrl)
	notifier := mocks.NewMockResetNotifier(s.ctrl)

	s.jwtSvc = auth.NewJWTService("handler-test-secret", time.Hour)
	s.ownerID = uuid.New()
	var err error
	s.token, err = s.jwtSvc.GenerateToken(s.ownerID)
	s.Require().NoError(err)

	// Background publishes are not asserted here.
	s.publisher.EXPECT().PublishInterviewEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.publisher.EXPECT().PublishStandupEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.cache.EXPECT().Revalidate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	images := interviewUC.ImageSettings{Folder: "interview-images", Options: imaging.Options{MaxWidth: 100}}
	listStandups := standupUC.NewListStandupsUseCase(s.standups, s.profiles, s.cache, time.Minute, log)

	h := Handlers{
		Auth: NewAuthHandler(
			authUC.NewSignUpUseCase(s.users, log),
			authUC.NewSignInUseCase(s.users, s.profiles, s.jwtSvc, log),
			authUC.NewSignOutUseCase(s.revoker),
			authUC.NewRequestPasswordResetUseCase(s.users, tokens, notifier, time.Hour, "http://x/reset?token=%s", log),
			authUC.NewUpdatePasswordUseCase(s.users, tokens, log),
			s.users,
			log,
		),
		Interview: NewInterviewHandler(
			interviewUC.NewListInterviewsUseCase(s.interviews, s.profiles, s.cache, time.Minute, log),
			interviewUC.NewCreateInterviewUseCase(s.interviews, uploader, s.cache, s.publisher, images, log),
			interviewUC.NewUpdateInterviewUseCase(s.interviews, uploader, s.cache, s.publisher, images, log),
			interviewUC.NewUpdateStatusUseCase(s.interviews, s.cache, s.publisher, log),
			interviewUC.NewDeleteInterviewUseCase(s.interviews, uploader, s.cache, s.publisher, log),
			log,
		),
		Standup: NewStandupHandler(
			listStandups,
			standupUC.NewUpsertStandupUseCase(s.standups, s.cache, s.publisher, log),
			standupUC.NewDeleteStandupUseCase(s.standups, s.cache, s.publisher, log),
			log,
		),
		Analysis: NewAnalysisHandler(analysisUC.NewAnalyzeScriptUseCase(s.llm, analysisUC.Settings{Temperature: 0.7, MaxTokens: 1500}, log), log),
		Profile:  NewProfileHandler(adminUC.NewAdminUseCase(s.profiles, log), log),
		RSS:      NewRSSHandler(standupUC.NewFeedUseCase(listStandups, "http://localhost:8080", log), log),
	}

	s.router = gin.New()
	s.router.Use(ErrorMiddleware(log))
	RegisterRoutes(s.router, h, RouterDeps{JWT: s.jwtSvc, Revoker: s.revoker, Profiles: s.profiles, Logger: log})
}

func (s *HandlerTestSuite) signedIn(verified, admin bool) {
	s.revoker.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	s.profiles.EXPECT().FindByID(gomock.Any(), s.ownerID).
		Return(&profile.Profile{ID: s.ownerID, Name: "Sam", Verified: verified, IsAdmin: admin}, nil).AnyTimes()
}

func (s *HandlerTestSuite) do(req *http.Request, withToken bool) (*httptest.ResponseRecorder, map[string]any) {
	if withToken {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	var body map[string]any
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	return rr, body
}

func jsonRequest(method, path string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (s *HandlerTestSuite) Test_Unauthenticated() {
	rr, body := s.do(httptest.NewRequest(http.MethodGet, "/api/interviews", nil), false)
	s.Equal(http.StatusUnauthorized, rr.Code)
	s.Equal(false, body["success"])
	s.Equal("Unauthorized", body["error"])
}

func (s *HandlerTestSuite) Test_RevokedToken() {
	s.revoker.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(true, nil)
	rr, _ := s.do(httptest.NewRequest(http.MethodGet, "/api/interviews", nil), true)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *HandlerTestSuite) Test_UnverifiedIsForbidden() {
	s.signedIn(false, false)
	rr, body := s.do(httptest.NewRequest(http.MethodGet, "/api/interviews/all", nil), true)
	s.Equal(http.StatusForbidden, rr.Code)
	s.Equal(authUC.MsgVerificationPending, body["error"])
}

func (s *HandlerTestSuite) Test_SignUp() {
	s.users.EXPECT().CreateWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	rr, body := s.do(jsonRequest(http.MethodPost, "/api/auth/signup", gin.H{"email": "a@b.co", "password": "secret1", "name": "A"}), false)
	s.Equal(http.StatusCreated, rr.Code)
	s.Equal(authUC.SignUpPendingMessage, body["message"])
}

func (s *HandlerTestSuite) Test_SignOut() {
	s.revoker.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
	s.revoker.EXPECT().Revoke(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	rr, body := s.do(httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil), true)
	s.Equal(http.StatusOK, rr.Code)
	s.Equal(true, body["success"])
}

func (s *HandlerTestSuite) Test_ListMine_AppliesQueryFilter() {
	s.signedIn(true, false)
	s.cache.EXPECT().Get(gomock.Any(), service.PageDashboard, s.ownerID.String()).Return(nil, false, nil)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.interviews.EXPECT().ListByOwner(gomock.Any(), s.ownerID).Return([]*interview.Interview{
		{ID: uuid.New(), Profile: "alex", Company: "Acme", Step: "1", State: interview.StateOngoing,
			InterviewDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Profile: "alex", Company: "Acme", Step: "2", State: interview.StateOffer,
			InterviewDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Profile: "alex", Company: "Globex", Step: "1", State: interview.StateOngoing,
			InterviewDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
	}, nil)

	rr, body := s.do(httptest.NewRequest(http.MethodGet, "/api/interviews?status=Offer", nil), true)

	s.Require().Equal(http.StatusOK, rr.Code)
	data := body["data"].(map[string]any)
	groups := data["groups"].([]any)
	s.Require().Len(groups, 1)
	s.Equal("alex-Acme", groups[0].(map[string]any)["key"])
	s.Equal(true, data["filter_active"])
}

func (s *HandlerTestSuite) Test_ListMine_BadStatus() {
	s.signedIn(true, false)
	rr, _ := s.do(httptest.NewRequest(http.MethodGet, "/api/interviews?status=Maybe", nil), true)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlerTestSuite) Test_CreateInterview_Multipart() {
	s.signedIn(true, false)
	s.interviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, i *interview.Interview) (*interview.Interview, error) { return i, nil })

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"profile": "backend", "company": "Acme", "step": "Screening", "interview_date": "2024-02-01", "note": "",
	} {
		s.Require().NoError(w.WriteField(k, v))
	}
	s.Require().NoError(w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/interviews", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rr, body := s.do(req, true)

	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
	data := body["data"].(map[string]any)
	s.Equal("Ongoing", data["state"])
	s.Nil(data["note"])
	s.Equal(s.ownerID.String(), data["user_id"])
}

func (s *HandlerTestSuite) Test_CreateInterview_Invalid() {
	s.signedIn(true, false)
	form := url.Values{"profile": {"backend"}, "step": {"x"}, "interview_date": {"2024-02-01"}}
	req := httptest.NewRequest(http.MethodPost, "/api/interviews", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr, body := s.do(req, true)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal(interview.ErrCompanyRequired.Error(), body["error"])
}

func (s *HandlerTestSuite) Test_DeleteInterview_StoreErrorMessage() {
	s.signedIn(true, false)
	id := uuid.New()
	s.interviews.EXPECT().FindByID(gomock.Any(), id, s.ownerID).Return(nil, storeNotFound())

	rr, body := s.do(httptest.NewRequest(http.MethodDelete, "/api/interviews/"+id.String(), nil), true)
	s.Equal(http.StatusInternalServerError, rr.Code)
	s.Equal("interview not found", body["error"])
}

func (s *HandlerTestSuite) Test_UpsertStandup_InvalidItems() {
	s.signedIn(true, false)
	rr, body := s.do(jsonRequest(http.MethodPost, "/api/standups", gin.H{"standup_date": "2024-03-04", "items": "{"}), true)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal(standupUC.MsgInvalidItems, body["error"])
}

func (s *HandlerTestSuite) Test_UpsertStandup() {
	s.signedIn(true, false)
	s.standups.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, st *standup.Standup) (*standup.Standup, error) { return st, nil })

	items := `[{"title":"Today","contents":[{"text":"pairing"}]}]`
	rr, body := s.do(jsonRequest(http.MethodPost, "/api/standups", gin.H{"standup_date": "2024-03-04", "items": items}), true)

	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	data := body["data"].(map[string]any)
	s.Len(data["items"], 1)
}

func (s *HandlerTestSuite) Test_Analyze_UpstreamError() {
	s.signedIn(true, false)
	s.llm.EXPECT().GenerateChatResponse(gomock.Any(), gomock.Any()).Return("", context.DeadlineExceeded)

	rr, body := s.do(jsonRequest(http.MethodPost, "/api/interviews/analyze", gin.H{"script": "s", "prompt": "p"}), true)
	s.Equal(http.StatusBadGateway, rr.Code)
	s.Equal(false, body["success"])
}

func (s *HandlerTestSuite) Test_AdminRoutesNeedAdmin() {
	s.signedIn(true, false)
	rr, _ := s.do(httptest.NewRequest(http.MethodGet, "/api/admin/profiles/pending", nil), true)
	s.Equal(http.StatusForbidden, rr.Code)
}

func (s *HandlerTestSuite) Test_AdminVerify() {
	s.signedIn(true, true)
	target := uuid.New()
	s.profiles.EXPECT().SetVerified(gomock.Any(), target, true).Return(&profile.Profile{ID: target, Verified: true}, nil)

	rr, body := s.do(httptest.NewRequest(http.MethodPost, "/api/admin/profiles/"+target.String()+"/verify", nil), true)
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	s.Equal(true, body["data"].(map[string]any)["verified"])
}

func storeNotFound() error {
	return apperror.NewStore(interview.ErrInterviewNotFound)
}
