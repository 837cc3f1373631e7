package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeonardoAhh/climalaboral/internal/api/middleware"
	"github.com/LeonardoAhh/climalaboral/internal/dto"
	"github.com/LeonardoAhh/climalaboral/internal/service"
	"github.com/LeonardoAhh/climalaboral/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
	logoutJTI     string
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ *dto.RefreshRequest) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, jti string, _ time.Time) error {
	m.logoutJTI = jti
	return m.logoutErr
}
func (m *mockAuthService) EnsureBootstrapAdmin(_ context.Context) error { return nil }

// ── Mock VerifierService ──

type mockVerifierService struct {
	verifyResult *dto.VerifyResponse
	verifyErr    error
	lookupResult *dto.LookupNameResponse
	lookupErr    error
}

func (m *mockVerifierService) Verify(_ context.Context, _ *dto.VerifyRequest) (*dto.VerifyResponse, error) {
	return m.verifyResult, m.verifyErr
}
func (m *mockVerifierService) LookupName(_ context.Context, _ string) (*dto.LookupNameResponse, error) {
	return m.lookupResult, m.lookupErr
}

// ── Mock SessionService ──

type mockSessionService struct {
	stateResult   *dto.SurveyStateResponse
	stateErr      error
	answerResult  *dto.SurveyStateResponse
	answerErr     error
	advanceResult *dto.AdvanceResponse
	advanceErr    error
	retreatResult *dto.AdvanceResponse
	retreatErr    error
	submitResult  *dto.SubmitResponse
	submitErr     error
}

func (m *mockSessionService) GetState(_ context.Context, _ string) (*dto.SurveyStateResponse, error) {
	return m.stateResult, m.stateErr
}
func (m *mockSessionService) Answer(_ context.Context, _ string, _ *dto.AnswerRequest) (*dto.SurveyStateResponse, error) {
	return m.answerResult, m.answerErr
}
func (m *mockSessionService) Advance(_ context.Context, _ string) (*dto.AdvanceResponse, error) {
	return m.advanceResult, m.advanceErr
}
func (m *mockSessionService) Retreat(_ context.Context, _ string) (*dto.AdvanceResponse, error) {
	return m.retreatResult, m.retreatErr
}
func (m *mockSessionService) Submit(_ context.Context, _ string) (*dto.SubmitResponse, error) {
	return m.submitResult, m.submitErr
}

// ── Mock EmployeeService ──

type mockEmployeeService struct {
	listResult   []dto.EmployeeResponse
	listTotal    int64
	listErr      error
	getResult    *dto.EmployeeResponse
	getErr       error
	createResult *dto.EmployeeResponse
	createErr    error
	updateResult *dto.EmployeeResponse
	updateErr    error
	deleteErr    error
}

func (m *mockEmployeeService) List(_ context.Context, _ *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockEmployeeService) Get(_ context.Context, _ string) (*dto.EmployeeResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockEmployeeService) Create(_ context.Context, _ string, _ *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockEmployeeService) Update(_ context.Context, _, _ string, _ *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockEmployeeService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

// ── Mock ImportService ──

type mockImportService struct {
	runResult    *dto.ImportRunLog
	runErr       error
	parseResult  []dto.RosterRow
	parseErr     error
	failedResult []dto.FailedImportResponse
	failedErr    error
	resolveErr   error
	discardErr   error
}

func (m *mockImportService) Run(_ context.Context, _ []dto.RosterRow) (*dto.ImportRunLog, error) {
	return m.runResult, m.runErr
}
func (m *mockImportService) ParseRosterFile(_ io.Reader) ([]dto.RosterRow, error) {
	return m.parseResult, m.parseErr
}
func (m *mockImportService) ListFailed(_ context.Context, _ bool) ([]dto.FailedImportResponse, error) {
	return m.failedResult, m.failedErr
}
func (m *mockImportService) ResolveFailed(_ context.Context, _ string, _ *dto.RosterRow) error {
	return m.resolveErr
}
func (m *mockImportService) DiscardFailed(_ context.Context, _ string) error {
	return m.discardErr
}

// ── Mock ExportService / ResponseService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportReport(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

type mockResponseService struct {
	listResult []dto.ResponseListItem
	listErr    error
}

func (m *mockResponseService) List(_ context.Context) ([]dto.ResponseListItem, error) {
	return m.listResult, m.listErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

// withAdmin 模拟 AdminAuth 中间件注入的上下文
func withAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxAdminID, "admin-001")
		c.Set(middleware.CtxTokenJTI, "test-jti")
		c.Set(middleware.CtxTokenExp, time.Now().Add(15*time.Minute))
		c.Next()
	}
}

// withEmployee 模拟 SurveyAuth 中间件注入的上下文
func withEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxEmployeeKey, "emp_1001")
		c.Next()
	}
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func doRequest(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	r := gin.New()
	r.POST("/auth/login", h.Login)
	w := doRequest(r, "POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "admin@climalaboral.local",
		Password: "contrasena-segura",
	}))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.POST("/auth/login", h.Login)
	w := doRequest(r, "POST", "/auth/login", bytes.NewReader([]byte("invalid json")))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	r := gin.New()
	r.POST("/auth/login", h.Login)
	w := doRequest(r, "POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "admin@climalaboral.local",
		Password: "contrasena-mala",
	}))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_RefreshToken_Invalid(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{refreshErr: service.ErrRefreshInvalid})

	r := gin.New()
	r.POST("/auth/refresh", h.RefreshToken)
	w := doRequest(r, "POST", "/auth/refresh", jsonBody(dto.RefreshRequest{
		RefreshToken: "token-caducado",
	}))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock)

	r := gin.New()
	r.POST("/auth/logout", withAdmin(), h.Logout)
	w := doRequest(r, "POST", "/auth/logout", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.logoutJTI != "test-jti" {
		t.Errorf("expected jti test-jti passed to service, got %s", mock.logoutJTI)
	}
}

// ═══════════════════════════════════════════════════════════
// VerifyHandler Tests
// ═══════════════════════════════════════════════════════════

func TestVerifyHandler_Verify_Success(t *testing.T) {
	h := NewVerifyHandler(&mockVerifierService{
		verifyResult: &dto.VerifyResponse{
			Status:      "pending",
			SurveyToken: "test-survey-token",
			ExpiresIn:   14400,
		},
	})

	r := gin.New()
	r.POST("/verify", h.Verify)
	w := doRequest(r, "POST", "/verify", jsonBody(dto.VerifyRequest{
		EmployeeID: "1001",
		Name:       "MARÍA HERNÁNDEZ",
		CURP:       "HELM900101MDFRRR01",
	}))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestVerifyHandler_Verify_CURPMismatch(t *testing.T) {
	h := NewVerifyHandler(&mockVerifierService{verifyErr: service.ErrCURPMismatch})

	r := gin.New()
	r.POST("/verify", h.Verify)
	w := doRequest(r, "POST", "/verify", jsonBody(dto.VerifyRequest{
		EmployeeID: "1001",
		Name:       "MARÍA HERNÁNDEZ",
		CURP:       "XXXX900101MDFRRR99",
	}))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 20002 {
		t.Errorf("expected error code 20002, got %d", resp.Code)
	}
}

func TestVerifyHandler_Verify_ShortCURPRejectedByBinding(t *testing.T) {
	h := NewVerifyHandler(&mockVerifierService{})

	// len=18 校验在绑定层拦截，不触达 service
	r := gin.New()
	r.POST("/verify", h.Verify)
	w := doRequest(r, "POST", "/verify", jsonBody(dto.VerifyRequest{
		EmployeeID: "1001",
		Name:       "MARÍA HERNÁNDEZ",
		CURP:       "CORTA",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10001 {
		t.Errorf("expected error code 10001, got %d", resp.Code)
	}
}

func TestVerifyHandler_LookupName_NotFound(t *testing.T) {
	h := NewVerifyHandler(&mockVerifierService{lookupErr: service.ErrEmployeeNotFound})

	r := gin.New()
	r.GET("/verify/name/:employee_id", h.LookupName)
	w := doRequest(r, "GET", "/verify/name/9999", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 20001 {
		t.Errorf("expected error code 20001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// SurveyHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSurveyHandler_GetState_Success(t *testing.T) {
	h := NewSurveyHandler(&mockSessionService{
		stateResult: &dto.SurveyStateResponse{
			Status:         "in_progress",
			TotalQuestions: 30,
			TotalAnswered:  12,
		},
	})

	r := gin.New()
	r.GET("/survey", withEmployee(), h.GetState)
	w := doRequest(r, "GET", "/survey", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestSurveyHandler_GetState_Unauthenticated(t *testing.T) {
	h := NewSurveyHandler(&mockSessionService{})

	// 缺少 SurveyAuth 注入的 employee_key
	r := gin.New()
	r.GET("/survey", h.GetState)
	w := doRequest(r, "GET", "/survey", nil)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10002 {
		t.Errorf("expected error code 10002, got %d", resp.Code)
	}
}

func TestSurveyHandler_Answer_InvalidValue(t *testing.T) {
	h := NewSurveyHandler(&mockSessionService{answerErr: service.ErrInvalidAnswer})

	r := gin.New()
	r.PUT("/survey/answers", withEmployee(), h.Answer)
	w := doRequest(r, "PUT", "/survey/answers", jsonBody(dto.AnswerRequest{
		QuestionID: "q1",
		Value:      6,
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 30001 {
		t.Errorf("expected error code 30001, got %d", resp.Code)
	}
}

func TestSurveyHandler_Advance_SectionIncomplete(t *testing.T) {
	h := NewSurveyHandler(&mockSessionService{advanceErr: service.ErrSectionIncomplete})

	r := gin.New()
	r.POST("/survey/advance", withEmployee(), h.Advance)
	w := doRequest(r, "POST", "/survey/advance", nil)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 30003 {
		t.Errorf("expected error code 30003, got %d", resp.Code)
	}
}

func TestSurveyHandler_Submit_Success(t *testing.T) {
	h := NewSurveyHandler(&mockSessionService{
		submitResult: &dto.SubmitResponse{
			CategoryScores: map[string]float64{"ambiente": 4.5},
			OverallScore:   4.5,
		},
	})

	r := gin.New()
	r.POST("/survey/submit", withEmployee(), h.Submit)
	w := doRequest(r, "POST", "/survey/submit", nil)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestSurveyHandler_Submit_AlreadySubmitted(t *testing.T) {
	h := NewSurveyHandler(&mockSessionService{submitErr: service.ErrAlreadySubmitted})

	r := gin.New()
	r.POST("/survey/submit", withEmployee(), h.Submit)
	w := doRequest(r, "POST", "/survey/submit", nil)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 30005 {
		t.Errorf("expected error code 30005, got %d", resp.Code)
	}
}

func TestSurveyHandler_Submit_NoQuestions(t *testing.T) {
	h := NewSurveyHandler(&mockSessionService{submitErr: service.ErrNoQuestionsDefined})

	r := gin.New()
	r.POST("/survey/submit", withEmployee(), h.Submit)
	w := doRequest(r, "POST", "/survey/submit", nil)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 30006 {
		t.Errorf("expected error code 30006, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// EmployeeHandler Tests
// ═══════════════════════════════════════════════════════════

func TestEmployeeHandler_Create_Success(t *testing.T) {
	h := NewEmployeeHandler(&mockEmployeeService{
		createResult: &dto.EmployeeResponse{
			EmployeeID: "1001",
			Name:       "MARÍA HERNÁNDEZ",
		},
	})

	r := gin.New()
	r.POST("/admin/employees", withAdmin(), h.Create)
	w := doRequest(r, "POST", "/admin/employees", jsonBody(dto.CreateEmployeeRequest{
		EmployeeID: "1001",
		Name:       "MARÍA HERNÁNDEZ",
		CURP:       "HELM900101MDFRRR01",
	}))

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestEmployeeHandler_Create_Duplicate(t *testing.T) {
	h := NewEmployeeHandler(&mockEmployeeService{createErr: service.ErrEmployeeExists})

	r := gin.New()
	r.POST("/admin/employees", withAdmin(), h.Create)
	w := doRequest(r, "POST", "/admin/employees", jsonBody(dto.CreateEmployeeRequest{
		EmployeeID: "1001",
		Name:       "MARÍA HERNÁNDEZ",
		CURP:       "HELM900101MDFRRR01",
	}))

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 40001 {
		t.Errorf("expected error code 40001, got %d", resp.Code)
	}
}

func TestEmployeeHandler_Get_NotFound(t *testing.T) {
	h := NewEmployeeHandler(&mockEmployeeService{getErr: service.ErrEmployeeNotFound})

	r := gin.New()
	r.GET("/admin/employees/:employee_id", withAdmin(), h.Get)
	w := doRequest(r, "GET", "/admin/employees/9999", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 40003 {
		t.Errorf("expected error code 40003, got %d", resp.Code)
	}
}

func TestEmployeeHandler_Delete_CompletedBlocked(t *testing.T) {
	h := NewEmployeeHandler(&mockEmployeeService{deleteErr: service.ErrEmployeeCompleted})

	r := gin.New()
	r.DELETE("/admin/employees/:employee_id", withAdmin(), h.Delete)
	w := doRequest(r, "DELETE", "/admin/employees/1001", nil)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 40004 {
		t.Errorf("expected error code 40004, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// QuestionHandler Tests
// ═══════════════════════════════════════════════════════════

func TestQuestionHandler_Replace_Duplicate(t *testing.T) {
	h := NewQuestionHandler(&mockQuestionService{replaceErr: service.ErrDuplicateQuestion})

	r := gin.New()
	r.PUT("/admin/questions", withAdmin(), h.Replace)
	w := doRequest(r, "PUT", "/admin/questions", jsonBody(dto.ReplaceQuestionsRequest{
		Questions: []dto.QuestionInput{
			{QuestionID: "q1", Category: "clima", CategoryName: "Clima", Question: "Pregunta"},
			{QuestionID: "q1", Category: "clima", CategoryName: "Clima", Question: "Repetida"},
		},
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 41002 {
		t.Errorf("expected error code 41002, got %d", resp.Code)
	}
}

type mockQuestionService struct {
	listResult    []dto.QuestionResponse
	listErr       error
	replaceResult []dto.QuestionResponse
	replaceErr    error
}

func (m *mockQuestionService) List(_ context.Context) ([]dto.QuestionResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockQuestionService) Replace(_ context.Context, _ *dto.ReplaceQuestionsRequest, _ string) ([]dto.QuestionResponse, error) {
	return m.replaceResult, m.replaceErr
}
func (m *mockQuestionService) EnsureSeeded(_ context.Context) error { return nil }

// ═══════════════════════════════════════════════════════════
// ImportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestImportHandler_Run_Success(t *testing.T) {
	h := NewImportHandler(&mockImportService{
		runResult: &dto.ImportRunLog{Total: 2, Exitosos: 2},
	})

	r := gin.New()
	r.POST("/admin/import", withAdmin(), h.Run)
	w := doRequest(r, "POST", "/admin/import", jsonBody(dto.ImportRequest{
		Rows: []dto.RosterRow{
			{ID: "1001", Nombre: "MARÍA HERNÁNDEZ", CURP: "HELM900101MDFRRR01"},
			{ID: "1002", Nombre: "JUAN PÉREZ", CURP: "PEPJ850215HDFRRN02"},
		},
	}))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestImportHandler_Run_TooManyRows(t *testing.T) {
	h := NewImportHandler(&mockImportService{runErr: service.ErrTooManyRows})

	r := gin.New()
	r.POST("/admin/import", withAdmin(), h.Run)
	w := doRequest(r, "POST", "/admin/import", jsonBody(dto.ImportRequest{
		Rows: []dto.RosterRow{{ID: "1001", Nombre: "MARÍA", CURP: "HELM900101MDFRRR01"}},
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 42002 {
		t.Errorf("expected error code 42002, got %d", resp.Code)
	}
}

func TestImportHandler_Run_Canceled(t *testing.T) {
	h := NewImportHandler(&mockImportService{runErr: context.Canceled})

	r := gin.New()
	r.POST("/admin/import", withAdmin(), h.Run)
	w := doRequest(r, "POST", "/admin/import", jsonBody(dto.ImportRequest{
		Rows: []dto.RosterRow{{ID: "1001", Nombre: "MARÍA", CURP: "HELM900101MDFRRR01"}},
	}))

	if w.Code != http.StatusRequestTimeout {
		t.Errorf("expected 408, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 42006 {
		t.Errorf("expected error code 42006, got %d", resp.Code)
	}
}

func TestImportHandler_ResolveFailed_NotFound(t *testing.T) {
	h := NewImportHandler(&mockImportService{resolveErr: service.ErrFailedImportNotFound})

	r := gin.New()
	r.POST("/admin/import/failed/:id/resolve", withAdmin(), h.ResolveFailed)
	w := doRequest(r, "POST", "/admin/import/failed/fail-001/resolve", jsonBody(dto.ResolveFailedRequest{
		Row: dto.RosterRow{ID: "1001", Nombre: "MARÍA", CURP: "HELM900101MDFRRR01"},
	}))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 42004 {
		t.Errorf("expected error code 42004, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportReport_Success(t *testing.T) {
	h := NewExportHandler(&mockExportService{
		buf:      bytes.NewBufferString("xlsx-bytes"),
		filename: "clima_laboral_2026-03-01.xlsx",
	}, &mockResponseService{})

	r := gin.New()
	r.GET("/admin/responses/export", withAdmin(), h.ExportReport)
	w := doRequest(r, "GET", "/admin/responses/export", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	disp := w.Header().Get("Content-Disposition")
	if !strings.Contains(disp, "clima_laboral_2026-03-01.xlsx") {
		t.Errorf("expected filename in Content-Disposition, got %s", disp)
	}
	if w.Body.String() != "xlsx-bytes" {
		t.Error("expected raw buffer bytes in body")
	}
}

func TestExportHandler_ExportReport_NoResponses(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportNoResponses}, &mockResponseService{})

	r := gin.New()
	r.GET("/admin/responses/export", withAdmin(), h.ExportReport)
	w := doRequest(r, "GET", "/admin/responses/export", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 43001 {
		t.Errorf("expected error code 43001, got %d", resp.Code)
	}
}

func TestExportHandler_ListResponses_Success(t *testing.T) {
	h := NewExportHandler(&mockExportService{}, &mockResponseService{
		listResult: []dto.ResponseListItem{
			{EmployeeID: "1001", EmployeeName: "MARÍA HERNÁNDEZ", OverallScore: 4.5},
		},
	})

	r := gin.New()
	r.GET("/admin/responses", withAdmin(), h.ListResponses)
	w := doRequest(r, "GET", "/admin/responses", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}
