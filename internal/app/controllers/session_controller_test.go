package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/controllers"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/app/repositories"
	"github.com/sorawit/coursereg/internal/app/routes"
	"github.com/sorawit/coursereg/internal/app/services"
	"github.com/sorawit/coursereg/internal/middleware"
	"github.com/sorawit/coursereg/internal/pkg/auth"
	"github.com/sorawit/coursereg/internal/pkg/document"
)

type testMailer struct{}

func (testMailer) SendConfirmation(to string, reg *models.Registration, course *models.Course, doc []byte) error {
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *repositories.Repositories) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterCustomValidators(); err != nil {
		t.Fatal(err)
	}

	repos := repositories.NewRepositories()
	repos.Courses.Load(models.Course{
		CourseID:            "C001",
		CourseName:          "การบริหารจัดการโรงพยาบาล",
		StartDate:           "2090-03-01",
		EndDate:             "2090-03-31",
		RegistrationStart:   "2000-01-01",
		RegistrationEnd:     "2090-02-15",
		MaxParticipants:     50,
		CurrentParticipants: 35,
	})
	repos.Courses.Load(models.Course{
		CourseID:          "C002",
		CourseName:        "ปิดแล้ว",
		StartDate:         "2001-03-01",
		EndDate:           "2001-03-31",
		RegistrationStart: "2000-01-01",
		RegistrationEnd:   "2001-02-15",
		MaxParticipants:   50,
	})
	repos.Faqs.Load(models.Faq{ID: "faq-1", Question: "q", Answer: "a"})
	repos.Contact.Load(models.ContactInfo{Phone: "02-123-4567", Email: "info@example.ac.th", Address: "กรุงเทพฯ"})

	lgr := zerolog.Nop()
	renderer, err := document.NewRenderer(lgr)
	if err != nil {
		t.Fatal(err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "coursereg-test",
	})
	authService, err := services.NewAuthService("admin", "admin123", jwtService, lgr)
	if err != nil {
		t.Fatal(err)
	}

	courseService := services.NewCourseService(repos.Courses, nil, lgr)
	registrationService := services.NewRegistrationService(repos.Registrations, repos.Courses, nil, lgr)
	sessionService := services.NewSessionService(repos.Courses, registrationService, renderer, testMailer{}, nil, time.Minute, lgr)
	faqService := services.NewFaqService(repos.Faqs, lgr)
	annoService := services.NewAnnouncementService(repos.Announcements, lgr)
	contactService := services.NewContactService(repos.Contact, lgr)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(authService),
		controllers.NewCourseController(courseService),
		controllers.NewSessionController(sessionService),
		controllers.NewRegistrationController(registrationService),
		controllers.NewFaqController(faqService),
		controllers.NewAnnouncementController(annoService),
		controllers.NewContactController(contactService),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router, repos
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("bad response %s: %v", w.Body.String(), err)
	}
	return envelope.Data
}

func TestCatalogEndpointDerivesStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/courses", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data []struct {
			CourseID      string `json:"courseId"`
			DerivedStatus string `json:"derivedStatus"`
			CanRegister   bool   `json:"canRegister"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatal(err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("courses = %d", len(envelope.Data))
	}
	if envelope.Data[0].DerivedStatus != "OPEN_FOR_REGISTRATION" || !envelope.Data[0].CanRegister {
		t.Errorf("C001 state %+v", envelope.Data[0])
	}
	if envelope.Data[1].DerivedStatus != "COURSE_ENDED" || envelope.Data[1].CanRegister {
		t.Errorf("C002 state %+v", envelope.Data[1])
	}
}

func TestRegistrationSessionOverHTTP(t *testing.T) {
	router, repos := newTestRouter(t)

	// Open a session for the open course.
	w := doJSON(t, router, http.MethodPost, "/api/v1/courses/C001/registration-sessions", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("open status %d: %s", w.Code, w.Body.String())
	}
	token, _ := dataField(t, w)["sessionToken"].(string)
	if token == "" {
		t.Fatal("no session token")
	}
	base := "/api/v1/registration-sessions/" + token

	// Advancing with an empty draft is refused with the Thai message.
	w = doJSON(t, router, http.MethodPost, base+"/next", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty next status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "กรุณากรอกข้อมูลส่วนตัวให้ครบถ้วน") {
		t.Errorf("missing step message in %s", w.Body.String())
	}

	// Fill step 1 and 2 through draft patches.
	w = doJSON(t, router, http.MethodPatch, base+"/draft", map[string]string{
		"firstName": "สมหญิง", "lastName": "ใจดี", "idCard": "1234567890123",
		"birthDate": "1995-08-15", "studentId": "60123456789",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("patch status %d: %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, router, http.MethodPost, base+"/next", nil); w.Code != http.StatusOK {
		t.Fatalf("next 1 status %d: %s", w.Code, w.Body.String())
	}
	doJSON(t, router, http.MethodPatch, base+"/draft", map[string]string{
		"phone": "0819998888", "email": "somying@example.com",
		"organization": "รพ.ตัวอย่าง", "position": "พยาบาล", "address": "99/9",
	})
	if w := doJSON(t, router, http.MethodPost, base+"/next", nil); w.Code != http.StatusOK {
		t.Fatalf("next 2 status %d: %s", w.Code, w.Body.String())
	}

	// Upload one document via multipart.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("files", "idcard.pdf")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("pdf-bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, base+"/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("upload status %d: %s", rec.Code, rec.Body.String())
	}

	// Submit and verify the committed registration.
	w = doJSON(t, router, http.MethodPost, base+"/submit", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status %d: %s", w.Code, w.Body.String())
	}
	reg, _ := dataField(t, w)["registration"].(map[string]any)
	if id, _ := reg["registrationId"].(string); id == "" {
		t.Fatalf("registration %+v", reg)
	}
	if status, _ := reg["status"].(string); status != "confirmed" {
		t.Fatalf("registration %+v", reg)
	}

	course, _ := repos.Courses.GetByID(context.Background(), "C001")
	if course.CurrentParticipants != 36 {
		t.Errorf("participants = %d, want 36", course.CurrentParticipants)
	}

	// Close and verify the token is gone.
	if w := doJSON(t, router, http.MethodDelete, base, nil); w.Code != http.StatusOK {
		t.Fatalf("close status %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, base, nil); w.Code != http.StatusNotFound {
		t.Errorf("state after close status %d", w.Code)
	}
}

func TestOpenSessionRejectedForEndedCourse(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/courses/C002/registration-sessions", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/faqs", map[string]string{"question": "q", "answer": "a"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status %d", w.Code)
	}

	// Login with the built-in credentials.
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "admin", "password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", w.Code, w.Body.String())
	}
	tokenData, _ := dataField(t, w)["token"].(map[string]any)
	accessToken, _ := tokenData["accessToken"].(string)
	if accessToken == "" {
		t.Fatal("no access token")
	}

	raw, _ := json.Marshal(map[string]string{"question": "q2", "answer": "a2"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/faqs", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("authenticated create status %d: %s", rec.Code, rec.Body.String())
	}

	// Wrong password is refused.
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "admin", "password": "nope",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad login status %d", w.Code)
	}
}
