package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

// stubUserRepo satisfies repositories.UserRepository for the auth middleware;
// only user lookup matters here.
type stubUserRepo struct {
	users map[string]*models.User
}

func newStubUserRepo(users ...*models.User) *stubUserRepo {
	r := &stubUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) Create(user *models.User) error  { return nil }
func (r *stubUserRepo) Update(user *models.User) error  { return nil }
func (r *stubUserRepo) UpdateActive(string, bool) error { return nil }
func (r *stubUserRepo) FindWithFilter(repositories.UserFilter) ([]models.User, int64, error) {
	return nil, 0, nil
}
func (r *stubUserRepo) ReplaceExperience(string, []models.ExperienceEntry) error { return nil }
func (r *stubUserRepo) ReplaceEducation(string, []models.EducationEntry) error   { return nil }
func (r *stubUserRepo) IsJobSaved(string, string) (bool, error)                  { return false, nil }
func (r *stubUserRepo) SaveJob(string, string) error                             { return nil }
func (r *stubUserRepo) UnsaveJob(string, string) error                           { return nil }
func (r *stubUserRepo) FindSavedJobIDs(string) ([]string, error)                 { return nil, nil }
func (r *stubUserRepo) IsCompanyFollowed(string, string) (bool, error)           { return false, nil }
func (r *stubUserRepo) FollowCompany(string, string) error                       { return nil }
func (r *stubUserRepo) UnfollowCompany(string, string) error                     { return nil }
func (r *stubUserRepo) FindFollowedCompanyIDs(string) ([]string, error)          { return nil, nil }
func (r *stubUserRepo) FindCompanies(repositories.CompanyFilter) ([]models.User, int64, error) {
	return nil, 0, nil
}

func newTestRouter(registrars ...routes.Registrar) *gin.Engine {
	router := gin.New()
	routes.Setup(router, registrars...)
	return router
}

func testBase() BaseHandler {
	return NewBaseHandler(validator.New())
}

func bearerFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doRequest(t *testing.T, router *gin.Engine, method, path, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}
