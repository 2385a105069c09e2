package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/application/services"
	"github.com/mergington/activities/internal/domain/entities"
	"github.com/mergington/activities/internal/infrastructure/config"
	"github.com/mergington/activities/internal/infrastructure/logger"
	"github.com/mergington/activities/internal/infrastructure/storage"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	store, err := storage.New(config.StorageConfig{
		DataFile: filepath.Join(t.TempDir(), "activities.json"),
	})
	require.NoError(t, err)

	repo := repository.NewActivityRepository(store)
	service := services.NewActivityService(repo, logger.NewNop())

	_, err = service.Seed(context.Background())
	require.NoError(t, err)

	handler := NewActivityHandler(service, logger.NewNop())

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	e.GET("/activities", handler.GetActivities)
	e.POST("/activities/:name/signup", handler.Signup)
	e.POST("/activities/:name/unregister", handler.Unregister)

	return e
}

func doRequest(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func getActivities(t *testing.T, e *echo.Echo) map[string]entities.ActivityDetails {
	t.Helper()

	rec := doRequest(e, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rec.Code)

	var activities map[string]entities.ActivityDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activities))
	return activities
}

func TestGetActivitiesStripsNames(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(e, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 9)

	for name, details := range raw {
		assert.NotEmpty(t, name)
		assert.NotContains(t, details, "name")
		assert.Contains(t, details, "description")
		assert.Contains(t, details, "schedule")
		assert.Contains(t, details, "max_participants")
		assert.Contains(t, details, "participants")
	}
}

func TestGetActivitiesMatchesSeedData(t *testing.T) {
	e := newTestRouter(t)

	activities := getActivities(t, e)
	for _, want := range entities.SeedActivities() {
		got, ok := activities[want.Name]
		require.True(t, ok, "missing activity %q", want.Name)
		assert.Equal(t, want.Details(), got)
	}
}

func TestSignup(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(e, http.MethodPost, "/activities/Chess%20Club/signup?email=new@mergington.edu")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Signed up new@mergington.edu for Chess Club", decodeBody(t, rec)["message"])

	activities := getActivities(t, e)
	assert.Contains(t, activities["Chess Club"].Participants, "new@mergington.edu")
}

func TestSignupDuplicate(t *testing.T) {
	e := newTestRouter(t)

	before := getActivities(t, e)["Chess Club"].Participants

	rec := doRequest(e, http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Student is already signed up", decodeBody(t, rec)["message"])

	after := getActivities(t, e)["Chess Club"].Participants
	assert.Equal(t, before, after)
}

func TestSignupUnknownActivity(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(e, http.MethodPost, "/activities/Knitting%20Circle/signup?email=new@mergington.edu")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Activity not found", decodeBody(t, rec)["message"])
}

func TestSignupMissingEmail(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(e, http.MethodPost, "/activities/Chess%20Club/signup")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is required", decodeBody(t, rec)["message"])
}

func TestSignupAppearsExactlyOnce(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(e, http.MethodPost, "/activities/Art%20Club/signup?email=new@mergington.edu")
	require.Equal(t, http.StatusOK, rec.Code)

	occurrences := 0
	for _, p := range getActivities(t, e)["Art Club"].Participants {
		if p == "new@mergington.edu" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)
}

func TestUnregister(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(e, http.MethodPost, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", decodeBody(t, rec)["message"])

	participants := getActivities(t, e)["Chess Club"].Participants
	assert.Equal(t, []string{"daniel@mergington.edu"}, participants)
}

func TestUnregisterNotSignedUp(t *testing.T) {
	e := newTestRouter(t)

	before := getActivities(t, e)["Chess Club"].Participants

	rec := doRequest(e, http.MethodPost, "/activities/Chess%20Club/unregister?email=stranger@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Student is not signed up for this activity", decodeBody(t, rec)["message"])

	after := getActivities(t, e)["Chess Club"].Participants
	assert.Equal(t, before, after)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(e, http.MethodPost, "/activities/Knitting%20Circle/unregister?email=new@mergington.edu")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Activity not found", decodeBody(t, rec)["message"])
}

// failingService exercises the 500 path without a broken store.
type failingService struct{}

func (failingService) List(ctx context.Context) (map[string]entities.ActivityDetails, error) {
	return nil, assert.AnError
}

func (failingService) Signup(ctx context.Context, name, email string) (string, error) {
	return "", assert.AnError
}

func (failingService) Unregister(ctx context.Context, name, email string) (string, error) {
	return "", assert.AnError
}

func (failingService) Seed(ctx context.Context) (int, error) {
	return 0, assert.AnError
}

func TestStorageFailuresReturn500(t *testing.T) {
	handler := NewActivityHandler(failingService{}, logger.NewNop())

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	e.GET("/activities", handler.GetActivities)
	e.POST("/activities/:name/signup", handler.Signup)
	e.POST("/activities/:name/unregister", handler.Unregister)

	rec := doRequest(e, http.MethodGet, "/activities")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = doRequest(e, http.MethodPost, "/activities/Chess%20Club/signup?email=new@mergington.edu")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to sign up student", decodeBody(t, rec)["message"])

	rec = doRequest(e, http.MethodPost, "/activities/Chess%20Club/unregister?email=new@mergington.edu")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to unregister student", decodeBody(t, rec)["message"])
}
