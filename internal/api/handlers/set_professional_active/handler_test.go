package set_professional_active

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rosterService "github.com/avora-app/agenda-service/internal/service/roster"
	"github.com/avora-app/agenda-service/internal/service/roster/models"
	"github.com/avora-app/agenda-service/pkg/ptr"
)

type fakeRosterService struct {
	err error
}

func (f *fakeRosterService) SetActive(_ context.Context, id int64, active bool) (*models.ProfessionalResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ProfessionalResponse{ID: id, Active: active}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc RosterService, id string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	router := mux.NewRouter()
	router.HandleFunc("/professionals/{id}/active", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/professionals/"+id+"/active", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_TogglesProfessional(t *testing.T) {
	rec := doRequest(t, &fakeRosterService{}, "42", &SetActiveRequest{Active: ptr.Ptr(false)})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SetActiveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.False(t, resp.Active)
}

func TestHandle_MissingActiveField(t *testing.T) {
	rec := doRequest(t, &fakeRosterService{}, "42", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "active")
}

func TestHandle_InvalidID(t *testing.T) {
	rec := doRequest(t, &fakeRosterService{}, "abc", &SetActiveRequest{Active: ptr.Ptr(true)})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &fakeRosterService{err: rosterService.ErrProfessionalNotFound}
	rec := doRequest(t, svc, "42", &SetActiveRequest{Active: ptr.Ptr(true)})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
