package incidents_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/golang/mock/gomock"

	"guardiant/internal/api/handlers/http/incidents"
	mock_incidents "guardiant/internal/api/handlers/http/incidents/mocks"
	"guardiant/internal/domain"
	"guardiant/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newHandler(t *testing.T) (*incidents.Handler, *mock_incidents.MockIncidents, *mock_incidents.MockStatsGetter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	incSvc := mock_incidents.NewMockIncidents(ctrl)
	statsSvc := mock_incidents.NewMockStatsGetter(ctrl)
	return incidents.NewHandler(newTestLogger(), incSvc, statsSvc), incSvc, statsSvc
}

func TestIncidentDispatch_Create_OK(t *testing.T) {
	t.Parallel()

	h, incSvc, _ := newHandler(t)

	created := &domain.Incident{
		IncidentID: "inc-1",
		UserID:     "user-1",
		Timestamp:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:     domain.IncidentRecording,
	}

	incSvc.EXPECT().
		Create(gomock.Any(), domain.CreateIncidentRequest{UserID: "user-1", Notes: "traffic stop"}).
		Return(created, nil).
		Times(1)

	body := `{"action":"create","userId":"user-1","notes":"traffic stop"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.IncidentDispatch(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[struct {
		Success bool                          `json:"success"`
		Data    domain.CreateIncidentResponse `json:"data"`
	}](t, rr)

	if !got.Success {
		t.Fatalf("expected success=true, body=%s", rr.Body.String())
	}
	if got.Data.IncidentID != "inc-1" {
		t.Fatalf("expected incidentId=inc-1 got=%s", got.Data.IncidentID)
	}
	if got.Data.Timestamp != "2024-03-01T12:00:00Z" {
		t.Fatalf("expected ISO timestamp, got=%s", got.Data.Timestamp)
	}
	if got.Data.Status != domain.IncidentRecording {
		t.Fatalf("expected status=recording got=%s", got.Data.Status)
	}
}

func TestIncidentDispatch_Create_MissingUserID_400(t *testing.T) {
	t.Parallel()

	h, incSvc, _ := newHandler(t)

	incSvc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrMissingField).
		Times(1)

	body := `{"action":"create"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.IncidentDispatch(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestIncidentDispatch_UnknownAction_400(t *testing.T) {
	t.Parallel()

	h, incSvc, _ := newHandler(t)

	incSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	incSvc.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	incSvc.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
	incSvc.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	body := `{"action":"destroy"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.IncidentDispatch(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}

	got := decodeJSON[map[string]string](t, rr)
	if got["error"] != "Unknown action" {
		t.Fatalf("expected Unknown action error, got=%s", got["error"])
	}
}

func TestIncidentDispatch_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	h, _, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.IncidentDispatch(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestIncidentDispatch_Get_NotFound_404(t *testing.T) {
	t.Parallel()

	h, incSvc, _ := newHandler(t)

	incSvc.EXPECT().
		Get(gomock.Any(), "nonexistent-id").
		Return(nil, e.ErrNotFound).
		Times(1)

	body := `{"action":"get","incidentId":"nonexistent-id"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.IncidentDispatch(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestIncidentDispatch_Update_OK(t *testing.T) {
	t.Parallel()

	h, incSvc, _ := newHandler(t)

	updated := &domain.Incident{
		IncidentID: "inc-2",
		UserID:     "user-1",
		Timestamp:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:     domain.IncidentCompleted,
	}

	incSvc.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(updated, nil).
		Times(1)

	body := `{"action":"update","incidentId":"inc-2","status":"completed"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.IncidentDispatch(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[struct {
		Success bool                          `json:"success"`
		Data    domain.UpdateIncidentResponse `json:"data"`
	}](t, rr)

	if got.Data.Status != domain.IncidentCompleted {
		t.Fatalf("expected status=completed got=%s", got.Data.Status)
	}
	if _, err := time.Parse(time.RFC3339, got.Data.UpdatedAt); err != nil {
		t.Fatalf("updatedAt not RFC3339: %s", got.Data.UpdatedAt)
	}
}

func TestIncidentDispatch_Update_MissingID_400(t *testing.T) {
	t.Parallel()

	h, incSvc, _ := newHandler(t)

	incSvc.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	body := `{"action":"update","status":"completed"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.IncidentDispatch(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestIncidentDispatch_List_OK(t *testing.T) {
	t.Parallel()

	h, incSvc, _ := newHandler(t)

	incSvc.EXPECT().
		List(gomock.Any(), domain.ListIncidentsRequest{UserID: "user-1", Limit: 5}).
		Return(&domain.ListIncidentsResponse{
			Incidents: []*domain.Incident{{IncidentID: "inc-1"}},
			Total:     7,
			Limit:     5,
			Offset:    0,
		}, nil).
		Times(1)

	body := `{"action":"list","userId":"user-1","limit":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.IncidentDispatch(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[struct {
		Success bool                         `json:"success"`
		Data    domain.ListIncidentsResponse `json:"data"`
	}](t, rr)

	if got.Data.Total != 7 || len(got.Data.Incidents) != 1 {
		t.Fatalf("unexpected list response: %+v", got.Data)
	}
}

func TestIncidentQuery_ByID(t *testing.T) {
	t.Parallel()

	h, incSvc, _ := newHandler(t)

	incSvc.EXPECT().
		Get(gomock.Any(), "inc-9").
		Return(&domain.Incident{IncidentID: "inc-9", UserID: "user-2"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/?id=inc-9", nil)
	rr := httptest.NewRecorder()

	h.IncidentQuery(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[struct {
		Success bool            `json:"success"`
		Data    domain.Incident `json:"data"`
	}](t, rr)

	if got.Data.IncidentID != "inc-9" {
		t.Fatalf("expected incidentId=inc-9 got=%s", got.Data.IncidentID)
	}
}

func TestIncidentQuery_ListAlias(t *testing.T) {
	t.Parallel()

	h, incSvc, _ := newHandler(t)

	incSvc.EXPECT().
		List(gomock.Any(), domain.ListIncidentsRequest{UserID: "user-3"}).
		Return(&domain.ListIncidentsResponse{Incidents: []*domain.Incident{}, Total: 0, Limit: 10}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/?userId=user-3", nil)
	rr := httptest.NewRecorder()

	h.IncidentQuery(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestUsageStats_OK(t *testing.T) {
	t.Parallel()

	h, _, statsSvc := newHandler(t)

	statsSvc.EXPECT().
		GetStats(gomock.Any()).
		Return(&domain.UsageStats{TotalIncidents: 4, SharedIncidents: 1, StatesSupported: 2, ScriptsAvailable: 4}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rr := httptest.NewRecorder()

	h.UsageStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[struct {
		Success bool              `json:"success"`
		Data    domain.UsageStats `json:"data"`
	}](t, rr)

	if got.Data.TotalIncidents != 4 || got.Data.SharedIncidents != 1 {
		t.Fatalf("unexpected stats: %+v", got.Data)
	}
}

func TestUsageStats_Error_500(t *testing.T) {
	t.Parallel()

	h, _, statsSvc := newHandler(t)

	statsSvc.EXPECT().
		GetStats(gomock.Any()).
		Return(nil, errors.New("boom")).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rr := httptest.NewRecorder()

	h.UsageStats(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, rr.Code)
	}
}
