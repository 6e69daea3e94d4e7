package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/internal/usecase"
	"rampcontrol-service/pkg/logger"
	"rampcontrol-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMetrics = metrics.NewMetrics("api_test")

type stubReportRepo struct {
	latest      *entity.ShiftReport
	inRange     []*entity.ShiftReport
	created     []*entity.ShiftReport
	createErr   error
	latestCalls int
}

func (s *stubReportRepo) FindLatestByDateShift(ctx context.Context, date string, shift entity.Shift) (*entity.ShiftReport, error) {
	s.latestCalls++
	return s.latest, nil
}

func (s *stubReportRepo) FindByDateRange(ctx context.Context, start, end string, shift entity.Shift) ([]*entity.ShiftReport, error) {
	return s.inRange, nil
}

func (s *stubReportRepo) Create(ctx context.Context, report *entity.ShiftReport) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, report)
	return nil
}

type stubEquipmentRepo struct {
	fleet []*entity.Equipment
}

func (s *stubEquipmentRepo) List(ctx context.Context) ([]*entity.Equipment, error) {
	return s.fleet, nil
}

func (s *stubEquipmentRepo) UpdateStatusByPrefix(ctx context.Context, prefix, status string) (int64, error) {
	return 1, nil
}

type stubLeaderRepo struct{}

func (s *stubLeaderRepo) List(ctx context.Context) ([]*entity.Leader, error) {
	return []*entity.Leader{{ID: 1, Name: "Carlos"}, {ID: 2, Name: "Ana"}}, nil
}

type stubArchiveRepo struct {
	docs []*entity.ReportArchive
}

func (s *stubArchiveRepo) Save(ctx context.Context, archive *entity.ReportArchive) error {
	s.docs = append(s.docs, archive)
	return nil
}

func (s *stubArchiveRepo) FindByReportID(ctx context.Context, reportID string) (*entity.ReportArchive, error) {
	for _, d := range s.docs {
		if d.ReportID == reportID {
			return d, nil
		}
	}
	return nil, nil
}

func (s *stubArchiveRepo) FindRecent(ctx context.Context, limit int) ([]*entity.ReportArchive, error) {
	if len(s.docs) > limit {
		return s.docs[:limit], nil
	}
	return s.docs, nil
}

func newTestRouter(reports *stubReportRepo, equipment *stubEquipmentRepo, archive *stubArchiveRepo) *gin.Engine {
	log := logger.NewNop()
	aggregator := usecase.NewPeriodAggregator(log)
	reconciler := usecase.NewMaintenanceReconciler(log)
	analytics := usecase.NewAnalyticsService(reports, equipment, aggregator, reconciler, testMetrics, log)
	dashboard := usecase.NewDashboardService(reports, equipment, log)
	submitter := usecase.NewReportSubmitter(reports, equipment, archive, nil, testMetrics, log)

	handler := NewHandler(dashboard, analytics, submitter, &stubLeaderRepo{}, archive, log)
	return NewRouter(handler, []string{"http://localhost:5173"})
}

func fixtureRepo() *stubReportRepo {
	report := &entity.ShiftReport{
		ID:     "r-1",
		Date:   "2024-01-15",
		Shift:  entity.ShiftMorning,
		Leader: "Carlos",
		Flights: []entity.Flight{
			{Airline: "GOL", Number: "1001", LandingTime: "08:00", TowTime: "09:30"},
			{Airline: "AZUL", Number: "2002", LandingTime: "10:00"},
		},
	}
	return &stubReportRepo{latest: report, inRange: []*entity.ShiftReport{report}}
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(fixtureRepo(), &stubEquipmentRepo{}, &stubArchiveRepo{})
	w := doRequest(router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestGetDashboard(t *testing.T) {
	router := newTestRouter(fixtureRepo(), &stubEquipmentRepo{
		fleet: []*entity.Equipment{{Prefix: "TB-07", Status: entity.StatusOperational}},
	}, &stubArchiveRepo{})

	w := doRequest(router, http.MethodGet, "/api/v1/dashboard?date=2024-01-15&shift=manha", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Report      *entity.ShiftReport `json:"report"`
		Turnarounds []string            `json:"turnarounds"`
		Fleet       entity.FleetSummary `json:"fleet"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.NotNil(t, body.Report)
	assert.Equal(t, "r-1", body.Report.ID)
	assert.Equal(t, []string{"1h 30m", "0min"}, body.Turnarounds)
	assert.Equal(t, 1, body.Fleet.Operational)
}

func TestGetAnalytics(t *testing.T) {
	router := newTestRouter(fixtureRepo(), &stubEquipmentRepo{}, &stubArchiveRepo{})

	w := doRequest(router, http.MethodGet, "/api/v1/analytics?start=2024-01-01&end=2024-01-31", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Summary struct {
			TotalFlights             int `json:"totalFlights"`
			AverageTurnaroundMinutes int `json:"averageTurnaroundMinutes"`
		} `json:"summary"`
		ChartData []entity.DailyFlightCount `json:"chartData"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Summary.TotalFlights)
	assert.Equal(t, 90, body.Summary.AverageTurnaroundMinutes)
	require.Len(t, body.ChartData, 1)
	assert.Equal(t, "15/01", body.ChartData[0].Label)
}

func TestGetHistoryFilters(t *testing.T) {
	router := newTestRouter(fixtureRepo(), &stubEquipmentRepo{}, &stubArchiveRepo{})

	w := doRequest(router, http.MethodGet, "/api/v1/history?q=gol", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Flights []entity.FlightHistoryEntry `json:"flights"`
		Total   int                         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Flights, 1)
	assert.Equal(t, "GOL", body.Flights[0].Airline)
}

func TestGetLeaders(t *testing.T) {
	router := newTestRouter(fixtureRepo(), &stubEquipmentRepo{}, &stubArchiveRepo{})

	w := doRequest(router, http.MethodGet, "/api/v1/leaders", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Carlos")
	assert.Contains(t, w.Body.String(), "Ana")
}

func TestSubmitReportEndpoint(t *testing.T) {
	reports := fixtureRepo()
	router := newTestRouter(reports, &stubEquipmentRepo{}, &stubArchiveRepo{})

	payload := `{
		"date": "2024-01-15",
		"shift": "tarde",
		"leader": "Ana",
		"flights": [{"airline": "LATAM", "number": "3003", "landingTime": "14:00", "towTime": "15:00"}]
	}`

	w := doRequest(router, http.MethodPost, "/api/v1/reports", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, reports.created, 1)

	var body struct {
		Handover string `json:"handover"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Handover, "LATAM 3003")
}

func TestSubmitReportRejectsBadBody(t *testing.T) {
	router := newTestRouter(fixtureRepo(), &stubEquipmentRepo{}, &stubArchiveRepo{})

	w := doRequest(router, http.MethodPost, "/api/v1/reports", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReportRejectsInvalidShift(t *testing.T) {
	router := newTestRouter(fixtureRepo(), &stubEquipmentRepo{}, &stubArchiveRepo{})

	w := doRequest(router, http.MethodPost, "/api/v1/reports", `{"date":"2024-01-15","shift":"x","leader":"Ana"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSubmitReportStoreFailureIsServerError(t *testing.T) {
	reports := fixtureRepo()
	reports.createErr = errors.New("connection refused")
	router := newTestRouter(reports, &stubEquipmentRepo{}, &stubArchiveRepo{})

	payload := `{"date":"2024-01-15","shift":"tarde","leader":"Ana","flights":[]}`
	w := doRequest(router, http.MethodPost, "/api/v1/reports", payload)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// internal error detail stays out of the response body
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestGetFleetSkipsReportLookup(t *testing.T) {
	reports := fixtureRepo()
	router := newTestRouter(reports, &stubEquipmentRepo{
		fleet: []*entity.Equipment{
			{Prefix: "TB-07", Status: entity.StatusOperational},
			{Prefix: "GP-02", Status: entity.StatusInMaintenance},
		},
	}, &stubArchiveRepo{})

	w := doRequest(router, http.MethodGet, "/api/v1/fleet", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, reports.latestCalls)

	var body struct {
		Summary entity.FleetSummary `json:"summary"`
		Fleet   []*entity.Equipment `json:"fleet"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Summary.Operational)
	assert.Equal(t, 1, body.Summary.InMaintenance)
	require.Len(t, body.Fleet, 2)
}

func TestGetArchives(t *testing.T) {
	archive := &stubArchiveRepo{docs: []*entity.ReportArchive{
		{ReportID: "r-1", Leader: "Carlos", Status: entity.ArchiveStatusStored},
		{ReportID: "r-2", Leader: "Ana", Status: entity.ArchiveStatusStored},
	}}
	router := newTestRouter(fixtureRepo(), &stubEquipmentRepo{}, archive)

	w := doRequest(router, http.MethodGet, "/api/v1/archive?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Archives []*entity.ReportArchive `json:"archives"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Archives, 1)
	assert.Equal(t, "r-1", body.Archives[0].ReportID)
}

func TestGetArchiveByReport(t *testing.T) {
	archive := &stubArchiveRepo{docs: []*entity.ReportArchive{
		{ReportID: "r-1", Leader: "Carlos", RawMessage: "mensagem"},
	}}
	router := newTestRouter(fixtureRepo(), &stubEquipmentRepo{}, archive)

	w := doRequest(router, http.MethodGet, "/api/v1/archive/r-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc entity.ReportArchive
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "mensagem", doc.RawMessage)

	w = doRequest(router, http.MethodGet, "/api/v1/archive/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
