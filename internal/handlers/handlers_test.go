package handlers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"horizons/internal/fixtures"
	"horizons/internal/middleware"
	"horizons/internal/models"
	"horizons/internal/naif"
	"horizons/internal/query"
	"horizons/internal/service"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Fetch(ctx context.Context, req query.WireRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockClient) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newTestRouter(t *testing.T, client *mockClient) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tbl, err := naif.Default()
	require.NoError(t, err)
	eph := service.NewEphemerisService(tbl, client, models.DefaultOptions())
	status := service.NewStatusService(client)

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	RegisterRoutes(r.Group("/api/v1"),
		NewEphemerisHandler(eph), NewNAIFHandler(eph), NewHealthHandler(status))
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

const earthQuery = "/api/v1/ephemeris?body=earth&start=2024-01-01&stop=2024-01-04&step=1d"

func TestGetEphemerisJSON(t *testing.T) {
	client := new(mockClient)
	client.On("Fetch", mock.Anything, mock.Anything).Return(fixtures.EarthDaily, nil).Once()
	r := newTestRouter(t, client)

	w := get(r, earthQuery)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Table struct {
				Rows    int `json:"rows"`
				Columns []struct {
					Label  string            `json:"label"`
					Values []json.RawMessage `json:"values"`
				} `json:"columns"`
			} `json:"table"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Data.Table.Rows)
	require.Len(t, resp.Data.Table.Columns, 8)
	assert.Equal(t, "ΔX", resp.Data.Table.Columns[5].Label)
	assert.JSONEq(t, `"`+fixtures.EarthDailyFirstCalendar+`"`, string(resp.Data.Table.Columns[1].Values[0]))

	client.AssertExpectations(t)
}

func TestGetEphemerisCSV(t *testing.T) {
	client := new(mockClient)
	client.On("Fetch", mock.Anything, mock.MatchedBy(func(req query.WireRequest) bool {
		return req.Center == "500@599" && req.OutUnits == "AU-D"
	})).Return(fixtures.EarthDaily, nil).Once()
	r := newTestRouter(t, client)

	w := get(r, earthQuery+"&wrt=jupiter&units=au-d&format=csv&header=MJD,Calendar,X,Y,Z,DX,DY,DZ")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ephemeris_earth_20240101.csv")

	rows, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, models.ASCIIHeader, rows[0])

	client.AssertExpectations(t)
}

func TestGetEphemerisTrimsHeaderLabels(t *testing.T) {
	client := new(mockClient)
	client.On("Fetch", mock.Anything, mock.Anything).Return(fixtures.EarthDaily, nil).Once()
	r := newTestRouter(t, client)

	w := get(r, earthQuery+"&format=csv&header=MJD,%20Calendar,%20X%20,Y,Z,%09DX,DY,DZ%20")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	rows, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, models.ASCIIHeader, rows[0])
}

func TestGetEphemerisErrors(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		fetch     []interface{}
		status    int
		errSubstr string
	}{
		{name: "missing body", target: "/api/v1/ephemeris?start=2024-01-01&stop=2024-01-02&step=1h", status: http.StatusBadRequest, errSubstr: "body is required"},
		{name: "bad start", target: "/api/v1/ephemeris?body=earth&start=yesterday&stop=2024-01-02&step=1h", status: http.StatusBadRequest, errSubstr: "start"},
		{name: "bad step", target: "/api/v1/ephemeris?body=earth&start=2024-01-01&stop=2024-01-02&step=often", status: http.StatusBadRequest, errSubstr: "step"},
		{name: "bad format", target: earthQuery + "&format=pdf", status: http.StatusBadRequest, errSubstr: "unsupported format"},
		{name: "unknown body", target: "/api/v1/ephemeris?body=vulcan&start=2024-01-01&stop=2024-01-02&step=1h", status: http.StatusNotFound, errSubstr: "vulcan"},
		{name: "stop before start", target: "/api/v1/ephemeris?body=earth&start=2024-01-02&stop=2024-01-01&step=1h", status: http.StatusBadRequest, errSubstr: "stop must be after start"},
		{name: "bad units", target: earthQuery + "&units=furlongs", status: http.StatusBadRequest, errSubstr: "unsupported units"},
		{name: "header arity", target: earthQuery + "&header=a,b", status: http.StatusBadRequest, errSubstr: "header arity mismatch"},
		{name: "blank header label", target: earthQuery + "&header=MJD,%20,X,Y,Z,DX,DY,DZ", status: http.StatusBadRequest, errSubstr: "header"},
		{
			name: "timeout", target: earthQuery,
			fetch:  []interface{}{"", &models.TimeoutError{Op: "fetch ephemeris", Err: context.DeadlineExceeded}},
			status: http.StatusGatewayTimeout, errSubstr: "timed out",
		},
		{
			name: "cancelled", target: earthQuery,
			fetch:  []interface{}{"", &models.CancelledError{Op: "fetch ephemeris", Err: context.Canceled}},
			status: statusClientClosedRequest, errSubstr: "cancelled",
		},
		{
			name: "malformed", target: earthQuery,
			fetch:  []interface{}{fixtures.UnknownTarget, nil},
			status: http.StatusBadGateway, errSubstr: "missing start marker",
		},
		{
			name: "service error", target: earthQuery,
			fetch:  []interface{}{"", &models.ServiceError{StatusCode: 503, Body: "busy"}},
			status: http.StatusBadGateway, errSubstr: "busy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockClient)
			if tt.fetch != nil {
				client.On("Fetch", mock.Anything, mock.Anything).Return(tt.fetch...).Once()
			}
			r := newTestRouter(t, client)

			w := get(r, tt.target)
			assert.Equal(t, tt.status, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp["message"], tt.errSubstr)

			if tt.fetch == nil {
				client.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
			} else {
				client.AssertExpectations(t)
			}
		})
	}
}

func TestGetDesignator(t *testing.T) {
	r := newTestRouter(t, new(mockClient))

	tests := []struct {
		id     string
		status int
		name   string
		code   int
	}{
		{id: "Earth", status: http.StatusOK, name: "Earth", code: 399},
		{id: "599", status: http.StatusOK, name: "Jupiter", code: 599},
		{id: "-31", status: http.StatusOK, name: "Voyager 1", code: -31},
		{id: "vulcan", status: http.StatusNotFound},
		{id: "424242", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		w := get(r, "/api/v1/naif/"+tt.id)
		require.Equal(t, tt.status, w.Code, tt.id)
		if tt.status != http.StatusOK {
			continue
		}

		var resp struct {
			Data naif.Entry `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, naif.Entry{Name: tt.name, Code: tt.code}, resp.Data, tt.id)
	}
}

func TestListBodies(t *testing.T) {
	r := newTestRouter(t, new(mockClient))

	w := get(r, "/api/v1/bodies")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []naif.Entry `json:"data"`
		Count int          `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(resp.Data), resp.Count)
	assert.Equal(t, naif.Entry{Name: "Solar System Barycenter", Code: 0}, resp.Data[0])
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(t, new(mockClient))

	w := get(r, "/api/v1/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status   string                 `json:"status"`
		Horizons service.HorizonsStatus `json:"horizons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Horizons.Checked)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
	assert.Equal(t, http.StatusNotFound, statusFor(&models.NotFoundError{Body: models.ByName("x")}))
}
