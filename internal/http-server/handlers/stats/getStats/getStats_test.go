package getStats

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventflow/internal/http-server/handlers/stats/getStats/mocks"
	"eventflow/internal/lib/logger/handlers/slogdiscard"
	"eventflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.StatsProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(mock *mocks.StatsProvider) {
				mock.On("GetStats").Return(&models.Stats{
					TotalEvents:    3,
					TotalAttendees: 120,
					TotalRevenue:   45000,
					ActiveVendors:  2,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"totalEvents":3,"totalAttendees":120,"totalRevenue":45000,"activeVendors":2}`,
		},
		{
			name: "Empty store yields zero counters",
			mockSetup: func(mock *mocks.StatsProvider) {
				mock.On("GetStats").Return(&models.Stats{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"totalEvents":0,"totalAttendees":0,"totalRevenue":0,"activeVendors":0}`,
		},
		{
			name: "Internal server error",
			mockSetup: func(mock *mocks.StatsProvider) {
				mock.On("GetStats").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"failed to get stats"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewStatsProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req, err := http.NewRequest("GET", "/api/stats", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())

			mockProvider.AssertExpectations(t)
		})
	}
}
