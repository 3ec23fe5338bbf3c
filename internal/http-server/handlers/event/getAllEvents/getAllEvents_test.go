package getAllEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventflow/internal/http-server/handlers/event/getAllEvents/mocks"
	"eventflow/internal/lib/logger/handlers/slogdiscard"
	"eventflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.EventsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(mock *mocks.EventsGetter) {
				mock.On("GetAllEvents").Return([]models.Event{
					{ID: 1, Name: "Gala", Date: "2026-10-15", Location: "Douala", Budget: 5000, Status: "Planning"},
					{ID: 2, Name: "Summit", Date: "2026-11-02", Location: "Paris", Budget: 12000, Status: "Confirmed"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var events []models.Event
				require.NoError(t, json.Unmarshal([]byte(body), &events))
				assert.Len(t, events, 2)
				assert.Equal(t, "Gala", events[0].Name)
			},
		},
		{
			name: "Empty store yields empty array",
			mockSetup: func(mock *mocks.EventsGetter) {
				mock.On("GetAllEvents").Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `[]`, body)
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(mock *mocks.EventsGetter) {
				mock.On("GetAllEvents").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"success":false,"message":"failed to get events"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/api/events", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())

			mockGetter.AssertExpectations(t)
		})
	}
}
