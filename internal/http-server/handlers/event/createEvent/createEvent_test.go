package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventflow/internal/http-server/handlers/event/createEvent/mocks"
	"eventflow/internal/lib/logger/handlers/slogdiscard"
	"eventflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	createdEvent := &models.Event{
		ID:       42,
		Name:     "Annual Gala",
		Date:     "2026-10-15",
		Location: "Douala",
		Budget:   5000,
		Status:   "Planning",
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"name": "Annual Gala",
				"date": "2026-10-15",
				"location": "Douala",
				"budget": 5000
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Annual Gala", "2026-10-15", "Douala", 5000.0).Return(createdEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":true`)
				assert.Contains(t, body, `"status":"Planning"`)
				assert.Contains(t, body, `"id":42`)
			},
		},
		{
			name: "Budget defaults to zero when absent",
			requestBody: `{
				"name": "Annual Gala",
				"date": "2026-10-15",
				"location": "Douala"
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Annual Gala", "2026-10-15", "Douala", 0.0).
					Return(&models.Event{ID: 43, Name: "Annual Gala", Date: "2026-10-15", Location: "Douala", Status: "Planning"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":true`)
				assert.Contains(t, body, `"budget":0`)
			},
		},
		{
			name: "Non-numeric budget coerced to zero",
			requestBody: `{
				"name": "Annual Gala",
				"date": "2026-10-15",
				"location": "Douala",
				"budget": "abc"
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Annual Gala", "2026-10-15", "Douala", 0.0).
					Return(&models.Event{ID: 44, Name: "Annual Gala", Date: "2026-10-15", Location: "Douala", Status: "Planning"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":true`)
				assert.Contains(t, body, `"budget":0`)
			},
		},
		{
			name: "Numeric string budget coerced to number",
			requestBody: `{
				"name": "Annual Gala",
				"date": "2026-10-15",
				"location": "Douala",
				"budget": "2500"
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Annual Gala", "2026-10-15", "Douala", 2500.0).
					Return(&models.Event{ID: 45, Name: "Annual Gala", Date: "2026-10-15", Location: "Douala", Budget: 2500, Status: "Planning"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":true`)
				assert.Contains(t, body, `"budget":2500`)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"failed to decode request"}`,
		},
		{
			name: "Missing name",
			requestBody: `{
				"date": "2026-10-15",
				"location": "Douala"
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":false`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name: "Missing date",
			requestBody: `{
				"name": "Annual Gala",
				"location": "Douala"
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":false`)
				assert.Contains(t, body, "Date")
			},
		},
		{
			name: "Missing location",
			requestBody: `{
				"name": "Annual Gala",
				"date": "2026-10-15"
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":false`)
				assert.Contains(t, body, "Location")
			},
		},
		{
			name: "Negative budget",
			requestBody: `{
				"name": "Annual Gala",
				"date": "2026-10-15",
				"location": "Douala",
				"budget": -100
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":false`)
				assert.Contains(t, body, "Budget")
			},
		},
		{
			name: "Internal server error",
			requestBody: `{
				"name": "Annual Gala",
				"date": "2026-10-15",
				"location": "Douala",
				"budget": 5000
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Annual Gala", "2026-10-15", "Douala", 5000.0).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"failed to add event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/api/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockCreator.AssertExpectations(t)
		})
	}
}

func TestCreateEventResponseFormat(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockCreator := mocks.NewEventCreator(t)
	handler := New(logger, mockCreator)

	mockCreator.On("CreateEvent", "Launch Party", "2026-11-01", "Yaounde", 1200.0).
		Return(&models.Event{ID: 7, Name: "Launch Party", Date: "2026-11-01", Location: "Yaounde", Budget: 1200, Status: "Planning"}, nil)

	requestBody := `{
		"name": "Launch Party",
		"date": "2026-11-01",
		"location": "Yaounde",
		"budget": 1200
	}`
	req, err := http.NewRequest("POST", "/api/events", bytes.NewBufferString(requestBody))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp EventResponse
	err = json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Event Added Successfully", resp.Message)
	require.NotNil(t, resp.Event)
	assert.Equal(t, int64(7), resp.Event.ID)
	assert.Equal(t, "Planning", resp.Event.Status)

	mockCreator.AssertExpectations(t)
}
