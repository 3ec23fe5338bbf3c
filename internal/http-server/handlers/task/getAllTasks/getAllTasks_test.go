package getAllTasks

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventflow/internal/http-server/handlers/task/getAllTasks/mocks"
	"eventflow/internal/lib/logger/handlers/slogdiscard"
	"eventflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllTasksHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.TasksGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(mock *mocks.TasksGetter) {
				mock.On("GetAllTasks").Return([]models.Task{
					{ID: 1, Description: "Book venue", AssignedTo: "Alice", Deadline: "2026-09-20", Status: "Pending"},
					{ID: 2, Description: "Send invites", AssignedTo: "Bob", Deadline: "2026-09-25", Status: "Completed"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var tasks []models.Task
				require.NoError(t, json.Unmarshal([]byte(body), &tasks))
				assert.Len(t, tasks, 2)
				assert.Equal(t, "Book venue", tasks[0].Description)
			},
		},
		{
			name: "Empty store yields empty array",
			mockSetup: func(mock *mocks.TasksGetter) {
				mock.On("GetAllTasks").Return([]models.Task{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `[]`, body)
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(mock *mocks.TasksGetter) {
				mock.On("GetAllTasks").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"success":false,"message":"failed to get tasks"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewTasksGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/api/tasks", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())

			mockGetter.AssertExpectations(t)
		})
	}
}
