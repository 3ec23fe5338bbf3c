package createVendor

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventflow/internal/http-server/handlers/vendorhandlers/createVendor/mocks"
	"eventflow/internal/lib/logger/handlers/slogdiscard"
	"eventflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVendorHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.VendorCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with defaults",
			requestBody: `{
				"name": "Royal Catering"
			}`,
			mockSetup: func(mock *mocks.VendorCreator) {
				mock.On("CreateVendor", models.NewVendor{Name: "Royal Catering", Category: "General"}).
					Return(&models.Vendor{ID: 5, Name: "Royal Catering", Category: "General", Status: "Active", Rating: 5.0}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":true`)
				assert.Contains(t, body, `"category":"General"`)
				assert.Contains(t, body, `"status":"Active"`)
				assert.Contains(t, body, `"rating":5`)
			},
		},
		{
			name: "Success with contact fields",
			requestBody: `{
				"name": "Floral Design Co",
				"category": "Floral Design",
				"contact_person": "Marie N.",
				"email": "marie@floral.example",
				"phone": "+237 600 000 000",
				"country": "Cameroon"
			}`,
			mockSetup: func(mock *mocks.VendorCreator) {
				mock.On("CreateVendor", models.NewVendor{
					Name:          "Floral Design Co",
					Category:      "Floral Design",
					ContactPerson: "Marie N.",
					Email:         "marie@floral.example",
					Phone:         "+237 600 000 000",
					Country:       "Cameroon",
				}).Return(&models.Vendor{
					ID: 6, Name: "Floral Design Co", Category: "Floral Design",
					ContactPerson: "Marie N.", Email: "marie@floral.example",
					Phone: "+237 600 000 000", Country: "Cameroon",
					Status: "Active", Rating: 5.0,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"contact_person":"Marie N."`)
			},
		},
		{
			name:           "Missing name",
			requestBody:    `{"category": "Security Elite"}`,
			mockSetup:      func(mock *mocks.VendorCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":false`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{{`,
			mockSetup:      func(mock *mocks.VendorCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"failed to decode request"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"name": "Royal Catering"}`,
			mockSetup: func(mock *mocks.VendorCreator) {
				mock.On("CreateVendor", models.NewVendor{Name: "Royal Catering", Category: "General"}).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"failed to add vendor"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewVendorCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/api/vendors", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockCreator.AssertExpectations(t)
		})
	}
}
