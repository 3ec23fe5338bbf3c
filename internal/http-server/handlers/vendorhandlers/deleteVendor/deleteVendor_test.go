package deleteVendor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventflow/internal/http-server/handlers/vendorhandlers/deleteVendor/mocks"
	"eventflow/internal/lib/logger/handlers/slogdiscard"
	"eventflow/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteVendorHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(mock *mocks.VendorDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			url:  "/api/vendors/5",
			mockSetup: func(mock *mocks.VendorDeleter) {
				mock.On("DeleteVendor", int64(5)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Vendor Deleted Successfully"}`,
		},
		{
			name: "Vendor not found",
			url:  "/api/vendors/999",
			mockSetup: func(mock *mocks.VendorDeleter) {
				mock.On("DeleteVendor", int64(999)).Return(storage.ErrVendorNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"message":"Vendor not found"}`,
		},
		{
			name:           "Invalid id",
			url:            "/api/vendors/xyz",
			mockSetup:      func(mock *mocks.VendorDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Invalid ID"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewVendorDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/api/vendors/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest("DELETE", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())

			mockDeleter.AssertExpectations(t)
		})
	}
}
