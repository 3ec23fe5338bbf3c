package getAllVendors

import (
	"log/slog"
	"net/http"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VendorsGetter
type VendorsGetter interface {
	GetAllVendors() ([]models.Vendor, error)
}

func New(log *slog.Logger, vendorsGetter VendorsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendor.getAllVendors.New"

		log = log.With(slog.String("op", op))

		vendors, err := vendorsGetter.GetAllVendors()
		if err != nil {
			log.Error("failed to get vendors", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get vendors"))
			return
		}

		log.Info("vendors retrieved successfully", slog.Int("count", len(vendors)))

		render.JSON(w, r, vendors)
	}
}
