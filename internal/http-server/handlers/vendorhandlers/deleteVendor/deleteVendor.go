package deleteVendor

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VendorDeleter
type VendorDeleter interface {
	DeleteVendor(id int64) error
}

func New(log *slog.Logger, vendor VendorDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendor.deleteVendor.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid vendor id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid ID"))
			return
		}

		log = log.With(slog.Int64("vendor_id", id))

		err = vendor.DeleteVendor(id)
		if err != nil {
			if errors.Is(err, storage.ErrVendorNotFound) {
				log.Error("vendor not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Vendor not found"))
				return
			}

			log.Error("failed to delete vendor", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete vendor"))
			return
		}

		log.Info("vendor deleted")

		render.JSON(w, r, response.OKWithMessage("Vendor Deleted Successfully"))
	}
}
