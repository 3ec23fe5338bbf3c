package updateVendor

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/models"
	"eventflow/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// UpdateRequest names every updatable field explicitly; anything else in the
// body is dropped. Absent fields keep their stored value.
type UpdateRequest struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	ContactPerson *string  `json:"contact_person"`
	Email         *string  `json:"email" validate:"omitempty,email"`
	Phone         *string  `json:"phone"`
	Country       *string  `json:"country"`
	Description   *string  `json:"description"`
	Website       *string  `json:"website"`
	Status        *string  `json:"status"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

type UpdateResponse struct {
	response.Response
	Vendor *models.Vendor `json:"vendor"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VendorUpdater
type VendorUpdater interface {
	UpdateVendor(id int64, upd models.VendorUpdate) (*models.Vendor, error)
}

func New(log *slog.Logger, vendor VendorUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendor.updateVendor.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid vendor id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid ID"))
			return
		}

		log = log.With(slog.Int64("vendor_id", id))

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		updated, err := vendor.UpdateVendor(id, models.VendorUpdate{
			Name:          req.Name,
			Category:      req.Category,
			ContactPerson: req.ContactPerson,
			Email:         req.Email,
			Phone:         req.Phone,
			Country:       req.Country,
			Description:   req.Description,
			Website:       req.Website,
			Status:        req.Status,
			Rating:        req.Rating,
		})
		if err != nil {
			if errors.Is(err, storage.ErrVendorNotFound) {
				log.Error("vendor not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Vendor not found"))
				return
			}

			log.Error("failed to update vendor", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update vendor"))
			return
		}

		log.Info("vendor updated")

		render.JSON(w, r, UpdateResponse{
			Response: response.OKWithMessage("Vendor Updated Successfully"),
			Vendor:   updated,
		})
	}
}
