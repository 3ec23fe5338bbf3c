package createVendor

import (
	"errors"
	"log/slog"
	"net/http"

	"eventflow/internal/lib/api/response"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Category is free text: the dashboard suggests a fixed list but the store
// accepts any value.
type VendorRequest struct {
	Name          string `json:"name" validate:"required"`
	Category      string `json:"category"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Country       string `json:"country"`
	Description   string `json:"description"`
	Website       string `json:"website"`
}

type VendorResponse struct {
	response.Response
	Vendor *models.Vendor `json:"vendor"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VendorCreator
type VendorCreator interface {
	CreateVendor(v models.NewVendor) (*models.Vendor, error)
}

func New(log *slog.Logger, vendor VendorCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendor.createVendor.New"

		log = log.With(slog.String("op", op))

		var req VendorRequest

		err := render.DecodeJSON(r.Body, &req)
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

		if req.Category == "" {
			req.Category = "General"
		}

		created, err := vendor.CreateVendor(models.NewVendor{
			Name:          req.Name,
			Category:      req.Category,
			ContactPerson: req.ContactPerson,
			Email:         req.Email,
			Phone:         req.Phone,
			Country:       req.Country,
			Description:   req.Description,
			Website:       req.Website,
		})
		if err != nil {
			log.Error("failed to add vendor", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add vendor"))
			return
		}

		log.Info("vendor added", slog.Int64("id", created.ID))

		render.JSON(w, r, VendorResponse{
			Response: response.OKWithMessage("Vendor Added Successfully"),
			Vendor:   created,
		})
	}
}
