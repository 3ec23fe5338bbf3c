package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventflow/internal/models"
	"eventflow/internal/storage"
)

func (s *Storage) CreateVendor(v models.NewVendor) (*models.Vendor, error) {
	query := `
		INSERT INTO vendors (name, category, contact_person, email, phone, country, description, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, category, contact_person, email, phone, country, description, website, status, rating`

	var vendor models.Vendor
	err := s.DB.QueryRow(query,
		v.Name,
		v.Category,
		v.ContactPerson,
		v.Email,
		v.Phone,
		v.Country,
		v.Description,
		v.Website,
	).Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.Category,
		&vendor.ContactPerson,
		&vendor.Email,
		&vendor.Phone,
		&vendor.Country,
		&vendor.Description,
		&vendor.Website,
		&vendor.Status,
		&vendor.Rating,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return &vendor, nil
}

func (s *Storage) GetAllVendors() ([]models.Vendor, error) {
	query := `
		SELECT id, name, category, contact_person, email, phone, country, description, website, status, rating
		FROM vendors
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendors: %w", err)
	}
	defer rows.Close()

	vendors := make([]models.Vendor, 0)
	for rows.Next() {
		var vendor models.Vendor
		err = rows.Scan(
			&vendor.ID,
			&vendor.Name,
			&vendor.Category,
			&vendor.ContactPerson,
			&vendor.Email,
			&vendor.Phone,
			&vendor.Country,
			&vendor.Description,
			&vendor.Website,
			&vendor.Status,
			&vendor.Rating,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}

		vendors = append(vendors, vendor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vendors: %w", err)
	}

	return vendors, nil
}

func (s *Storage) UpdateVendor(id int64, upd models.VendorUpdate) (*models.Vendor, error) {
	query := `
		UPDATE vendors
		SET name           = COALESCE($2, name),
		    category       = COALESCE($3, category),
		    contact_person = COALESCE($4, contact_person),
		    email          = COALESCE($5, email),
		    phone          = COALESCE($6, phone),
		    country        = COALESCE($7, country),
		    description    = COALESCE($8, description),
		    website        = COALESCE($9, website),
		    status         = COALESCE($10, status),
		    rating         = COALESCE($11, rating)
		WHERE id = $1
		RETURNING id, name, category, contact_person, email, phone, country, description, website, status, rating`

	var vendor models.Vendor
	err := s.DB.QueryRow(query, id,
		upd.Name,
		upd.Category,
		upd.ContactPerson,
		upd.Email,
		upd.Phone,
		upd.Country,
		upd.Description,
		upd.Website,
		upd.Status,
		upd.Rating,
	).Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.Category,
		&vendor.ContactPerson,
		&vendor.Email,
		&vendor.Phone,
		&vendor.Country,
		&vendor.Description,
		&vendor.Website,
		&vendor.Status,
		&vendor.Rating,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	return &vendor, nil
}

func (s *Storage) DeleteVendor(id int64) error {
	query := `DELETE FROM vendors WHERE id = $1`

	result, err := s.DB.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	if affected == 0 {
		return storage.ErrVendorNotFound
	}

	return nil
}
