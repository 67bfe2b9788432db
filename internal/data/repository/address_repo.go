package repository

import (
	"context"
	"fmt"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByID(ctx context.Context, id int64) (*entity.Address, error)
	FindByUser(ctx context.Context, userID int64) ([]*entity.Address, error)
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type addressRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAddressRepository(db database.PgxIface, log *zap.Logger) AddressRepository {
	return &addressRepository{
		db:  db,
		log: log.With(zap.String("repository", "address")),
	}
}

func (ar *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	query := `
		INSERT INTO addresses (user_id, full_name, phone, address_line,
		                       pin_code, city, state, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := ar.db.QueryRow(ctx, query,
		address.UserID,
		address.FullName,
		address.Phone,
		address.AddressLine,
		address.PinCode,
		address.City,
		address.State,
		address.Type,
	).Scan(&address.ID)

	if err != nil {
		ar.log.Error("Failed to create address",
			zap.Error(err),
			zap.Int64("user_id", address.UserID),
		)
		return fmt.Errorf("create address for user %d: %w", address.UserID, err)
	}

	return nil
}

func (ar *addressRepository) FindByID(ctx context.Context, id int64) (*entity.Address, error) {
	query := `
		SELECT id, user_id, full_name, phone, address_line,
		       pin_code, city, state, type
		FROM addresses
		WHERE id = $1
	`

	var address entity.Address
	err := ar.db.QueryRow(ctx, query, id).Scan(
		&address.ID,
		&address.UserID,
		&address.FullName,
		&address.Phone,
		&address.AddressLine,
		&address.PinCode,
		&address.City,
		&address.State,
		&address.Type,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find address by ID",
			zap.Error(err),
			zap.Int64("address_id", id),
		)
		return nil, fmt.Errorf("find address by ID %d: %w", id, err)
	}

	return &address, nil
}

func (ar *addressRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Address, error) {
	query := `
		SELECT id, user_id, full_name, phone, address_line,
		       pin_code, city, state, type
		FROM addresses
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := ar.db.Query(ctx, query, userID)
	if err != nil {
		ar.log.Error("Failed to list addresses",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("list addresses for user %d: %w", userID, err)
	}
	defer rows.Close()

	var addresses []*entity.Address
	for rows.Next() {
		var address entity.Address
		err := rows.Scan(
			&address.ID,
			&address.UserID,
			&address.FullName,
			&address.Phone,
			&address.AddressLine,
			&address.PinCode,
			&address.City,
			&address.State,
			&address.Type,
		)
		if err != nil {
			ar.log.Error("Failed to scan address row", zap.Error(err))
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		addresses = append(addresses, &address)
	}

	if err := rows.Err(); err != nil {
		ar.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate address rows: %w", err)
	}

	return addresses, nil
}

func (ar *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	query := `
		UPDATE addresses
		SET full_name = $2, phone = $3, address_line = $4, pin_code = $5,
		    city = $6, state = $7, type = $8
		WHERE id = $1
	`

	result, err := ar.db.Exec(ctx, query,
		address.ID,
		address.FullName,
		address.Phone,
		address.AddressLine,
		address.PinCode,
		address.City,
		address.State,
		address.Type,
	)

	if err != nil {
		ar.log.Error("Failed to update address",
			zap.Error(err),
			zap.Int64("address_id", address.ID),
		)
		return fmt.Errorf("update address %d: %w", address.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("address %d not found", address.ID)
	}

	return nil
}

func (ar *addressRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM addresses WHERE id = $1`

	result, err := ar.db.Exec(ctx, query, id)
	if err != nil {
		ar.log.Error("Failed to delete address",
			zap.Error(err),
			zap.Int64("address_id", id),
		)
		return false, fmt.Errorf("delete address %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}
