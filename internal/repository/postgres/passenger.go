package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Darlington6/safeboda/internal/domain"
	"github.com/Darlington6/safeboda/internal/repository"
)

// PassengerRepository implements repository.PassengerRepository using
// PostgreSQL. The passengers table has a primary key on user_id, which
// enforces the one-profile-per-user rule.
type PassengerRepository struct {
	db *sql.DB
}

// NewPassengerRepository creates a new PassengerRepository.
func NewPassengerRepository(db *sql.DB) *PassengerRepository {
	return &PassengerRepository{db: db}
}

const passengerColumns = `user_id, home_address, work_address, emergency_contact_name, emergency_contact_phone,
	preferred_payment_method, preferred_car_type, average_rating, total_rides,
	is_phone_verified, is_profile_complete, created_at, updated_at`

// Create adds a new profile.
func (r *PassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	query := `INSERT INTO passengers (user_id, home_address, work_address, emergency_contact_name, emergency_contact_phone,
	          preferred_payment_method, preferred_car_type, average_rating, total_rides, is_phone_verified, is_profile_complete)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID, p.HomeAddress, p.WorkAddress, p.EmergencyContactName, p.EmergencyContactPhone,
		p.PreferredPaymentMethod, p.PreferredCarType, p.AverageRating, p.TotalRides,
		p.IsPhoneVerified, p.IsProfileComplete,
	)
	return mapWriteError(err)
}

// GetByUserID retrieves a profile by its owner's ID.
func (r *PassengerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Passenger, error) {
	query := `SELECT ` + passengerColumns + ` FROM passengers WHERE user_id = $1`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p domain.Passenger
	err := row.Scan(
		&p.UserID, &p.HomeAddress, &p.WorkAddress, &p.EmergencyContactName, &p.EmergencyContactPhone,
		&p.PreferredPaymentMethod, &p.PreferredCarType, &p.AverageRating, &p.TotalRides,
		&p.IsPhoneVerified, &p.IsProfileComplete, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update overwrites an existing profile together with its derived
// completion flag in a single statement.
func (r *PassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	query := `UPDATE passengers SET
	          home_address = $2, work_address = $3, emergency_contact_name = $4, emergency_contact_phone = $5,
	          preferred_payment_method = $6, preferred_car_type = $7, average_rating = $8, total_rides = $9,
	          is_phone_verified = $10, is_profile_complete = $11, updated_at = NOW()
	          WHERE user_id = $1`
	result, err := r.db.ExecContext(ctx, query,
		p.UserID, p.HomeAddress, p.WorkAddress, p.EmergencyContactName, p.EmergencyContactPhone,
		p.PreferredPaymentMethod, p.PreferredCarType, p.AverageRating, p.TotalRides,
		p.IsPhoneVerified, p.IsProfileComplete,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a profile.
func (r *PassengerRepository) Delete(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM passengers WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List retrieves profiles matching the filter, newest first.
func (r *PassengerRepository) List(ctx context.Context, filter repository.PassengerFilter) ([]*domain.Passenger, error) {
	var (
		conditions []string
		args       []any
	)
	addCondition := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.PreferredPaymentMethod != nil {
		addCondition("preferred_payment_method", *filter.PreferredPaymentMethod)
	}
	if filter.PreferredCarType != nil {
		addCondition("preferred_car_type", *filter.PreferredCarType)
	}
	if filter.IsPhoneVerified != nil {
		addCondition("is_phone_verified", *filter.IsPhoneVerified)
	}
	if filter.IsProfileComplete != nil {
		addCondition("is_profile_complete", *filter.IsProfileComplete)
	}

	query := `SELECT ` + passengerColumns + ` FROM passengers`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var passengers []*domain.Passenger
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(
			&p.UserID, &p.HomeAddress, &p.WorkAddress, &p.EmergencyContactName, &p.EmergencyContactPhone,
			&p.PreferredPaymentMethod, &p.PreferredCarType, &p.AverageRating, &p.TotalRides,
			&p.IsPhoneVerified, &p.IsProfileComplete, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		passengers = append(passengers, &p)
	}
	return passengers, rows.Err()
}
