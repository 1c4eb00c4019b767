package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bajotierra-backend/internal/models"
)

type ReservationRepo struct {
	db *gorm.DB
}

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// Create appends one reservation row. The id and creation timestamp are
// assigned by the store and written back into the record.
func (r *ReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	if reservation.Status == "" {
		reservation.Status = models.StatusPending
	}

	if err := r.db.WithContext(ctx).Create(reservation).Error; err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

// List returns every reservation ordered by date then time.
func (r *ReservationRepo) List(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Order("fecha ASC, hora ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}
