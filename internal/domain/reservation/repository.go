package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/example/hotel-reservations/internal/domain/customer"
	"github.com/example/hotel-reservations/internal/domain/hotel"
	"github.com/example/hotel-reservations/internal/internaltypes"
	"github.com/example/hotel-reservations/internal/storage"
)

// Repository orchestrates the reservation lifecycle. It validates foreign
// keys against the customer and hotel repositories and is the only caller of
// the hotel inventory operations.
type Repository struct {
	store     storage.Store
	customers *customer.Repository
	hotels    *hotel.Repository
}

func NewRepository(store storage.Store, customers *customer.Repository, hotels *hotel.Repository) *Repository {
	return &Repository{store: store, customers: customers, hotels: hotels}
}

func (r *Repository) GetAll(ctx context.Context) ([]Reservation, error) {
	col, err := r.store.Load(ctx, storage.Reservations)
	if err != nil {
		return nil, err
	}
	reservations := make([]Reservation, 0, len(col))
	for id, raw := range col {
		var res Reservation
		if err := json.Unmarshal(raw, &res); err != nil {
			return nil, fmt.Errorf("decode reservation %s: %w", id, err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

func (r *Repository) Get(ctx context.Context, id string) (Reservation, error) {
	col, err := r.store.Load(ctx, storage.Reservations)
	if err != nil {
		return Reservation{}, err
	}
	raw, ok := col[id]
	if !ok {
		return Reservation{}, fmt.Errorf("reservation %q: %w", id, internaltypes.ErrNotFound)
	}
	var res Reservation
	if err := json.Unmarshal(raw, &res); err != nil {
		return Reservation{}, fmt.Errorf("decode reservation %s: %w", id, err)
	}
	return res, nil
}

// Create books one room at hotelID for customerID. Both existence checks run
// before the room is taken, so a failed validation never touches hotel
// inventory; only once a room is held is the reservation record written.
func (r *Repository) Create(ctx context.Context, customerID, hotelID string) (Reservation, error) {
	if _, err := r.customers.Get(ctx, customerID); err != nil {
		return Reservation{}, err
	}
	if _, err := r.hotels.Get(ctx, hotelID); err != nil {
		return Reservation{}, err
	}
	if err := r.hotels.Reserve(ctx, hotelID); err != nil {
		return Reservation{}, err
	}

	res := Reservation{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		HotelID:    hotelID,
		Status:     StatusActive,
	}
	col, err := r.store.Load(ctx, storage.Reservations)
	if err != nil {
		return Reservation{}, err
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return Reservation{}, fmt.Errorf("encode reservation %s: %w", res.ID, err)
	}
	col[res.ID] = raw
	if err := r.store.Save(ctx, storage.Reservations, col); err != nil {
		return Reservation{}, err
	}
	return res, nil
}

// Cancel marks the reservation cancelled and returns its room to the hotel.
// The status flip persists before the inventory restore; if the restore
// fails (hotel deleted in the meantime, or already at capacity) the
// reservation stays cancelled and the room is not restored.
func (r *Repository) Cancel(ctx context.Context, id string) error {
	col, err := r.store.Load(ctx, storage.Reservations)
	if err != nil {
		return err
	}
	raw, ok := col[id]
	if !ok {
		return fmt.Errorf("reservation %q: %w", id, internaltypes.ErrNotFound)
	}
	var res Reservation
	if err := json.Unmarshal(raw, &res); err != nil {
		return fmt.Errorf("decode reservation %s: %w", id, err)
	}
	if res.Status == StatusCancelled {
		return fmt.Errorf("reservation %q: %w", id, internaltypes.ErrAlreadyCancelled)
	}

	res.Status = StatusCancelled
	updated, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode reservation %s: %w", id, err)
	}
	col[id] = updated
	if err := r.store.Save(ctx, storage.Reservations, col); err != nil {
		return err
	}

	if err := r.hotels.Cancel(ctx, res.HotelID); err != nil {
		log.Printf("could not restore room for hotel %v after cancelling reservation %v: %v", res.HotelID, id, err)
	}
	return nil
}
