package hotel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/hotel-reservations/internal/internaltypes"
	"github.com/example/hotel-reservations/internal/storage"
)

// Repository provides CRUD over the hotels collection plus the two inventory
// operations, Reserve and Cancel, which are the only writers of
// AvailableRooms outside of Modify's capacity resize.
type Repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) GetAll(ctx context.Context) ([]Hotel, error) {
	col, err := r.store.Load(ctx, storage.Hotels)
	if err != nil {
		return nil, err
	}
	hotels := make([]Hotel, 0, len(col))
	for id, raw := range col {
		var h Hotel
		if err := json.Unmarshal(raw, &h); err != nil {
			return nil, fmt.Errorf("decode hotel %s: %w", id, err)
		}
		hotels = append(hotels, h)
	}
	return hotels, nil
}

func (r *Repository) Get(ctx context.Context, id string) (Hotel, error) {
	hotels, err := r.GetAll(ctx)
	if err != nil {
		return Hotel{}, err
	}
	for _, h := range hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return Hotel{}, fmt.Errorf("hotel %q: %w", id, internaltypes.ErrNotFound)
}

func (r *Repository) Create(ctx context.Context, id, name, location string, totalRooms int) (Hotel, error) {
	col, err := r.store.Load(ctx, storage.Hotels)
	if err != nil {
		return Hotel{}, err
	}
	if _, ok := col[id]; ok {
		return Hotel{}, fmt.Errorf("hotel %q: %w", id, internaltypes.ErrDuplicate)
	}

	h := Hotel{
		ID:             id,
		Name:           name,
		Location:       location,
		TotalRooms:     totalRooms,
		AvailableRooms: totalRooms,
	}
	if err := r.put(ctx, col, h); err != nil {
		return Hotel{}, err
	}
	return h, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	col, err := r.store.Load(ctx, storage.Hotels)
	if err != nil {
		return err
	}
	if _, ok := col[id]; !ok {
		return fmt.Errorf("hotel %q: %w", id, internaltypes.ErrNotFound)
	}
	delete(col, id)
	return r.store.Save(ctx, storage.Hotels, col)
}

// Modify updates the provided fields of an existing hotel; nil means leave
// the field unchanged. A capacity resize shifts AvailableRooms by the same
// delta as TotalRooms, floored at 0: shrinking below the number of rooms
// already reserved clamps rather than rejecting the resize.
func (r *Repository) Modify(ctx context.Context, id string, name, location *string, totalRooms *int) (Hotel, error) {
	col, h, err := r.load(ctx, id)
	if err != nil {
		return Hotel{}, err
	}

	if name != nil {
		h.Name = *name
	}
	if location != nil {
		h.Location = *location
	}
	if totalRooms != nil {
		delta := *totalRooms - h.TotalRooms
		h.TotalRooms = *totalRooms
		h.AvailableRooms += delta
		if h.AvailableRooms < 0 {
			h.AvailableRooms = 0
		}
	}

	if err := r.put(ctx, col, h); err != nil {
		return Hotel{}, err
	}
	return h, nil
}

// Reserve takes one room out of the hotel's available inventory.
func (r *Repository) Reserve(ctx context.Context, id string) error {
	col, h, err := r.load(ctx, id)
	if err != nil {
		return err
	}
	if h.AvailableRooms <= 0 {
		return fmt.Errorf("hotel %q: %w", id, internaltypes.ErrNoRooms)
	}
	h.AvailableRooms--
	return r.put(ctx, col, h)
}

// Cancel returns one room to the hotel's available inventory.
func (r *Repository) Cancel(ctx context.Context, id string) error {
	col, h, err := r.load(ctx, id)
	if err != nil {
		return err
	}
	if h.AvailableRooms >= h.TotalRooms {
		return fmt.Errorf("hotel %q: %w", id, internaltypes.ErrAtCapacity)
	}
	h.AvailableRooms++
	return r.put(ctx, col, h)
}

func (r *Repository) load(ctx context.Context, id string) (storage.Collection, Hotel, error) {
	col, err := r.store.Load(ctx, storage.Hotels)
	if err != nil {
		return nil, Hotel{}, err
	}
	raw, ok := col[id]
	if !ok {
		return nil, Hotel{}, fmt.Errorf("hotel %q: %w", id, internaltypes.ErrNotFound)
	}
	var h Hotel
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, Hotel{}, fmt.Errorf("decode hotel %s: %w", id, err)
	}
	return col, h, nil
}

func (r *Repository) put(ctx context.Context, col storage.Collection, h Hotel) error {
	raw, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode hotel %s: %w", h.ID, err)
	}
	col[h.ID] = raw
	return r.store.Save(ctx, storage.Hotels, col)
}
