package customer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/hotel-reservations/internal/internaltypes"
	"github.com/example/hotel-reservations/internal/storage"
)

// Repository provides CRUD over the customers collection. Every operation
// loads the collection fresh from the store and rewrites it in full when it
// mutates anything.
type Repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) GetAll(ctx context.Context) ([]Customer, error) {
	col, err := r.store.Load(ctx, storage.Customers)
	if err != nil {
		return nil, err
	}
	customers := make([]Customer, 0, len(col))
	for id, raw := range col {
		var c Customer
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("decode customer %s: %w", id, err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *Repository) Get(ctx context.Context, id string) (Customer, error) {
	customers, err := r.GetAll(ctx)
	if err != nil {
		return Customer{}, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return Customer{}, fmt.Errorf("customer %q: %w", id, internaltypes.ErrNotFound)
}

func (r *Repository) Create(ctx context.Context, id, name, email, phone string) (Customer, error) {
	col, err := r.store.Load(ctx, storage.Customers)
	if err != nil {
		return Customer{}, err
	}
	if _, ok := col[id]; ok {
		return Customer{}, fmt.Errorf("customer %q: %w", id, internaltypes.ErrDuplicate)
	}

	c := Customer{ID: id, Name: name, Email: email, Phone: phone}
	raw, err := json.Marshal(c)
	if err != nil {
		return Customer{}, fmt.Errorf("encode customer %s: %w", id, err)
	}
	col[id] = raw
	if err := r.store.Save(ctx, storage.Customers, col); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	col, err := r.store.Load(ctx, storage.Customers)
	if err != nil {
		return err
	}
	if _, ok := col[id]; !ok {
		return fmt.Errorf("customer %q: %w", id, internaltypes.ErrNotFound)
	}
	delete(col, id)
	return r.store.Save(ctx, storage.Customers, col)
}

// Modify updates the provided fields of an existing customer; nil means
// leave the field unchanged.
func (r *Repository) Modify(ctx context.Context, id string, name, email, phone *string) (Customer, error) {
	col, err := r.store.Load(ctx, storage.Customers)
	if err != nil {
		return Customer{}, err
	}
	raw, ok := col[id]
	if !ok {
		return Customer{}, fmt.Errorf("customer %q: %w", id, internaltypes.ErrNotFound)
	}

	var c Customer
	if err := json.Unmarshal(raw, &c); err != nil {
		return Customer{}, fmt.Errorf("decode customer %s: %w", id, err)
	}
	if name != nil {
		c.Name = *name
	}
	if email != nil {
		c.Email = *email
	}
	if phone != nil {
		c.Phone = *phone
	}

	updated, err := json.Marshal(c)
	if err != nil {
		return Customer{}, fmt.Errorf("encode customer %s: %w", id, err)
	}
	col[id] = updated
	if err := r.store.Save(ctx, storage.Customers, col); err != nil {
		return Customer{}, err
	}
	return c, nil
}
