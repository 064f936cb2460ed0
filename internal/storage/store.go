// Package storage provides the document store backing the repositories.
// A store holds named collections, each an id-keyed set of JSON documents,
// and always loads and saves a collection as a whole.
package storage

import (
	"context"
	"encoding/json"
)

// Collection names used by the repositories.
const (
	Customers    = "customers"
	Hotels       = "hotels"
	Reservations = "reservations"
)

// Collection maps record ids to their raw JSON documents.
type Collection map[string]json.RawMessage

// Store loads and saves whole collections. Load of a collection with no
// backing data returns an empty, non-nil Collection rather than an error;
// Save fully overwrites whatever was stored before.
type Store interface {
	Load(ctx context.Context, name string) (Collection, error)
	Save(ctx context.Context, name string, col Collection) error
}
