// Package kvrepo implements the ledger repositories on top of a key-value
// world state. One generic Repository serves every record kind; the kind's
// codec decides the key prefix and the stored shape.
package kvrepo

import (
	"context"
	"errors"

	"assettransfer/internal/adapters/out/codec"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/ports"
	"assettransfer/internal/pkg/errs"
)

// Entity is what a record type must offer to be stored by Repository.
type Entity[E any] interface {
	ID() string
	Holder() string
	TransferTo(newHolder string) (E, error)
	Validate() error
}

// Repository implements ports.Repository for one kind.
type Repository[E Entity[E]] struct {
	store ports.KeyValueStore
	codec codec.Codec[E]
}

// NewRepository creates a repository reading and writing through store.
func NewRepository[E Entity[E]](store ports.KeyValueStore, c codec.Codec[E]) *Repository[E] {
	return &Repository[E]{
		store: store,
		codec: c,
	}
}

// Add stores a new record.
func (r *Repository[E]) Add(ctx context.Context, entity E) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	key := r.key(entity.ID())
	exists, err := r.exists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError(r.kind().String(), entity.ID())
	}

	return r.put(ctx, key, entity)
}

// Get loads a record by ID.
func (r *Repository[E]) Get(ctx context.Context, id string) (E, error) {
	var zero E

	key := r.key(id)
	data, err := r.store.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if len(data) == 0 {
		return zero, errs.NewObjectNotFoundError(r.kind().String(), id)
	}

	entity, err := r.codec.Decode(key, data)
	if err != nil {
		return zero, err
	}
	if entity.ID() != id {
		return zero, errs.NewDecodeError(key, errors.New("record identifier does not match its key"))
	}
	return entity, nil
}

// Update overwrites an existing record.
func (r *Repository[E]) Update(ctx context.Context, entity E) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	key := r.key(entity.ID())
	if err := r.mustExist(ctx, key, entity.ID()); err != nil {
		return err
	}

	return r.put(ctx, key, entity)
}

// Delete removes an existing record.
func (r *Repository[E]) Delete(ctx context.Context, id string) error {
	key := r.key(id)
	if err := r.mustExist(ctx, key, id); err != nil {
		return err
	}

	return r.store.Delete(ctx, key)
}

// Exists reports whether a non-empty value is stored for id.
func (r *Repository[E]) Exists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, r.key(id))
}

// Transfer hands the record over to newHolder and returns the previous holder.
func (r *Repository[E]) Transfer(ctx context.Context, id, newHolder string) (string, error) {
	current, err := r.Get(ctx, id)
	if err != nil {
		return "", err
	}

	previous := current.Holder()
	moved, err := current.TransferTo(newHolder)
	if err != nil {
		return "", err
	}

	if err = r.put(ctx, r.key(id), moved); err != nil {
		return "", err
	}
	return previous, nil
}

// GetAll scans the kind's key range. Keys of other kinds are outside the
// range, so every returned entry must decode.
func (r *Repository[E]) GetAll(ctx context.Context) ([]E, error) {
	start, end := r.kind().Range()
	entries, err := r.store.ScanRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	entities := make([]E, 0, len(entries))
	for _, entry := range entries {
		if len(entry.Value) == 0 {
			continue
		}
		entity, decodeErr := r.codec.Decode(entry.Key, entry.Value)
		if decodeErr != nil {
			return nil, decodeErr
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func (r *Repository[E]) kind() kernel.Kind {
	return r.codec.Kind()
}

func (r *Repository[E]) key(id string) string {
	return r.kind().Key(id)
}

func (r *Repository[E]) exists(ctx context.Context, key string) (bool, error) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return len(data) > 0, nil
}

func (r *Repository[E]) mustExist(ctx context.Context, key, id string) error {
	exists, err := r.exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError(r.kind().String(), id)
	}
	return nil
}

func (r *Repository[E]) put(ctx context.Context, key string, entity E) error {
	data, err := r.codec.Encode(entity)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, key, data)
}
