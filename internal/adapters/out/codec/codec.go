// Package codec converts ledger records to and from their canonical JSON form.
//
// Record structs declare their fields in alphabetical order of the JSON names,
// so encoding/json writes keys sorted and two equal records always produce
// the same bytes. Decoding is strict: unknown fields, trailing data and
// records that fail domain validation are reported as errs.DecodeError.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/pkg/errs"
)

// Codec encodes the entities of one kind.
type Codec[E any] interface {
	Kind() kernel.Kind
	Encode(entity E) ([]byte, error)
	Decode(key string, data []byte) (E, error)
}

// recordCodec implements Codec with a record type R mirroring entity E.
type recordCodec[E any, R any] struct {
	kind       kernel.Kind
	fromDomain func(E) R
	toDomain   func(R) (E, error)
}

func (c recordCodec[E, R]) Kind() kernel.Kind {
	return c.kind
}

func (c recordCodec[E, R]) Encode(entity E) ([]byte, error) {
	data, err := json.Marshal(c.fromDomain(entity))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.kind, err)
	}
	return data, nil
}

func (c recordCodec[E, R]) Decode(key string, data []byte) (E, error) {
	var zero E

	record, err := decodeStrict[R](data)
	if err != nil {
		return zero, errs.NewDecodeError(key, err)
	}

	entity, err := c.toDomain(record)
	if err != nil {
		return zero, errs.NewDecodeError(key, err)
	}
	return entity, nil
}

func decodeStrict[R any](data []byte) (R, error) {
	var record R

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&record); err != nil {
		return record, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return record, errors.New("unexpected data after record")
	}
	return record, nil
}
