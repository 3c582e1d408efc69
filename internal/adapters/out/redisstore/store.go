// Package redisstore keeps the world state in Redis. Values live under
// prefixed string keys; a sorted set with equal scores indexes the keys so
// range scans run in lexical order with ZRANGEBYLEX.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"assettransfer/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	defaultNamespace = "ledger"
	indexSuffix      = ":index"
	valueSuffix      = ":state:"
)

var _ ports.Store = (*Store)(nil)

type Store struct {
	client    redis.UniversalClient
	namespace string
}

// NewStore keeps its keys under namespace. An empty namespace means "ledger".
func NewStore(client redis.UniversalClient, namespace string) *Store {
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &Store{client: client, namespace: namespace}
}

func (s *Store) indexKey() string {
	return s.namespace + indexSuffix
}

func (s *Store) valueKey(key string) string {
	return s.namespace + valueSuffix + key
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.valueKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return s.Apply(ctx, []ports.Mutation{{Op: ports.OpPut, Key: key, Value: value}})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.Apply(ctx, []ports.Mutation{{Op: ports.OpDelete, Key: key}})
}

func (s *Store) ScanRange(ctx context.Context, start, end string) ([]ports.KeyValue, error) {
	bounds := &redis.ZRangeBy{Min: "-", Max: "+"}
	if start != "" {
		bounds.Min = "[" + start
	}
	if end != "" {
		bounds.Max = "(" + end
	}

	keys, err := s.client.ZRangeByLex(ctx, s.indexKey(), bounds).Result()
	if err != nil {
		return nil, fmt.Errorf("scan [%q, %q): %w", start, end, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	valueKeys := make([]string, len(keys))
	for i, key := range keys {
		valueKeys[i] = s.valueKey(key)
	}
	values, err := s.client.MGet(ctx, valueKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("scan [%q, %q): %w", start, end, err)
	}

	entries := make([]ports.KeyValue, 0, len(keys))
	for i, raw := range values {
		value, ok := raw.(string)
		if !ok {
			// indexed but the value is gone
			continue
		}
		entries = append(entries, ports.KeyValue{Key: keys[i], Value: []byte(value)})
	}
	return entries, nil
}

// Apply sends the batch as one MULTI/EXEC block. Redis does not roll back
// failed commands inside EXEC, so the batch is validated up front.
func (s *Store) Apply(ctx context.Context, mutations []ports.Mutation) error {
	for _, m := range mutations {
		if m.Op != ports.OpPut && m.Op != ports.OpDelete {
			return fmt.Errorf("apply %q: unsupported operation %s", m.Key, m.Op)
		}
	}
	if len(mutations) == 0 {
		return nil
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, m := range mutations {
			if m.Op == ports.OpDelete {
				pipe.Del(ctx, s.valueKey(m.Key))
				pipe.ZRem(ctx, s.indexKey(), m.Key)
				continue
			}
			pipe.Set(ctx, s.valueKey(m.Key), m.Value, 0)
			pipe.ZAdd(ctx, s.indexKey(), redis.Z{Score: 0, Member: m.Key})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("apply %d mutations: %w", len(mutations), err)
	}
	return nil
}
