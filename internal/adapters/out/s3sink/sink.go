// Package s3sink writes world-state snapshots to an S3-compatible bucket
// (AWS S3 or MinIO).
package s3sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"assettransfer/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	keyPrefix       = "snapshots/"
	keyTimeLayout   = "20060102T150405Z"
	contentType     = "application/json"
	defaultRegion   = "us-east-1"
	takenAtMetadata = "taken-at"
)

var _ ports.SnapshotSink = (*Sink)(nil)

// Config holds the bucket coordinates. Credentials come from the default
// AWS chain.
type Config struct {
	Bucket   string
	Region   string
	Endpoint string // optional, enables path-style addressing for MinIO
}

// Putter is the part of *s3.Client the sink needs.
type Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Sink struct {
	client Putter
	bucket string
}

// New loads the default AWS configuration and builds a sink on it.
func New(ctx context.Context, cfg Config) (*Sink, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewSink(client, cfg.Bucket), nil
}

func NewSink(client Putter, bucket string) *Sink {
	return &Sink{client: client, bucket: bucket}
}

type snapshotEntry struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type snapshotDocument struct {
	TakenAt time.Time       `json:"takenAt"`
	Entries []snapshotEntry `json:"entries"`
}

// Store uploads the snapshot as one JSON document and returns its object key.
func (s *Sink) Store(ctx context.Context, snapshot ports.Snapshot) (string, error) {
	body, err := encode(snapshot)
	if err != nil {
		return "", err
	}

	key := ObjectKey(snapshot.TakenAt, uuid.New())
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		Metadata:    map[string]string{takenAtMetadata: snapshot.TakenAt.UTC().Format(time.RFC3339)},
	})
	if err != nil {
		return "", fmt.Errorf("put snapshot %s: %w", key, err)
	}
	return key, nil
}

// ObjectKey names a snapshot: snapshots/<UTC timestamp>-<uuid>.json.
func ObjectKey(takenAt time.Time, id uuid.UUID) string {
	return keyPrefix + takenAt.UTC().Format(keyTimeLayout) + "-" + id.String() + ".json"
}

func encode(snapshot ports.Snapshot) ([]byte, error) {
	doc := snapshotDocument{
		TakenAt: snapshot.TakenAt.UTC(),
		Entries: make([]snapshotEntry, 0, len(snapshot.Entries)),
	}
	for _, e := range snapshot.Entries {
		value := json.RawMessage(e.Value)
		if !json.Valid(e.Value) {
			// keep undecodable records visible instead of failing the snapshot
			quoted, err := json.Marshal(string(e.Value))
			if err != nil {
				return nil, fmt.Errorf("encode %s: %w", e.Key, err)
			}
			value = quoted
		}
		doc.Entries = append(doc.Entries, snapshotEntry{Key: e.Key, Value: value})
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return body, nil
}
