package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/boltdb/bolt"
)

var idempotencyBucket = []byte("idempotency")

// StoredResponse is the first response produced for an Idempotency-Key.
type StoredResponse struct {
	StatusCode  int       `json:"statusCode"`
	ContentType string    `json:"contentType"`
	Body        []byte    `json:"body"`
	// Fingerprint identifies the request that produced the response.
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"createdAt"`
}

// boltIdempotencyStore keeps responses in a single bolt bucket keyed by the
// raw Idempotency-Key header value.
type boltIdempotencyStore struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewBoltIdempotencyStore opens (creating if needed) the bolt file at path.
func NewBoltIdempotencyStore(path string, log *logger.Logger) (IdempotencyStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltIdempotencyStore").Str("path", path).Msg("error opening bolt file")
		return nil, fmt.Errorf("%w: %w", ErrOpeningIdempotencyStore, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(idempotencyBucket)
		return err
	})
	if err != nil {
		db.Close()
		log.Err(err).Str("func", "NewBoltIdempotencyStore").Msg("error creating bucket")
		return nil, fmt.Errorf("%w: %w", ErrOpeningIdempotencyStore, err)
	}

	log.Debug().Str("func", "NewBoltIdempotencyStore").Str("path", path).Msg("idempotency store opened")
	return &boltIdempotencyStore{db: db, logger: log}, nil
}

func (s *boltIdempotencyStore) Get(ctx context.Context, key string) (StoredResponse, bool, error) {
	var (
		resp  StoredResponse
		found bool
	)

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(idempotencyBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		found = true
		// raw is only valid inside the transaction; Unmarshal copies it
		return json.Unmarshal(raw, &resp)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*boltIdempotencyStore.Get").Msg("error reading stored response")
		return StoredResponse{}, false, fmt.Errorf("%w: %w", ErrReadingIdempotencyStore, err)
	}

	return resp, found, nil
}

// Save keeps the first response for key; later saves for the same key are
// ignored.
func (s *boltIdempotencyStore) Save(ctx context.Context, key string, resp StoredResponse) error {
	if resp.CreatedAt.IsZero() {
		resp.CreatedAt = time.Now().UTC()
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingIdempotencyStore, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(idempotencyBucket)
		if bucket.Get([]byte(key)) != nil {
			return nil
		}
		return bucket.Put([]byte(key), raw)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*boltIdempotencyStore.Save").Msg("error saving response")
		return fmt.Errorf("%w: %w", ErrWritingIdempotencyStore, err)
	}

	return nil
}

func (s *boltIdempotencyStore) Close() error {
	return s.db.Close()
}
