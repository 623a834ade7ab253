package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const defaultRetries = 5

// Store adds JSON (de)serialization and default fallback on top of a Backend.
// Read failures never reach callers: they are logged and the default is
// returned. Write failures are reported as false.
type Store struct {
	backend Backend
	log     logrus.FieldLogger
	retries int
}

func New(b Backend, log logrus.FieldLogger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{backend: b, log: log, retries: defaultRetries}
}

// Get decodes the value stored under key. A missing key, a backend error or
// corrupt JSON all yield def.
func Get[T any](ctx context.Context, s *Store, key string, def T) T {
	data, _, err := s.backend.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.WithError(err).WithField("key", key).Error("kvstore: read failed")
		}
		return def
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.WithError(err).WithField("key", key).Error("kvstore: corrupt value")
		return def
	}
	return v
}

// Set overwrites key with the JSON encoding of v.
func (s *Store) Set(ctx context.Context, key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Error("kvstore: encode failed")
		return false
	}
	if _, err := s.backend.Write(ctx, key, data, AnyVersion); err != nil {
		s.log.WithError(err).WithField("key", key).Error("kvstore: write failed")
		return false
	}
	return true
}

// Remove deletes key.
func (s *Store) Remove(ctx context.Context, key string) bool {
	if err := s.backend.Delete(ctx, key); err != nil {
		s.log.WithError(err).WithField("key", key).Error("kvstore: delete failed")
		return false
	}
	return true
}

// Update runs a read-modify-write cycle against key. fn receives the current
// value (the zero T when the key is absent) and mutates it in place; returning
// an error aborts without writing. The write is conditional on the version
// that was read, and the cycle is retried when another writer got there first.
func Update[T any](ctx context.Context, s *Store, key string, fn func(*T) error) error {
	for attempt := 0; attempt < s.retries; attempt++ {
		data, version, err := s.backend.Read(ctx, key)
		var v T
		switch {
		case errors.Is(err, ErrNotFound):
			version = 0
		case err != nil:
			return fmt.Errorf("read %s: %w", key, err)
		default:
			if err := json.Unmarshal(data, &v); err != nil {
				// A corrupt document is replaced rather than wedging every writer.
				s.log.WithError(err).WithField("key", key).Warn("kvstore: discarding corrupt value")
				var zero T
				v = zero
			}
		}
		if err := fn(&v); err != nil {
			return err
		}
		out, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		_, err = s.backend.Write(ctx, key, out, version)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return fmt.Errorf("write %s: %w", key, err)
		}
		s.log.WithFields(logrus.Fields{"key": key, "attempt": attempt + 1}).Debug("kvstore: version conflict, retrying")
	}
	return ErrVersionConflict
}
