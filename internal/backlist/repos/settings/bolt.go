package settings

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/haukened/backlist/internal/backlist/common/clock"
)

var (
	bucketSettings = []byte("settings")
	bucketMeta     = []byte("meta")

	metaVersion = []byte("version")
	metaUpdated = []byte("updated")
)

// boltStore implements Store on a bbolt database file.
type boltStore struct {
	db  *bbolt.DB
	clk clock.Clock
}

// NewBolt opens (or creates) the database at path and ensures buckets exist.
func NewBolt(path string, clk clock.Clock) (Store, error) {
	if clk == nil {
		clk = clock.RealClock{}
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open settings db %q: %w", path, err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketSettings, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init settings buckets: %w", err)
	}
	return &boltStore{db: db, clk: clk}, nil
}

func (s *boltStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSettings)
		if b == nil {
			return nil
		}
		// bbolt values are only valid inside the transaction; string() copies.
		value = string(b.Get([]byte(key)))
		return nil
	})
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return "", ErrClosed
	}
	return value, err
}

func (s *boltStore) Set(ctx context.Context, key, value string) error {
	return s.Update(ctx, key, func(string) (string, error) { return value, nil })
}

// Update runs fn inside a single write transaction, so concurrent appends to
// the same key are serialized by bbolt and none are lost.
func (s *boltStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSettings)
		next, err := fn(string(b.Get([]byte(key))))
		if err != nil {
			return err
		}
		if err := b.Put([]byte(key), []byte(next)); err != nil {
			return err
		}
		return s.bumpMeta(tx)
	})
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return ErrClosed
	}
	return err
}

func (s *boltStore) bumpMeta(tx *bbolt.Tx) error {
	b := tx.Bucket(bucketMeta)
	var version uint64
	if v := b.Get(metaVersion); len(v) == 8 {
		version = binary.BigEndian.Uint64(v)
	}
	vbuf := make([]byte, 8)
	ubuf := make([]byte, 8)
	binary.BigEndian.PutUint64(vbuf, version+1)
	binary.BigEndian.PutUint64(ubuf, uint64(s.clk.Now().Unix()))
	if err := b.Put(metaVersion, vbuf); err != nil {
		return err
	}
	return b.Put(metaUpdated, ubuf)
}

func (s *boltStore) Stats() Stats {
	st := Stats{}
	_ = s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketSettings); b != nil {
			st.Keys = uint64(b.Stats().KeyN)
		}
		if b := tx.Bucket(bucketMeta); b != nil {
			if v := b.Get(metaVersion); len(v) == 8 {
				st.Version = binary.BigEndian.Uint64(v)
			}
			if v := b.Get(metaUpdated); len(v) == 8 {
				st.UpdatedUnix = int64(binary.BigEndian.Uint64(v))
			}
		}
		return nil
	})
	return st
}

func (s *boltStore) Close() error { return s.db.Close() }

var _ Store = (*boltStore)(nil)
