package store

import (
	"errors"
	"fmt"

	"github.com/anyswap/stobject/log"
	"github.com/anyswap/stobject/stobject"
)

// ErrRecordNotFound is returned when no record is stored under a hash.
var ErrRecordNotFound = errors.New("record not found")

var recordKeyPrefix = []byte("r")

func recordKey(h stobject.Hash256) []byte {
	return append(append([]byte{}, recordKeyPrefix...), h[:]...)
}

// RecordDB stores canonical record encodings keyed by their prefixed hash.
type RecordDB struct {
	db      KeyValueStore
	prefix  stobject.HashPrefix
	decoder *stobject.Decoder
}

// NewRecordDB keys records by Hash(prefix) and reads them back with d.
// A nil d uses the default decoder.
func NewRecordDB(db KeyValueStore, prefix stobject.HashPrefix, d *stobject.Decoder) *RecordDB {
	if d == nil {
		d = stobject.NewDecoder()
	}
	return &RecordDB{db: db, prefix: prefix, decoder: d}
}

// Prefix returns the hash prefix records are keyed by.
func (rdb *RecordDB) Prefix() stobject.HashPrefix {
	return rdb.prefix
}

func (rdb *RecordDB) encode(r *stobject.Record) (stobject.Hash256, []byte, error) {
	b, err := r.Bytes()
	if err != nil {
		return stobject.Hash256{}, nil, err
	}
	h, err := r.Hash(rdb.prefix)
	if err != nil {
		return stobject.Hash256{}, nil, err
	}
	return h, b, nil
}

// Put stores r and returns the hash it is keyed by.
func (rdb *RecordDB) Put(r *stobject.Record) (stobject.Hash256, error) {
	h, b, err := rdb.encode(r)
	if err != nil {
		return h, err
	}
	if err := rdb.db.Put(recordKey(h), b); err != nil {
		return h, err
	}
	log.Debug("stored record", "hash", h, "size", len(b))
	return h, nil
}

// PutAll stores every record in one batch. Nothing is written on error.
func (rdb *RecordDB) PutAll(records []*stobject.Record) ([]stobject.Hash256, error) {
	b := rdb.db.NewBatch()
	hashes := make([]stobject.Hash256, 0, len(records))
	for i, r := range records {
		h, enc, err := rdb.encode(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err := b.Put(recordKey(h), enc); err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	if err := b.Write(); err != nil {
		return nil, err
	}
	log.Info("stored records", "count", len(records), "bytes", b.ValueSize())
	return hashes, nil
}

// GetBytes returns the stored encoding under h.
func (rdb *RecordDB) GetBytes(h stobject.Hash256) ([]byte, error) {
	b, err := rdb.db.Get(recordKey(h))
	if IsNotFoundErr(err) {
		return nil, fmt.Errorf("%w: %v", ErrRecordNotFound, h)
	}
	return b, err
}

// Get decodes the record stored under h, bound to t when t is not nil.
func (rdb *RecordDB) Get(h stobject.Hash256, t *stobject.Template) (*stobject.Record, error) {
	b, err := rdb.GetBytes(h)
	if err != nil {
		return nil, err
	}
	return rdb.decoder.Decode(b, t)
}

// GetFormat decodes the record under h with the format its discriminator
// field names.
func (rdb *RecordDB) GetFormat(h stobject.Hash256, fs *stobject.Formats) (*stobject.Record, error) {
	b, err := rdb.GetBytes(h)
	if err != nil {
		return nil, err
	}
	return fs.DecodeWith(rdb.decoder, b)
}

// Has reports whether a record is stored under h.
func (rdb *RecordDB) Has(h stobject.Hash256) (bool, error) {
	return rdb.db.Has(recordKey(h))
}

// Delete removes the record stored under h.
func (rdb *RecordDB) Delete(h stobject.Hash256) error {
	return rdb.db.Delete(recordKey(h))
}

// Each calls fn with every stored hash and encoding in hash order. It stops
// at the first error fn returns.
func (rdb *RecordDB) Each(fn func(h stobject.Hash256, b []byte) error) error {
	it := rdb.db.NewIterator(recordKeyPrefix, nil)
	defer it.Release()
	for it.Next() {
		var h stobject.Hash256
		key := it.Key()
		if len(key) != len(recordKeyPrefix)+len(h) {
			continue
		}
		copy(h[:], key[len(recordKeyPrefix):])
		b := append([]byte(nil), it.Value()...)
		if err := fn(h, b); err != nil {
			return err
		}
	}
	return it.Error()
}
