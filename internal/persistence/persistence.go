package persistence

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/markusressel/fanctrl/internal/statelog"
	"github.com/markusressel/fanctrl/internal/ui"
	bolt "go.etcd.io/bbolt"
	"golang.org/x/exp/slices"
	"os"
	"path/filepath"
	"time"
)

const (
	BucketStateRecords = "stateRecords"
)

// Persistence stores the history of state records
type Persistence interface {
	Init() error

	SaveStateRecord(record statelog.Record) (err error)
	// LoadStateRecords returns up to limit of the most recent records, oldest first.
	// A limit <= 0 returns all records.
	LoadStateRecords(limit int) ([]statelog.Record, error)
	DeleteStateRecords() (err error)

	// Record implements statelog.Sink
	Record(record statelog.Record) error
}

type persistence struct {
	dbPath     string
	maxRecords int
}

// NewPersistence creates a persistence that keeps at most maxRecords state records,
// dropping the oldest ones first. A maxRecords <= 0 keeps all records.
func NewPersistence(dbPath string, maxRecords int) Persistence {
	p := &persistence{
		dbPath:     dbPath,
		maxRecords: maxRecords,
	}
	return p
}

func (p persistence) Init() (err error) {
	// get parent path of dbPath
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		// create directory
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 1 * time.Minute})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// records are keyed by their timestamp followed by a sequence number,
// so the bucket is sorted chronologically and records with equal timestamps are kept
func recordKey(record statelog.Record, sequence uint64) []byte {
	key := make([]byte, 16)
	binary.BigEndian.PutUint64(key, uint64(record.Timestamp.UnixNano()))
	binary.BigEndian.PutUint64(key[8:], sequence)
	return key
}

func (p persistence) Record(record statelog.Record) error {
	return p.SaveStateRecord(record)
}

// SaveStateRecord appends the given record to the history
func (p persistence) SaveStateRecord(record statelog.Record) (err error) {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketStateRecords))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		sequence, err := b.NextSequence()
		if err != nil {
			return err
		}
		err = b.Put(recordKey(record, sequence), data)
		if err != nil {
			return err
		}
		return p.trim(b)
	})
}

// trim deletes the oldest records exceeding maxRecords
func (p persistence) trim(b *bolt.Bucket) error {
	if p.maxRecords <= 0 {
		return nil
	}

	count := 0
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		count++
	}

	excess := count - p.maxRecords
	for k, _ := c.First(); k != nil && excess > 0; k, _ = c.First() {
		if err := b.Delete(k); err != nil {
			return err
		}
		excess--
	}
	return nil
}

func (p persistence) LoadStateRecords(limit int) ([]statelog.Record, error) {
	db, err := p.openPersistence()
	if err != nil {
		return nil, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	var result []statelog.Record
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketStateRecords))
		if b == nil {
			return nil
		}

		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(result) >= limit {
				break
			}

			var record statelog.Record
			err := json.Unmarshal(v, &record)
			if err != nil {
				// if we cannot read the saved data, delete it
				ui.Warning("Unable to unmarshal saved state record: %v", err)
				if err := c.Delete(); err != nil {
					ui.Error("Unable to delete corrupt state record: %v", err)
				}
				continue
			}
			result = append(result, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// oldest first
	slices.Reverse(result)
	return result, nil
}

func (p persistence) DeleteStateRecords() error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketStateRecords))
		if b == nil {
			// no bucket yet
			return nil
		}
		return tx.DeleteBucket([]byte(BucketStateRecords))
	})
}
