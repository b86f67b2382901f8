package detect

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const detectionBucketName = "detections"

// DB defines the interface for detection history persistence
type DB interface {
	// SaveDetection saves a detection record
	SaveDetection(detection *Detection) error

	// GetDetection retrieves a detection by ID
	GetDetection(id string) (*Detection, error)

	// ListDetections returns all recorded detections
	ListDetections() ([]*Detection, error)

	// DeleteDetection removes a detection record
	DeleteDetection(id string) error

	// Close closes the database connection
	Close() error
}

// BoltDB implements the DB interface using BoltDB
type BoltDB struct {
	db *bbolt.DB
}

// NewBoltDB creates a new BoltDB instance
func NewBoltDB(path string) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(detectionBucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// SaveDetection saves a detection record
func (b *BoltDB) SaveDetection(detection *Detection) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(detectionBucketName))
		data, err := json.Marshal(detection)
		if err != nil {
			return fmt.Errorf("marshaling detection: %w", err)
		}
		return bucket.Put([]byte(detection.ID), data)
	})
}

// GetDetection retrieves a detection by ID
func (b *BoltDB) GetDetection(id string) (*Detection, error) {
	var detection *Detection
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(detectionBucketName))
		data := bucket.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("detection not found: %s", id)
		}
		return json.Unmarshal(data, &detection)
	})
	if err != nil {
		return nil, err
	}
	return detection, nil
}

// ListDetections returns all recorded detections
func (b *BoltDB) ListDetections() ([]*Detection, error) {
	detections := make([]*Detection, 0)
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(detectionBucketName))
		return bucket.ForEach(func(k, v []byte) error {
			var detection Detection
			if err := json.Unmarshal(v, &detection); err != nil {
				return fmt.Errorf("unmarshaling detection: %w", err)
			}
			detections = append(detections, &detection)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return detections, nil
}

// DeleteDetection removes a detection record
func (b *BoltDB) DeleteDetection(id string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(detectionBucketName))
		return bucket.Delete([]byte(id))
	})
}

// Close closes the database connection
func (b *BoltDB) Close() error {
	return b.db.Close()
}
