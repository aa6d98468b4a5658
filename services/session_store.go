package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"mindhuddle_server/models"

	badger "github.com/dgraph-io/badger/v4"
)

// SessionStore persists the authenticated profile snapshot to local
// on-device storage under a single key. It is the only durable state in
// the system; everything else reseeds from fixtures on restart.
type SessionStore struct {
	db *badger.DB
}

// NewSessionStore opens (or creates) the local session database at path.
func NewSessionStore(path string) (*SessionStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return &SessionStore{db: db}, nil
}

// Save writes the profile snapshot. Called on login, signup, and every
// identity mutation.
func (ss *SessionStore) Save(profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}
	err = ss.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(models.SessionKey), data)
	})
	if err != nil {
		log.Printf("❌ Failed to persist session snapshot: %v", err)
		return err
	}
	return nil
}

// Load returns the stored snapshot, or (nil, nil) when none exists.
func (ss *SessionStore) Load() (*models.UserProfile, error) {
	var profile *models.UserProfile
	err := ss.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(models.SessionKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var p models.UserProfile
			if err := json.Unmarshal(val, &p); err != nil {
				return err
			}
			profile = &p
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}
	return profile, nil
}

// Clear removes the snapshot key. Called on logout.
func (ss *SessionStore) Clear() error {
	return ss.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(models.SessionKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// Close releases the underlying database.
func (ss *SessionStore) Close() error {
	return ss.db.Close()
}
