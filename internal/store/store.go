package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/reel/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketPrefs = []byte("prefs")
)

// Fixed keys inside the prefs bucket
const (
	KeyFavorites = "favorites"
	KeyHistory   = "history"
)

// recordWrapper is the JSON shape of one favorite.
// Field names follow the catalog's so files written by other clients load.
type recordWrapper struct {
	Kind     string `json:"kind,omitempty"`
	ID       string `json:"imdbID"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Poster   string `json:"Poster"`
	Director string `json:"Director,omitempty"`
	Actors   string `json:"Actors,omitempty"`
	Genre    string `json:"Genre,omitempty"`
	Runtime  string `json:"Runtime,omitempty"`
	Rating   string `json:"imdbRating,omitempty"`
	Plot     string `json:"Plot,omitempty"`
}

// PrefsStore implements domain.PrefsStore using BoltDB.
type PrefsStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory copy of every value read or written
	cache map[string][]byte
}

var _ domain.PrefsStore = (*PrefsStore)(nil)

// NewPrefsStore opens (or creates) the database at dbPath.
// An empty dbPath gives a memory-only store that forgets everything on Close.
func NewPrefsStore(dbPath string) (*PrefsStore, error) {
	if dbPath == "" {
		return &PrefsStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open bolt db: %v", domain.ErrStoreUnavailable, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPrefs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PrefsStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *PrefsStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *PrefsStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *PrefsStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("bucket %q missing", bucket)
		}
		return b.Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// === Favorites ===

func (s *PrefsStore) GetFavorites() ([]domain.Record, bool) {
	var wrappers []recordWrapper
	if !s.get(bucketPrefs, KeyFavorites, &wrappers) {
		return nil, false
	}
	return unwrapRecords(wrappers), true
}

func (s *PrefsStore) SaveFavorites(records []domain.Record) error {
	return s.set(bucketPrefs, KeyFavorites, wrapRecords(records))
}

// === History ===

func (s *PrefsStore) GetHistory() ([]string, bool) {
	var queries []string
	ok := s.get(bucketPrefs, KeyHistory, &queries)
	return queries, ok
}

func (s *PrefsStore) SaveHistory(queries []string) error {
	if queries == nil {
		queries = []string{}
	}
	return s.set(bucketPrefs, KeyHistory, queries)
}

// wrapRecords converts domain records to serializable wrappers
func wrapRecords(records []domain.Record) []recordWrapper {
	wrappers := make([]recordWrapper, 0, len(records))
	for _, r := range records {
		switch v := r.(type) {
		case domain.MovieDetail:
			wrappers = append(wrappers, wrapDetail(v))
		case *domain.MovieDetail:
			wrappers = append(wrappers, wrapDetail(*v))
		default:
			sum := domain.SummaryOf(r)
			wrappers = append(wrappers, recordWrapper{
				Kind:   domain.ItemTypeMovie,
				ID:     sum.ID,
				Title:  sum.Title,
				Year:   sum.Year,
				Poster: sum.Poster,
			})
		}
	}
	return wrappers
}

func wrapDetail(d domain.MovieDetail) recordWrapper {
	return recordWrapper{
		Kind:     domain.ItemTypeDetail,
		ID:       d.ID,
		Title:    d.Title,
		Year:     d.Year,
		Poster:   d.Poster,
		Director: d.Director,
		Actors:   d.Actors,
		Genre:    d.Genre,
		Runtime:  d.Runtime,
		Rating:   d.Rating,
		Plot:     d.Plot,
	}
}

// unwrapRecords converts wrappers back to domain records.
// Untagged wrappers are detail records when any detail field is present.
func unwrapRecords(wrappers []recordWrapper) []domain.Record {
	records := make([]domain.Record, 0, len(wrappers))
	for _, w := range wrappers {
		if w.ID == "" {
			continue
		}
		summary := domain.MovieSummary{ID: w.ID, Title: w.Title, Year: w.Year, Poster: w.Poster}

		kind := w.Kind
		if kind == "" {
			kind = domain.ItemTypeMovie
			if w.Director != "" || w.Actors != "" || w.Genre != "" || w.Runtime != "" || w.Rating != "" || w.Plot != "" {
				kind = domain.ItemTypeDetail
			}
		}

		switch kind {
		case domain.ItemTypeDetail:
			records = append(records, domain.MovieDetail{
				MovieSummary: summary,
				Director:     w.Director,
				Actors:       w.Actors,
				Genre:        w.Genre,
				Runtime:      w.Runtime,
				Rating:       w.Rating,
				Plot:         w.Plot,
			})
		default:
			records = append(records, summary)
		}
	}
	return records
}
