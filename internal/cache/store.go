package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed cache with per-entry TTL and byte-capacity
// LRU eviction. Keys are opaque digests of a namespace plus the call
// parameters, so the same upstream request always maps to the same entry.
type Store struct {
	db       *sql.DB
	maxBytes int64
	mu       sync.Mutex
	now      func() time.Time
}

// Stats summarizes the current cache contents.
type Stats struct {
	Count      int
	TotalBytes int64
	AvgBytes   int64
	MaxBytes   int64
}

// Open opens (or creates) the cache database and runs migrations.
func Open(dbPath string, maxSizeMB int) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{
		db:       db,
		maxBytes: int64(maxSizeMB) * 1024 * 1024,
		now:      time.Now,
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] cache store opened: %s (max %dMB)", dbPath, maxSizeMB)
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cache (
			key         TEXT PRIMARY KEY,
			value       TEXT NOT NULL,
			created_at  INTEGER NOT NULL,
			accessed_at INTEGER NOT NULL,
			ttl_hours   INTEGER NOT NULL,
			size_bytes  INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_accessed_at ON cache(accessed_at)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:30], err)
		}
	}
	return nil
}

// cacheKey hashes the namespace and a canonical serialization of params.
// json.Marshal emits map keys in sorted order, so equal param sets always
// produce equal keys.
func cacheKey(namespace string, params map[string]any) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("marshal cache params: %w", err)
	}
	sum := sha256.Sum256([]byte(namespace + ":" + string(raw)))
	return hex.EncodeToString(sum[:]), nil
}

// Get returns the cached value for the namespace and params, or ok=false
// on a miss. A stale entry is deleted on read; a live read refreshes the
// entry's last-access time.
func (s *Store) Get(namespace string, ttlHours int, params map[string]any) (json.RawMessage, bool, error) {
	key, err := cacheKey(namespace, params)
	if err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, false, fmt.Errorf("begin cache get: %w", err)
	}
	defer tx.Rollback()

	var value string
	var createdAt int64
	var storedTTL int
	err = tx.QueryRow(
		`SELECT value, created_at, ttl_hours FROM cache WHERE key = ?`, key,
	).Scan(&value, &createdAt, &storedTTL)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query cache: %w", err)
	}

	now := s.now()
	age := now.Sub(time.Unix(createdAt, 0))
	if age >= time.Duration(storedTTL)*time.Hour {
		if _, err := tx.Exec(`DELETE FROM cache WHERE key = ?`, key); err != nil {
			return nil, false, fmt.Errorf("delete stale entry: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("commit stale delete: %w", err)
		}
		log.Printf("[INFO] cache expired: %s (age %s)", namespace, age.Round(time.Second))
		return nil, false, nil
	}

	if _, err := tx.Exec(`UPDATE cache SET accessed_at = ? WHERE key = ?`, now.Unix(), key); err != nil {
		return nil, false, fmt.Errorf("touch entry: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit cache get: %w", err)
	}

	log.Printf("[INFO] cache hit: %s (age %s)", namespace, age.Round(time.Second))
	return json.RawMessage(value), true, nil
}

// Set serializes value and stores it under the namespace and params,
// evicting least-recently-accessed entries first when the configured byte
// ceiling would be exceeded.
func (s *Store) Set(value any, namespace string, ttlHours int, params map[string]any) error {
	key, err := cacheKey(namespace, params)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	size := int64(len(raw))

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache set: %w", err)
	}
	defer tx.Rollback()

	if err := s.ensureCapacity(tx, size); err != nil {
		return err
	}

	now := s.now().Unix()
	_, err = tx.Exec(`INSERT OR REPLACE INTO cache
		(key, value, created_at, accessed_at, ttl_hours, size_bytes)
		VALUES (?,?,?,?,?,?)`,
		key, string(raw), now, now, ttlHours, size,
	)
	if err != nil {
		return fmt.Errorf("insert cache entry: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache set: %w", err)
	}

	log.Printf("[INFO] cache set: %s (%d bytes, TTL %dh)", namespace, size, ttlHours)
	return nil
}

// ensureCapacity deletes entries in ascending last-access order until the
// new entry fits under the byte ceiling.
func (s *Store) ensureCapacity(tx *sql.Tx, newSize int64) error {
	var total sql.NullInt64
	if err := tx.QueryRow(`SELECT SUM(size_bytes) FROM cache`).Scan(&total); err != nil {
		return fmt.Errorf("query cache size: %w", err)
	}
	if total.Int64+newSize <= s.maxBytes {
		return nil
	}

	need := total.Int64 + newSize - s.maxBytes
	rows, err := tx.Query(`SELECT key, size_bytes FROM cache ORDER BY accessed_at ASC`)
	if err != nil {
		return fmt.Errorf("query eviction candidates: %w", err)
	}

	type victim struct {
		key  string
		size int64
	}
	var victims []victim
	var freed int64
	for rows.Next() {
		var v victim
		if err := rows.Scan(&v.key, &v.size); err != nil {
			rows.Close()
			return fmt.Errorf("scan eviction candidate: %w", err)
		}
		victims = append(victims, v)
		freed += v.size
		if freed >= need {
			break
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate eviction candidates: %w", err)
	}

	for _, v := range victims {
		if _, err := tx.Exec(`DELETE FROM cache WHERE key = ?`, v.key); err != nil {
			return fmt.Errorf("evict entry: %w", err)
		}
		log.Printf("[INFO] cache evicted: %s (%d bytes)", v.key[:12], v.size)
	}
	return nil
}

// Clear deletes every entry. Keys are opaque digests, so there is no
// namespace-scoped variant.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM cache`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	log.Println("[INFO] cache cleared")
	return nil
}

// PurgeExpired deletes every entry whose TTL has elapsed and returns the
// number of rows removed.
func (s *Store) PurgeExpired() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().Unix()
	res, err := s.db.Exec(
		`DELETE FROM cache WHERE ? - created_at >= ttl_hours * 3600`, now,
	)
	if err != nil {
		return 0, fmt.Errorf("purge expired: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// GetStats reports entry count and byte totals.
func (s *Store) GetStats() (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	var total sql.NullInt64
	var avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*), SUM(size_bytes), AVG(size_bytes) FROM cache`,
	).Scan(&count, &total, &avg)
	if err != nil {
		return Stats{}, fmt.Errorf("query cache stats: %w", err)
	}
	return Stats{
		Count:      count,
		TotalBytes: total.Int64,
		AvgBytes:   int64(avg.Float64),
		MaxBytes:   s.maxBytes,
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	log.Println("[INFO] closing cache store")
	return s.db.Close()
}
