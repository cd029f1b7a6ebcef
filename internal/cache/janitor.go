package cache

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Janitor periodically removes expired entries so abandoned namespaces do
// not occupy capacity until a read happens to touch them.
type Janitor struct {
	cron  *cron.Cron
	store *Store
}

// NewJanitor creates a janitor for the given store.
func NewJanitor(store *Store) *Janitor {
	return &Janitor{
		cron:  cron.New(cron.WithSeconds()),
		store: store,
	}
}

// Register schedules the expired-entry sweep. spec is a six-field cron
// expression, e.g. "0 0 * * * *" for hourly.
func (j *Janitor) Register(spec string) error {
	if _, err := j.cron.AddFunc(spec, j.sweep); err != nil {
		return fmt.Errorf("register cache sweep: %w", err)
	}
	return nil
}

// Start starts the sweep schedule.
func (j *Janitor) Start() {
	j.cron.Start()
	log.Println("[INFO] cache janitor started")
}

// Stop stops the sweep schedule gracefully.
func (j *Janitor) Stop() {
	j.cron.Stop()
	log.Println("[INFO] cache janitor stopped")
}

func (j *Janitor) sweep() {
	n, err := j.store.PurgeExpired()
	if err != nil {
		log.Printf("[ERROR] cache sweep: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[INFO] cache sweep removed %d expired entries", n)
	}
}
