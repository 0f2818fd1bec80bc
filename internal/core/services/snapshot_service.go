package services

import (
	"context"
	"log"

	"lendshare/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// SnapshotService periodically logs a storage snapshot (user, item and
// loan counts). Read-only; it never writes through the repositories.
type SnapshotService struct {
	store *repositories.Store
	cron  *cron.Cron
}

// NewSnapshotService creates a snapshot service with the given cron
// schedule (e.g. "@every 5m").
func NewSnapshotService(store *repositories.Store, schedule string) (*SnapshotService, error) {
	s := &SnapshotService{
		store: store,
		cron:  cron.New(),
	}

	if _, err := s.cron.AddFunc(schedule, s.logSnapshot); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron scheduler
func (s *SnapshotService) Start() {
	s.cron.Start()
	log.Println("🚀 SnapshotService started")
}

// Stop stops the cron scheduler
func (s *SnapshotService) Stop() {
	s.cron.Stop()
	log.Println("🛑 SnapshotService stopped")
}

func (s *SnapshotService) logSnapshot() {
	ctx := context.Background()

	users, err := s.store.Users.List(ctx)
	if err != nil {
		log.Printf("⚠️ Snapshot: failed to list users: %v", err)
		return
	}
	items, err := s.store.Items.List(ctx)
	if err != nil {
		log.Printf("⚠️ Snapshot: failed to list items: %v", err)
		return
	}
	loans, err := s.store.Loans.List(ctx)
	if err != nil {
		log.Printf("⚠️ Snapshot: failed to list loans: %v", err)
		return
	}

	onLoan := 0
	for _, item := range items {
		if !item.Available {
			onLoan++
		}
	}

	log.Printf("📊 Snapshot [%s]: %d users | %d items (%d on loan) | %d loans recorded",
		s.store.Backend, len(users), len(items), onLoan, len(loans))
}
