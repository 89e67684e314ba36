package backup

import (
	"fmt"
	"log"
	"time"
)

// Scheduler runs automatic backups on a fixed interval
type Scheduler struct {
	Manager        *Manager
	DBPath         string
	Retention      int
	BackupInterval time.Duration

	ticker   *time.Ticker
	done     chan bool
	stopChan chan bool
}

// NewScheduler creates a scheduler with a daily default interval
func NewScheduler(manager *Manager, dbPath string, retention int) *Scheduler {
	return &Scheduler{
		Manager:        manager,
		DBPath:         dbPath,
		Retention:      retention,
		BackupInterval: 24 * time.Hour,
		done:           make(chan bool, 1),
		stopChan:       make(chan bool, 1),
	}
}

// Start begins the backup loop in a goroutine. The returned channel
// receives a value once the scheduler has stopped.
func (s *Scheduler) Start() chan bool {
	go func() {
		s.ticker = time.NewTicker(s.BackupInterval)
		defer s.ticker.Stop()

		// One backup right away so a fresh install is covered
		if err := s.runBackup(); err != nil {
			log.Printf("initial backup failed: %v\n", err)
		}

		for {
			select {
			case <-s.stopChan:
				s.done <- true
				return
			case <-s.ticker.C:
				if err := s.runBackup(); err != nil {
					log.Printf("scheduled backup failed: %v\n", err)
				}
			}
		}
	}()

	return s.done
}

// Stop stops the backup scheduler
func (s *Scheduler) Stop() {
	select {
	case s.stopChan <- true:
	default:
	}
}

func (s *Scheduler) runBackup() error {
	if _, err := s.Manager.CreateBackup(s.DBPath); err != nil {
		return fmt.Errorf("backup creation failed: %w", err)
	}
	if err := s.Manager.Prune(s.Retention); err != nil {
		return fmt.Errorf("backup pruning failed: %w", err)
	}
	return nil
}

// SetInterval overrides the backup interval
func (s *Scheduler) SetInterval(interval time.Duration) {
	s.BackupInterval = interval
}
