package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	robfigcron "github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"chorechum/pkg/log"
)

const (
	defaultSchedule    = "@every 15m"
	defaultWindow      = time.Hour
	defaultConcurrency = 4
	sentCacheSize      = 10000
)

// Service periodically looks up chores coming due and notifies their assignees.
type Service struct {
	l         log.Logger
	chores    ChoreSource
	notifier  Notifier
	cfg       Config
	scheduler *robfigcron.Cron
	now       func() time.Time

	// sent remembers chore/due pairs already notified so overlapping windows
	// do not repeat a reminder. The due date is part of the key, so a
	// rescheduled chore is reminded again.
	sent *lru.Cache[string, struct{}]

	mu      sync.Mutex
	entryID robfigcron.EntryID
	started bool
}

func NewService(l log.Logger, chores ChoreSource, notifier Notifier, cfg Config) *Service {
	if cfg.Schedule == "" {
		cfg.Schedule = defaultSchedule
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultWindow
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	sent, _ := lru.New[string, struct{}](sentCacheSize)
	return &Service{
		l:         l,
		chores:    chores,
		notifier:  notifier,
		cfg:       cfg,
		scheduler: robfigcron.New(),
		now:       time.Now,
		sent:      sent,
	}
}

// Start registers the job and starts the scheduler. Runs use ctx for their
// lifetime, so cancelling it aborts in-flight lookups.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("reminder: already started")
	}

	id, err := s.scheduler.AddFunc(s.cfg.Schedule, func() {
		if _, err := s.RunOnce(ctx); err != nil {
			s.l.Errorf(ctx, "reminder.Service: run: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("reminder: invalid schedule %q: %w", s.cfg.Schedule, err)
	}
	s.entryID = id
	s.scheduler.Start()
	s.started = true
	s.l.Infof(ctx, "reminder.Service: started with schedule %q, window %s", s.cfg.Schedule, s.cfg.Window)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	<-s.scheduler.Stop().Done()
	s.scheduler.Remove(s.entryID)
	s.started = false
}

// RunOnce notifies about chores due within the window from now and returns
// how many notifications were sent.
func (s *Service) RunOnce(ctx context.Context) (int, error) {
	from := s.now()
	chores, err := s.chores.DueBetween(ctx, from, from.Add(s.cfg.Window))
	if err != nil {
		return 0, err
	}

	var (
		mu   sync.Mutex
		sent int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for _, d := range chores {
		c := d.Chore
		if c.DueDate == nil {
			continue
		}
		key := c.ID + "|" + c.DueDate.UTC().Format(time.RFC3339)
		if s.sent.Contains(key) {
			continue
		}

		loc := d.Location
		if loc == nil {
			loc = time.UTC
		}
		note := Notification{
			HouseholdID: c.HouseholdID,
			MemberID:    c.AssigneeID,
			ChoreID:     c.ID,
			ChoreName:   c.Name,
			DueDate:     c.DueDate.In(loc),
			RemindAt:    d.RemindAt.In(loc),
			Location:    loc,
			TimeOfDay:   c.TimeOfDay,
			ExactTime:   c.ExactTime,
		}
		g.Go(func() error {
			if err := s.notifier.Notify(gctx, note); err != nil {
				s.l.Warnf(gctx, "reminder.Service: notify chore %s: %v", note.ChoreID, err)
				return nil
			}
			s.sent.Add(key, struct{}{})
			mu.Lock()
			sent++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sent, err
	}
	return sent, nil
}
