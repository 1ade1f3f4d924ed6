package summary

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// SnapshotKey holds the last settled summary list so a fresh
	// instance can serve something before its first refresh completes.
	SnapshotKey = "summaries:current"

	snapshotTTL = 30 * time.Minute
)

type Service interface {
	// Refresh recomputes every department summary and swaps the list in
	// atomically. Safe to call repeatedly; concurrent calls coalesce.
	Refresh(ctx context.Context) ([]DepartmentSummary, error)
	// Current returns the latest settled list plus an in-progress flag.
	Current(ctx context.Context) ([]DepartmentSummary, bool)
	LastError() error

	// SummaryBoard surface used by the department mutator.
	Names() []string
	AppendProvisional(id, name string, positions []string)
	TriggerRefresh(ctx context.Context)
}

type service struct {
	resolver *Resolver
	metrics  *Calculator
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger

	mu        sync.Mutex
	summaries []DepartmentSummary
	hasResult bool
	running   int
	// generation counters enforce last-write-wins when an older refresh
	// settles after a newer one
	startedGen uint64
	appliedGen uint64
	lastErr    error
}

func NewService(resolver *Resolver, metrics *Calculator, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("summary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("summary.service")
	}
	return &service{
		resolver: resolver,
		metrics:  metrics,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Refresh(ctx context.Context) ([]DepartmentSummary, error) {
	v, err, _ := s.sf.Do("refresh", func() (any, error) {
		return s.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]DepartmentSummary), nil
}

func (s *service) refresh(ctx context.Context) ([]DepartmentSummary, error) {
	s.mu.Lock()
	s.startedGen++
	gen := s.startedGen
	s.running++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running--
		s.mu.Unlock()
	}()

	idents, err := s.resolver.Resolve(ctx)
	if err != nil {
		s.logger.Error("resolve departments failed", zap.Error(err))
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return nil, err
	}

	// Fan out one goroutine per department and wait for all of them.
	// Each slot is owned by exactly one goroutine, so resolver order is
	// preserved and a slow or degraded department never starves another.
	out := make([]DepartmentSummary, len(idents))
	var wg sync.WaitGroup
	for i, ident := range idents {
		wg.Add(1)
		go func(i int, ident DepartmentIdentity) {
			defer wg.Done()
			out[i] = DepartmentSummary{
				ID:             ident.ID,
				Name:           ident.Name,
				Positions:      ident.Positions,
				EmployeeCount:  s.metrics.EmployeeCount(ctx, ident.Name),
				AttendanceRate: s.metrics.AttendanceRate(ctx, ident.Name),
			}
		}(i, ident)
	}
	wg.Wait()

	// A caller disconnect mid-fan-out cancels the repo calls and every
	// metric degrades to 0. That list is an artifact of the dead context,
	// not of the store; discard it instead of swapping it in.
	if ctx.Err() != nil {
		s.logger.Warn("refresh abandoned, context done", zap.Error(ctx.Err()))
		return nil, ctx.Err()
	}

	applied := false
	s.mu.Lock()
	if gen > s.appliedGen {
		s.appliedGen = gen
		s.summaries = out
		s.hasResult = true
		s.lastErr = nil
		applied = true
	}
	s.mu.Unlock()

	if applied {
		s.publishSnapshot(ctx, out)
	}
	return out, nil
}

func (s *service) Current(ctx context.Context) ([]DepartmentSummary, bool) {
	s.mu.Lock()
	inProgress := s.running > 0
	if s.hasResult {
		snapshot := make([]DepartmentSummary, len(s.summaries))
		copy(snapshot, s.summaries)
		s.mu.Unlock()
		return snapshot, inProgress
	}
	s.mu.Unlock()

	// Warm start before the first refresh settles.
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, SnapshotKey).Result(); err == nil {
			var list []DepartmentSummary
			if json.Unmarshal([]byte(cached), &list) == nil {
				return list, inProgress
			}
		}
	}
	return nil, inProgress
}

func (s *service) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *service) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.summaries))
	for i, sum := range s.summaries {
		names[i] = sum.Name
	}
	return names
}

// AppendProvisional adds a just-created department with zeroed metrics.
// The list is replaced wholesale, never mutated in place, so renders that
// hold the previous slice stay consistent.
func (s *service) AppendProvisional(id, name string, positions []string) {
	s.mu.Lock()
	next := make([]DepartmentSummary, len(s.summaries), len(s.summaries)+1)
	copy(next, s.summaries)
	next = append(next, DepartmentSummary{
		ID:        id,
		Name:      name,
		Positions: positions,
	})
	s.summaries = next
	s.hasResult = true
	// Refreshes that started before this append resolved a department
	// list that predates the create; advancing the counters keeps their
	// results from applying over the appended entry.
	s.startedGen++
	s.appliedGen = s.startedGen
	s.mu.Unlock()

	// An in-flight refresh is stale for the same reason, so the next
	// Refresh must be a real run, not a coalesced join onto it.
	s.sf.Forget("refresh")

	if s.rdb != nil {
		if err := s.rdb.Del(context.Background(), SnapshotKey).Err(); err != nil {
			s.logger.Warn("invalidate summary snapshot failed", zap.Error(err))
		}
	}
}

// TriggerRefresh re-aggregates in the background, detached from the
// caller's cancellation.
func (s *service) TriggerRefresh(ctx context.Context) {
	go func() {
		bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		if _, err := s.Refresh(bg); err != nil {
			s.logger.Error("background refresh failed", zap.Error(err))
		}
	}()
}

func (s *service) publishSnapshot(ctx context.Context, list []DepartmentSummary) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, SnapshotKey, data, snapshotTTL).Err(); err != nil {
		s.logger.Warn("publish summary snapshot failed", zap.Error(err))
	}
}
