// Package search runs the debounced catalog lookup behind the search box.
package search

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"bitacora_materiales/internal/domain/entities"

	"go.uber.org/zap"
)

const (
	MinTermLength   = 3
	DefaultDebounce = 300 * time.Millisecond
	DefaultTimeout  = 10 * time.Second
)

// View is what the results panel should show.
type View int

const (
	ViewClosed View = iota
	ViewResults
	ViewEmpty
	ViewError
)

func (v View) String() string {
	switch v {
	case ViewResults:
		return "results"
	case ViewEmpty:
		return "empty"
	case ViewError:
		return "error"
	default:
		return "closed"
	}
}

// Fetcher performs one catalog request.
type Fetcher interface {
	SearchCatalog(ctx context.Context, origin, term string) ([]entities.CatalogItem, error)
}

// Stager receives a picked item.
type Stager interface {
	Stage(item entities.CatalogItem)
}

// Result is one settled lookup. On ViewError, Items still holds the last
// successful results.
type Result struct {
	Seq    uint64
	Term   string
	Origin string
	Items  []entities.CatalogItem
	View   View
	Err    error
}

type Option func(*Searcher)

func WithDebounce(d time.Duration) Option {
	return func(s *Searcher) { s.debounce = d }
}

func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) { s.timeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Searcher) { s.log = l }
}

// Searcher debounces keystrokes into catalog requests. Every request carries
// the sequence number current when it was scheduled; results whose sequence
// has been superseded are dropped.
type Searcher struct {
	fetcher  Fetcher
	debounce time.Duration
	timeout  time.Duration
	log      *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	seq      uint64
	timer    *time.Timer
	inflight context.CancelFunc
	last     Result
	closed   bool

	results chan Result
}

func New(f Fetcher, opts ...Option) *Searcher {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Searcher{
		fetcher:  f,
		debounce: DefaultDebounce,
		timeout:  DefaultTimeout,
		log:      zap.L().Named("search.client"),
		ctx:      ctx,
		cancel:   cancel,
		results:  make(chan Result, 4),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Results delivers settled lookups. It is closed by Close.
func (s *Searcher) Results() <-chan Result { return s.results }

// Input registers a keystroke. Short terms close the panel immediately and
// return ViewClosed; otherwise a lookup is scheduled after the quiet window
// and ViewResults is returned as the pending state.
func (s *Searcher) Input(term, origin string) View {
	term = strings.TrimSpace(term)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ViewClosed
	}

	s.seq++
	s.stopPendingLocked()
	if utf8.RuneCountInString(term) < MinTermLength {
		s.last = Result{Seq: s.seq, View: ViewClosed}
		return ViewClosed
	}

	seq := s.seq
	s.wg.Add(1)
	s.timer = time.AfterFunc(s.debounce, func() {
		defer s.wg.Done()
		s.fire(seq, term, origin)
	})
	return ViewResults
}

// Pick clears the input, closes the panel and stages item.
func (s *Searcher) Pick(item entities.CatalogItem, into Stager) {
	s.mu.Lock()
	s.seq++
	s.stopPendingLocked()
	s.last = Result{Seq: s.seq, View: ViewClosed}
	s.mu.Unlock()

	into.Stage(item)
}

// Search performs one immediate lookup, bypassing the debounce. Short terms
// return no items without touching the network.
func (s *Searcher) Search(ctx context.Context, term, origin string) ([]entities.CatalogItem, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < MinTermLength {
		return []entities.CatalogItem{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.fetcher.SearchCatalog(ctx, origin, term)
}

// IsCurrent reports whether seq is still the latest input. Consumers use it
// to drop results that were already queued when a newer keystroke arrived.
func (s *Searcher) IsCurrent(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.seq
}

// Last is the most recent settled result.
func (s *Searcher) Last() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Close stops pending timers, cancels in-flight requests and waits for
// them to return.
func (s *Searcher) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopPendingLocked()
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
	close(s.results)
}

func (s *Searcher) stopPendingLocked() {
	if s.timer != nil && s.timer.Stop() {
		s.wg.Done()
	}
	s.timer = nil
	if s.inflight != nil {
		s.inflight()
		s.inflight = nil
	}
}

func (s *Searcher) fire(seq uint64, term, origin string) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	s.mu.Lock()
	if seq != s.seq || s.closed {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.inflight = cancel
	s.mu.Unlock()

	items, err := s.Search(ctx, term, origin)

	s.mu.Lock()
	if seq != s.seq || s.closed {
		s.mu.Unlock()
		s.log.Debug("stale result dropped", zap.String("q", term), zap.Uint64("seq", seq))
		return
	}
	s.inflight = nil
	r := Result{Seq: seq, Term: term, Origin: origin}
	switch {
	case err != nil:
		s.log.Warn("search failed", zap.String("q", term), zap.String("origen", origin), zap.Error(err))
		r.View = ViewError
		r.Err = err
		r.Items = s.last.Items
	case len(items) == 0:
		r.View = ViewEmpty
		r.Items = []entities.CatalogItem{}
		s.last = r
	default:
		r.View = ViewResults
		r.Items = items
		s.last = r
	}
	s.mu.Unlock()

	select {
	case s.results <- r:
	case <-s.ctx.Done():
	}
}
