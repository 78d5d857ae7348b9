/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package splice

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/projectdiscovery/gcache"
	"github.com/projectdiscovery/utils/errkit"
	"github.com/slicingmelon/urisplice/core/uri"
)

var (
	ErrKindInvalidURI = errkit.NewPrimitiveErrKind(
		"error-urisplice-invalid-uri",
		"uri failed rfc 3986 validation",
		nil,
	)

	ErrKindMalformedQuery = errkit.NewPrimitiveErrKind(
		"error-urisplice-malformed-query",
		"uri query has a segment without '='",
		nil,
	)

	ErrKindPlan = errkit.NewPrimitiveErrKind(
		"error-urisplice-plan",
		"invalid edit plan",
		nil,
	)
)

var kindNames = map[errkit.ErrKind]string{
	ErrKindInvalidURI:     "invalid-uri",
	ErrKindMalformedQuery: "malformed-query",
	ErrKindPlan:           "plan",
}

var (
	ErrUnknownOp    = errkit.New("unknown edit op").SetKind(ErrKindPlan).Build()
	ErrEmptyPlan    = errkit.New("edit plan has no edits").SetKind(ErrKindPlan).Build()
	ErrInvalidToken = errkit.New("invalid plan token").SetKind(ErrKindPlan).Build()
)

// Error ties a failure on one input URI to its kind.
type Error struct {
	Kind  errkit.ErrKind
	Input string
	Err   error
}

func (e *Error) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("[%s] %v", KindName(e.Kind), e.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", KindName(e.Kind), e.Input, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf classifies err into one of the package error kinds, nil if none applies.
func KindOf(err error) errkit.ErrKind {
	if err == nil {
		return nil
	}

	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}

	var mqe *uri.MalformedQueryError
	if errors.As(err, &mqe) {
		return ErrKindMalformedQuery
	}

	var iue *uri.InvalidURIError
	if errors.As(err, &iue) {
		return ErrKindInvalidURI
	}

	if errors.Is(err, ErrUnknownOp) || errors.Is(err, ErrEmptyPlan) || errors.Is(err, ErrInvalidToken) {
		return ErrKindPlan
	}
	return nil
}

// KindName returns a short label for kind.
func KindName(kind errkit.ErrKind) string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return "other"
}

// ErrorStats counts failures per error kind and per host.
type ErrorStats struct {
	mu         sync.Mutex
	kindCounts gcache.Cache[string, int]
	hostCounts gcache.Cache[string, int]
	kinds      []string
	hosts      []string
	total      int
}

func NewErrorStats() *ErrorStats {
	return &ErrorStats{
		kindCounts: gcache.New[string, int](64).
			ARC(). // Adaptive Replacement Cache
			Build(),
		hostCounts: gcache.New[string, int](1000).
			ARC().
			Build(),
	}
}

// Record counts err against its kind and host. A nil err is ignored.
func (s *ErrorStats) Record(err error, host string) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.kinds = s.bump(s.kindCounts, s.kinds, KindName(KindOf(err)))
	if host != "" {
		s.hosts = s.bump(s.hostCounts, s.hosts, host)
	}
}

func (s *ErrorStats) bump(cache gcache.Cache[string, int], seen []string, key string) []string {
	count, err := cache.GetIFPresent(key)
	if err != nil {
		seen = append(seen, key)
	}
	_ = cache.Set(key, count+1)
	return seen
}

// Total returns the number of recorded failures.
func (s *ErrorStats) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// KindCount returns how many failures of kind were recorded.
func (s *ErrorStats) KindCount(kind errkit.ErrKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count, _ := s.kindCounts.GetIFPresent(KindName(kind))
	return count
}

// HostCount returns how many failures were recorded for host.
func (s *ErrorStats) HostCount(host string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count, _ := s.hostCounts.GetIFPresent(host)
	return count
}

// Rows returns the per kind and per host counts, sorted, for display.
func (s *ErrorStats) Rows() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := [][]string{{"Group", "Key", "Failures"}}
	rows = append(rows, s.rows("kind", s.kindCounts, s.kinds)...)
	rows = append(rows, s.rows("host", s.hostCounts, s.hosts)...)
	return rows
}

func (s *ErrorStats) rows(group string, cache gcache.Cache[string, int], keys []string) [][]string {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	rows := make([][]string, 0, len(sorted))
	for _, k := range sorted {
		count, err := cache.GetIFPresent(k)
		if err != nil {
			continue // evicted
		}
		rows = append(rows, []string{group, k, fmt.Sprint(count)})
	}
	return rows
}

// Purge cleans up the caches
func (s *ErrorStats) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kindCounts.Purge()
	s.hostCounts.Purge()
	s.kinds, s.hosts, s.total = nil, nil, 0
}
