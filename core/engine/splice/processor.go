/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package splice

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/projectdiscovery/gcache"
	"github.com/slicingmelon/urisplice/core/uri"
	"github.com/slicingmelon/urisplice/core/utils/logger"
)

const (
	DefaultWorkers   = 10
	DefaultCacheSize = 1024
)

type ProcessorOptions struct {
	Workers   int
	Plan      *Plan
	Inspect   bool
	CacheSize int
}

// Result holds the outcome for one input URI.
type Result struct {
	Index      int
	Input      string
	Host       string
	Output     string
	Inspection *Inspection
	Err        error
}

// Processor runs a plan and/or an inspection over batches of URIs on a
// bounded worker pool.
type Processor struct {
	opts      *ProcessorOptions
	ctx       context.Context
	cancel    context.CancelFunc
	pool      pond.Pool
	cache     gcache.Cache[string, *Inspection]
	stats     *ErrorStats
	processed atomic.Uint64
}

func NewProcessor(opts *ProcessorOptions) *Processor {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
		pool:   pond.NewPool(opts.Workers),
		cache: gcache.New[string, *Inspection](opts.CacheSize).
			LRU().
			Build(),
		stats: NewErrorStats(),
	}
}

// Process submits every URI to the pool. Results arrive in completion
// order; the channel is closed once all submitted work is done or ctx is
// cancelled.
func (p *Processor) Process(ctx context.Context, uris []string) <-chan *Result {
	results := make(chan *Result, len(uris))

	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(p.ctx, cancel)

	// Tasks still running after a cancelled Wait must not send on a closed channel.
	var mu sync.Mutex
	closed := false
	send := func(res *Result) {
		mu.Lock()
		defer mu.Unlock()
		if !closed {
			results <- res
		}
	}

	group := p.pool.NewGroupContext(ctx)

	for i, raw := range uris {
		group.SubmitErr(func() error {
			if ctx.Err() != nil {
				return nil
			}

			res := p.ProcessOne(i, raw)
			p.stats.Record(res.Err, res.Host)
			send(res)
			return nil
		})
	}

	go func() {
		defer stop()
		defer cancel()

		if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warning().Msgf("Worker pool returned unexpected error: %v", err)
		}

		mu.Lock()
		closed = true
		close(results)
		mu.Unlock()
	}()

	return results
}

// ProcessOne handles a single URI: inspection (cached) first, then the plan.
func (p *Processor) ProcessOne(index int, raw string) *Result {
	defer p.processed.Add(1)

	res := &Result{
		Index: index,
		Input: raw,
		Host:  uri.Parse(raw).Host(),
	}

	if p.opts.Inspect {
		res.Inspection = p.inspect(raw)
		if res.Inspection.QueryErr != nil {
			res.Err = &Error{Kind: ErrKindMalformedQuery, Input: raw, Err: res.Inspection.QueryErr}
		}
	}

	if p.opts.Plan != nil && len(p.opts.Plan.Edits) > 0 {
		out, err := p.opts.Plan.Apply(raw)
		res.Output = out
		if err != nil {
			res.Err = err
		}
	}

	if res.Err != nil && logger.IsDebugEnabled() {
		logFailure(res)
	}
	return res
}

func logFailure(res *Result) {
	ev := logger.Debug().Component(KindName(KindOf(res.Err)))
	if res.Host != "" {
		ev = ev.Metadata("host", res.Host)
	}
	var mqe *uri.MalformedQueryError
	if errors.As(res.Err, &mqe) {
		ev = ev.Metadata("segment", strconv.Itoa(mqe.Index)+":"+strconv.Quote(mqe.Segment))
	}
	ev.Msgf("%v", res.Err)
}

func (p *Processor) inspect(raw string) *Inspection {
	if in, err := p.cache.GetIFPresent(raw); err == nil {
		return in
	}
	in := Inspect(raw)
	_ = p.cache.Set(raw, in)
	return in
}

// Collect drains results and returns them in input order.
func Collect(results <-chan *Result) []*Result {
	var out []*Result
	for res := range results {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func (p *Processor) Stats() *ErrorStats {
	return p.stats
}

// Processed returns the number of URIs handled since the processor was created.
func (p *Processor) Processed() uint64 {
	return p.processed.Load()
}

// CachedInspections returns the number of inspections held in the cache.
func (p *Processor) CachedInspections() int {
	return p.cache.Len(false)
}

func (p *Processor) Close() {
	p.cancel()
	p.pool.StopAndWait()
	p.cache.Purge()
}
