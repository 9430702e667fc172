// Package worker warms the verse cache by prefetching references
// concurrently through the verse lookup service.
package worker

import (
	"context"
	"sync"

	"github.com/truthseed/truthseed/internal/bible"
	"github.com/truthseed/truthseed/internal/model"
)

// PrefetchResult is the outcome of warming a single reference
type PrefetchResult struct {
	Reference model.Reference
	Err       error
}

// Prefetcher fetches verse text for many references concurrently. The
// upstream rate limiter inside the verse client still applies, so the
// worker count only bounds in-flight lookups.
type Prefetcher struct {
	service    *bible.Service
	maxWorkers int
}

// NewPrefetcher creates a prefetcher over the verse service
func NewPrefetcher(service *bible.Service, maxWorkers int) *Prefetcher {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	return &Prefetcher{service: service, maxWorkers: maxWorkers}
}

// Warm looks up every reference, writing successes into the verse
// cache. Results are returned in input order.
func (p *Prefetcher) Warm(ctx context.Context, refs []model.Reference) []PrefetchResult {
	results := make([]PrefetchResult, len(refs))
	if len(refs) == 0 {
		return results
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.maxWorkers)

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, r model.Reference) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = PrefetchResult{Reference: r, Err: ctx.Err()}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			_, err := p.service.Lookup(ctx, r)
			results[idx] = PrefetchResult{Reference: r, Err: err}
		}(i, ref)
	}

	wg.Wait()
	return results
}
