package watch

import (
	"context"
	"log"
	"time"
)

// Poller invokes fn on a fixed interval until the context is cancelled.
// fn runs synchronously inside the loop, so a slow fetch can never
// overlap the next one; ticks that land mid-fetch are dropped. Errors
// from fn are logged and the loop keeps going.
type Poller struct {
	name     string
	interval time.Duration
	fn       func(context.Context) error
}

func New(name string, interval time.Duration, fn func(context.Context) error) *Poller {
	return &Poller{name: name, interval: interval, fn: fn}
}

// Run ticks immediately, then every interval. Returns when ctx is done.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.fn(ctx); err != nil && ctx.Err() == nil {
		log.Printf("⚠️ %s poll failed: %v", p.name, err)
	}
}
