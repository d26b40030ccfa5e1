// Package connectivity tracks online/offline state for the rest of the
// application. Platform signals (a failed probe, a transport error, an
// operator toggle) come in through SetOnline; everything else observes
// transitions through Subscribe so nothing depends on the raw signal.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/gommon/log"
)

type Monitor struct {
	mu          sync.Mutex
	online      bool
	lastOnline  time.Time
	lastOffline time.Time
	rtt         *time.Duration // last probe round-trip, nil when unknown
	subs        []func(online bool)
	now         func() time.Time
}

func New() *Monitor {
	return &Monitor{online: true, now: time.Now}
}

func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *Monitor) LastOnline() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastOnline
}

func (m *Monitor) LastOffline() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastOffline
}

// Quality returns the last measured round-trip time, nil when no probe
// has succeeded yet.
func (m *Monitor) Quality() *time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rtt == nil {
		return nil
	}
	d := *m.rtt
	return &d
}

// Subscribe registers a transition callback. Callbacks run on the
// goroutine that reported the transition, after state is updated.
func (m *Monitor) Subscribe(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// SetOnline records a platform-level transition and republishes it to
// subscribers. Repeated reports of the current state are ignored.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	if online {
		m.lastOnline = m.now()
	} else {
		m.lastOffline = m.now()
		m.rtt = nil
	}
	subs := make([]func(bool), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	log.Printf("[net] connectivity changed: online=%v", online)
	for _, fn := range subs {
		fn(online)
	}
}

// Probe runs ping once, updates quality and state from the result.
func (m *Monitor) Probe(ctx context.Context, ping func(context.Context) error) {
	start := m.nowFn()()
	err := ping(ctx)
	if err != nil {
		log.Warnf("[net] probe failed: %v", err)
		m.SetOnline(false)
		return
	}
	rtt := m.nowFn()().Sub(start)
	m.mu.Lock()
	m.rtt = &rtt
	m.mu.Unlock()
	m.SetOnline(true)
}

// StartProber pings the remote every interval until ctx is done.
func (m *Monitor) StartProber(ctx context.Context, interval time.Duration, ping func(context.Context) error) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				m.Probe(ctx, ping)
			}
		}
	}()
}

func (m *Monitor) nowFn() func() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}
