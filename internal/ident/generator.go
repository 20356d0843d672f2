package ident

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"sync/atomic"
)

// Generator produces random ids from the full signed 64-bit range, one
// per request, and delivers them asynchronously on a buffered channel.
// Callers request the next id ahead of time and consume it later, so id
// generation never blocks the event loop.
type Generator struct {
	mu      sync.Mutex
	pending int
	out     chan int64
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewGenerator(bufferSize int) *Generator {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Generator{
		out:    make(chan int64, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// C is the delivery channel. It is closed when the generator stops.
func (g *Generator) C() <-chan int64 {
	return g.out
}

func (g *Generator) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.started {
		return
	}
	g.started = true
	go g.loop()
}

func (g *Generator) Stop() {
	g.mu.Lock()
	if !g.started || g.stopped {
		g.mu.Unlock()
		return
	}
	g.stopped = true
	close(g.stopCh)
	g.mu.Unlock()
	<-g.doneCh
}

// Request asks for one more id. Delivery happens later on C.
func (g *Generator) Request() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stopped {
		return
	}
	g.pending++
	g.signalWakeup()
}

// Dropped counts ids that could not be delivered because the buffer was
// full at generation time.
func (g *Generator) Dropped() uint64 {
	return atomic.LoadUint64(&g.dropped)
}

func (g *Generator) loop() {
	defer close(g.doneCh)
	defer close(g.out)

	for {
		n := g.takePending()
		if n == 0 {
			select {
			case <-g.wakeup:
				continue
			case <-g.stopCh:
				return
			}
		}

		for i := 0; i < n; i++ {
			select {
			case g.out <- NextID():
			default:
				atomic.AddUint64(&g.dropped, 1)
			}
		}
	}
}

func (g *Generator) signalWakeup() {
	select {
	case g.wakeup <- struct{}{}:
	default:
	}
}

func (g *Generator) takePending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := g.pending
	g.pending = 0
	return n
}

// NextID draws one id uniformly from the full signed 64-bit range.
func NextID() int64 {
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	return int64(binary.BigEndian.Uint64(buf[:]))
}
