package ingress

import (
	"errors"
	"net"
	"sync/atomic"
)

// A Pool runs multiple workers sharing one Config.
// Packets are distributed over the workers round-robin.
type Pool struct {
	workers []*Worker
	next    atomic.Uint64
}

// NewPool starts n workers.
func NewPool(config *Config, n int) (*Pool, error) {
	if n <= 0 {
		return nil, errors.New("ingress: pool needs at least one worker")
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	config = populateConfig(config)
	p := &Pool{workers: make([]*Worker, n)}
	for i := range p.workers {
		w := newWorker(config, wireCodec{})
		go w.run()
		p.workers[i] = w
	}
	return p, nil
}

// Dispatch hands the packet to the next worker.
// It returns the same errors as Worker.Dispatch.
func (p *Pool) Dispatch(addr net.Addr, data []byte) error {
	i := p.next.Add(1) - 1
	return p.workers[i%uint64(len(p.workers))].Dispatch(addr, data)
}

// Size returns the number of workers.
func (p *Pool) Size() int { return len(p.workers) }

// Close closes all workers.
func (p *Pool) Close() error {
	for _, w := range p.workers {
		w.Close()
	}
	return nil
}
