package service

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
)

var ErrNoPeers = errors.New("no peers configured for forwarding")

// DefaultForwardProbability is the chance that an item is forwarded to a peer
// instead of being handled on this node.
const DefaultForwardProbability = 0.5

// RoutedBatch is the outcome of routing one deduplicated batch: the subset
// this node handles itself and the forwarded subsets keyed by peer index.
type RoutedBatch struct {
	Local     []domain.Item
	Forwarded map[int][]domain.Item
}

// Router partitions batches between local handling and peer forwarding.
// Decisions are independent per item and per call; the same article may be
// routed differently on successive calls. Placement never depends on which
// node actually holds the article's record.
type Router struct {
	mu                 sync.Mutex
	rand               *rand.Rand
	nodeIndex          int
	nodeCount          int
	forwardProbability float64
}

func NewRouter(nodeIndex, nodeCount int, forwardProbability float64, seed uint64) (*Router, error) {
	if nodeCount < 2 {
		return nil, ErrNoPeers
	}
	if nodeIndex < 0 || nodeIndex >= nodeCount {
		return nil, errors.New("node index out of range")
	}
	return &Router{
		rand:               rand.New(rand.NewPCG(seed, seed)),
		nodeIndex:          nodeIndex,
		nodeCount:          nodeCount,
		forwardProbability: forwardProbability,
	}, nil
}

// Route assigns every item to exactly one of local handling or a single
// destination peer. Forwarded items are grouped so one call per peer carries
// all items destined for it.
func (r *Router) Route(items []domain.Item) RoutedBatch {
	r.mu.Lock()
	defer r.mu.Unlock()

	batch := RoutedBatch{Forwarded: make(map[int][]domain.Item)}
	for _, item := range items {
		if r.rand.Float64() < r.forwardProbability {
			peer := r.pickPeer()
			batch.Forwarded[peer] = append(batch.Forwarded[peer], item)
		} else {
			batch.Local = append(batch.Local, item)
		}
	}
	return batch
}

// PickPeer draws a uniform peer index. A draw landing on this node is
// remapped to the next index modulo the node count, so self is never chosen.
func (r *Router) PickPeer() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pickPeer()
}

func (r *Router) pickPeer() int {
	peer := r.rand.IntN(r.nodeCount)
	if peer == r.nodeIndex {
		peer = (peer + 1) % r.nodeCount
	}
	return peer
}
