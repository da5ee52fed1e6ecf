package worker

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
	"github.com/rl1809/warehouse-mesh/internal/telemetry"
)

type recordingPeer struct {
	mu         sync.Mutex
	addTargets []int
	getTargets []int
	err        error
}

func (r *recordingPeer) AddStock(ctx context.Context, peerIndex int, items []domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addTargets = append(r.addTargets, peerIndex)
	return r.err
}

func (r *recordingPeer) GetItems(ctx context.Context, peerIndex int, items []domain.Item) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getTargets = append(r.getTargets, peerIndex)
	if r.err != nil {
		return nil, r.err
	}
	return items, nil
}

func newTestSimulation(peers *recordingPeer, nodeIndex, nodeCount int) *Simulation {
	activity := telemetry.NewActivity(otel.Tracer("test"), telemetry.NewEntityTracker())
	return NewSimulation(nodeIndex, nodeCount, peers, activity, NewItemFaker(1), 1, zap.NewNop())
}

func TestSimulation_NeverTargetsSelf(t *testing.T) {
	const nodeIndex = 1
	peers := &recordingPeer{}
	sim := newTestSimulation(peers, nodeIndex, 3)

	ctx := context.Background()
	for i := 0; i < 50; i++ {
		if err := sim.RunSupply(ctx); err != nil {
			t.Fatalf("unexpected supply error: %v", err)
		}
		if err := sim.RunOrder(ctx); err != nil {
			t.Fatalf("unexpected order error: %v", err)
		}
	}

	for _, target := range append(peers.addTargets, peers.getTargets...) {
		if target == nodeIndex {
			t.Fatal("job targeted its own node")
		}
		if target < 0 || target >= 3 {
			t.Fatalf("target %d out of range", target)
		}
	}
}

func TestSimulation_TwoNodesAlwaysTargetPeer(t *testing.T) {
	peers := &recordingPeer{}
	sim := newTestSimulation(peers, 0, 2)

	for i := 0; i < 20; i++ {
		if err := sim.RunSupply(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for _, target := range peers.addTargets {
		if target != 1 {
			t.Fatalf("expected target 1, got %d", target)
		}
	}
}

func TestSimulation_OrderPropagatesError(t *testing.T) {
	peers := &recordingPeer{err: errors.New("unavailable")}
	sim := newTestSimulation(peers, 0, 2)

	if err := sim.RunOrder(context.Background()); err == nil {
		t.Fatal("expected error from failed order")
	}
}

func TestSimulation_SupplyPropagatesError(t *testing.T) {
	peers := &recordingPeer{err: errors.New("unavailable")}
	sim := newTestSimulation(peers, 0, 2)

	if err := sim.RunSupply(context.Background()); err == nil {
		t.Fatal("expected error from failed supply")
	}
}
