// Package worker implements the node's simulated demand and supply jobs.
// Each run targets a random warehouse and carries its job identity as
// baggage, so spans the target starts on its own can be attributed back to
// the job without becoming children of it.
package worker

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
	"github.com/rl1809/warehouse-mesh/internal/port"
	"github.com/rl1809/warehouse-mesh/internal/telemetry"
)

type Simulation struct {
	mu        sync.Mutex
	rand      *rand.Rand
	nodeIndex int
	nodeCount int
	peers     port.PeerClient
	activity  *telemetry.Activity
	faker     *ItemFaker
	logger    *zap.Logger
}

func NewSimulation(
	nodeIndex, nodeCount int,
	peers port.PeerClient,
	activity *telemetry.Activity,
	faker *ItemFaker,
	seed uint64,
	logger *zap.Logger,
) *Simulation {
	return &Simulation{
		rand:      rand.New(rand.NewPCG(seed, seed)),
		nodeIndex: nodeIndex,
		nodeCount: nodeCount,
		peers:     peers,
		activity:  activity,
		faker:     faker,
		logger:    logger,
	}
}

// RunOrder simulates a customer order: a generated batch reserved against a
// random warehouse.
func (s *Simulation) RunOrder(ctx context.Context) error {
	target := s.pickWarehouse()
	ctx, span := s.activity.StartJobSpan(ctx, "Ordering items", telemetry.JobTags{
		JobID:       uuid.NewString(),
		Source:      fmt.Sprintf("warehouse-%d", target),
		Destination: fmt.Sprintf("warehouse-%d", s.nodeIndex),
		EntityType:  "item",
	})
	defer span.End()

	batch := s.faker.Batch()
	span.SetAttributes(
		attribute.Int("item.requested.distinct", len(domain.Deduplicate(batch))),
		attribute.Int("item.requested.total", domain.TotalQuantity(batch)),
	)

	fulfilled, err := s.peers.GetItems(ctx, target, batch)
	if err != nil {
		span.SetStatus(codes.Error, "order failed")
		span.RecordError(err)
		return fmt.Errorf("order against warehouse %d: %w", target, err)
	}

	span.SetAttributes(
		attribute.Int("item.retrieved.distinct", len(fulfilled)),
		attribute.Int("item.retrieved.total", domain.TotalQuantity(fulfilled)),
	)
	s.logger.Info("order simulated",
		zap.Int("target", target),
		zap.Int("requested", domain.TotalQuantity(batch)),
		zap.Int("retrieved", domain.TotalQuantity(fulfilled)))
	return nil
}

// RunSupply simulates a supplier delivery: a generated batch deposited at a
// random warehouse.
func (s *Simulation) RunSupply(ctx context.Context) error {
	target := s.pickWarehouse()
	ctx, span := s.activity.StartJobSpan(ctx, "Supplying items", telemetry.JobTags{
		JobID:       uuid.NewString(),
		Source:      fmt.Sprintf("warehouse-%d", target),
		Destination: fmt.Sprintf("warehouse-%d", s.nodeIndex),
		EntityType:  "item",
	})
	defer span.End()

	batch := s.faker.Batch()
	span.SetAttributes(
		attribute.Int("item.supplied.distinct", len(domain.Deduplicate(batch))),
		attribute.Int("item.supplied.total", domain.TotalQuantity(batch)),
	)

	if err := s.peers.AddStock(ctx, target, batch); err != nil {
		span.SetStatus(codes.Error, "supply failed")
		span.RecordError(err)
		return fmt.Errorf("supply to warehouse %d: %w", target, err)
	}

	s.logger.Info("supply simulated",
		zap.Int("target", target),
		zap.Int("supplied", domain.TotalQuantity(batch)))
	return nil
}

// pickWarehouse draws a uniform warehouse index, remapping a self draw to the
// next index so the job always leaves the node.
func (s *Simulation) pickWarehouse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := s.rand.IntN(s.nodeCount)
	if target == s.nodeIndex {
		target = (target + 1) % s.nodeCount
	}
	return target
}
