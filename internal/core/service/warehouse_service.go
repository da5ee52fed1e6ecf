package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
	"github.com/rl1809/warehouse-mesh/internal/metrics"
	"github.com/rl1809/warehouse-mesh/internal/port"
	"github.com/rl1809/warehouse-mesh/internal/telemetry"
)

const (
	opAddStock = "add-stock"
	opGetItems = "get-items"

	checkAdding = "Checking item for adding"
	checkOrder  = "Checking item for order"
)

// WarehouseService implements the two batch operations of a warehouse node:
// depositing stock and reserving stock with partial fulfillment. Each batch
// is deduplicated, split between local handling and peer forwarding, executed
// concurrently, and merged. Any peer failure fails the whole batch; local
// ledger commits are not rolled back when that happens.
type WarehouseService struct {
	ledger   port.StockLedger
	peers    port.PeerClient
	router   *Router
	failures *domain.FailureFaker
	activity *telemetry.Activity
	stats    *metrics.Collector
	logger   *zap.Logger
}

func NewWarehouseService(
	ledger port.StockLedger,
	peers port.PeerClient,
	router *Router,
	failures *domain.FailureFaker,
	activity *telemetry.Activity,
	stats *metrics.Collector,
	logger *zap.Logger,
) *WarehouseService {
	return &WarehouseService{
		ledger:   ledger,
		peers:    peers,
		router:   router,
		failures: failures,
		activity: activity,
		stats:    stats,
		logger:   logger,
	}
}

// AddStock deposits a batch. The local deposit and one call per destination
// peer run concurrently; the batch succeeds only if all of them do.
func (s *WarehouseService) AddStock(ctx context.Context, items []domain.Item) error {
	start := time.Now()
	defer func() {
		s.stats.BatchDuration.WithLabelValues(opAddStock).Observe(time.Since(start).Seconds())
	}()

	split := s.splitItems(ctx, opAddStock, checkAdding, items)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if len(split.accepted) == 0 {
			return nil
		}
		if err := s.ledger.Deposit(gctx, split.accepted); err != nil {
			return fmt.Errorf("deposit stock: %w", err)
		}
		s.stats.ItemsDeposited.Add(float64(domain.TotalQuantity(split.accepted)))
		return nil
	})
	for peerIndex, peerItems := range split.forwarded {
		g.Go(func() error {
			s.logForward(opAddStock, peerIndex, peerItems)
			if err := s.peers.AddStock(gctx, peerIndex, peerItems); err != nil {
				return fmt.Errorf("forward %s to peer %d: %w", opAddStock, peerIndex, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// GetItems reserves a batch and returns the fulfillment bag: the local
// ledger's fulfillments concatenated with every peer's. Entries fulfilled
// below the requested quantity, including zero, are normal outcomes; a peer
// failure aborts the whole batch instead.
func (s *WarehouseService) GetItems(ctx context.Context, items []domain.Item) ([]domain.Item, error) {
	start := time.Now()
	defer func() {
		s.stats.BatchDuration.WithLabelValues(opGetItems).Observe(time.Since(start).Seconds())
	}()

	split := s.splitItems(ctx, opGetItems, checkOrder, items)

	var (
		mu        sync.Mutex
		fulfilled []domain.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if len(split.accepted) == 0 {
			return nil
		}
		local, err := s.ledger.Reserve(gctx, split.accepted)
		if err != nil {
			return fmt.Errorf("reserve stock: %w", err)
		}
		s.recordReserveOutcome(split.accepted, local)
		mu.Lock()
		fulfilled = append(fulfilled, local...)
		mu.Unlock()
		return nil
	})
	for peerIndex, peerItems := range split.forwarded {
		g.Go(func() error {
			s.logForward(opGetItems, peerIndex, peerItems)
			remote, err := s.peers.GetItems(gctx, peerIndex, peerItems)
			if err != nil {
				return fmt.Errorf("forward %s to peer %d: %w", opGetItems, peerIndex, err)
			}
			mu.Lock()
			fulfilled = append(fulfilled, remote...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fulfilled, nil
}

type splitResult struct {
	accepted  []domain.Item
	forwarded map[int][]domain.Item
}

// splitItems deduplicates the batch, routes it, and runs fault injection over
// the local subset. Every local item gets an entity span that links back to
// the previous operation on the same article; the tracker entry is updated
// for failed items too.
func (s *WarehouseService) splitItems(ctx context.Context, operation, checkName string, items []domain.Item) splitResult {
	batch := s.router.Route(domain.Deduplicate(items))
	split := splitResult{forwarded: batch.Forwarded}

	for _, item := range batch.Local {
		_, span := s.activity.StartEntitySpan(ctx, checkName, item.ArticleName)
		span.SetAttributes(attribute.Int("item.requested", item.Quantity))

		if reason, failed := s.failures.Generate(); failed {
			s.logger.Warn("failed operation on item",
				zap.String("operation", operation),
				zap.String("article", item.ArticleName),
				zap.String("failure", reason))
			span.SetStatus(codes.Error, reason)
			s.stats.FaultsInjected.Inc()
		} else {
			split.accepted = append(split.accepted, item)
			span.SetStatus(codes.Ok, "item accepted")
		}
		span.End()
	}
	return split
}

func (s *WarehouseService) recordReserveOutcome(requested, fulfilled []domain.Item) {
	want := make(map[string]int, len(requested))
	for _, item := range requested {
		want[item.ArticleName] = item.Quantity
	}
	for _, item := range fulfilled {
		s.stats.ItemsReserved.Add(float64(item.Quantity))
		if item.Quantity < want[item.ArticleName] {
			s.stats.Shortages.Inc()
			s.logger.Warn("not enough stock available",
				zap.String("article", item.ArticleName),
				zap.Int("requested", want[item.ArticleName]),
				zap.Int("fulfilled", item.Quantity))
		}
	}
}

func (s *WarehouseService) logForward(operation string, peerIndex int, items []domain.Item) {
	s.logger.Warn("redirecting items to peer",
		zap.Int("count", len(items)),
		zap.Int("peer_index", peerIndex),
		zap.String("operation", operation))
	s.stats.ItemsForwarded.WithLabelValues(operation).Add(float64(len(items)))
}
