package port

import (
	"context"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
)

type PeerClient interface {
	// AddStock forwards a deposit batch to the peer at the given index.
	AddStock(ctx context.Context, peerIndex int, items []domain.Item) error

	// GetItems forwards a reserve batch to the peer at the given index and
	// returns the peer's fulfillment list.
	GetItems(ctx context.Context, peerIndex int, items []domain.Item) ([]domain.Item, error)
}
