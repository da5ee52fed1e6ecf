// Package peer implements the transport used for forwarding batches between
// warehouse nodes.
package peer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/warehouse-mesh/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-mesh/internal/core/domain"
)

// GRPCClient holds one connection per configured peer. The otelgrpc stats
// handler propagates trace context and baggage on every call.
type GRPCClient struct {
	clients map[int]pb.WarehouseClient
	conns   map[int]*grpc.ClientConn
}

// Dial creates lazy connections to every peer in the table. The table must
// not contain this node's own index.
func Dial(peers map[int]string) (*GRPCClient, error) {
	c := &GRPCClient{
		clients: make(map[int]pb.WarehouseClient, len(peers)),
		conns:   make(map[int]*grpc.ClientConn, len(peers)),
	}
	for index, addr := range peers {
		conn, err := grpc.NewClient(addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("dial peer %d at %s: %w", index, addr, err)
		}
		c.conns[index] = conn
		c.clients[index] = pb.NewWarehouseClient(conn)
	}
	return c, nil
}

func (c *GRPCClient) AddStock(ctx context.Context, peerIndex int, items []domain.Item) error {
	client, err := c.client(peerIndex)
	if err != nil {
		return err
	}
	_, err = client.AddStock(ctx, &pb.AddStockRequest{Items: toProto(items)})
	return err
}

func (c *GRPCClient) GetItems(ctx context.Context, peerIndex int, items []domain.Item) ([]domain.Item, error) {
	client, err := c.client(peerIndex)
	if err != nil {
		return nil, err
	}
	resp, err := client.GetItems(ctx, &pb.GetItemsRequest{Items: toProto(items)})
	if err != nil {
		return nil, err
	}
	return fromProto(resp.GetItems()), nil
}

func (c *GRPCClient) Close() {
	for _, conn := range c.conns {
		conn.Close()
	}
}

func (c *GRPCClient) client(peerIndex int) (pb.WarehouseClient, error) {
	client, ok := c.clients[peerIndex]
	if !ok {
		return nil, fmt.Errorf("no peer configured at index %d", peerIndex)
	}
	return client, nil
}

func toProto(items []domain.Item) []*pb.Item {
	result := make([]*pb.Item, 0, len(items))
	for _, item := range items {
		result = append(result, &pb.Item{
			ArticleName: item.ArticleName,
			Quantity:    int64(item.Quantity),
		})
	}
	return result
}

func fromProto(items []*pb.Item) []domain.Item {
	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		result = append(result, domain.Item{
			ArticleName: item.GetArticleName(),
			Quantity:    int(item.GetQuantity()),
		})
	}
	return result
}
