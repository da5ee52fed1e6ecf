// Demo traffic generator: fires supply and order batches at a running
// warehouse node and prints a summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/warehouse-mesh/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-mesh/internal/core/domain"
	"github.com/rl1809/warehouse-mesh/internal/worker"
)

func main() {
	var (
		addr    = flag.String("addr", "localhost:50051", "gRPC address of a warehouse node")
		rounds  = flag.Int("rounds", 20, "number of supply and order batches to send")
		seed    = flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for generated batches")
		timeout = flag.Duration("timeout", 10*time.Second, "per-call timeout")
	)
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial %s: %v", *addr, err)
	}
	defer conn.Close()
	client := pb.NewWarehouseClient(conn)

	faker := worker.NewItemFaker(*seed)

	var (
		supplied  atomic.Int64
		retrieved atomic.Int64
		requested atomic.Int64
		failures  atomic.Int64
		wg        sync.WaitGroup
	)

	start := time.Now()
	for i := 0; i < *rounds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), *timeout)
			defer cancel()

			batch := faker.Batch()
			_, err := client.AddStock(ctx, &pb.AddStockRequest{Items: toProto(batch)})
			if err != nil {
				failures.Add(1)
				return
			}
			supplied.Add(int64(domain.TotalQuantity(batch)))
		}()
	}
	wg.Wait()

	for i := 0; i < *rounds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), *timeout)
			defer cancel()

			batch := faker.Batch()
			requested.Add(int64(domain.TotalQuantity(batch)))
			resp, err := client.GetItems(ctx, &pb.GetItemsRequest{Items: toProto(batch)})
			if err != nil {
				failures.Add(1)
				return
			}
			for _, item := range resp.GetItems() {
				retrieved.Add(item.GetQuantity())
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	fmt.Println("========== SIMULATION RESULTS ==========")
	fmt.Printf("Rounds:            %d supply + %d order\n", *rounds, *rounds)
	fmt.Printf("Quantity supplied: %d\n", supplied.Load())
	fmt.Printf("Quantity ordered:  %d\n", requested.Load())
	fmt.Printf("Quantity received: %d\n", retrieved.Load())
	fmt.Printf("Failed batches:    %d\n", failures.Load())
	fmt.Printf("Duration:          %v\n", elapsed)
	fmt.Println("========================================")
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
