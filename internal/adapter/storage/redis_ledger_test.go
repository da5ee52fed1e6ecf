package storage

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func clearStock(t *testing.T, client *redis.Client, articles ...string) {
	t.Helper()
	ctx := context.Background()
	for _, article := range articles {
		if err := client.Del(ctx, stockKeyPrefix+article).Err(); err != nil {
			t.Fatalf("failed to clear %s: %v", article, err)
		}
	}
}

func TestRedisLedger_DepositAccumulates(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)
	clearStock(t, client, "widget")

	if err := ledger.Deposit(ctx, []domain.Item{{ArticleName: "widget", Quantity: 10}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ledger.Deposit(ctx, []domain.Item{{ArticleName: "widget", Quantity: 5}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stock, err := ledger.Stock(ctx, "widget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stock != 15 {
		t.Errorf("expected stock 15, got %d", stock)
	}
}

func TestRedisLedger_ReserveClampsToAvailable(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)
	clearStock(t, client, "widget")

	if err := ledger.Deposit(ctx, []domain.Item{{ArticleName: "widget", Quantity: 10}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fulfilled, err := ledger.Reserve(ctx, []domain.Item{{ArticleName: "widget", Quantity: 15}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fulfilled) != 1 || fulfilled[0].Quantity != 10 {
		t.Errorf("expected fulfilled 10, got %v", fulfilled)
	}

	stock, _ := ledger.Stock(ctx, "widget")
	if stock != 0 {
		t.Errorf("expected stock 0, got %d", stock)
	}
}

func TestRedisLedger_ReserveAbsentArticleYieldsZero(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)
	clearStock(t, client, "ghost")

	fulfilled, err := ledger.Reserve(ctx, []domain.Item{{ArticleName: "ghost", Quantity: 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fulfilled) != 1 || fulfilled[0].Quantity != 0 {
		t.Errorf("expected zero fulfillment, got %v", fulfilled)
	}
}

func TestRedisLedger_BatchKeepsRequestOrder(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)
	clearStock(t, client, "alpha", "beta", "gamma")

	err := ledger.Deposit(ctx, []domain.Item{
		{ArticleName: "alpha", Quantity: 5},
		{ArticleName: "gamma", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fulfilled, err := ledger.Reserve(ctx, []domain.Item{
		{ArticleName: "alpha", Quantity: 3},
		{ArticleName: "beta", Quantity: 1},
		{ArticleName: "gamma", Quantity: 9},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Item{
		{ArticleName: "alpha", Quantity: 3},
		{ArticleName: "beta", Quantity: 0},
		{ArticleName: "gamma", Quantity: 2},
	}
	if len(fulfilled) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(fulfilled))
	}
	for i := range want {
		if fulfilled[i] != want[i] {
			t.Errorf("entry %d: expected %v, got %v", i, want[i], fulfilled[i])
		}
	}
}

func TestRedisLedger_ConcurrentReservesNeverOversell(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)
	clearStock(t, client, "widget")

	if err := ledger.Deposit(ctx, []domain.Item{{ArticleName: "widget", Quantity: 100}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const workers = 20
	taken := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fulfilled, err := ledger.Reserve(ctx, []domain.Item{{ArticleName: "widget", Quantity: 10}})
			if err == nil && len(fulfilled) == 1 {
				taken[i] = fulfilled[0].Quantity
			}
		}(i)
	}
	wg.Wait()

	total := 0
	for _, n := range taken {
		total += n
	}
	if total != 100 {
		t.Errorf("expected exactly 100 units reserved, got %d", total)
	}

	stock, _ := ledger.Stock(ctx, "widget")
	if stock != 0 {
		t.Errorf("expected stock 0, got %d", stock)
	}
}
