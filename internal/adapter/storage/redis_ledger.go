package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
)

const stockKeyPrefix = "stock:"

// Scripts run atomically in Redis, which gives each batch the single-commit
// semantics the ledger contract requires.

var depositStockScript = redis.NewScript(`
for i = 1, #KEYS do
	redis.call('INCRBY', KEYS[i], ARGV[i])
end
return redis.status_reply('OK')
`)

var reserveStockScript = redis.NewScript(`
local fulfilled = {}
for i = 1, #KEYS do
	local want = tonumber(ARGV[i])
	local current = tonumber(redis.call('GET', KEYS[i]) or '0')
	local take = want
	if current < want then
		take = current
	end
	if take > 0 then
		redis.call('DECRBY', KEYS[i], take)
	end
	fulfilled[i] = take
end
return fulfilled
`)

// RedisLedger is the primary StockLedger adapter.
type RedisLedger struct {
	client *redis.Client
}

func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

func (r *RedisLedger) Deposit(ctx context.Context, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	keys, quantities := batchArgs(items)
	if err := depositStockScript.Run(ctx, r.client, keys, quantities...).Err(); err != nil {
		return fmt.Errorf("deposit script: %w", err)
	}
	return nil
}

func (r *RedisLedger) Reserve(ctx context.Context, items []domain.Item) ([]domain.Item, error) {
	if len(items) == 0 {
		return nil, nil
	}

	keys, quantities := batchArgs(items)
	result, err := reserveStockScript.Run(ctx, r.client, keys, quantities...).Slice()
	if err != nil {
		return nil, fmt.Errorf("reserve script: %w", err)
	}
	if len(result) != len(items) {
		return nil, fmt.Errorf("reserve script returned %d entries for %d items", len(result), len(items))
	}

	fulfilled := make([]domain.Item, len(items))
	for i, item := range items {
		take, ok := result[i].(int64)
		if !ok {
			return nil, fmt.Errorf("reserve script entry %d: unexpected type %T", i, result[i])
		}
		fulfilled[i] = domain.Item{ArticleName: item.ArticleName, Quantity: int(take)}
	}
	return fulfilled, nil
}

func (r *RedisLedger) Stock(ctx context.Context, articleName string) (int, error) {
	quantity, err := r.client.Get(ctx, stockKeyPrefix+articleName).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get stock: %w", err)
	}
	return quantity, nil
}

func batchArgs(items []domain.Item) ([]string, []interface{}) {
	keys := make([]string, len(items))
	quantities := make([]interface{}, len(items))
	for i, item := range items {
		keys[i] = stockKeyPrefix + item.ArticleName
		quantities[i] = item.Quantity
	}
	return keys, quantities
}
