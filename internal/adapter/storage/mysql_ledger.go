package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
)

// MySQLLedger is the durable StockLedger adapter. Each batch runs inside one
// transaction; row locks taken by SELECT ... FOR UPDATE serialize concurrent
// reserves on overlapping articles.
type MySQLLedger struct {
	db *sql.DB
}

func NewMySQLLedger(db *sql.DB) *MySQLLedger {
	return &MySQLLedger{db: db}
}

func (m *MySQLLedger) Deposit(ctx context.Context, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO stock_records (article_name, quantity)
			VALUES (?, ?)
			ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`,
			item.ArticleName, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("upsert stock %s: %w", item.ArticleName, err)
		}
	}

	return tx.Commit()
}

func (m *MySQLLedger) Reserve(ctx context.Context, items []domain.Item) ([]domain.Item, error) {
	if len(items) == 0 {
		return nil, nil
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	fulfilled := make([]domain.Item, 0, len(items))
	for _, item := range items {
		var available int
		err = tx.QueryRowContext(ctx, `
			SELECT quantity FROM stock_records
			WHERE article_name = ? FOR UPDATE`, item.ArticleName,
		).Scan(&available)
		if errors.Is(err, sql.ErrNoRows) {
			fulfilled = append(fulfilled, domain.Item{ArticleName: item.ArticleName, Quantity: 0})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("query stock %s: %w", item.ArticleName, err)
		}

		take := min(item.Quantity, available)
		if take > 0 {
			_, err = tx.ExecContext(ctx, `
				UPDATE stock_records SET quantity = quantity - ?
				WHERE article_name = ?`, take, item.ArticleName,
			)
			if err != nil {
				return nil, fmt.Errorf("update stock %s: %w", item.ArticleName, err)
			}
		}
		fulfilled = append(fulfilled, domain.Item{ArticleName: item.ArticleName, Quantity: take})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return fulfilled, nil
}

func (m *MySQLLedger) Stock(ctx context.Context, articleName string) (int, error) {
	var quantity int
	err := m.db.QueryRowContext(ctx, `
		SELECT quantity FROM stock_records WHERE article_name = ?`, articleName,
	).Scan(&quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query stock: %w", err)
	}
	return quantity, nil
}
