package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/warehouse?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS stock_records (
			article_name VARCHAR(255) PRIMARY KEY,
			quantity INT NOT NULL DEFAULT 0
		)`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return db
}

func resetArticles(t *testing.T, db *sql.DB, articles ...string) {
	t.Helper()
	ctx := context.Background()
	for _, article := range articles {
		if _, err := db.ExecContext(ctx, `DELETE FROM stock_records WHERE article_name = ?`, article); err != nil {
			t.Fatalf("failed to reset %s: %v", article, err)
		}
	}
}

func TestMySQLLedger_DepositAccumulates(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	ledger := NewMySQLLedger(db)
	resetArticles(t, db, "widget")

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

func TestMySQLLedger_ReserveClampsToAvailable(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	ledger := NewMySQLLedger(db)
	resetArticles(t, db, "widget")

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

func TestMySQLLedger_ReserveAbsentArticleYieldsZero(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	ledger := NewMySQLLedger(db)
	resetArticles(t, db, "ghost")

	fulfilled, err := ledger.Reserve(ctx, []domain.Item{{ArticleName: "ghost", Quantity: 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fulfilled) != 1 || fulfilled[0].Quantity != 0 {
		t.Errorf("expected zero fulfillment, got %v", fulfilled)
	}

	stock, _ := ledger.Stock(ctx, "ghost")
	if stock != 0 {
		t.Errorf("expected no stock row effect, got %d", stock)
	}
}

func TestMySQLLedger_MixedBatch(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	ledger := NewMySQLLedger(db)
	resetArticles(t, db, "alpha", "beta", "gamma")

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
