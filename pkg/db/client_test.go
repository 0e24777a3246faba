package db

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/naturesnacks/snackstore/pkg/config"
	"github.com/naturesnacks/snackstore/pkg/logger"
	"github.com/rs/zerolog"
)

type testModel struct {
	ID   int
	Name string
}

func newTestClient(t *testing.T, logg *logger.Logger, slow time.Duration) *Client {
	t.Helper()
	client, err := New(context.Background(), config.DBConfig{
		Driver:    config.DBDriverSQLite,
		DSN:       "file:" + t.Name() + "?mode=memory&cache=shared",
		SlowQuery: slow,
	}, logg)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	if err := client.DB().AutoMigrate(&testModel{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return client
}

func TestPing(t *testing.T) {
	client := newTestClient(t, nil, 0)
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}
	if client.Driver() != config.DBDriverSQLite {
		t.Fatalf("unexpected driver %q", client.Driver())
	}
	if _, err := client.SQL(); err != nil {
		t.Fatalf("sql handle: %v", err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{}, nil); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
	if _, err := New(context.Background(), config.DBConfig{DSN: "x", Driver: "mysql"}, nil); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestQueryLoggerReportsFailures(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.DebugLevel, Output: &buf})
	client := newTestClient(t, logg, time.Hour)
	buf.Reset()

	if err := client.DB().Create(&testModel{Name: "ok"}).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("fast successful statements should not log, got %s", buf.String())
	}

	if err := client.DB().Exec("SELECT * FROM missing_table").Error; err == nil {
		t.Fatalf("expected query error")
	}
	out := buf.String()
	if !strings.Contains(out, "db.query_failed") || !strings.Contains(out, "missing_table") {
		t.Fatalf("expected failed query log, got %s", out)
	}
}

func TestQueryLoggerReportsSlowStatements(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.DebugLevel, Output: &buf})
	client := newTestClient(t, logg, time.Nanosecond)
	buf.Reset()

	var count int64
	if err := client.DB().Model(&testModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if !strings.Contains(buf.String(), "db.slow_query") {
		t.Fatalf("expected slow query log, got %s", buf.String())
	}
}
