package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	appconfig "github.com/GTDGit/gtd_bi/internal/config"
)

func TestDSNEscapesCredentials(t *testing.T) {
	cfg := &appconfig.DatabaseConfig{
		Host: "db", Port: "5432", User: "bi user", Password: "p@ss/word", Name: "ventes", SSLMode: "disable",
	}
	want := "postgres://bi+user:p%40ss%2Fword@db:5432/ventes?sslmode=disable"
	if got := DSN(cfg); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestConnectNilConfig(t *testing.T) {
	if _, err := Connect(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestWithConnReleasesOnError(t *testing.T) {
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	db := sqlx.NewDb(raw, "postgres")
	defer db.Close()

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))

	boom := errors.New("boom")
	err = WithConn(context.Background(), db, func(q sqlx.QueryerContext) error {
		var one int
		if err := sqlx.GetContext(context.Background(), q, &one, "SELECT 1"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithConn error = %v, want boom", err)
	}
	if got := db.Stats().InUse; got != 0 {
		t.Errorf("connections in use after WithConn = %d, want 0", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
