//go:build integration
// +build integration

package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"planforge/internal/config"
)

func Test_Open_With_PostgresContainer(t *testing.T) {
	ctx := context.Background()

	pg, err := postgres.RunContainer(ctx,
		postgres.WithDatabase("planforge"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithSQLDriver("pgx"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/planforge?sslmode=disable", host, port.Port())

	cfg := &config.Config{}
	cfg.PG.URL = dsn
	cfg.PG.MaxOpenConns = 5
	cfg.PG.MaxIdleConns = 2

	client, closeFn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer closeFn()

	mctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := client.Schema.Create(mctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	u, err := client.User.Create().
		SetEmail("it@example.com").
		SetDisplayName("IT").
		SetPasswordHash("x").
		Save(mctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	p, err := client.Project.Create().SetName("Checkout revamp").SetOwnerID(u.ID).Save(mctx)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if p.Name != "Checkout revamp" {
		t.Fatalf("unexpected project name %q", p.Name)
	}
}
