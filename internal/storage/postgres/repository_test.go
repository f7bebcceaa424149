//go:build integration

package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"guardiant/internal/domain"
	"guardiant/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := ensureSchema(ctx, testPool); err != nil {
		fmt.Println("ensureSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func truncateIncidents(t *testing.T) {
	t.Helper()
	if _, err := testPool.Exec(context.Background(), `TRUNCATE TABLE incidents`); err != nil {
		t.Fatalf("truncate incidents: %v", err)
	}
}

func seedIncident(userID string, ts time.Time) *domain.Incident {
	return &domain.Incident{
		IncidentID: uuid.NewString(),
		UserID:     userID,
		Timestamp:  ts,
		Location:   domain.Location{Latitude: 34.05, Longitude: -118.24, State: "California", City: "Los Angeles"},
		Notes:      "seed",
		Status:     domain.IncidentRecording,
	}
}

func TestIncidentRepo_CreateGetRoundTrip(t *testing.T) {
	truncateIncidents(t)

	repo := NewIncidentRepo(testPool, testLogger())
	inc := seedIncident("alice", time.Now().UTC().Truncate(time.Microsecond))

	if err := repo.Create(context.Background(), inc); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(context.Background(), inc.IncidentID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != inc.UserID || got.Location.State != "California" || got.Status != domain.IncidentRecording {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.Timestamp.Equal(inc.Timestamp) {
		t.Fatalf("timestamp mismatch: want %v got %v", inc.Timestamp, got.Timestamp)
	}
}

func TestIncidentRepo_GetNotFound(t *testing.T) {
	truncateIncidents(t)

	repo := NewIncidentRepo(testPool, testLogger())

	_, err := repo.Get(context.Background(), "nonexistent-id")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIncidentRepo_UpdateDoesNotTouchTimestamp(t *testing.T) {
	truncateIncidents(t)

	repo := NewIncidentRepo(testPool, testLogger())
	created := time.Now().UTC().Truncate(time.Microsecond)
	inc := seedIncident("alice", created)
	if err := repo.Create(context.Background(), inc); err != nil {
		t.Fatalf("create: %v", err)
	}

	inc.Timestamp = created.Add(24 * time.Hour)
	inc.Notes = "after update"
	inc.Status = domain.IncidentCompleted
	if err := repo.Update(context.Background(), inc); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(context.Background(), inc.IncidentID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Timestamp.Equal(created) {
		t.Fatalf("timestamp overwritten: want %v got %v", created, got.Timestamp)
	}
	if got.Notes != "after update" || got.Status != domain.IncidentCompleted {
		t.Fatalf("update lost fields: %+v", got)
	}
}

func TestIncidentRepo_UpdateNotFound(t *testing.T) {
	truncateIncidents(t)

	repo := NewIncidentRepo(testPool, testLogger())

	err := repo.Update(context.Background(), seedIncident("alice", time.Now().UTC()))
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIncidentRepo_ListFilterSortPaginate(t *testing.T) {
	truncateIncidents(t)

	repo := NewIncidentRepo(testPool, testLogger())
	base := time.Now().UTC().Truncate(time.Microsecond)

	for i := 0; i < 5; i++ {
		inc := seedIncident("alice", base.Add(time.Duration(i)*time.Minute))
		if err := repo.Create(context.Background(), inc); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := repo.Create(context.Background(), seedIncident("bob", base)); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, total, err := repo.List(context.Background(), "alice", 2, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected filtered total=5, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("expected page of 2, got %d", len(items))
	}
	if items[0].Timestamp.Before(items[1].Timestamp) {
		t.Fatalf("expected newest-first order")
	}
}

func TestIncidentRepo_Counts(t *testing.T) {
	truncateIncidents(t)

	repo := NewIncidentRepo(testPool, testLogger())
	for i := 0; i < 3; i++ {
		inc := seedIncident("alice", time.Now().UTC())
		if i == 0 {
			inc.Status = domain.IncidentShared
		}
		if err := repo.Create(context.Background(), inc); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	total, shared, err := repo.Counts(context.Background())
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 3 || shared != 1 {
		t.Fatalf("expected 3/1, got %d/%d", total, shared)
	}
}
