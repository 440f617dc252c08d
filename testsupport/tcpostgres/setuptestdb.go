//nolint:errcheck // testsetup
package tcpostgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mpapenbr/f1-history-service-go/pkg/db/migrate"
	database "github.com/mpapenbr/f1-history-service-go/pkg/db/postgres"
)

// create a pg connection pool for the f1 history testdatabase
func SetupTestDB() *pgxpool.Pool {
	ctx := context.Background()
	port, err := nat.NewPort("tcp", "5432")
	if err != nil {
		log.Fatal(err)
	}
	container, err := SetupPostgres(ctx,
		WithPort(port.Port()),
		WithInitialDatabase("postgres", "password", "postgres"),
		WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
		WithName("f1-history-service-test"),
	)
	if err != nil {
		log.Fatal(err)
	}
	containerPort, _ := container.MappedPort(ctx, port)
	host, _ := container.Host(ctx)
	dbURL := fmt.Sprintf("postgresql://postgres:password@%s:%s/postgres",
		host, containerPort.Port())

	if err = migrate.MigrateDB(dbURL); err != nil {
		log.Fatal(err)
	}

	return database.InitWithURL(dbURL)
}

// connects to the database referenced by TESTDB_URL and applies the
// migrations. Used to run the tests against a prepared database.
func SetupExternalTestDB() *pgxpool.Pool {
	dbURL := os.Getenv("TESTDB_URL")
	if err := migrate.MigrateDB(dbURL); err != nil {
		log.Fatal(err)
	}
	return database.InitWithURL(dbURL)
}

func ClearLapTimesTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from lap_times")
}

func ClearPitStopsTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from pit_stops")
}

func ClearQualifyingTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from qualifying")
}

func ClearResultsTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from results")
}

func ClearRacesTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from races")
}

func ClearDriversTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from drivers")
}

func ClearConstructorsTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from constructors")
}

func ClearCircuitsTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from circuits")
}

func ClearStatusTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from status")
}

func ClearAllTables(pool *pgxpool.Pool) {
	ClearLapTimesTable(pool)
	ClearPitStopsTable(pool)
	ClearQualifyingTable(pool)
	ClearResultsTable(pool)
	ClearRacesTable(pool)
	ClearDriversTable(pool)
	ClearConstructorsTable(pool)
	ClearCircuitsTable(pool)
	ClearStatusTable(pool)
}
