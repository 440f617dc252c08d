package migrate

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestPrepareURLForDB(t *testing.T) {
	assert.Equal(t,
		"pgx5://user:pw@localhost:5432/f1h?sslmode=disable",
		prepareURLForDB("postgresql://user:pw@localhost:5432/f1h"))
	assert.Equal(t,
		"pgx5://localhost/f1h?pool_max_conns=4&sslmode=disable",
		prepareURLForDB("postgresql://localhost/f1h?pool_max_conns=4"))
	assert.Equal(t,
		"pgx5://localhost/f1h?sslmode=disable",
		prepareURLForDB("postgresql://localhost/f1h?sslmode=disable"))
}
