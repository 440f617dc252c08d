//nolint:dupl,funlen,errcheck //ok for this test code
package driver

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gotest.tools/v3/assert"

	"github.com/mpapenbr/f1-history-service-go/pkg/model"
	"github.com/mpapenbr/f1-history-service-go/pkg/repository"
	"github.com/mpapenbr/f1-history-service-go/testsupport/testdb"
)

var sampleDriver = &model.Driver{
	Ref:         "alpha",
	Forename:    "Anton",
	Surname:     "Alpha",
	Nationality: "Testland",
}

func createSampleEntry(db *pgxpool.Pool) *model.Driver {
	ctx := context.Background()
	var ret *model.Driver
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		var err error
		ret, err = Create(ctx, tx, sampleDriver)
		return err
	})
	if err != nil {
		log.Fatalf("createSampleEntry: %v\n", err)
	}
	return ret
}

func TestCreate(t *testing.T) {
	pool := testdb.InitTestDB()
	tests := []struct {
		name    string
		arg     *model.Driver
		wantErr bool
	}{
		{
			name: "new entry",
			arg: &model.Driver{
				Ref: "bravo", Forename: "Berta", Surname: "Bravo",
				Nationality: "Testland",
			},
		},
		{
			name:    "duplicate ref",
			arg:     sampleDriver,
			wantErr: true,
		},
	}
	createSampleEntry(pool)
	for _, tt := range tests {
		ctx := context.Background()
		t.Run(tt.name, func(t *testing.T) {
			_, err := Create(ctx, pool, tt.arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create error = %v, wantErr %v",
					err, tt.wantErr)
			}
		})
	}
}

func TestLoadByRef(t *testing.T) {
	pool := testdb.InitTestDB()
	created := createSampleEntry(pool)
	ctx := context.Background()

	loaded, err := LoadByRef(ctx, pool, created.Ref)
	assert.NilError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, "Anton Alpha", loaded.Name())

	_, err = LoadByRef(ctx, pool, "unknown")
	assert.Assert(t, errors.Is(err, repository.ErrNoData))
}

func TestUpdate(t *testing.T) {
	pool := testdb.InitTestDB()
	created := createSampleEntry(pool)
	ctx := context.Background()

	tests := []struct {
		name        string
		nationality string
		code        string
		wantNat     string
		wantCode    *string
	}{
		{
			name:    "empty values keep current attributes",
			wantNat: "Testland",
		},
		{
			name:     "set code and nationality",
			code:     "ALP",
			wantNat:  "Testland",
			wantCode: ptr("ALP"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Update(ctx, pool, created.ID, tt.nationality, tt.code)
			assert.NilError(t, err)
			loaded, err := LoadByID(ctx, pool, created.ID)
			assert.NilError(t, err)
			assert.Equal(t, tt.wantNat, loaded.Nationality)
			if tt.wantCode == nil {
				assert.Assert(t, loaded.Code == nil)
			} else {
				assert.Equal(t, *tt.wantCode, *loaded.Code)
			}
		})
	}
}

func TestDeleteByID(t *testing.T) {
	pool := testdb.InitTestDB()
	created := createSampleEntry(pool)
	ctx := context.Background()

	num, err := DeleteByID(ctx, pool, created.ID)
	assert.NilError(t, err)
	assert.Equal(t, 1, num)

	num, err = DeleteByID(ctx, pool, created.ID)
	assert.NilError(t, err)
	assert.Equal(t, 0, num)
}

func ptr(arg string) *string { return &arg }
