package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mpapenbr/f1-history-service-go/pkg/aggregate"
	"github.com/mpapenbr/f1-history-service-go/pkg/model"
)

func getReq(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func TestQueryKind(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		want    model.CompetitorKind
		wantErr bool
	}{
		{name: "default", target: "/x", want: model.KindDriver},
		{name: "driver", target: "/x?kind=driver", want: model.KindDriver},
		{
			name:   "constructor",
			target: "/x?kind=constructor",
			want:   model.KindConstructor,
		},
		{name: "unknown", target: "/x?kind=team", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := queryKind(getReq(tt.target))
			if tt.wantErr {
				assert.ErrorIs(t, err, errBadParam)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryPoleSource(t *testing.T) {
	got, err := queryPoleSource(getReq("/x"))
	assert.NilError(t, err)
	assert.Equal(t, aggregate.PolesFromQualifying, got)

	got, err = queryPoleSource(getReq("/x?poleSource=grid"))
	assert.NilError(t, err)
	assert.Equal(t, aggregate.PolesFromGrid, got)

	_, err = queryPoleSource(getReq("/x?poleSource=race"))
	assert.ErrorIs(t, err, errBadParam)
}

func TestQueryFilter(t *testing.T) {
	filter, err := queryFilter(getReq("/x"))
	assert.NilError(t, err)
	assert.Assert(t, filter == nil)

	filter, err = queryFilter(getReq("/x?from=1990&to=1999&circuit=6"))
	assert.NilError(t, err)
	assert.Equal(t, 1990, *filter.SeasonFrom)
	assert.Equal(t, 1999, *filter.SeasonTo)
	assert.Equal(t, 6, *filter.CircuitID)

	filter, err = queryFilter(getReq("/x?from=1990"))
	assert.NilError(t, err)
	assert.Equal(t, 1990, *filter.SeasonFrom)
	assert.Assert(t, filter.SeasonTo == nil)

	_, err = queryFilter(getReq("/x?from=early"))
	assert.ErrorIs(t, err, errBadParam)
}

func TestRequireAdmin(t *testing.T) {
	called := false
	handler := func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}
	tests := []struct {
		name       string
		token      string
		authHeader string
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "valid token",
			token:      "secret",
			authHeader: "Bearer secret",
			wantStatus: http.StatusNoContent,
			wantCalled: true,
		},
		{
			name:       "wrong token",
			token:      "secret",
			authHeader: "Bearer other",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing header",
			token:      "secret",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin disabled",
			token:      "",
			authHeader: "Bearer ",
			wantStatus: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			s := NewServer(WithAdminToken(tt.token))
			req := getReq("/x")
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			s.requireAdmin(handler)(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestWithRequestID(t *testing.T) {
	s := NewServer()
	handler := s.withRequestID(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, getReq("/x"))
	assert.Assert(t, rec.Header().Get(requestIDHeader) != "")

	req := getReq("/x")
	req.Header.Set(requestIDHeader, "my-id")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "my-id", rec.Header().Get(requestIDHeader))
}
