package request_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/FuturFusion/security-manager/internal/server/request"
)

func TestQueryParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/1.0/resources?lang=en&format=ts", nil)

	require.Equal(t, "en", request.QueryParam(r, "lang"))
	require.Equal(t, "ts", request.QueryParam(r, "format"))
	require.Empty(t, request.QueryParam(r, "missing"))

	r.URL.RawQuery = "lang=%zz"
	require.Empty(t, request.QueryParam(r, "lang"))
}

func TestWithRequestID(t *testing.T) {
	knownID := uuid.NewString()

	tests := []struct {
		name   string
		header string

		wantKnown bool
	}{
		{
			name: "generated",
		},
		{
			name:   "invalid id is replaced",
			header: "not-a-uuid",
		},
		{
			name:   "client id is kept",
			header: knownID,

			wantKnown: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotCtxID string
			handler := request.WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCtxID = request.RequestID(r.Context())
			}))

			r := httptest.NewRequest(http.MethodGet, "/1.0", nil)
			if tc.header != "" {
				r.Header.Set(request.HeaderRequestID, tc.header)
			}

			rec := httptest.NewRecorder()

			// Run test
			handler.ServeHTTP(rec, r)

			// Assert
			gotHeader := rec.Header().Get(request.HeaderRequestID)
			require.Equal(t, gotHeader, gotCtxID)

			_, err := uuid.Parse(gotHeader)
			require.NoError(t, err)

			if tc.wantKnown {
				require.Equal(t, knownID, gotHeader)
			} else {
				require.NotEqual(t, tc.header, gotHeader)
			}
		})
	}
}
