package request

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type requestKey string

// CtxRequestID is the context key holding the id of the request.
const CtxRequestID requestKey = "request_id"

// HeaderRequestID is the header carrying the request id.
const HeaderRequestID = "X-Request-Id"

// WithRequestID assigns an id to each request, either the one sent by the
// client in the X-Request-Id header or a new random UUID. The id is echoed
// in the response header and stored in the request context.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		_, err := uuid.Parse(id)
		if err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CtxRequestID, id)))
	})
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(CtxRequestID).(string)
	return id
}
