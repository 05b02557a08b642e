package request

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/FuturFusion/security-manager/internal/logger"
)

// QueryParam extracts the given query parameter directly from the URL, never from an
// encoded body.
func QueryParam(request *http.Request, key string) string {
	var values url.Values
	var err error

	if request.URL != nil {
		values, err = url.ParseQuery(request.URL.RawQuery)
		if err != nil {
			slog.Warn("Failed to parse query string", slog.String("query", request.URL.RawQuery), logger.Err(err))
			return ""
		}
	}

	if values == nil {
		values = make(url.Values)
	}

	return values.Get(key)
}

// PathID returns the path value name parsed as a database id.
func PathID(request *http.Request, name string) (int64, error) {
	return strconv.ParseInt(request.PathValue(name), 10, 64)
}
