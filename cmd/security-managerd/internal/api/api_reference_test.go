package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestReferencesGet(t *testing.T) {
	// Setup
	_, client, srvURL := daemonSetup(t)

	// Execute test
	statusCode, body := probeAPI(t, client, http.MethodGet, srvURL+"/1.0/references", http.NoBody, nil)

	// Assert results
	require.Equal(t, http.StatusOK, statusCode)
	require.JSONEq(t, `["/1.0/references/droits","/1.0/references/type-droits","/1.0/references/type-utilisateurs"]`, gjson.Get(body, "metadata").Raw)
}

func TestReferenceGet(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string

		wantHTTPStatus int
		wantCodes      string
		wantLibelles   string
		assertBody     func(t *testing.T, body string)
	}{
		{
			name: "rights in english",
			path: "/1.0/references/droits?lang=en",

			wantHTTPStatus: http.StatusOK,
			wantCodes:      `["CREATE","DELETE","READ","UPDATE"]`,
			wantLibelles:   `["Create","Delete","Read","Update"]`,
			assertBody: func(t *testing.T, body string) {
				t.Helper()

				require.Equal(t, "securite.profil.droit.values.Create", gjson.Get(body, "metadata.0.resource").String())
				require.Equal(t, "WRITE", gjson.Get(body, "metadata.0.type_droit_code").String())
				require.Equal(t, "ADMIN", gjson.Get(body, "metadata.1.type_droit_code").String())
			},
		},
		{
			name:    "rights from accept-language",
			path:    "/1.0/references/droits",
			headers: map[string]string{"Accept-Language": "fr-CA,en;q=0.5"},

			wantHTTPStatus: http.StatusOK,
			wantCodes:      `["CREATE","DELETE","READ","UPDATE"]`,
			assertBody: func(t *testing.T, body string) {
				t.Helper()

				require.Equal(t, "Création", gjson.Get(body, "metadata.0.libelle").String())
			},
		},
		{
			name:    "lang parameter wins over accept-language",
			path:    "/1.0/references/type-droits?lang=en",
			headers: map[string]string{"Accept-Language": "fr"},

			wantHTTPStatus: http.StatusOK,
			wantCodes:      `["ADMIN","READ","WRITE"]`,
			wantLibelles:   `["Administration","Read","Write"]`,
		},
		{
			name: "user types default to french",
			path: "/1.0/references/type-utilisateurs",

			wantHTTPStatus: http.StatusOK,
			wantCodes:      `["ADMIN","CLIENT","GEST"]`,
			assertBody: func(t *testing.T, body string) {
				t.Helper()

				require.Equal(t, "Gestionnaire", gjson.Get(body, "metadata.2.libelle").String())
				require.Equal(t, "securite.utilisateur.typeUtilisateur.values.Gestionnaire", gjson.Get(body, "metadata.2.resource").String())
			},
		},
		{
			name: "unknown language falls back to french",
			path: "/1.0/references/type-utilisateurs?lang=de",

			wantHTTPStatus: http.StatusOK,
			wantCodes:      `["ADMIN","CLIENT","GEST"]`,
			assertBody: func(t *testing.T, body string) {
				t.Helper()

				require.Equal(t, "Gestionnaire", gjson.Get(body, "metadata.2.libelle").String())
			},
		},
		{
			name: "unknown kind",
			path: "/1.0/references/foo",

			wantHTTPStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			_, client, srvURL := daemonSetup(t)

			// Execute test
			statusCode, body := probeAPI(t, client, http.MethodGet, srvURL+tc.path, http.NoBody, tc.headers)

			// Assert results
			require.Equal(t, tc.wantHTTPStatus, statusCode, body)
			if tc.wantCodes != "" {
				require.JSONEq(t, tc.wantCodes, gjson.Get(body, "metadata.#.code").Raw)
			}

			if tc.wantLibelles != "" {
				require.JSONEq(t, tc.wantLibelles, gjson.Get(body, "metadata.#.libelle").Raw)
			}

			if tc.assertBody != nil {
				tc.assertBody(t, body)
			}
		})
	}
}

func TestResourcesGet(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		headers map[string]string

		wantHTTPStatus int
		assertBody     func(t *testing.T, body string)
	}{
		{
			name: "default json in french",

			wantHTTPStatus: http.StatusOK,
			assertBody: func(t *testing.T, body string) {
				t.Helper()

				require.Equal(t, "fr", gjson.Get(body, "metadata.language").String())
				require.Equal(t, "json", gjson.Get(body, "metadata.format").String())

				content := gjson.Get(body, "metadata.content").String()
				require.True(t, gjson.Valid(content))
				require.Equal(t, "Gestionnaire", gjson.Get(content, "utilisateur.typeUtilisateur.values.Gestionnaire").String())
			},
		},
		{
			name:    "json from accept-language",
			headers: map[string]string{"Accept-Language": "en-US"},

			wantHTTPStatus: http.StatusOK,
			assertBody: func(t *testing.T, body string) {
				t.Helper()

				require.Equal(t, "en", gjson.Get(body, "metadata.language").String())

				content := gjson.Get(body, "metadata.content").String()
				require.Equal(t, "Manager", gjson.Get(content, "utilisateur.typeUtilisateur.values.Gestionnaire").String())
			},
		},
		{
			name:  "typescript in english",
			query: "?format=ts&lang=en",

			wantHTTPStatus: http.StatusOK,
			assertBody: func(t *testing.T, body string) {
				t.Helper()

				require.Equal(t, "ts", gjson.Get(body, "metadata.format").String())

				content := gjson.Get(body, "metadata.content").String()
				require.True(t, strings.HasPrefix(content, "export const securite = {\n"))
				require.True(t, strings.HasSuffix(content, "};\n"))
				require.Contains(t, content, `Gestionnaire: "Manager"`)
			},
		},
		{
			name:  "unknown format",
			query: "?format=xml",

			wantHTTPStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			_, client, srvURL := daemonSetup(t)

			// Execute test
			statusCode, body := probeAPI(t, client, http.MethodGet, srvURL+"/1.0/resources"+tc.query, http.NoBody, tc.headers)

			// Assert results
			require.Equal(t, tc.wantHTTPStatus, statusCode, body)
			if tc.assertBody != nil {
				tc.assertBody(t, body)
			}
		})
	}
}
