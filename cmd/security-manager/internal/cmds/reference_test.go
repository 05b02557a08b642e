package cmds

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestReferenceList(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		lang     string
		response string

		assertErr  require.ErrorAssertionFunc
		wantPath   string
		wantQuery  string
		wantOutput string
	}{
		{
			name:     "success - rights",
			args:     []string{"droits"},
			lang:     "en",
			response: `{"type": "sync", "metadata": [{"code": "CREATE", "libelle": "Create", "resource": "securite.profil.droit.values.Create", "type_droit_code": "WRITE"}, {"code": "DELETE", "libelle": "Delete", "type_droit_code": "ADMIN"}]}`,

			assertErr: require.NoError,
			wantPath:  "/1.0/references/droits",
			wantQuery: "lang=en",
			wantOutput: `CREATE,Create,WRITE
DELETE,Delete,ADMIN
`,
		},
		{
			name:     "success - user types",
			args:     []string{"type-utilisateurs"},
			response: `{"type": "sync", "metadata": [{"code": "GEST", "libelle": "Gestionnaire"}, {"code": "ADMIN", "libelle": "Administrateur"}]}`,

			assertErr: require.NoError,
			wantPath:  "/1.0/references/type-utilisateurs",
			wantOutput: `ADMIN,Administrateur
GEST,Gestionnaire
`,
		},
		{
			name:     "success - rights types",
			args:     []string{"type-droits"},
			response: `{"type": "sync", "metadata": [{"code": "READ", "libelle": "Lecture"}]}`,

			assertErr:  require.NoError,
			wantPath:   "/1.0/references/type-droits",
			wantOutput: "READ,Lecture\n",
		},
		{
			name: "error - unknown kind",
			args: []string{"profils"},

			assertErr: require.Error,
		},
		{
			name: "error - no args",

			assertErr: require.Error,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			server, last := newTestServer(t, http.StatusOK, tc.response, nil)

			list := cmdReferenceList{
				global:     newTestGlobal(t, server.URL),
				flagFormat: "csv",
				flagLang:   tc.lang,
			}

			buf := &bytes.Buffer{}
			cmd := &cobra.Command{}
			cmd.SetOut(buf)

			// Run test
			err := list.Run(cmd, tc.args)

			// Assert results
			tc.assertErr(t, err)
			require.Equal(t, tc.wantPath, last.path)
			require.Equal(t, tc.wantQuery, last.query)
			if tc.wantOutput != "" {
				require.Equal(t, tc.wantOutput, buf.String())
			}
		})
	}
}

func TestResourcesExport(t *testing.T) {
	const content = "export const securite = {\n  profil: {}\n};\n"

	// Setup
	server, last := newTestServer(t, http.StatusOK, `{"type": "sync", "metadata": {"language": "en", "format": "ts", "content": "export const securite = {\n  profil: {}\n};\n"}}`, nil)

	export := cmdResourcesExport{
		global:     newTestGlobal(t, server.URL),
		flagFormat: "ts",
		flagLang:   "en",
	}

	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	// Run test
	err := export.Run(cmd, nil)

	// Assert results
	require.NoError(t, err)
	require.Equal(t, "/1.0/resources", last.path)
	require.Equal(t, "format=ts&lang=en", last.query)
	require.Equal(t, content, buf.String())

	// Setup
	buf.Reset()
	export.flagOutput = filepath.Join(t.TempDir(), "labels", "securite.en.ts")

	// Run test
	err = export.Run(cmd, nil)

	// Assert results
	require.NoError(t, err)
	written, err := os.ReadFile(export.flagOutput)
	require.NoError(t, err)
	require.Equal(t, content, string(written))
	require.Contains(t, buf.String(), "Successfully exported en labels (ts)")
}

func TestResourcesExport_serverError(t *testing.T) {
	// Setup
	server, _ := newTestServer(t, http.StatusBadRequest, `{"type": "error", "error": "Unknown export format \"xml\"", "error_code": 400}`, nil)

	export := cmdResourcesExport{
		global:     newTestGlobal(t, server.URL),
		flagFormat: "xml",
	}

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	// Run test
	err := export.Run(cmd, nil)

	// Assert results
	require.ErrorContains(t, err, "Unknown export format")
}
