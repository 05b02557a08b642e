package util_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FuturFusion/security-manager/internal/testing/boom"
	"github.com/FuturFusion/security-manager/internal/util"
)

var headers = []string{
	"ID", "Nom", "Prenom", "Email", "Actif",
}

var entries = [][]string{
	{
		"1",
		"Doe",
		"John",
		"john.doe@example.com",
		"true",
	},
	{
		"2",
		"Martin",
		"Alice",
		"alice.martin@example.com",
		"false",
	},
	{
		"3",
		"Durand",
		"Paul",
		"paul.durand@example.com",
		"true",
	},
}

type someJSON struct {
	ID     int    `json:"id" yaml:"id"`
	Nom    string `json:"nom" yaml:"nom"`
	Prenom string `json:"prenom" yaml:"prenom"`
	Email  string `json:"email" yaml:"email"`
	Actif  bool   `json:"actif" yaml:"actif"`
}

var raw = []someJSON{
	{
		ID:     1,
		Nom:    "Doe",
		Prenom: "John",
		Email:  "john.doe@example.com",
		Actif:  true,
	},
	{
		ID:     2,
		Nom:    "Martin",
		Prenom: "Alice",
		Email:  "alice.martin@example.com",
		Actif:  false,
	},
	{
		ID:     3,
		Nom:    "Durand",
		Prenom: "Paul",
		Email:  "paul.durand@example.com",
		Actif:  true,
	},
}

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name   string
		format string

		assertErr             require.ErrorAssertionFunc
		wantOutputContains    []string
		wantOutputNotContains []string
		wantJSONEQ            []string
	}{
		{
			name:   "success - table",
			format: `table`,

			assertErr: require.NoError,
			wantOutputContains: []string{
				`Prenom`,
				`Email`,
				`john.doe@example.com`,
				`alice.martin@example.com`,
				`paul.durand@example.com`,
			},
			wantOutputNotContains: []string{
				`PRENOM`,
			},
		},
		{
			name:   "success - table without header",
			format: `table,noheader`,

			assertErr: require.NoError,
			wantOutputContains: []string{
				`john.doe@example.com`,
				`alice.martin@example.com`,
				`paul.durand@example.com`,
			},
			wantOutputNotContains: []string{
				`Prenom`,
				`Email`,
				`PRENOM`,
				`EMAIL`,
			},
		},
		{
			name:   "success - csv",
			format: "csv",

			assertErr: require.NoError,
			wantOutputContains: []string{
				`1,Doe,John,john.doe@example.com,true`,
				`2,Martin,Alice,alice.martin@example.com,false`,
				`3,Durand,Paul,paul.durand@example.com,true`,
			},
			wantOutputNotContains: []string{
				`Prenom`,
				`Email`,
			},
		},
		{
			name:   "success - csv with header",
			format: "csv,header",

			assertErr: require.NoError,
			wantOutputContains: []string{
				`ID,Nom,Prenom,Email,Actif`,
				`1,Doe,John,john.doe@example.com,true`,
				`2,Martin,Alice,alice.martin@example.com,false`,
				`3,Durand,Paul,paul.durand@example.com,true`,
			},
		},
		{
			name:   "success - compact",
			format: `compact`,

			assertErr: require.NoError,
			wantOutputContains: []string{
				`Prenom`,
				`john.doe@example.com`,
				`paul.durand@example.com`,
			},
		},
		{
			name:   "success - compact without header",
			format: `compact,noheader`,

			assertErr: require.NoError,
			wantOutputContains: []string{
				`john.doe@example.com`,
				`paul.durand@example.com`,
			},
			wantOutputNotContains: []string{
				`Prenom`,
			},
		},
		{
			name:   "success - list as json",
			format: `json`,

			assertErr: require.NoError,
			wantJSONEQ: []string{
				`[
  {
    "id": 1,
    "nom": "Doe",
    "prenom": "John",
    "email": "john.doe@example.com",
    "actif": true
  },
  {
    "id": 2,
    "nom": "Martin",
    "prenom": "Alice",
    "email": "alice.martin@example.com",
    "actif": false
  },
  {
    "id": 3,
    "nom": "Durand",
    "prenom": "Paul",
    "email": "paul.durand@example.com",
    "actif": true
  }
]`,
			},
		},
		{
			name:   "success - list as yaml",
			format: `yaml`,

			assertErr: require.NoError,
			wantOutputContains: []string{
				`- id: 1`,
				`nom: Doe`,
				`prenom: John`,
				`email: john.doe@example.com`,
				`actif: true`,
				`- id: 2`,
				`nom: Martin`,
				`actif: false`,
				`- id: 3`,
				`email: paul.durand@example.com`,
			},
		},
		{
			name:   "error - header and noheader",
			format: `table,header,noheader`,

			assertErr: require.Error,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := bytes.Buffer{}

			err := util.RenderTable(&buf, tc.format, headers, entries, raw)
			tc.assertErr(t, err)

			if testing.Verbose() {
				t.Logf("\n%s", buf.String())
			}

			for _, want := range tc.wantOutputContains {
				require.Contains(t, buf.String(), want)
			}

			for _, want := range tc.wantOutputNotContains {
				require.NotContains(t, buf.String(), want)
			}

			for _, want := range tc.wantJSONEQ {
				require.JSONEq(t, want, buf.String())
			}
		})
	}
}

func TestRenderTableNilWriter(t *testing.T) {
	err := util.RenderTable(nil, "table", headers, entries, raw)
	require.Error(t, err)
}

func TestRenderTableError(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		headers []string
		entries [][]string
		raw     any

		assertErr require.ErrorAssertionFunc
	}{
		{
			name:    "csv render error",
			format:  "csv",
			headers: []string{"head 1", "head 2"},
			entries: [][]string{
				{
					"entry 1.1",
				},
				{
					"entry 2.1",
					"entry 2.2",
					"entry 2.3",
				},
			},

			assertErr: require.Error,
		},
		{
			name:    "csv write error",
			format:  "csv",
			headers: []string{"head 1"},
			entries: [][]string{{"entry 1.1"}},

			assertErr: boom.ErrorIs,
		},
		{
			name:   "json encoding error",
			format: "json",
			raw:    func() {}, // func type can not be encoded to JSON.

			assertErr: require.Error,
		},
		{
			name:   "yaml encoding error",
			format: "yaml",
			raw:    errTextMarshaler{},

			assertErr: require.Error,
		},
		{
			name:   "invalid format",
			format: "invalid",

			assertErr: require.Error,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := errWriter{}

			err := util.RenderTable(w, tc.format, tc.headers, tc.entries, tc.raw)
			tc.assertErr(t, err)
		})
	}
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, boom.Error
}

type errTextMarshaler struct{}

func (errTextMarshaler) MarshalText() ([]byte, error) {
	return nil, boom.Error
}
