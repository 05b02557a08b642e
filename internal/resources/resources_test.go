package resources_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"golang.org/x/text/language"

	"github.com/FuturFusion/security-manager/internal/resources"
)

func TestTranslator_Match(t *testing.T) {
	tests := []struct {
		name        string
		preferences []string

		want language.Tag
	}{
		{
			name: "no preference",

			want: language.French,
		},
		{
			name:        "english",
			preferences: []string{"en"},

			want: language.English,
		},
		{
			name:        "regional variant",
			preferences: []string{"en-US"},

			want: language.English,
		},
		{
			name:        "accept-language header",
			preferences: []string{"de-DE,de;q=0.9,en;q=0.8"},

			want: language.English,
		},
		{
			name:        "first usable preference wins",
			preferences: []string{"", "fr-CH", "en"},

			want: language.French,
		},
		{
			name:        "invalid preference",
			preferences: []string{"!!"},

			want: language.French,
		},
	}

	translator, err := resources.New()
	require.NoError(t, err)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := translator.Match(tc.preferences...)

			require.Equal(t, tc.want, got)
		})
	}
}

func TestTranslator_Translate(t *testing.T) {
	tests := []struct {
		name string
		lang language.Tag
		key  string

		want string
	}{
		{
			name: "french",
			lang: language.French,
			key:  "securite.profil.typeDroit.values.Write",

			want: "Écriture",
		},
		{
			name: "english",
			lang: language.English,
			key:  "securite.utilisateur.typeUtilisateur.values.Gestionnaire",

			want: "Manager",
		},
		{
			name: "unknown key",
			lang: language.English,
			key:  "securite.unknown",

			want: "securite.unknown",
		},
	}

	translator, err := resources.New()
	require.NoError(t, err)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := translator.Translate(tc.lang, tc.key)

			require.Equal(t, tc.want, got)
		})
	}
}

func TestTranslator_Languages(t *testing.T) {
	translator, err := resources.New()
	require.NoError(t, err)

	require.Equal(t, []string{"fr", "en"}, translator.Languages())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string

		assertErr require.ErrorAssertionFunc
		want      resources.Format
	}{
		{
			name: "default",

			assertErr: require.NoError,
			want:      resources.FormatJSON,
		},
		{
			name: "typescript",
			in:   "TS",

			assertErr: require.NoError,
			want:      resources.FormatTypeScript,
		},
		{
			name: "error - unsupported",
			in:   "xml",

			assertErr: require.Error,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resources.ParseFormat(tc.in)

			tc.assertErr(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTranslator_Export_json(t *testing.T) {
	translator, err := resources.New()
	require.NoError(t, err)

	// Run test
	buf := &bytes.Buffer{}
	err = translator.Export(buf, language.English, resources.FormatJSON)
	require.NoError(t, err)

	// Assert
	require.True(t, json.Valid(buf.Bytes()), buf.String())
	require.Equal(t, "Administration", gjson.GetBytes(buf.Bytes(), "profil.typeDroit.values.Admin").String())
	require.Equal(t, "User type", gjson.GetBytes(buf.Bytes(), "utilisateur.utilisateur.typeUtilisateurCode").String())
	require.False(t, gjson.GetBytes(buf.Bytes(), "securite").Exists())
	require.True(t, strings.HasPrefix(buf.String(), "{\n  \"profil\": {\n    \"droit\": {\n      \"code\": \"Code\",\n"), buf.String())
	require.True(t, strings.HasSuffix(buf.String(), "    }\n  }\n}\n"), buf.String())

	var roots []string
	gjson.ParseBytes(buf.Bytes()).ForEach(func(key, _ gjson.Result) bool {
		roots = append(roots, key.String())
		return true
	})

	require.Equal(t, []string{"profil", "utilisateur"}, roots)

	var keys []string
	gjson.GetBytes(buf.Bytes(), "profil.droit.values").ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})

	require.Equal(t, []string{"Create", "Delete", "Read", "Update"}, keys)
}

func TestTranslator_Export_typescript(t *testing.T) {
	translator, err := resources.New()
	require.NoError(t, err)

	// Run test
	buf := &bytes.Buffer{}
	err = translator.Export(buf, language.French, resources.FormatTypeScript)
	require.NoError(t, err)

	// Assert
	got := buf.String()
	require.True(t, strings.HasPrefix(got, "export const securite = {\n  profil: {\n    droit: {\n      code: \"Code\",\n"), got)
	require.True(t, strings.HasSuffix(got, "    }\n  }\n};\n"), got)
	require.Contains(t, got, "      values: {\n        Admin: \"Administration\",\n        Read: \"Lecture\",\n        Write: \"Écriture\"\n      }\n")
	require.Contains(t, got, "typeUtilisateurCode: \"Type d'utilisateur\"\n")
}
