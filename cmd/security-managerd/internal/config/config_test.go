package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FuturFusion/security-manager/cmd/security-managerd/internal/config"
	"github.com/FuturFusion/security-manager/internal/server/sys"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		configFile string
		dotEnv     string
		env        map[string]string

		assertErr require.ErrorAssertionFunc
		want      *config.Config
	}{
		{
			name: "success - no config",

			assertErr: require.NoError,
			want:      &config.Config{},
		},
		{
			name: "success - config file",
			configFile: `network:
  address: 127.0.0.1:8443
log:
  level: info
`,

			assertErr: require.NoError,
			want: &config.Config{
				Network: config.Network{Address: "127.0.0.1:8443"},
				Log:     config.Log{Level: "info"},
			},
		},
		{
			name: "success - environment overrides config file and .env",
			configFile: `network:
  address: 127.0.0.1:8443
`,
			dotEnv: "SECURITY_MANAGER_NETWORK_ADDRESS=127.0.0.1:9000\nSECURITY_MANAGER_LOG_LEVEL=debug\n",
			env: map[string]string{
				"SECURITY_MANAGER_NETWORK_ADDRESS": ":7443",
			},

			assertErr: require.NoError,
			want: &config.Config{
				Network: config.Network{Address: ":7443"},
				Log:     config.Log{Level: "debug"},
			},
		},
		{
			name:       "error - invalid yaml",
			configFile: `network: [`,

			assertErr: require.Error,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			s := &sys.OS{VarDir: tmpDir}

			t.Setenv("SECURITY_MANAGER_NETWORK_ADDRESS", "")
			os.Unsetenv("SECURITY_MANAGER_NETWORK_ADDRESS")
			t.Setenv("SECURITY_MANAGER_LOG_LEVEL", "")
			os.Unsetenv("SECURITY_MANAGER_LOG_LEVEL")

			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			if tc.configFile != "" {
				err := os.WriteFile(s.ConfigFile(), []byte(tc.configFile), 0o600)
				require.NoError(t, err)
			}

			if tc.dotEnv != "" {
				err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(tc.dotEnv), 0o600)
				require.NoError(t, err)
			}

			// Run test
			cfg, err := config.LoadConfig(s)

			// Assert
			tc.assertErr(t, err)
			require.Equal(t, tc.want, cfg)
		})
	}
}

func TestSaveConfig(t *testing.T) {
	s := &sys.OS{VarDir: t.TempDir()}
	want := config.Config{Network: config.Network{Address: "[::1]:8443"}}

	err := config.SaveConfig(s, want)
	require.NoError(t, err)

	got, err := config.LoadConfig(s)
	require.NoError(t, err)
	require.Equal(t, want, *got)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config

		assertErr require.ErrorAssertionFunc
	}{
		{
			name: "success - empty",

			assertErr: require.NoError,
		},
		{
			name: "success - all interfaces",
			cfg:  config.Config{Network: config.Network{Address: ":8443"}, Log: config.Log{Level: "TRACE"}},

			assertErr: require.NoError,
		},
		{
			name: "error - missing port",
			cfg:  config.Config{Network: config.Network{Address: "127.0.0.1"}},

			assertErr: require.Error,
		},
		{
			name: "error - invalid host",
			cfg:  config.Config{Network: config.Network{Address: "localhost:8443"}},

			assertErr: require.Error,
		},
		{
			name: "error - invalid port",
			cfg:  config.Config{Network: config.Network{Address: "127.0.0.1:70000"}},

			assertErr: require.Error,
		},
		{
			name: "error - invalid log level",
			cfg:  config.Config{Log: config.Log{Level: "verbose"}},

			assertErr: require.Error,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := config.Validate(tc.cfg)

			tc.assertErr(t, err)
		})
	}
}
