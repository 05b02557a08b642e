package cmds

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"os/user"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Rican7/retry"
	"github.com/Rican7/retry/backoff"
	"github.com/Rican7/retry/strategy"
	incusAPI "github.com/lxc/incus/v6/shared/api"
	"github.com/lxc/incus/v6/shared/revert"
	"github.com/lxc/incus/v6/shared/termios"
	"github.com/lxc/incus/v6/shared/util"
	"github.com/spf13/cobra"

	"github.com/FuturFusion/security-manager/cmd/security-manager/internal/config"
	"github.com/FuturFusion/security-manager/internal/server/sys"
	internalUtil "github.com/FuturFusion/security-manager/internal/util"
)

const formatFlagUsage = `Format (csv|json|table|yaml|compact), use suffix ",noheader" to disable headers and ",header" to enable if demanded, e.g. csv,header`

// getAttempts is the number of tries for idempotent requests.
const getAttempts = 3

type CmdGlobal struct {
	config *config.Config
	os     *sys.OS
	Cmd    *cobra.Command

	FlagForceLocal bool
	FlagHelp       bool
	FlagVersion    bool

	retryDelay time.Duration
}

func (c *CmdGlobal) GetDefaultRemote() config.Remote {
	if c.config.DefaultRemote == "" {
		return config.Remote{Addr: c.os.GetUnixSocket()}
	}

	remote, ok := c.config.Remotes[c.config.DefaultRemote]
	if !ok || remote.Addr == "" {
		c.Cmd.PrintErrf("Warning: default remote %q is misconfigured, falling back to local unix socket\n", c.config.DefaultRemote)
		return config.Remote{Addr: c.os.GetUnixSocket()}
	}

	return remote
}

func (c *CmdGlobal) PreRun(cmd *cobra.Command, args []string) error {
	var err error

	// If calling the help, skip pre-run
	if cmd.Name() == "help" {
		return nil
	}

	c.os = sys.DefaultOS()

	// Figure out the config directory and config path
	var configDir string
	if os.Getenv("SECURITY_MANAGER_CONF") != "" {
		configDir = os.Getenv("SECURITY_MANAGER_CONF")
	} else if os.Getenv("HOME") != "" && util.PathExists(os.Getenv("HOME")) {
		configDir = path.Join(os.Getenv("HOME"), ".config", "security-manager")
	} else {
		currentUser, err := user.Current()
		if err != nil {
			return err
		}

		if util.PathExists(currentUser.HomeDir) {
			configDir = path.Join(currentUser.HomeDir, ".config", "security-manager")
		}
	}

	configDir = os.ExpandEnv(configDir)
	if !util.PathExists(configDir) {
		// Create the config dir if it doesn't exist
		err = os.MkdirAll(configDir, 0o750)
		if err != nil {
			return err
		}
	}

	// Load the configuration
	c.config, err = config.LoadConfig(configDir)
	if err != nil {
		return err
	}

	if c.GetDefaultRemote().Addr == c.os.GetUnixSocket() {
		c.FlagForceLocal = true
	}

	return nil
}

func (c *CmdGlobal) CheckArgs(cmd *cobra.Command, args []string, minArgs int, maxArgs int) (bool, error) {
	if len(args) < minArgs || (maxArgs != -1 && len(args) > maxArgs) {
		_ = cmd.Help()

		return true, fmt.Errorf("Invalid number of arguments")
	}

	return false, nil
}

func (c *CmdGlobal) buildRequest(endpoint string, method string, query string, reader io.Reader) (*http.Request, *http.Client, error) {
	requestString, err := url.JoinPath("/1.0/", endpoint)
	if err != nil {
		return nil, nil, err
	}

	if query != "" {
		requestString = fmt.Sprintf("%s?%s", requestString, query)
	}

	var client *http.Client
	u, err := url.Parse(requestString)
	if err != nil {
		return nil, nil, err
	}

	remote := c.GetDefaultRemote()
	if !c.FlagForceLocal && (strings.HasPrefix(remote.Addr, "https://") || strings.HasPrefix(remote.Addr, "http://")) {
		serverHost, err := url.Parse(remote.Addr)
		if err != nil {
			return nil, nil, err
		}

		u.Scheme = serverHost.Scheme
		u.Host = serverHost.Host

		client = &http.Client{}
	} else {
		u.Scheme = "http"
		u.Host = "unix.socket"
		client = internalUtil.UnixHTTPClient(c.os.GetUnixSocket())
	}

	req, err := http.NewRequest(method, u.String(), reader)
	if err != nil {
		return nil, nil, err
	}

	if c.config.Language != "" {
		req.Header.Set("Accept-Language", c.config.Language)
	}

	return req, client, nil
}

func (c *CmdGlobal) parseResponse(resp *http.Response) (*incusAPI.Response, error) {
	decoder := json.NewDecoder(resp.Body)
	response := incusAPI.Response{}

	err := decoder.Decode(&response)
	if err != nil {
		if strings.Contains(err.Error(), "invalid character 'C'") {
			return nil, fmt.Errorf("Client sent an HTTP request to an HTTPS server")
		}

		return nil, err
	} else if response.Code != 0 {
		return &response, incusAPI.StatusErrorf(response.Code, "Received an error from the server: %s", response.Error)
	}

	return &response, nil
}

// sendRequest sends a single request. Transport errors and unavailable
// servers are reported as retryable.
func (c *CmdGlobal) sendRequest(endpoint string, method string, query string, content []byte, header http.Header) (*incusAPI.Response, http.Header, bool, error) {
	var reader io.Reader = http.NoBody
	if content != nil {
		reader = bytes.NewReader(content)
	}

	req, client, err := c.buildRequest(endpoint, method, query, reader)
	if err != nil {
		return nil, nil, false, err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, true, err
	}

	// Linter isn't smart enough to determine resp.Body will be closed...
	defer func() { _ = resp.Body.Close() }()
	response, err := c.parseResponse(resp)
	if err != nil {
		return response, resp.Header, resp.StatusCode == http.StatusServiceUnavailable, err
	}

	return response, resp.Header, false, nil
}

func (c *CmdGlobal) makeHTTPRequest(endpoint string, method string, query string, content []byte, header http.Header) (*incusAPI.Response, http.Header, error) {
	if method != http.MethodGet {
		response, respHeader, _, err := c.sendRequest(endpoint, method, query, content, header)
		return response, respHeader, err
	}

	var response *incusAPI.Response
	var respHeader http.Header
	var lastErr error

	delay := c.retryDelay
	if delay == 0 {
		delay = 200 * time.Millisecond
	}

	err := retry.Retry(
		func(attempt uint) error {
			var retryable bool
			response, respHeader, retryable, lastErr = c.sendRequest(endpoint, method, query, content, header)
			if lastErr != nil && retryable {
				return lastErr
			}

			return nil
		},
		strategy.Limit(getAttempts),
		strategy.Backoff(backoff.Linear(delay)),
	)
	if err != nil {
		return response, respHeader, err
	}

	return response, respHeader, lastErr
}

func (c *CmdGlobal) doHTTPRequestV1(endpoint string, method string, query string, content []byte) (*incusAPI.Response, http.Header, error) {
	return c.makeHTTPRequest(endpoint, method, query, content, nil)
}

// doHTTPRequestV1IfMatch sends the request only applied by the server if the
// entity still matches etag.
func (c *CmdGlobal) doHTTPRequestV1IfMatch(endpoint string, method string, etag string, content []byte) (*incusAPI.Response, http.Header, error) {
	header := http.Header{}
	if etag != "" {
		header.Set("If-Match", etag)
	}

	return c.makeHTTPRequest(endpoint, method, "", content, header)
}

func responseToStruct(response *incusAPI.Response, targetStruct any) error {
	return json.Unmarshal(response.Metadata, &targetStruct)
}

// idFromLocation returns the last element of the Location header of a
// creation response.
func idFromLocation(header http.Header) string {
	location := header.Get("Location")
	if location == "" {
		return ""
	}

	return path.Base(location)
}

func validateFlagFormat(format string) error {
	base, _, _ := strings.Cut(format, ",")
	switch base {
	case internalUtil.TableFormatCSV, internalUtil.TableFormatJSON, internalUtil.TableFormatTable, internalUtil.TableFormatYAML, internalUtil.TableFormatCompact:
		return nil
	}

	return fmt.Errorf("Invalid value %q for flag %q", format, "format")
}

// readInput returns the content piped to the command or, on an interactive
// terminal, the result of editing current.
func readInput(cmd *cobra.Command, helpTemplate string, current []byte) ([]byte, error) {
	in := cmd.InOrStdin()
	if in != os.Stdin || !termios.IsTerminal(int(os.Stdin.Fd())) {
		return io.ReadAll(in)
	}

	return textEditor([]byte(helpTemplate + "\n\n" + string(current)))
}

// Spawn the editor with a temporary YAML file for editing configs.
func textEditor(inContent []byte) ([]byte, error) {
	var f *os.File
	var err error
	var yamlPath string

	// Detect the text editor to use
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
		if editor == "" {
			for _, p := range []string{"editor", "vi", "emacs", "nano"} {
				_, err := exec.LookPath(p)
				if err == nil {
					editor = p
					break
				}
			}

			if editor == "" {
				return []byte{}, errors.New("No text editor found, please set the EDITOR environment variable")
			}
		}
	}

	f, err = os.CreateTemp("", "security_manager_editor_")
	if err != nil {
		return []byte{}, err
	}

	reverter := revert.New()
	defer reverter.Fail()

	reverter.Add(func() {
		_ = f.Close()
		_ = os.Remove(f.Name())
	})

	err = os.Chmod(f.Name(), 0o600)
	if err != nil {
		return []byte{}, err
	}

	_, err = f.Write(inContent)
	if err != nil {
		return []byte{}, err
	}

	err = f.Close()
	if err != nil {
		return []byte{}, err
	}

	yamlPath = fmt.Sprintf("%s.yaml", f.Name())
	err = os.Rename(f.Name(), yamlPath)
	if err != nil {
		return []byte{}, err
	}

	reverter.Success()
	defer func() { _ = os.Remove(yamlPath) }()

	cmdParts := strings.Fields(editor)
	cmd := exec.Command(cmdParts[0], append(cmdParts[1:], yamlPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err = cmd.Run()
	if err != nil {
		return []byte{}, err
	}

	return os.ReadFile(filepath.Clean(yamlPath))
}
