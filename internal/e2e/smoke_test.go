package e2e

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeExitCodes(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	expiresAt := time.Now().Add(10*24*time.Hour + time.Hour)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/200/":
			_, _ = fmt.Fprintf(w, `{"account":{"expiry_unix":%d}}`, expiresAt.Unix())
		case "/404/":
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprint(w, `{"code":"ACCOUNT_NOT_FOUND"}`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = fmt.Fprint(w, "Internal Server Error")
		}
	}))
	defer server.Close()

	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{name: "ok", args: []string{"-a", "200", "-w", "5", "-c", "2"}, wantOut: "OK - Mullvad VPN account expiration in 10 days", wantCode: 0},
		{name: "warning", args: []string{"-a", "200"}, wantOut: "WARNING - Mullvad VPN account expiration in 10 days", wantCode: 1},
		{name: "not found", args: []string{"-a", "404"}, wantOut: "CRITICAL - Code 404: Mullvad account not found", wantCode: 2},
		{name: "server error", args: []string{"-a", "500"}, wantOut: "UNKNOWN - Mullvad API did not respond with valid JSON (Returned code HTTP 500)", wantCode: 3},
		{name: "missing account flag", args: nil, wantOut: "UNKNOWN - required flag(s) \"account\" not set", wantCode: 3},
	}

	t.Run("stamped version", func(t *testing.T) {
		stdout, _, code := runCheck(t, binaryPath, home, "version", "--short")
		assert.Equal(t, buildVersion+"\n", stdout)
		assert.Equal(t, 0, code)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--api-url", server.URL}, tt.args...)
			stdout, stderr, code := runCheck(t, binaryPath, home, args...)
			assert.Contains(t, stdout, tt.wantOut, "stderr: %s", stderr)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

const (
	mainPackage  = "github.com/bnema/check-mullvad-account/cmd/check_mullvad_account"
	versionVar   = "github.com/bnema/check-mullvad-account/internal/version.Version"
	buildVersion = "e2e"
)

// buildBinary compiles the check binary with a stamped version, the way a release
// build would, from the module root located next to this file.
func buildBinary(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "locate e2e test source")
	moduleRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")

	binaryPath := filepath.Join(t.TempDir(), "check_mullvad_account")
	build := exec.Command("go", "build",
		"-ldflags", "-X "+versionVar+"="+buildVersion,
		"-o", binaryPath,
		mainPackage,
	)
	build.Dir = moduleRoot

	output, err := build.CombinedOutput()
	require.NoError(t, err, "go build %s: %s", mainPackage, string(output))
	return binaryPath
}

func runCheck(t *testing.T, binaryPath, home string, args ...string) (string, string, int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "XDG_CONFIG_HOME="+filepath.Join(home, ".config"))

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), stderr.String(), exitErr.ExitCode()
	}
	require.NoError(t, err)

	return stdout.String(), stderr.String(), 0
}
