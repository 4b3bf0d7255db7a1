package runtime

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Supported toolchain binaries.
const (
	BinNode = "node"
	BinBun  = "bun"
)

// MinNodeMajor is the lowest Node.js major version generated projects run on
// (import.meta.dirname landed in Node 20).
const MinNodeMajor = 20

// Prober reports the versions of the host toolchain.
type Prober interface {
	// NodeVersion returns the output of `node --version`, e.g. "v22.11.0".
	NodeVersion(ctx context.Context) (string, error)
	// BunVersion returns the output of `bun --version`, e.g. "1.1.34".
	BunVersion(ctx context.Context) (string, error)
}

// ExecProber runs the real binaries found on PATH.
type ExecProber struct{}

// NodeVersion implements Prober.
func (ExecProber) NodeVersion(ctx context.Context) (string, error) {
	return binaryVersion(ctx, BinNode)
}

// BunVersion implements Prober.
func (ExecProber) BunVersion(ctx context.Context) (string, error) {
	return binaryVersion(ctx, BinBun)
}

// binaryVersion invokes `<name> --version` and returns its trimmed stdout.
func binaryVersion(ctx context.Context, name string) (string, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found: %w", name, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("running %s --version: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("running %s --version: %w", name, err)
	}

	version := strings.TrimSpace(stdout.String())
	if version == "" {
		return "", fmt.Errorf("%s --version printed nothing", name)
	}
	return version, nil
}

// ParseMajor extracts the major component of a version string, tolerating a
// leading "v" ("v22.11.0" -> 22).
func ParseMajor(version string) (uint64, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return v.Major(), nil
}
