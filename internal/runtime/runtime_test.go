package runtime

import (
	"context"
	"os"
	"path/filepath"
	goruntime "runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMajor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"v22.11.0", 22, false},
		{"v20.0.0", 20, false},
		{"18.19.1", 18, false},
		{"  v21.7.3\n", 21, false},
		{"1.1.34", 1, false},
		{"v24", 24, false},
		{"", 0, true},
		{"not-a-version", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMajor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecProber(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("fake toolchain scripts need a POSIX shell")
	}

	dir := t.TempDir()
	writeScript(t, dir, "node", "#!/bin/sh\necho v22.11.0\n")
	writeScript(t, dir, "bun", "#!/bin/sh\necho 1.1.34\n")
	t.Setenv("PATH", dir)

	var p ExecProber
	ctx := context.Background()

	node, err := p.NodeVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v22.11.0", node)

	bun, err := p.BunVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.1.34", bun)
}

func TestExecProber_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := ExecProber{}.BunVersion(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bun not found")
}

func TestExecProber_FailingBinary(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("fake toolchain scripts need a POSIX shell")
	}

	dir := t.TempDir()
	writeScript(t, dir, "node", "#!/bin/sh\necho broken install >&2\nexit 3\n")
	t.Setenv("PATH", dir)

	_, err := ExecProber{}.NodeVersion(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken install")
}

func TestExecProber_EmptyOutput(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("fake toolchain scripts need a POSIX shell")
	}

	dir := t.TempDir()
	writeScript(t, dir, "bun", "#!/bin/sh\nexit 0\n")
	t.Setenv("PATH", dir)

	_, err := ExecProber{}.BunVersion(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "printed nothing")
}

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0755))
}
