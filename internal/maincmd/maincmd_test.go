package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/mna/voxc/internal/filetest"
	"github.com/mna/voxc/internal/maincmd"
	"github.com/stretchr/testify/require"
)

var testUpdateMaincmdTests = flag.Bool("test.update-maincmd-tests", false, "If set, replace expected maincmd test results with actual results.")

// TestBuild runs the build command over every script in testdata/in and
// checks its stderr output against the golden file in testdata/out. A
// script that compiles cleanly produces an empty error file; a script
// naming an unknown prefab produces the diagnostic text verbatim.
func TestBuild(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".vox") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

			c := &maincmd.Cmd{}
			err := c.Build(context.Background(), stdio, []string{filepath.Join(srcDir, fi.Name())})

			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateMaincmdTests)

			if ebuf.Len() == 0 {
				require.NoError(t, err)
				require.NotEmpty(t, buf.Bytes())
			} else {
				require.Error(t, err)
				require.Empty(t, buf.Bytes())
			}
		})
	}
}

// TestGenerateDefaultsToDebugEncoding checks that an omitted --encoding
// produces the YAML debug dump, not the binary container.
func TestGenerateDefaultsToDebugEncoding(t *testing.T) {
	var buf, ebuf bytes.Buffer
	stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

	c := &maincmd.Cmd{}
	err := c.Generate(context.Background(), stdio, []string{filepath.Join("testdata", "in", "score.vox")})
	require.NoError(t, err)
	require.Empty(t, ebuf.String())
	require.Contains(t, buf.String(), "app_version:")
}

// TestLoadRoundTripsBuildOutput feeds build's raw output back through
// load and checks it re-encodes to the same debug dump generate produces.
func TestLoadRoundTripsBuildOutput(t *testing.T) {
	var built, genBuf, loadBuf, ebuf bytes.Buffer
	stdio := mainer.Stdio{Stdout: &built, Stderr: &ebuf}

	c := &maincmd.Cmd{}
	require.NoError(t, c.Build(context.Background(), stdio, []string{filepath.Join("testdata", "in", "score.vox")}))

	gen := &maincmd.Cmd{}
	genStdio := mainer.Stdio{Stdout: &genBuf, Stderr: &ebuf}
	require.NoError(t, gen.Generate(context.Background(), genStdio, []string{filepath.Join("testdata", "in", "score.vox")}))

	// load.go reads from a file, so round through the filesystem via t.TempDir.
	dir := t.TempDir()
	path := filepath.Join(dir, "score.bin")
	require.NoError(t, os.WriteFile(path, built.Bytes(), 0o600))

	load := &maincmd.Cmd{Encoding: "debug"}
	loadStdio := mainer.Stdio{Stdout: &loadBuf, Stderr: &ebuf}
	require.NoError(t, load.Load(context.Background(), loadStdio, []string{path}))

	require.Equal(t, genBuf.String(), loadBuf.String())
}
