package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndflat/index"
	"github.com/katalvlaran/ndflat/nested"
)

// run executes the root command with stdin and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()

	return out.String(), err
}

const grid4 = `[[1,2,3,4],[5,6,7,8],[9,10,11,12],[13,14,15,16]]`

func TestFlattenCommand(t *testing.T) {
	out, err := run(t, grid4, "flatten", "--shape", "2,2")
	require.NoError(t, err)
	require.JSONEq(t, `[1,2,5,6]`, out)

	out, err = run(t, grid4, "flatten", "--shape", "2,2", "--colex")
	require.NoError(t, err)
	require.JSONEq(t, `[1,5,2,6]`, out)

	out, err = run(t, grid4, "flatten", "--shape", "2,2", "--colex", "--strategy", "direct")
	require.NoError(t, err)
	require.JSONEq(t, `[1,5,2,6]`, out)
}

func TestFlattenCommandInfersShape(t *testing.T) {
	out, err := run(t, `[[["a","b"]],[["c","d"]]]`, "flatten", "--colex")
	require.NoError(t, err)
	require.JSONEq(t, `["a","c","b","d"]`, out)

	_, err = run(t, `[[1,2],[3]]`, "flatten")
	require.ErrorIs(t, err, nested.ErrRagged)
}

func TestFlattenCommandErrors(t *testing.T) {
	_, err := run(t, grid4, "flatten", "--shape", "5,2")
	require.ErrorIs(t, err, nested.ErrShortDimension)

	_, err = run(t, `[[1,2],`, "flatten")
	require.Error(t, err)

	_, err = run(t, grid4, "flatten", "--strategy", "sideways")
	require.Error(t, err)
}

func TestFlattenCommandInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[1.5,2],[3,4]]`), 0o600))

	out, err := run(t, "", "flatten", "-i", path, "--colex")
	require.NoError(t, err)
	require.JSONEq(t, `[1.5,3,2,4]`, out)
}

func TestVind2BindCommand(t *testing.T) {
	out, err := run(t, "", "vind2bind", "--shape", "2,2", "--strides", "-2,1", "--offset", "2", "0", "1", "2", "3")
	require.NoError(t, err)
	require.Equal(t, "2\n3\n0\n1\n", out)

	out, err = run(t, "", "vind2bind", "--shape", "2,2", "--mode", "wrap", "5")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)

	_, err = run(t, "", "vind2bind", "--shape", "2,2", "4")
	require.ErrorIs(t, err, index.ErrOutOfBounds)

	_, err = run(t, "", "vind2bind", "--shape", "2,2", "--strides", "1", "0")
	require.ErrorIs(t, err, index.ErrDimensionMismatch)
}

func TestBind2VindCommand(t *testing.T) {
	out, err := run(t, "", "bind2vind", "--shape", "2,2", "--strides", "2,-1", "--offset", "1", "0", "1", "2", "3")
	require.NoError(t, err)
	require.Equal(t, "1\n0\n3\n2\n", out)
}

func TestInd2SubCommand(t *testing.T) {
	out, err := run(t, "", "ind2sub", "--shape", "2,3", "--order", "column-major", "4")
	require.NoError(t, err)
	require.Equal(t, "0,2\n", out)

	_, err = run(t, "", "ind2sub", "--shape", "2,3", "--order", "diagonal", "4")
	require.Error(t, err)
}

func TestSub2IndCommand(t *testing.T) {
	out, err := run(t, "", "sub2ind", "--shape", "2,3", "1", "2")
	require.NoError(t, err)
	require.Equal(t, "5\n", out)

	_, err = run(t, "", "sub2ind", "--shape", "2,3", "1")
	require.ErrorIs(t, err, index.ErrDimensionMismatch)
}
