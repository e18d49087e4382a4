// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/quad"
	"github.com/katalvlaran/numlab/roots"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Usage(t *testing.T) {
	_, stderr, err := runCLI(t)
	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr, "usage: numlab <method>")
	assert.Contains(t, stderr, "divided-differences")

	_, _, err = runCLI(t, "regula")
	require.ErrorIs(t, err, errUnknownMethod)
	assert.Contains(t, err.Error(), `"regula"`)
}

func TestRun_BadFlags(t *testing.T) {
	_, stderr, err := runCLI(t, "newton", "-nope")
	require.Error(t, err)
	assert.Contains(t, stderr, "usage: numlab newton")

	_, _, err = runCLI(t, "newton", "-f", "x", "-log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-log-level")

	_, _, err = runCLI(t, "newton")
	require.ErrorIs(t, err, errMissingFlag)

	_, _, err = runCLI(t, "fixed-point", "-f", "x")
	require.ErrorIs(t, err, errMissingFlag)
}

func TestRun_Isolate(t *testing.T) {
	out, _, err := runCLI(t, "isolate", "-f", "x^3 - x - 2", "-a", "0", "-b", "5")
	require.NoError(t, err)
	assert.Equal(t, "bracket [1.000000, 2.000000]\n", out)

	out, _, err = runCLI(t, "isolate", "-f", "x^2 + 1", "-a", "0", "-b", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "no sign change")
}

func TestRun_Bisection(t *testing.T) {
	out, _, err := runCLI(t, "bisection", "-f", "x^3 - x - 2", "-a", "0", "-b", "5", "-tol", "1e-6")
	require.NoError(t, err)
	assert.Contains(t, out, "iter")
	assert.Contains(t, out, "root = 1.521380")

	_, _, err = runCLI(t, "false-position", "-f", "x^2 + 1", "-a", "0", "-b", "3")
	require.ErrorIs(t, err, errNoBracket)
	assert.Contains(t, err.Error(), "false-position: ")
}

func TestRun_OpenMethods(t *testing.T) {
	out, _, err := runCLI(t, "newton", "-f", "x^2 - 2", "-x0", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "root = 1.414214")

	out, _, err = runCLI(t, "secant", "-f", "x^2 - 2", "-x0", "1", "-x1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "root = 1.414214")

	out, _, err = runCLI(t, "fixed-point", "-g", "cos(x)", "-x0", "1", "-tol", "1e-8", "-max-iter", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "root = 0.739085")
}

func TestRun_FixedPointDivergesPrintsLog(t *testing.T) {
	out, _, err := runCLI(t, "fixed-point", "-g", "3 - x", "-x0", "1", "-max-iter", "5")
	require.ErrorIs(t, err, roots.ErrNoConvergence)
	assert.Contains(t, out, "iter")
	assert.NotContains(t, out, "root =")
}

func TestRun_Gauss(t *testing.T) {
	out, _, err := runCLI(t, "gauss", "-A", "[[2,1],[1,3]]", "-B", "[3,5]")
	require.NoError(t, err)
	assert.Contains(t, out, "reduced [U | c]:")
	assert.Contains(t, out, "x1 = 0.800000")
	assert.Contains(t, out, "x2 = 1.400000")

	_, _, err = runCLI(t, "gauss", "-A", "[[1,2],[2,4]]", "-B", "[1,2]")
	require.ErrorIs(t, err, linsys.ErrSingular)

	_, _, err = runCLI(t, "gauss", "-A", "[[1,2],", "-B", "[1,2]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-A")
}

func TestRun_Interpolation(t *testing.T) {
	out, _, err := runCLI(t, "lagrange", "-x", "[0,1,2]", "-y", "[1,3,7]", "-at", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "P(1.5) = 4.750000\n", out)

	out, _, err = runCLI(t, "divided-differences", "-x", "[0,1,2]", "-y", "[1,3,7]", "-at", "1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "order 2")
	assert.Contains(t, out, "P(1.5) = 4.750000")

	_, _, err = runCLI(t, "lagrange", "-x", "[0,1]", "-y", "[1]")
	require.Error(t, err)
}

func TestRun_LeastSquares(t *testing.T) {
	out, _, err := runCLI(t, "lsq", "-x", "[0,1,2,3]", "-y", "[1,3,5,7]")
	require.NoError(t, err)
	assert.Equal(t, "P(x) = 1.0000 + 2.0000x\n", out)
}

func TestRun_Quadrature(t *testing.T) {
	out, _, err := runCLI(t, "simpson", "-f", "x^2", "-a", "0", "-b", "1", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "integral = 0.333333\n", out)

	out, _, err = runCLI(t, "trapezoid", "-f", "x^2", "-a", "0", "-b", "1", "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, "integral = 0.343750\n", out)

	_, _, err = runCLI(t, "simpson", "-f", "x^2", "-n", "5")
	require.ErrorIs(t, err, quad.ErrOddSubintervals)
}

func TestRun_WritesCharts(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "conv.png")
	html := filepath.Join(dir, "conv.html")

	_, stderr, err := runCLI(t, "newton", "-f", "x^2 - 2", "-x0", "1",
		"-plot", png, "-html", html, "-log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote plot")

	raw, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))

	raw, err = os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "echarts")
}
