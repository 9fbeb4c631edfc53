package sass_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swatch/internal/adapters/sass"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/swatch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRequest() ports.CompileRequest {
	return ports.CompileRequest{
		Handle:      domain.MustHandle("main"),
		Source:      []byte("body { color: $primary; }"),
		SourcePath:  "/themes/flat/main.scss",
		ImportPaths: []string{"/themes/flat", "/vendor/scss"},
		Variables:   domain.Variables{"primary": "red", "gutter": "12px"},
	}
}

func TestCompiler_Compile_PipesPrelude(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	compiler, err := sass.NewCompiler(domain.CompilerConfig{Command: []string{"sh", "-c", "cat"}}, mockLogger)
	require.NoError(t, err)

	out, err := compiler.Compile(t.Context(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "$gutter: 12px; $primary: red; body { color: $primary; }", string(out))
}

func TestCompiler_Compile_Arguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	compiler, err := sass.NewCompiler(domain.CompilerConfig{
		Command: []string{"sh", "-c", `printf '%s\n' "$0" "$@"`},
		Style:   "expanded",
	}, mockLogger)
	require.NoError(t, err)

	out, err := compiler.Compile(t.Context(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "--style=expanded\n--load-path=/themes/flat\n--load-path=/vendor/scss\n", string(out))
}

func TestCompiler_Compile_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	compiler, err := sass.NewCompiler(domain.CompilerConfig{
		Command: []string{"sh", "-c", "echo 'Error: Undefined variable.' >&2; echo '  line 1' >&2; exit 65"},
	}, mockLogger)
	require.NoError(t, err)

	_, err = compiler.Compile(t.Context(), newRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompileFailed))

	var compileErr *domain.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "main", compileErr.Handle)
	assert.Equal(t, "Error: Undefined variable.\n  line 1", compileErr.Message)
}

func TestCompiler_Compile_WarningsAreLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("main: Deprecation Warning: slash division")

	compiler, err := sass.NewCompiler(domain.CompilerConfig{
		Command: []string{"sh", "-c", "echo 'Deprecation Warning: slash division' >&2; echo 'a{}'"},
	}, mockLogger)
	require.NoError(t, err)

	out, err := compiler.Compile(t.Context(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "a{}\n", string(out))
}

func TestCompiler_Compile_StreamsStderrToOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("main: Deprecation Warning: slash division")

	compiler, err := sass.NewCompiler(domain.CompilerConfig{
		Command: []string{"sh", "-c", "echo 'Deprecation Warning: slash division' >&2; echo 'a{}'"},
	}, mockLogger)
	require.NoError(t, err)

	var output bytes.Buffer
	req := newRequest()
	req.Output = &output

	out, err := compiler.Compile(t.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, "a{}\n", string(out))
	assert.Equal(t, "Deprecation Warning: slash division\n", output.String())
}

func TestCompiler_Compile_FunctionsWarn(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("main: custom functions are not available to sh: darken-more, tint")

	compiler, err := sass.NewCompiler(domain.CompilerConfig{Command: []string{"sh", "-c", "cat >/dev/null"}}, mockLogger)
	require.NoError(t, err)

	req := newRequest()
	req.Functions = map[string]domain.Function{
		"tint":        func([]string) (string, error) { return "", nil },
		"darken-more": func([]string) (string, error) { return "", nil },
	}

	_, err = compiler.Compile(t.Context(), req)
	require.NoError(t, err)
}

func TestCompiler_Compile_MissingBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	compiler, err := sass.NewCompiler(domain.CompilerConfig{Command: []string{"nonexistent-sass-xyz123"}}, mockLogger)
	require.NoError(t, err)

	_, err = compiler.Compile(t.Context(), newRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompileFailed))

	var compileErr *domain.CompileError
	assert.False(t, errors.As(err, &compileErr))
}

func TestCompiler_Compile_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	compiler, err := sass.NewCompiler(domain.CompilerConfig{
		Command: []string{"sh", "-c", "exec sleep 5"},
		Timeout: 50 * time.Millisecond,
	}, mockLogger)
	require.NoError(t, err)

	_, err = compiler.Compile(t.Context(), newRequest())
	var compileErr *domain.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Contains(t, compileErr.Message, "timed out")
}

func TestNewCompiler_NotConfigured(t *testing.T) {
	_, err := sass.NewCompiler(domain.CompilerConfig{}, nil)
	require.ErrorIs(t, err, domain.ErrCompilerNotConfigured)
}

func TestPrelude(t *testing.T) {
	out := sass.Prelude(domain.Variables{"b": "2", "a": `"x"`}, []byte("@use 'theme';"))
	assert.Equal(t, "$a: \"x\"; $b: 2; @use 'theme';", string(out))
}

func TestPrelude_KeepsLineNumbers(t *testing.T) {
	source := []byte("a { color: red; }\nb { color: $oops; }\n")
	vars := domain.Variables{"theme-url": `"/t"`, "stack": "a,\nb"}

	out := sass.Prelude(vars, source)
	assert.Equal(t, bytes.Count(source, []byte("\n")), bytes.Count(out, []byte("\n")))
	assert.True(t, bytes.HasSuffix(out, source))
}

func TestCompiler_Compile_DiagnosticLineMatchesSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	// Reports the line of the first undefined variable the way sass does.
	compiler, err := sass.NewCompiler(domain.CompilerConfig{
		Command: []string{"sh", "-c", `echo "Error: Undefined variable. - $(grep -n 'oops' | cut -d: -f1):12" >&2; exit 65`},
	}, mockLogger)
	require.NoError(t, err)

	req := newRequest()
	req.Source = []byte("a { color: red; }\nb { color: $oops; }\n")

	_, err = compiler.Compile(t.Context(), req)
	var compileErr *domain.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "Error: Undefined variable. - 2:12", compileErr.Message)
}
