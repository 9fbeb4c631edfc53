// Package sass runs a dart-sass compatible binary as the stylesheet compiler.
package sass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os/exec"
	"slices"
	"strings"
	"time"

	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// waitDelay bounds how long output pipes are drained after the process is killed.
const waitDelay = time.Second

// Compiler implements ports.Compiler using os/exec.
// The source is piped on stdin with the variables declared in front of it.
type Compiler struct {
	command []string
	style   string
	timeout time.Duration
	logger  ports.Logger
}

// NewCompiler creates a Compiler from cfg.
func NewCompiler(cfg domain.CompilerConfig, logger ports.Logger) (*Compiler, error) {
	if len(cfg.Command) == 0 || cfg.Command[0] == "" {
		return nil, domain.ErrCompilerNotConfigured
	}
	return &Compiler{
		command: slices.Clone(cfg.Command),
		style:   cfg.Style,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// Compile runs the compiler once. A non-zero exit becomes a *domain.CompileError
// carrying stderr verbatim. Warnings printed on success are logged, and stderr
// is streamed to req.Output as it arrives.
func (c *Compiler) Compile(ctx context.Context, req ports.CompileRequest) ([]byte, error) {
	if len(req.Functions) > 0 {
		c.logger.Warn(fmt.Sprintf(
			"%s: custom functions are not available to %s: %s",
			req.Handle, c.command[0], strings.Join(slices.Sorted(maps.Keys(req.Functions)), ", "),
		))
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.command[0], c.args(req)...) //nolint:gosec // user provided command
	cmd.Stdin = bytes.NewReader(Prelude(req.Variables, req.Source))
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if req.Output != nil {
		cmd.Stderr = io.MultiWriter(&stderr, req.Output)
	}

	if err := cmd.Run(); err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return nil, &domain.CompileError{
				Handle:  req.Handle.String(),
				Message: fmt.Sprintf("compiler timed out after %s", c.timeout),
			}
		case ctx.Err() != nil:
			return nil, ctx.Err()
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errors.Join(
				domain.ErrCompileFailed,
				zerr.With(zerr.Wrap(err, "failed to run compiler"), "command", c.command[0]),
			)
		}

		msg := strings.TrimRight(stderr.String(), "\n")
		if msg == "" {
			msg = exitErr.Error()
		}
		return nil, &domain.CompileError{Handle: req.Handle.String(), Message: msg}
	}

	for line := range strings.Lines(stderr.String()) {
		if line = strings.TrimRight(line, "\n"); line != "" {
			c.logger.Warn(req.Handle.String() + ": " + line)
		}
	}

	return stdout.Bytes(), nil
}

func (c *Compiler) args(req ports.CompileRequest) []string {
	args := slices.Clone(c.command[1:])
	if c.style != "" {
		args = append(args, "--style="+c.style)
	}
	for _, p := range req.ImportPaths {
		args = append(args, "--load-path="+p)
	}
	return args
}

// newlines are folded out of literals so the prelude stays on one line.
var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Prelude returns source preceded by one declaration per variable, in name order.
// All declarations share the first line of source, so line numbers in
// compiler diagnostics match the source file.
func Prelude(vars domain.Variables, source []byte) []byte {
	var b bytes.Buffer
	for _, name := range vars.Keys() {
		fmt.Fprintf(&b, "$%s: %s; ", name, newlines.Replace(vars[name]))
	}
	b.Write(source)
	return b.Bytes()
}
