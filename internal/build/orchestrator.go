// Package build compiles MoonBit stubs to JavaScript with the moon toolchain
// and stamps the compiled file with its LeetCode problem header.
//
// Process:
//  1. Resolve the workspace root and extension
//  2. Run "moon build --release --target js --directory <root> --verbose"
//  3. Derive the output path from the stub path
//  4. Look up the problem identifier of the stub
//  5. Append the "@lc" trailer to the compiled file
//
// The compiler is never retried; a non-zero exit surfaces its output as-is.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mvp-joe/moonbit-leetcode/internal/config"
	"github.com/mvp-joe/moonbit-leetcode/internal/ctxlog"
	"github.com/mvp-joe/moonbit-leetcode/internal/problem"
	"github.com/spf13/afero"
)

const (
	// OutputExtension is the extension of compiled artifacts.
	OutputExtension = "js"

	// TrailerFormat is appended to every compiled artifact.
	TrailerFormat = "// @lc app=leetcode.cn id=%s lang=javascript"
)

// outputTree is where moon places release JS artifacts, relative to the root.
var outputTree = []string{"target", "js", "release", "build"}

// Locator resolves the stub workspace.
type Locator interface {
	ResolveWorkspaceLocation() config.WorkspaceLocation
}

// Options configures the compiler invocation.
type Options struct {
	Command string        // compiler executable, defaults to "moon"
	Timeout time.Duration // zero disables the timeout
}

// Outcome is the result of a successful build.
type Outcome struct {
	OutputPath string
	ProblemID  string
	Took       time.Duration
}

// Orchestrator runs builds for stub files.
type Orchestrator struct {
	fs      afero.Fs
	locator Locator
	runner  Runner
	lookup  problem.Lookup
	opts    Options
}

// NewOrchestrator creates a build orchestrator.
func NewOrchestrator(fs afero.Fs, locator Locator, runner Runner, lookup problem.Lookup, opts Options) *Orchestrator {
	if opts.Command == "" {
		opts.Command = config.DefaultBuildCommand
	}
	return &Orchestrator{
		fs:      fs,
		locator: locator,
		runner:  runner,
		lookup:  lookup,
		opts:    opts,
	}
}

// Args returns the fixed compiler argument list for root.
func Args(root string) []string {
	return []string{"build", "--release", "--target", "js", "--directory", root, "--verbose"}
}

// OutputPath maps <root>/a/b/Solution.<ext> to
// <root>/target/js/release/build/a/b/Solution.js.
func OutputPath(loc config.WorkspaceLocation, stubPath string) (string, error) {
	suffix := "." + loc.Extension
	if !loc.Contains(stubPath) ||
		!strings.HasSuffix(stubPath, suffix) ||
		len(stubPath) < len(loc.Root)+len(suffix) {
		return "", fmt.Errorf("%w: %s (root %q, extension %q)", ErrOutsideWorkspace, stubPath, loc.Root, loc.Extension)
	}

	// Keep the dot, swap the extension
	rel := stubPath[len(loc.Root):len(stubPath)-len(loc.Extension)] + OutputExtension

	parts := append([]string{loc.Root}, outputTree...)
	return filepath.Join(append(parts, rel)...), nil
}

// Build compiles the workspace containing stubPath and returns the path of
// the compiled artifact for that stub.
func (o *Orchestrator) Build(ctx context.Context, stubPath string) (*Outcome, error) {
	logger := ctxlog.FromContext(ctx)
	loc := o.locator.ResolveWorkspaceLocation()

	outputPath, err := OutputPath(loc, stubPath)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := o.compile(ctx, loc.Root); err != nil {
		return nil, err
	}
	took := time.Since(start)

	logger.Debug("build finished", "root", loc.Root, "took", took)

	id, err := o.lookup.LookupIdentifier(stubPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve problem id: %w", err)
	}

	if err := o.appendTrailer(outputPath, id); err != nil {
		return nil, err
	}

	logger.Debug("artifact ready", "output", outputPath, "id", id)

	return &Outcome{
		OutputPath: outputPath,
		ProblemID:  id,
		Took:       took,
	}, nil
}

func (o *Orchestrator) compile(ctx context.Context, root string) error {
	runCtx := ctx
	if o.opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, o.opts.Timeout)
		defer cancel()
	}

	args := Args(root)
	command := o.opts.Command + " " + strings.Join(args, " ")
	ctxlog.FromContext(ctx).Debug("running compiler", "command", command)

	output, err := o.runner.Run(runCtx, o.opts.Command, args)
	if err == nil {
		return nil
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s: %s", ErrTimeout, o.opts.Timeout, strings.TrimSpace(string(output)))
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &ProcessError{
		Command:  command,
		ExitCode: exitCode,
		Output:   string(output),
		Err:      err,
	}
}

func (o *Orchestrator) appendTrailer(outputPath, id string) error {
	f, err := o.fs.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open compiled output: %w", err)
	}

	if _, err := fmt.Fprintf(f, TrailerFormat, id); err != nil {
		f.Close()
		return fmt.Errorf("failed to append trailer: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close compiled output: %w", err)
	}
	return nil
}
