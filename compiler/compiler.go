// Copyright (c) 2026 Codpoe
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

// Package compiler drives the batch build: it fans out one task per source
// file across a fixed worker pool, follows include directives recursively,
// and guarantees that each file is compiled at most once even when the
// include graph has diamonds or cycles.
package compiler

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Codpoe/thrift-parser/syntax"
	"github.com/Codpoe/thrift-parser/tsgen"
)

// Option configures a Compiler.
type Option func(*Compiler)

// WithFs replaces the filesystem the driver reads sources from and writes
// outputs to. The default is the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(c *Compiler) {
		c.fs = fs
	}
}

// WithLogger sets the logger for per-file debug output. The default logger
// discards everything; a clean build prints nothing.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Compiler) {
		if log != nil {
			c.log = log
		}
	}
}

// WithWorkers sets the worker pool size. The default is the available
// parallelism.
func WithWorkers(n int) Option {
	return func(c *Compiler) {
		if n > 0 {
			c.workers = n
		}
	}
}

// Compiler owns one batch build: the inputs, the resolved roots, the worker
// pool, the shared seen-set, and the error funnel.
type Compiler struct {
	inputs  []string
	srcRoot string
	outRoot string
	options tsgen.GenerateOptions

	fs      afero.Fs
	log     logrus.FieldLogger
	workers int

	pool    *workerPool
	tasks   sync.WaitGroup
	errCh   chan error
	aborted atomic.Bool

	seenMu sync.Mutex
	seen   map[string]struct{} // absolute source path -> compiled
}

func New(inputs []string, srcRoot, outRoot string, options tsgen.GenerateOptions, opts ...Option) *Compiler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	c := &Compiler{
		inputs:  inputs,
		srcRoot: srcRoot,
		outRoot: outRoot,
		options: options,
		fs:      afero.NewOsFs(),
		log:     logger,
		workers: runtime.GOMAXPROCS(0),
		seen:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile builds inputs and every transitively included file from srcRoot
// into outRoot. It is sugar over New(...).Compile().
func Compile(inputs []string, srcRoot, outRoot string, options tsgen.GenerateOptions, opts ...Option) error {
	return New(inputs, srcRoot, outRoot, options, opts...).Compile()
}

// Compile runs the build. The output root is removed up front so stale
// artifacts from prior runs cannot persist; intermediate directories are
// recreated lazily as files are written. The first error aborts the build;
// in-flight tasks are not cancelled, but the abort flag turns the remaining
// backlog into no-ops and any further errors are discarded.
func (c *Compiler) Compile() error {
	srcRoot, err := resolvePath(c.srcRoot)
	if err != nil {
		return &IoError{Op: "resolve", Path: c.srcRoot, Err: err}
	}
	outRoot, err := resolvePath(c.outRoot)
	if err != nil {
		return &IoError{Op: "resolve", Path: c.outRoot, Err: err}
	}

	exists, err := afero.Exists(c.fs, outRoot)
	if err != nil {
		return &IoError{Op: "stat", Path: outRoot, Err: err}
	}
	if exists {
		if err := c.fs.RemoveAll(outRoot); err != nil {
			return &IoError{Op: "rmdir", Path: outRoot, Err: err}
		}
	}

	c.pool = newWorkerPool(c.workers)
	c.errCh = make(chan error)

	for _, input := range c.inputs {
		file := input
		if !filepath.IsAbs(file) {
			file = filepath.Join(srcRoot, file)
		}
		c.submit(file, srcRoot, outRoot)
	}

	go func() {
		c.tasks.Wait()
		c.pool.close()
		close(c.errCh)
	}()

	var firstErr error
	for err := range c.errCh {
		if firstErr == nil {
			firstErr = err
			c.aborted.Store(true)
		}
	}
	return firstErr
}

// submit enqueues one file-compilation task. Tasks submit their includes
// recursively, so the pending count must be raised before the task runs.
func (c *Compiler) submit(file, srcRoot, outRoot string) {
	c.tasks.Add(1)
	err := c.pool.submit(func() {
		defer c.tasks.Done()
		c.compileFile(file, srcRoot, outRoot)
	})
	if err != nil {
		c.tasks.Done()
		c.report(&InternalError{Err: err})
	}
}

// report funnels a task error to the driver. Sends are ordered before the
// submitting task's completion, so the channel cannot be closed underneath
// them.
func (c *Compiler) report(err error) {
	c.errCh <- err
}

// compileFile is the per-file task: admit through the seen-set, read, parse,
// emit, write, then enqueue every include resolved against this file's
// directory.
func (c *Compiler) compileFile(file, srcRoot, outRoot string) {
	if c.aborted.Load() {
		return
	}

	c.seenMu.Lock()
	if _, ok := c.seen[file]; ok {
		c.seenMu.Unlock()
		return
	}
	c.seen[file] = struct{}{}
	c.seenMu.Unlock()

	rel := strings.TrimPrefix(file, srcRoot)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))

	data, err := afero.ReadFile(c.fs, file)
	if err != nil {
		c.report(&IoError{Op: "read", Path: file, Err: err})
		return
	}

	doc, err := syntax.Parse(string(data))
	if err != nil {
		c.report(&ParseError{File: rel, Err: err})
		return
	}

	code := tsgen.New(doc).Build(c.options)

	outFile := replaceExt(filepath.Join(outRoot, rel), ".ts")
	if err := c.fs.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
		c.report(&IoError{Op: "mkdir", Path: filepath.Dir(outFile), Err: err})
		return
	}
	if err := afero.WriteFile(c.fs, outFile, []byte(code), 0o644); err != nil {
		c.report(&IoError{Op: "write", Path: outFile, Err: err})
		return
	}
	c.log.WithFields(logrus.Fields{
		"file": rel,
		"out":  outFile,
	}).Debug("compiled")

	for dep := range scanDeps(doc) {
		c.submit(filepath.Join(filepath.Dir(file), dep), srcRoot, outRoot)
	}
}

// resolvePath makes p absolute against the process working directory,
// stripping a leading "./" first.
func resolvePath(p string) (string, error) {
	p = strings.TrimPrefix(p, "./")
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func replaceExt(p, ext string) string {
	return strings.TrimSuffix(p, filepath.Ext(p)) + ext
}
