package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"

	"github.com/Yandex-Practicum/ftracker/internal/fork"
)

const (
	buildTimeout = time.Minute
	runTimeout   = time.Second * 10
)

type Env struct {
	fixenv.EnvT
	assert.Assertions
	Ctx context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	res := Env{
		EnvT:       *fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		t:          t,
		Ctx:        ctx,
	}
	return &res
}

func (e *Env) Fatalf(format string, args ...any) {
	e.T().Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

// RunResult holds outcome of finished ftracker process
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Lines returns non-empty stdout lines
func (r RunResult) Lines() []string {
	return strings.Split(strings.TrimRight(r.Stdout, "\n"), "\n")
}

func ExistPath(e *Env, filePath string) string {
	return fixenv.Cache(e, filePath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", filePath)
		_, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		return filePath, nil
	})
}

// BinaryPath returns path to ftracker binary from -binary-path flag or builds it from -source-path
func BinaryPath(e *Env) string {
	if flagTargetBinaryPath != "" {
		return ExistPath(e, flagTargetBinaryPath)
	}

	return fixenv.CacheWithCleanup(e, flagTargetSourcePath, nil, func() (string, fixenv.FixtureCleanupFunc, error) {
		dir, err := os.MkdirTemp("", "ftracker")
		if err != nil {
			return "", nil, err
		}
		cleanup := func() {
			_ = os.RemoveAll(dir)
		}

		output := filepath.Join(dir, "ftracker")
		ctx, cancel := context.WithTimeout(e.Ctx, buildTimeout)
		defer cancel()

		e.Logf("Собираю бинарный файл из %q", flagTargetSourcePath)
		p := fork.NewProcess(ctx, "go", fork.WithArgs("build", "-o", output, flagTargetSourcePath))
		exitCode, err := p.Run(ctx)
		if err == nil && exitCode != 0 {
			e.Logf("Вывод сборки:\n%s", p.Stderr())
			err = errBuildFailed
		}
		if err != nil {
			cleanup()
			return "", nil, err
		}
		return output, cleanup, nil
	})
}

// RunFtracker runs ftracker binary with given extra environment and waits for its completion
func RunFtracker(e *Env, env ...string) RunResult {
	cacheKey := append([]string{"run"}, env...)
	return fixenv.Cache(e, cacheKey, nil, func() (RunResult, error) {
		binary := BinaryPath(e)

		ctx, cancel := context.WithTimeout(e.Ctx, runTimeout)
		defer cancel()

		e.Logf("Запускаю %q с окружением %#v", binary, env)
		p := fork.NewProcess(ctx, binary, fork.WithEnv(append(os.Environ(), env...)...))
		exitCode, err := p.Run(ctx)
		if err != nil {
			return RunResult{}, err
		}

		return RunResult{
			ExitCode: exitCode,
			Stdout:   string(p.Stdout()),
			Stderr:   string(p.Stderr()),
		}, nil
	})
}
