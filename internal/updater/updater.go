// Package updater automates the local package upgrade: clone the packaging
// repo, build with auto-confirm, install with privileges, remove the clone.
// It is a thin sequence over external commands, not a resilient pipeline:
// the first failure aborts, and partial state (a cloned-but-not-installed
// directory) is left for the next run or the operator.
package updater

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kjstillabower/devtasks/internal/config"
	"github.com/kjstillabower/devtasks/internal/observability"
)

// Step is one external command of the update sequence. stdin stays
// unexported and out of logs: it carries the auto-confirm input or the sudo
// password.
type Step struct {
	Name string
	Argv []string
	Dir  string

	stdin string
}

// CommandRunner executes one step and blocks until it finishes. A non-nil
// error means the step's process did not exit zero (or could not start).
type CommandRunner interface {
	Run(ctx context.Context, step Step) error
}

// ExecRunner runs steps with os/exec, inheriting the parent environment.
type ExecRunner struct {
	logger *zap.Logger
}

// NewExecRunner creates an ExecRunner logging through the given logger.
func NewExecRunner(logger *zap.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

// Run implements CommandRunner. Combined output is logged at debug level;
// the process error is returned wrapped with the step name and otherwise
// unmodified.
func (r *ExecRunner) Run(ctx context.Context, step Step) error {
	cmd := exec.CommandContext(ctx, step.Argv[0], step.Argv[1:]...)
	cmd.Dir = step.Dir
	cmd.Env = os.Environ()
	if step.stdin != "" {
		cmd.Stdin = strings.NewReader(step.stdin)
	}

	out, err := cmd.CombinedOutput()
	r.logger.Debug("step output",
		zap.String("step", step.Name),
		zap.ByteString("output", out),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", step.Name, err)
	}
	return nil
}

// Updater orchestrates the four-step update sequence.
type Updater struct {
	settings *config.UpdaterSettings
	runner   CommandRunner
	logger   *zap.Logger
}

// New creates an Updater. The runner is an interface so tests can substitute
// a recording double for the real process boundary.
func New(settings *config.UpdaterSettings, runner CommandRunner, logger *zap.Logger) *Updater {
	return &Updater{
		settings: settings,
		runner:   runner,
		logger:   logger,
	}
}

// Run reads the secrets file, then executes clone, build, install, and
// cleanup in strict order. Secrets are re-read on every call so a rotated
// password takes effect immediately. The first failing step aborts the
// remainder and its process error is surfaced to the caller; nothing is
// rolled back.
func (u *Updater) Run(ctx context.Context) error {
	secrets, err := config.LoadSecrets(u.settings.SecretsPath)
	if err != nil {
		return err
	}
	password, err := secrets.Password()
	if err != nil {
		return err
	}

	for _, step := range u.steps(password) {
		u.logger.Info("running step",
			zap.String("step", step.Name),
			zap.Strings("argv", step.Argv),
			zap.String("dir", step.Dir),
		)

		stepCtx, cancel := context.WithTimeout(ctx, u.settings.StepTimeout)
		start := time.Now()
		err := u.runner.Run(stepCtx, step)
		cancel()
		observability.RecordUpdateStep(step.Name, err, time.Since(start))

		if err != nil {
			u.logger.Error("step failed, aborting sequence",
				zap.String("step", step.Name),
				zap.Error(err),
			)
			return err
		}
	}

	u.logger.Info("update complete")
	return nil
}

// steps builds the sequence. Privileged steps go through sudo -S with the
// password on stdin and an empty prompt, never on the command line.
func (u *Updater) steps(password string) []Step {
	cloneDir := filepath.Join(u.settings.WorkDir, u.settings.CloneDir)
	sudoStdin := password + "\n"

	return []Step{
		{
			Name: "clone",
			Argv: []string{"git", "clone", u.settings.RepoURL},
			Dir:  u.settings.WorkDir,
		},
		{
			Name:  "build",
			Argv:  u.settings.BuildCommand,
			Dir:   cloneDir,
			stdin: "Y\n", // auto-confirm build prompts
		},
		{
			Name:  "install",
			Argv:  sudoArgv(u.settings.InstallCommand),
			Dir:   cloneDir,
			stdin: sudoStdin,
		},
		{
			// The removal target is relative to the step's working
			// directory, like every other step's arguments; joining
			// WorkDir in here would resolve it against WorkDir twice.
			Name:  "cleanup",
			Argv:  sudoArgv([]string{"rm", "-rf", u.settings.CloneDir}),
			Dir:   u.settings.WorkDir,
			stdin: sudoStdin,
		},
	}
}

func sudoArgv(argv []string) []string {
	return append([]string{"sudo", "-S", "-p", ""}, argv...)
}
