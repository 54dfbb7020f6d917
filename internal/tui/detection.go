package tui

import (
	"os"

	"golang.org/x/term"
)

// EnvNoPrompt disables interactive prompts when set to any value.
const EnvNoPrompt = "DOCVARS_NO_PROMPT"

// ciEnvs are variables set by common CI providers.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_HOME",
	"BUILDKITE",
	"BITBUCKET_BUILD_NUMBER",
	"DRONE",
	"NETLIFY",
	"VERCEL",
	"CODEBUILD_BUILD_ID",
	"TF_BUILD",
}

// isTerminalFn is swapped in tests.
var isTerminalFn = func(fd int) bool { return term.IsTerminal(fd) }

// IsInteractive reports whether prompts can be shown: stdin and stdout are
// terminals, no CI provider is detected and EnvNoPrompt is unset.
func IsInteractive() bool {
	if os.Getenv(EnvNoPrompt) != "" || InCI() {
		return false
	}
	return isTerminalFn(int(os.Stdin.Fd())) && isTerminalFn(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value
}

// InCI reports whether a CI provider environment variable is set.
func InCI() bool {
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return isTerminalFn(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value
}
