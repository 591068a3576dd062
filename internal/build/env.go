package build

import (
	"flag"
	"os"
	"strings"
)

var (
	// GitCommitFlag overrides the commit stamped into binaries.
	GitCommitFlag = flag.String("git-commit", "", `Overrides git commit hash embedded into executables`)
	// GitDateFlag overrides the commit date stamped into binaries.
	GitDateFlag = flag.String("git-date", "", `Overrides git commit date embedded into executables`)
)

// Environment contains metadata provided by the build environment.
type Environment struct {
	Commit string
	Date   string
}

// Env returns metadata about the current build, preferring the flags, then
// the STOBJ_GIT_COMMIT and STOBJ_GIT_DATE variables, then the local checkout.
func Env() *Environment {
	env := &Environment{
		Commit: firstOf(*GitCommitFlag, os.Getenv("STOBJ_GIT_COMMIT")),
		Date:   firstOf(*GitDateFlag, os.Getenv("STOBJ_GIT_DATE")),
	}
	if env.Commit == "" {
		env.Commit = headCommit()
	}
	if env.Commit != "" && env.Date == "" {
		env.Date = RunGit("show", "-s", "--format=%cd", "--date=format:%Y%m%d", env.Commit)
	}
	return env
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// headCommit resolves .git/HEAD without running git.
func headCommit() string {
	head := readGitFile("HEAD")
	if !strings.HasPrefix(head, "ref: ") {
		return head
	}
	return readGitFile(strings.TrimPrefix(head, "ref: "))
}
