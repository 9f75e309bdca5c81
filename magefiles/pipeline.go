//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Fetch downloads the coronavirus collection archive into data/.
func Fetch() error {
	mg.Deps(Build)
	return runCLI("fetch")
}

// Triage scans the local archive and writes the match and summary reports.
func Triage() error {
	mg.Deps(Build)
	return runCLI("triage")
}

// runCLI invokes a subcommand of the built binary.
func runCLI(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", binName, args[0], err)
	}
	return nil
}
