package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	sampleDir    = "testdata"
	sampleOutDir = "build"
)

// Sample builds the CLI and converts testdata/*.md into build/ with the
// batch command, overwriting earlier output.
func Sample() error {
	mg.Deps(Build)

	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "batch", "--force", "--out-dir", sampleOutDir, sampleDir); err != nil {
		return fmt.Errorf("converting samples: %w", err)
	}
	fmt.Printf("Samples written to %s/\n", sampleOutDir)
	return nil
}
