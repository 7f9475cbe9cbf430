//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "xltranslate"

// Default target to run when none is specified
var Default = Build

// Build compiles the xltranslate binary
func Build() error {
	fmt.Println("Building", binary, "...")
	return sh.RunV("go", "build", "-o", binary, "./cmd/xltranslate")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs xltranslate into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/xltranslate")
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning...")
	if err := os.Remove(binary); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
