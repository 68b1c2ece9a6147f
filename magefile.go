//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the huegrid binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/huegrid", "./cmd/huegrid")
}

// Test runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs vet and the tests.
func QA() error {
	mg.Deps(Vet, Test)
	fmt.Println("QA passed")
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
