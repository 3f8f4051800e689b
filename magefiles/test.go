//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets (all, unit, race).
type Test mg.Namespace

// All runs unit tests, then the race detector over the translator and
// bridge packages.
func (Test) All() error {
	mg.SerialDeps(Test.Unit, Test.Race)
	return nil
}

// Unit runs every package's tests.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Race runs the concurrent lookup tests with the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./internal/translator/...", "./internal/bridge/...")
}
