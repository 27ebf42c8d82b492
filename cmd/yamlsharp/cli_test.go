// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestCase pairs a YAML input with the exact stdout the CLI should produce
// for it.
type TestCase struct {
	Name   string
	Input  string
	Expect string
}

var cases = []TestCase{
	{
		Name:   "scalar",
		Input:  "hello\n",
		Expect: "document 0:\n  - scalar tag:yaml.org,2002:str \"hello\"\n",
	},
	{
		Name:  "mapping",
		Input: "a: 1\n",
		Expect: "document 0:\n" +
			"  - mapping tag:yaml.org,2002:map (1 entries)\n" +
			"    - scalar tag:yaml.org,2002:str \"a\"\n" +
			"    - scalar tag:yaml.org,2002:int \"1\"\n",
	},
	{
		Name:  "multi-document",
		Input: "a\n---\nb\n",
		Expect: "document 0:\n" +
			"  - scalar tag:yaml.org,2002:str \"a\"\n" +
			"document 1:\n" +
			"  - scalar tag:yaml.org,2002:str \"b\"\n",
	},
}

func buildCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	binaryPath := filepath.Join(dir, "yamlsharp-cli-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build yamlsharp CLI: %v\n%s", err, output)
	}
	return binaryPath
}

func TestCLI(t *testing.T) {
	binaryPath := buildCLI(t)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			cmd := exec.Command(binaryPath)
			cmd.Stdin = strings.NewReader(tc.Input)

			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			if err := cmd.Run(); err != nil {
				t.Fatalf("command failed: %v\nstderr: %s", err, stderr.String())
			}

			if stdout.String() != tc.Expect {
				t.Errorf("output mismatch\nexpected:\n%s\nactual:\n%s", tc.Expect, stdout.String())
			}
		})
	}
}

func TestCLIReadsFromFileArgument(t *testing.T) {
	binaryPath := buildCLI(t)

	f, err := os.CreateTemp(t.TempDir(), "*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	if _, err := f.WriteString("x\n"); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	f.Close()

	cmd := exec.Command(binaryPath, f.Name())
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("command failed: %v\nstderr: %s", err, stderr.String())
	}

	want := "document 0:\n  - scalar tag:yaml.org,2002:str \"x\"\n"
	if stdout.String() != want {
		t.Errorf("output mismatch\nexpected:\n%s\nactual:\n%s", want, stdout.String())
	}
}

func TestCLIExitsNonZeroOnFatalError(t *testing.T) {
	binaryPath := buildCLI(t)

	cmd := exec.Command(binaryPath)
	cmd.Stdin = strings.NewReader("[a, b\n")

	err := cmd.Run()
	if err == nil {
		t.Fatal("expected a non-zero exit for malformed input")
	}
}
