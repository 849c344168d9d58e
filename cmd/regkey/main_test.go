package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

const testToken = "<b1a02b799ff63f43312df95901090b25d9f9c119d17991e7697284894e>"

func runKey(t *testing.T, args ...string) (stdout, stderr string, err error) {
	cmd := NewKeyCommand()

	err = cmd.Parse(args)
	if err != nil {
		t.Fatalf("%v: unexpected parse error %v", args, err)
	}

	var out, errOut bytes.Buffer
	err = cmd.Run(&out, &errOut)

	stdout = out.String()
	stderr = errOut.String()

	return
}

func TestRunDefault(t *testing.T) {
	stdout, _, err := runKey(t)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	expected := "Using default name \"Akira Kurosawa\".\n" + ReferenceToken + "\n" + testToken + "\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestRunNames(t *testing.T) {
	stdout, stderr, err := runKey(t, "Alice", "abcde", "Bob", "Stereo Tool user")
	if err == nil || err.Error() != "2 of 4 failed" {
		t.Fatalf("expected 2 of 4 failed, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	expected := []string{
		`Using name "Alice".`,
		"<b1a02b799f6da5f01c2d195989290fbc3d6179ee>",
		`Using name "abcde".`,
		`Using name "Bob".`,
		`Using name "Stereo Tool user".`,
		"<b1a02b799f270263fb6501690129f9f35d41c1e15339d94129a78aae4bc9de>",
	}

	if len(lines) != len(expected) {
		t.Fatalf("expected %q, got %q", expected, lines)
	}

	for n, line := range lines {
		if line != expected[n] {
			t.Errorf("[%v]: expected %q, got %q", n, expected[n], line)
		}
	}

	if !strings.Contains(stderr, `"abcde": invalid name`) {
		t.Errorf("expected abcde failure, got %q", stderr)
	}

	if !strings.Contains(stderr, `"Bob": `+ErrNameShort.Error()) {
		t.Errorf("expected Bob failure, got %q", stderr)
	}
}

func TestRunFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "regkey")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "names.txt")
	err = ioutil.WriteFile(path, []byte("# users\n\"Akira Kurosawa\"\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runKey(t, "--file", path, "Alice")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	expected := `Using name "Akira Kurosawa".` + "\n" + ReferenceToken + "\n" + testToken + "\n" +
		`Using name "Alice".` + "\n" + "<b1a02b799f6da5f01c2d195989290fbc3d6179ee>\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}

	_, _, err = runKey(t, "--file", filepath.Join(dir, "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected %v, got %v", os.ErrNotExist, err)
	}
}

func TestRunCheck(t *testing.T) {
	stdout, stderr, err := runKey(t, "--check", testToken, "-c", ReferenceToken)
	if err == nil {
		t.Fatalf("expected reference key checksum failure")
	}

	if stdout != "OK: name \"Akira Kurosawa\"\n" {
		t.Errorf("expected OK line, got %q", stdout)
	}

	if !strings.Contains(stderr, "checksum mismatch") {
		t.Errorf("expected checksum failure, got %q", stderr)
	}
}

func TestRunVerbose(t *testing.T) {
	_, stderr, err := runKey(t, "-v", "Alice")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	for _, field := range []string{"key fields", "name=Alice", "prefix=0x70", "license=0x036539ff"} {
		if !strings.Contains(stderr, field) {
			t.Errorf("expected %q in %q", field, stderr)
		}
	}
}

func TestRunCheckWithNames(t *testing.T) {
	table := map[string][]string{
		"name": {"--check", testToken, "Alice"},
		"file": {"-c", testToken, "--file", "names.txt"},
	}

	for key, args := range table {
		stdout, _, err := runKey(t, args...)
		if err != ErrCheckWithNames {
			t.Errorf("%v: expected %v, got %v", key, ErrCheckWithNames, err)
		}

		if stdout != "" {
			t.Errorf("%v: expected no output, got %q", key, stdout)
		}
	}
}

func TestUsageOutput(t *testing.T) {
	var out bytes.Buffer

	cmd := NewKeyCommand()
	cmd.SetOutput(&out)

	err := cmd.Parse([]string{"--help"})
	if err != pflag.ErrHelp {
		t.Fatalf("expected %v, got %v", pflag.ErrHelp, err)
	}

	for _, text := range []string{"Usage: regkey", "--check", DefaultName} {
		if !strings.Contains(out.String(), text) {
			t.Errorf("expected %q in %q", text, out.String())
		}
	}
}
