package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from a scratch directory so logs/ never lands in the source tree
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(io.Discard) })
}

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("log file opened without -debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log writer = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("logs directory created without -debug")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file with -debug")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("log output goes to the terminal")
	}

	log.Println("frame 1: level up to 2")
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "level up to 2") {
		t.Errorf("log content = %q", data)
	}
}

func TestSetupLoggingRotatesOversizedLog(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "aviator-") && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("found %d rotated logs, want 1", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("fresh log is %d bytes, want below %d", info.Size(), maxLogSize)
	}
}

func TestSetupLoggingAppendsAcrossRuns(t *testing.T) {
	inTempDir(t)

	for _, msg := range []string{"first run", "second run"} {
		f := setupLogging(true)
		if f == nil {
			t.Fatal("no log file with -debug")
		}
		log.Println(msg)
		f.Close()
	}

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first run") || !strings.Contains(string(data), "second run") {
		t.Errorf("log content = %q, want both runs", data)
	}
}

func TestRunConfigErrorClosesLog(t *testing.T) {
	inTempDir(t)

	prevConfig, prevDebug := *configFlag, *debugFlag
	t.Cleanup(func() { *configFlag, *debugFlag = prevConfig, prevDebug })
	*configFlag = filepath.Join(t.TempDir(), "missing.toml")
	*debugFlag = true

	if code := run(); code != 2 {
		t.Fatalf("run() = %d, want 2 for a missing config", code)
	}

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "aviator stopped") {
		t.Errorf("log not finalized before exit: %q", data)
	}
	t.Logf("✓ Config error returns exit code 2 after deferred cleanup")
}
