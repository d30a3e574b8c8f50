package logger

import (
	"errors"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

// WithError may be the first logger call in a process, so it has to
// self-initialize instead of dereferencing a nil Logger.
func TestWithErrorBeforeInitialize(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer func() {
		os.Chdir(wd)
		Logger = nil
		FileLogger = nil
	}()

	Logger = nil
	FileLogger = nil

	entry := WithError(errors.New("boom"), "test_component")
	if entry == nil {
		t.Fatal("WithError returned nil entry")
	}
	if entry.Data["error"] != "boom" {
		t.Errorf("error field = %v, want boom", entry.Data["error"])
	}
	if entry.Data["component"] != "test_component" {
		t.Errorf("component field = %v, want test_component", entry.Data["component"])
	}
}

func TestWithErrorStackTraceAtDebugLevel(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer func() {
		os.Chdir(wd)
		Logger = nil
		FileLogger = nil
	}()

	Logger = nil
	FileLogger = nil
	Initialize()
	Logger.SetLevel(logrus.DebugLevel)

	entry := WithError(errors.New("boom"), "test_component")
	if _, ok := entry.Data["stack_trace"]; !ok {
		t.Error("expected stack_trace field at debug level")
	}

	Logger.SetLevel(logrus.InfoLevel)
	entry = WithError(errors.New("boom"), "test_component")
	if _, ok := entry.Data["stack_trace"]; ok {
		t.Error("stack_trace must not be added above debug level")
	}
}
