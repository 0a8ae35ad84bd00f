package id

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
}

func TestGenerateString(t *testing.T) {
	gen := NewGenerator()

	id := gen.GenerateString()

	if len(id) != 26 {
		t.Errorf("ULID should be 26 characters, got %d", len(id))
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	gen := NewGenerator()

	id := gen.GenerateWithPrefix("run")

	if !strings.HasPrefix(id, "run_") {
		t.Errorf("ID should start with 'run_', got: %s", id)
	}

	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		t.Fatalf("Prefixed ID should have format 'prefix_ulid', got: %s", id)
	}

	if !IsValid(parts[1]) {
		t.Errorf("ULID part should be valid: %s", parts[1])
	}
}

func TestDeterministicEntropy(t *testing.T) {
	entropy := bytes.Repeat([]byte{0x42}, 64)
	gen := NewGeneratorWithEntropy(bytes.NewReader(entropy))

	id := gen.Generate()

	if !IsValid(id.String()) {
		t.Errorf("ULID from fixed entropy should be valid: %s", id)
	}
}

func TestNewRunID(t *testing.T) {
	before := time.Now().Add(-time.Second)
	runID := NewRunID()

	if !strings.HasPrefix(runID.String(), RunPrefix+"_") {
		t.Fatalf("run ID should carry the run prefix, got: %s", runID)
	}

	ts, err := runID.Time()
	if err != nil {
		t.Fatalf("Time() failed: %v", err)
	}
	if ts.Before(before) || ts.After(time.Now().Add(time.Second)) {
		t.Errorf("run ID timestamp %v is outside the expected window", ts)
	}
}

func TestRunIDTimeRejectsForeignIDs(t *testing.T) {
	if _, err := RunID("sess_01ARZ3NDEKTSV4RRFFQ69G5FAV").Time(); err == nil {
		t.Error("expected error for a non-run prefix")
	}
	if _, err := RunID("run_not-a-ulid").Time(); err == nil {
		t.Error("expected error for a malformed ULID")
	}
}

func TestIsValid(t *testing.T) {
	if IsValid("invalid") {
		t.Error("'invalid' should not be a valid ULID")
	}
	if !IsValid("01ARZ3NDEKTSV4RRFFQ69G5FAV") {
		t.Error("canonical example ULID should be valid")
	}
}
