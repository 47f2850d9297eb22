package testsupport

import (
	"encoding/json"
	"os"
	"reflect"
	"testing"
)

// UpdateGoldenEnv rewrites golden files instead of comparing when set to "1".
const UpdateGoldenEnv = "SITECONTENT_UPDATE_GOLDEN"

// LoadFixture reads a testdata file or fails the test.
func LoadFixture(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load fixture %s: %v", path, err)
	}
	return data
}

// AssertGolden compares the JSON encoding of got with the golden file at path.
// Both sides are decoded before comparison so formatting differences in the
// golden file do not matter.
func AssertGolden(t testing.TB, path string, got any) {
	t.Helper()

	encoded, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if os.Getenv(UpdateGoldenEnv) == "1" {
		if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
			t.Fatalf("update golden %s: %v", path, err)
		}
		return
	}

	var want, have any
	if err := json.Unmarshal(LoadFixture(t, path), &want); err != nil {
		t.Fatalf("decode golden %s: %v", path, err)
	}
	if err := json.Unmarshal(encoded, &have); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if !reflect.DeepEqual(want, have) {
		t.Fatalf("output does not match %s\n got: %s", path, encoded)
	}
}
