package prefabs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanPaths(t *testing.T) {
	tests := []struct {
		in, route, script string
	}{
		{"canal", "routes/canal.yaml", "scripts/canal"},
		{"canal.yaml", "routes/canal.yaml", "scripts/canal.yaml"},
		{"prefabs/routes/canal.yaml", "routes/canal.yaml", "scripts/routes/canal.yaml"},
		{"prefabs/scripts/canal.tengo", "routes/scripts/canal.tengo", "scripts/canal.tengo"},
		{"", "", ""},
	}
	for _, tc := range tests {
		if got := cleanPrefabPath(tc.in); got != tc.route {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", tc.in, got, tc.route)
		}
		if got := cleanScriptPath(tc.in); got != tc.script {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", tc.in, got, tc.script)
		}
	}
}

func TestDiskOverride(t *testing.T) {
	orig := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = orig })

	if _, ok := ModTime("canal"); ok {
		t.Fatalf("no on-disk copy should exist yet")
	}

	if err := os.MkdirAll(filepath.Join(Dir, "routes"), 0o755); err != nil {
		t.Fatal(err)
	}
	override := []byte("name: override\ngroups:\n  - name: only\n")
	if err := os.WriteFile(DiskPath("canal"), override, 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := Load("canal")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != string(override) {
		t.Fatalf("expected on-disk copy to win, got %q", data)
	}
	if _, ok := ModTime("canal"); !ok {
		t.Fatalf("expected a mod time for the on-disk copy")
	}

	script, err := LoadScript("canal.tengo")
	if err != nil || len(script) == 0 {
		t.Fatalf("expected embedded script, got %v", err)
	}
}
