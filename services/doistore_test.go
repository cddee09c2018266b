package services

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeRecord(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing record %s: %v", name, err)
	}
}

func TestDOIStoreLoadAndLookup(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "PMC2910419.json", `{"PMC": "PMC2910419", "DOI": "10.1152/jn.00378.2010"}`)
	writeRecord(t, dir, "PMC2897429.json", `{"PMC": "PMC2897429", "DOI": "10.1128/AEM.03065-09"}`)

	store := NewDOIStore(dir, zap.NewNop())
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}

	doi, found := store.Lookup("PMC2910419")
	if !found {
		t.Fatal("Lookup(PMC2910419) not found")
	}
	if doi != "10.1152/jn.00378.2010" {
		t.Errorf("Lookup(PMC2910419) = %q, want %q", doi, "10.1152/jn.00378.2010")
	}

	if _, found := store.Lookup("PMC9999999"); found {
		t.Error("Lookup(PMC9999999) found, want miss")
	}
}

func TestDOIStoreLookupAfterNormalize(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "PMC2910419.json", `{"PMC": "PMC2910419", "DOI": "10.1152/jn.00378.2010"}`)

	store := NewDOIStore(dir, zap.NewNop())
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, raw := range []string{"2910419", "PMC2910419", "pmc2910419", " PMC2910419 "} {
		if _, found := store.Lookup(NormalizePMCID(raw)); !found {
			t.Errorf("Lookup(NormalizePMCID(%q)) missed", raw)
		}
	}
}

func TestDOIStoreSkipsBadRecords(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "PMC1.json", `{"PMC": "PMC1", "DOI": "10.1000/one"}`)
	writeRecord(t, dir, "broken.json", `{not json`)
	writeRecord(t, dir, "incomplete.json", `{"PMC": "PMC2"}`)
	writeRecord(t, dir, "notes.txt", `ignored`)

	store := NewDOIStore(dir, zap.NewNop())
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (bad records skipped)", store.Len())
	}
}

func TestDOIStoreMissingDirectory(t *testing.T) {
	store := NewDOIStore(filepath.Join(t.TempDir(), "does-not-exist"), zap.NewNop())
	if err := store.Load(); err == nil {
		t.Fatal("Load() on missing directory succeeded, want error")
	}
}

func TestDOIStoreReloadSwapsRecords(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "PMC1.json", `{"PMC": "PMC1", "DOI": "10.1000/one"}`)

	store := NewDOIStore(dir, zap.NewNop())
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	writeRecord(t, dir, "PMC2.json", `{"PMC": "PMC2", "DOI": "10.1000/two"}`)
	if err := store.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("Len() after reload = %d, want 2", store.Len())
	}
	if _, found := store.Lookup("PMC2"); !found {
		t.Error("Lookup(PMC2) missed after reload")
	}
}
