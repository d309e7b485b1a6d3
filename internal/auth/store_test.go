package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))

	cred, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cred != nil {
		t.Errorf("Load() = %+v, want nil for missing file", cred)
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	store := NewFileStore(path)

	want := &Credential{
		ClientID:     "client",
		ClientSecret: "secret",
		TokenURI:     "https://oauth2.example/token",
		AccessToken:  "access",
		RefreshToken: "refresh",
		Scopes:       []string{"scope-a", "scope-b"},
		Expiry:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.AccessToken != want.AccessToken || got.RefreshToken != want.RefreshToken {
		t.Errorf("Load() tokens = %q/%q, want %q/%q",
			got.AccessToken, got.RefreshToken, want.AccessToken, want.RefreshToken)
	}
	if !got.Expiry.Equal(want.Expiry) {
		t.Errorf("Load() expiry = %v, want %v", got.Expiry, want.Expiry)
	}
}

func TestFileStore_SavePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)

	if err := store.Save(&Credential{AccessToken: "a"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("credential file mode = %o, want 0600", perm)
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)

	if err := store.Save(&Credential{AccessToken: "old"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(&Credential{AccessToken: "new"}); err != nil {
		t.Fatalf("Save() second error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.AccessToken != "new" {
		t.Errorf("Load() access token = %q, want %q", got.AccessToken, "new")
	}
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "credentials.json"))

	if err := store.Save(&Credential{AccessToken: "a"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contains %v, want only credentials.json", names)
	}
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path)
	if _, err := store.Load(); err == nil {
		t.Error("Load() error = nil, want corrupt-file error")
	}
}

func TestCredential_Valid(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cred *Credential
		want bool
	}{
		{"nil credential", nil, false},
		{"no access token", &Credential{Expiry: now.Add(time.Hour)}, false},
		{"future expiry", &Credential{AccessToken: "a", Expiry: now.Add(time.Hour)}, true},
		{"past expiry", &Credential{AccessToken: "a", Expiry: now.Add(-time.Hour)}, false},
		{"within skew margin", &Credential{AccessToken: "a", Expiry: now.Add(5 * time.Second)}, false},
		{"zero expiry", &Credential{AccessToken: "a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cred.Valid(now); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
