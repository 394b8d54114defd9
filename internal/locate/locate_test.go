package locate

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"logview/internal/config"
)

func writeZip(t *testing.T, path string, members map[string]string) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	writer := zip.NewWriter(file)
	for name, body := range members {
		entry, err := writer.Create(name)
		if err != nil {
			t.Fatalf("create member %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(body)); err != nil {
			t.Fatalf("write member %s: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close zip file: %v", err)
	}
}

func testConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default returned error: %v", err)
	}
	cfg.LogFileDirectory = dir
	return cfg
}

func TestNewest_PicksGreatestTimestamp(t *testing.T) {
	dir := t.TempDir()
	writeZip(t, filepath.Join(dir, "logs_old.zip"), map[string]string{
		"1_setup.txt": "2021-11-14T02:31:28.6752380Z old\n",
	})
	writeZip(t, filepath.Join(dir, "logs_new.zip"), map[string]string{
		"1_setup.txt": "2022-03-01T10:00:00.0000000Z new\n",
	})

	got, err := Newest(testConfig(t, dir))
	if err != nil {
		t.Fatalf("Newest returned error: %v", err)
	}
	if got != filepath.Join(dir, "logs_new.zip") {
		t.Fatalf("Newest = %q, want logs_new.zip", got)
	}
}

func TestNewest_RequiresContainsMember(t *testing.T) {
	dir := t.TempDir()
	// Newest by timestamp, but its members are not *.txt.
	writeZip(t, filepath.Join(dir, "logs_other.zip"), map[string]string{
		"trace.json": "2023-01-01T00:00:00.0000000Z {}\n",
	})
	writeZip(t, filepath.Join(dir, "logs_ci.zip"), map[string]string{
		"1_setup.txt": "2021-11-14T02:31:28.6752380Z ok\n",
	})

	got, err := Newest(testConfig(t, dir))
	if err != nil {
		t.Fatalf("Newest returned error: %v", err)
	}
	if got != filepath.Join(dir, "logs_ci.zip") {
		t.Fatalf("Newest = %q, want logs_ci.zip", got)
	}
}

func TestNewest_IgnoresNonMatchingNames(t *testing.T) {
	dir := t.TempDir()
	writeZip(t, filepath.Join(dir, "artifacts.zip"), map[string]string{
		"1_setup.txt": "2023-01-01T00:00:00.0000000Z ok\n",
	})

	got, err := Newest(testConfig(t, dir))
	if err != nil {
		t.Fatalf("Newest returned error: %v", err)
	}
	if got != "" {
		t.Fatalf("Newest = %q, want no match for non-logs name", got)
	}
}

func TestNewest_SkipsUnreadableArchives(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "logs_bad.zip"), []byte("not a zip"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	writeZip(t, filepath.Join(dir, "logs_good.zip"), map[string]string{
		"1_setup.txt": "2021-11-14T02:31:28.6752380Z ok\n",
	})

	got, err := Newest(testConfig(t, dir))
	if err != nil {
		t.Fatalf("Newest returned error: %v", err)
	}
	if got != filepath.Join(dir, "logs_good.zip") {
		t.Fatalf("Newest = %q, want logs_good.zip", got)
	}
}

func TestNewest_EmptyDirectoryFindsNothing(t *testing.T) {
	got, err := Newest(testConfig(t, t.TempDir()))
	if err != nil {
		t.Fatalf("Newest returned error: %v", err)
	}
	if got != "" {
		t.Fatalf("Newest = %q, want empty for empty directory", got)
	}
}
