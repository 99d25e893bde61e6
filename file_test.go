package layerstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newFileStoreAt[V any](t *testing.T, root string) Store[V] {
	t.Helper()
	s, err := NewFile(Options[V]{Root: root})
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return s
}

func TestFileRootRequired(t *testing.T) {
	if _, err := NewFile(Options[guild]{}); err == nil {
		t.Fatal("NewFile without Root should fail")
	}
	if _, err := NewDual(Options[guild]{}); err == nil {
		t.Fatal("NewDual without Root should fail")
	}
}

func TestFileEndToEnd(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := newFileStoreAt[map[string]int](t, root)

	if !s.Set(ctx, "a/b", map[string]int{"value": 123}) {
		t.Fatal("Set failed")
	}

	raw, err := os.ReadFile(filepath.Join(root, "a", "b.json"))
	if err != nil {
		t.Fatalf("expected file a/b.json: %v", err)
	}
	want := "{\n\t\"value\": 123\n}"
	if string(raw) != want {
		t.Fatalf("file content = %q, want %q", raw, want)
	}

	got, ok := s.Get(ctx, "a/b")
	if !ok || got["value"] != 123 {
		t.Fatalf("Get = %v, %v", got, ok)
	}

	if !s.Del(ctx, "a/b") {
		t.Fatal("Del failed")
	}
	if s.Has(ctx, "a/b") {
		t.Fatal("Has after Del should be false")
	}
	if _, err := os.Stat(filepath.Join(root, "a", "b.json")); !os.IsNotExist(err) {
		t.Fatal("file should be removed")
	}
}

func TestFileTextExtension(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := newFileStoreAt[string](t, root)

	if !s.Set(ctx, "notes/hello", "plain text body", WithExtension("txt")) {
		t.Fatal("Set failed")
	}
	raw, err := os.ReadFile(filepath.Join(root, "notes", "hello.txt"))
	if err != nil {
		t.Fatalf("expected file notes/hello.txt: %v", err)
	}
	if string(raw) != "plain text body" {
		t.Fatalf("file content = %q", raw)
	}
	if got, ok := s.Get(ctx, "notes/hello", WithExtension("txt")); !ok || got != "plain text body" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
}

func TestFileYAMLExtension(t *testing.T) {
	ctx := context.Background()
	s := newFileStoreAt[guild](t, t.TempDir())

	v := guild{Name: "Ada", Members: 7}
	if !s.Set(ctx, "guilds/ada", v, WithExtension("yaml")) {
		t.Fatal("Set failed")
	}
	if got, ok := s.Get(ctx, "guilds/ada", WithExtension("yaml")); !ok || got != v {
		t.Fatalf("Get = %+v, %v", got, ok)
	}
}

// A malformed entry reads fine (Has is read-success) but parses as absent:
// missing file and malformed payload are indistinguishable through Get.
func TestFileMalformedPayload(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := newFileStoreAt[guild](t, root)

	if err := os.WriteFile(filepath.Join(root, "broken.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !s.Has(ctx, "broken") {
		t.Fatal("Has only checks readability, should be true")
	}
	if _, ok := s.Get(ctx, "broken"); ok {
		t.Fatal("malformed payload should surface as absence")
	}
}

func TestFileListNonRecursive(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := newFileStoreAt[guild](t, root)

	s.Set(ctx, "dir/a", guild{Name: "a"})
	s.Set(ctx, "dir/b", guild{Name: "b"})
	s.Set(ctx, "dir/sub/deep", guild{Name: "deep"})
	s.Set(ctx, "dir2/c", guild{Name: "c"})

	got := s.List(ctx, "dir")
	if len(got) != 2 {
		t.Fatalf("List(dir) returned %d entries, want 2 (no recursion, no dir2)", len(got))
	}
	for _, e := range got {
		if e.Location != "dir/a.json" && e.Location != "dir/b.json" {
			t.Fatalf("unexpected location %q", e.Location)
		}
	}

	if got := s.List(ctx, "missing"); len(got) != 0 {
		t.Fatalf("List of absent directory should be empty, got %d", len(got))
	}
}

func TestFileNoFileHint(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := newFileStoreAt[guild](t, root)

	if s.Set(ctx, "g", guild{Name: "x"}, NoFile()) {
		t.Fatal("Set with NoFile should report false")
	}
	if _, err := os.Stat(filepath.Join(root, "g.json")); !os.IsNotExist(err) {
		t.Fatal("NoFile Set must not touch the filesystem")
	}
	s.Set(ctx, "g", guild{Name: "x"})
	if s.Has(ctx, "g", NoFile()) || s.Del(ctx, "g", NoFile()) {
		t.Fatal("Has/Del with NoFile should report false")
	}
	if !s.Has(ctx, "g") {
		t.Fatal("NoFile Del must not have removed the file")
	}
	// NoCache is not the file backend's hint and must be ignored.
	if !s.Has(ctx, "g", NoCache()) {
		t.Fatal("file backend must ignore NoCache")
	}
}
