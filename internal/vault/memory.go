package vault

import (
	"context"
	"fmt"
	"sort"
)

// Memory is an in-memory Vault used by tests and dry runs. Listing order is
// insertion order, matching how a host store returns documents.
type Memory struct {
	docs    map[string]string
	folders map[string]bool
	order   []string

	// FailCreate, when set, makes every Create call fail. Tests use it to
	// exercise the write-failure path.
	FailCreate error
}

// NewMemory creates an empty in-memory vault.
func NewMemory() *Memory {
	return &Memory{
		docs:    make(map[string]string),
		folders: make(map[string]bool),
	}
}

// List returns document paths in insertion order.
func (v *Memory) List(_ context.Context) ([]string, error) {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out, nil
}

// Read returns a document's content.
func (v *Memory) Read(_ context.Context, path string) (string, error) {
	content, ok := v.docs[path]
	if !ok {
		return "", fmt.Errorf("no such document: %s", path)
	}
	return content, nil
}

// Create stores a new document, failing on duplicates like a real store.
func (v *Memory) Create(_ context.Context, path, content string) error {
	if v.FailCreate != nil {
		return v.FailCreate
	}
	if _, ok := v.docs[path]; ok {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	v.docs[path] = content
	v.order = append(v.order, path)
	return nil
}

// EnsureFolder records the folder; repeats are a no-op.
func (v *Memory) EnsureFolder(_ context.Context, path string) error {
	v.folders[path] = true
	return nil
}

// HasFolder reports whether EnsureFolder was called for path.
func (v *Memory) HasFolder(path string) bool {
	return v.folders[path]
}

// Document returns a stored document's content and whether it exists.
func (v *Memory) Document(path string) (string, bool) {
	content, ok := v.docs[path]
	return content, ok
}

// Paths returns all stored document paths, sorted, for assertions that do
// not care about insertion order.
func (v *Memory) Paths() []string {
	out := make([]string, 0, len(v.docs))
	for p := range v.docs {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
