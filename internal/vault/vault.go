// Package vault abstracts the document store the ledger lives in. Paths are
// slash-separated and relative to the vault root on every platform.
package vault

import (
	"context"
	"errors"
)

// ErrExists is returned by Create when a document already occupies the path.
var ErrExists = errors.New("document already exists")

// Vault is the contract for the note store.
type Vault interface {
	// List returns the paths of all documents in the vault.
	List(ctx context.Context) ([]string, error)
	// Read returns the text content of the document at path.
	Read(ctx context.Context, path string) (string, error)
	// Create writes a new document. It fails with ErrExists if the path is
	// already taken; existing documents are never overwritten.
	Create(ctx context.Context, path, content string) error
	// EnsureFolder creates a folder if needed. Calling it for a folder that
	// already exists is not an error.
	EnsureFolder(ctx context.Context, path string) error
}
