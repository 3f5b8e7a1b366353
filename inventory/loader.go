package inventory

import (
	"fmt"
	"log"
	"os"
)

// LoadBook reads the book stored at path. A missing file or content that
// cannot be parsed yields an empty book, never an error, the same
// best-effort read contract as the ledger store.
func LoadBook(path string) *Book {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot open book file %q: %v, starting empty", path, err)
		}
		return NewBook()
	}
	defer f.Close()

	b, err := DecodeBook(f)
	if err != nil {
		log.Printf("warning: malformed book file %q: %v, starting empty", path, err)
		return NewBook()
	}
	return b
}

// SaveBook writes the book to path, replacing the previous content.
// Saving reports its failure so the caller can surface it instead of
// silently losing a mutation.
func SaveBook(path string, b *Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening book file %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := EncodeBook(f, b); err != nil {
		return fmt.Errorf("error writing book file %q: %w", path, err)
	}
	return nil
}
