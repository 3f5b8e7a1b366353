package orion

import (
	"fmt"
	"log"
	"os"
)

// LoadLedger reads the ledger stored at path. A missing file or content
// that cannot be parsed yields an empty ledger, never an error: the
// store's read side is best-effort by contract, and a warning is all the
// caller gets.
func LoadLedger(path string) *Ledger {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot open ledger file %q: %v, starting empty", path, err)
		}
		return NewLedger()
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		log.Printf("warning: malformed ledger file %q: %v, starting empty", path, err)
		return NewLedger()
	}
	return ledger
}

// SaveLedger writes the collection to path, replacing the previous
// content. Unlike loading, saving reports its failure so the caller can
// surface it instead of silently losing a mutation.
func SaveLedger(path string, ledger *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", path, err)
	}
	return nil
}
