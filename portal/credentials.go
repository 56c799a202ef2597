package portal

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// SaveToken persists a bearer token so subsequent runs can skip the
// login flow. Owner-only permissions, it is a credential.
func SaveToken(tok *oauth2.Token, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to open file %w", err)
	}
	defer f.Close()

	d := gob.NewEncoder(f)
	return d.Encode(tok)
}

// LoadToken reads a previously saved token. Absent or stale files
// return nil: callers treat that as "authenticate again".
func LoadToken(path string) *oauth2.Token {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	tok := new(oauth2.Token)
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(tok); err != nil {
		return nil
	}
	if !tok.Valid() {
		return nil
	}
	return tok
}
