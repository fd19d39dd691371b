package mesh

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// IdentifierLen is the byte length of an Identifier, matching the
// account/contract address width of the supported execution environments.
const IdentifierLen = 20

// Identifier references an account or deployed instance on some endpoint.
// Identifiers are compared and rendered in a canonical lower-case hex form,
// so two identifiers that differ only in source formatting are equal.
type Identifier [IdentifierLen]byte

// ZeroIdentifier is the canonical empty identifier.
var ZeroIdentifier = Identifier{}

// HexToIdentifier parses an identifier from a hex string. A leading "0x"
// prefix and mixed-case input are accepted; the resulting Identifier is
// canonical regardless of input formatting.
func HexToIdentifier(s string) (Identifier, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return ZeroIdentifier, fmt.Errorf("could not decode identifier %q: %w", s, err)
	}
	if len(raw) != IdentifierLen {
		return ZeroIdentifier, fmt.Errorf("invalid identifier length %d, expected %d bytes", len(raw), IdentifierLen)
	}
	var id Identifier
	copy(id[:], raw)
	return id, nil
}

// MustHexToIdentifier parses an identifier and panics on malformed input.
// Intended for tests and static tables only.
func MustHexToIdentifier(s string) Identifier {
	id, err := HexToIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id Identifier) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// IsZero returns true if the identifier is the zero value.
func (id Identifier) IsZero() bool {
	return id == ZeroIdentifier
}

// Bytes returns the identifier as a byte slice.
func (id Identifier) Bytes() []byte {
	return id[:]
}
