package mesh

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"

	gethCrypto "github.com/ethereum/go-ethereum/crypto"
)

// ConfigID returns a deterministic identifier for a configuration tree,
// derived by hashing its canonical binary encoding. Two configurations have
// equal ConfigIDs if and only if their encodings are identical, so callers
// comparing configurations for semantic equality must normalize both sides
// first (see the reconcile package).
//
// Map-valued fields are encoded in sorted key order, so ConfigID is already
// insensitive to map iteration order; it is NOT insensitive to e.g.
// validator ordering, which normalization canonicalizes.
func ConfigID(c Config) (Identifier, error) {
	var buf bytes.Buffer
	err := encodeConfig(&buf, c)
	if err != nil {
		return ZeroIdentifier, err
	}
	digest := gethCrypto.Keccak256(buf.Bytes())
	var id Identifier
	copy(id[:], digest[len(digest)-IdentifierLen:])
	return id, nil
}

func encodeConfig(buf *bytes.Buffer, c Config) error {
	if c == nil {
		return fmt.Errorf("cannot fingerprint nil config")
	}
	buf.WriteByte(byte(c.Type()))
	switch cfg := c.(type) {
	case OpaqueReference:
		buf.Write(cfg.Address[:])
	case MultisigConfig:
		writeUint64(buf, uint64(len(cfg.Validators)))
		for _, v := range cfg.Validators {
			buf.Write(v[:])
		}
		writeUint64(buf, cfg.Threshold)
	case RoutingConfig:
		buf.Write(cfg.Owner[:])
		writeUint64(buf, uint64(len(cfg.Routes)))
		for _, endpoint := range SortedEndpoints(cfg.Routes) {
			writeString(buf, string(endpoint))
			err := encodeConfig(buf, cfg.Routes[endpoint])
			if err != nil {
				return err
			}
		}
	case AggregationConfig:
		writeUint64(buf, cfg.Threshold)
		writeUint64(buf, uint64(len(cfg.Members)))
		for _, member := range cfg.Members {
			err := encodeConfig(buf, member)
			if err != nil {
				return err
			}
		}
	case GasOracleHookConfig:
		buf.Write(cfg.Owner[:])
		writeUint64(buf, uint64(len(cfg.PerEndpoint)))
		for _, endpoint := range SortedEndpoints(cfg.PerEndpoint) {
			params := cfg.PerEndpoint[endpoint]
			writeString(buf, string(endpoint))
			writeBig(buf, params.ExchangeRate)
			writeBig(buf, params.GasPrice)
			writeUint64(buf, params.Overhead)
		}
	case PausableConfig:
		buf.Write(cfg.Owner[:])
	case TrustedRelayerConfig:
		buf.Write(cfg.Relayer[:])
	case NoopConfig:
		// type tag only
	case *DerivedConfig:
		// the deployed address is derived-only data and never part of the
		// structural fingerprint
		return encodeConfig(buf, cfg.Config)
	default:
		return fmt.Errorf("cannot fingerprint config of unknown type %T", c)
	}
	return nil
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], v)
	buf.Write(scratch[:])
}

func writeString(buf *bytes.Buffer, s string) {
	writeUint64(buf, uint64(len(s)))
	buf.WriteString(s)
}

func writeBig(buf *bytes.Buffer, v *big.Int) {
	if v == nil {
		writeUint64(buf, 0)
		return
	}
	raw := v.Bytes()
	writeUint64(buf, uint64(len(raw)))
	buf.Write(raw)
}
