package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// IDKind distinguishes string identifiers from numeric ones, so that "1" and
// 1 name different nodes.
type IDKind uint8

// Identifier kinds.
const (
	KindString IDKind = iota + 1
	KindNumber
)

// NodeID is a node identifier as sent by the client. Numbers are stored in
// canonical form, so 1 and 1.0 compare equal. Integer literals keep full
// precision at any size. The zero value is not a valid identifier.
type NodeID struct {
	Kind  IDKind
	Value string
}

// StringID returns a string identifier.
func StringID(s string) NodeID { return NodeID{Kind: KindString, Value: s} }

// NumberID returns a numeric identifier.
func NumberID(n int64) NodeID { return NodeID{Kind: KindNumber, Value: strconv.FormatInt(n, 10)} }

// String implements fmt.Stringer.
func (id NodeID) String() string {
	if id.Kind == KindString {
		return strconv.Quote(id.Value)
	}

	return id.Value
}

// MarshalJSON encodes the identifier in its original JSON type.
func (id NodeID) MarshalJSON() ([]byte, error) {
	switch id.Kind {
	case KindString:
		return json.Marshal(id.Value)
	case KindNumber:
		return []byte(id.Value), nil
	default:
		return nil, ErrInvalidIdentifier
	}
}

// UnmarshalJSON accepts a JSON string or number.
func (id *NodeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidIdentifier
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode identifier: %w", err)
		}
		*id = StringID(s)
	case c == '-' || (c >= '0' && c <= '9'):
		v, err := canonicalNumber(string(data))
		if err != nil {
			return err
		}
		*id = NodeID{Kind: KindNumber, Value: v}
	default:
		return fmt.Errorf("%w, got %s", ErrInvalidIdentifier, truncate(data, 32))
	}

	return nil
}

// UnmarshalYAML accepts a scalar string, int or float.
func (id *NodeID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w (line %d)", ErrInvalidIdentifier, value.Line)
	}

	switch value.ShortTag() {
	case "!!str":
		*id = StringID(value.Value)
	case "!!int":
		// Base 0 accepts the 0x, 0o and 0b forms YAML resolves as ints.
		n, ok := new(big.Int).SetString(value.Value, 0)
		if !ok {
			return fmt.Errorf("%w, got %q (line %d)", ErrInvalidIdentifier, value.Value, value.Line)
		}
		*id = NodeID{Kind: KindNumber, Value: n.String()}
	case "!!float":
		// Integers too wide for uint64 resolve as !!float; canonicalNumber
		// keeps them exact.
		v, err := canonicalNumber(value.Value)
		if err != nil {
			return fmt.Errorf("%w (line %d)", err, value.Line)
		}
		*id = NodeID{Kind: KindNumber, Value: v}
	default:
		return fmt.Errorf("%w (line %d)", ErrInvalidIdentifier, value.Line)
	}

	return nil
}

// canonicalNumber maps a numeric literal to its identifier value. Integer
// literals are exact. Fractional or exponent literals are float64 values, and
// an integral float64 takes the exact integer form, so 1e2 equals 100.
func canonicalNumber(s string) (string, error) {
	if !strings.ContainsAny(s, ".eE") {
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return "", fmt.Errorf("%w, got %q", ErrInvalidIdentifier, s)
		}
		return n.String(), nil
	}

	// Overflowing literals such as 1e400 fail here with ErrRange.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", fmt.Errorf("%w, got %q", ErrInvalidIdentifier, s)
	}

	return canonicalFloat(f)
}

func canonicalFloat(f float64) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("%w, got %v", ErrInvalidIdentifier, f)
	}

	if f == math.Trunc(f) {
		n, _ := big.NewFloat(f).Int(nil)
		return n.String(), nil
	}

	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}

	return string(b)
}
