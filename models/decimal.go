package models

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Decimal is an exact decimal number.
//
// It is encoded as a bare JSON number, as a DynamoDB number (N) and, through
// the embedded decimal.Decimal, as a driver value for NUMERIC columns.
// JSON decoding accepts both numbers and numeric strings.
type Decimal struct {
	decimal.Decimal
}

// Bounds of a DynamoDB number, the narrowest of the store backends.
const (
	maxSignificantDigits = 38
	minMagnitude         = -130
	maxMagnitude         = 125
)

// NewDecimal parses s as an exact decimal.
func NewDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return Decimal{d}, nil
}

// MustDecimal is like NewDecimal but panics on malformed input.
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MarshalJSON writes the number unquoted.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler.
func (d Decimal) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: d.String()}, nil
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
func (d *Decimal) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		*d = Decimal{}
		return nil
	default:
		return fmt.Errorf("cannot decode %T into decimal", av)
	}

	parsed, err := NewDecimal(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// InStoreRange reports whether d has at most 38 significant digits and a
// magnitude between 1e-130 and 1e125, zero included.
func (d Decimal) InStoreRange() bool {
	if d.IsZero() {
		return true
	}

	coefficient := strings.TrimPrefix(d.Coefficient().String(), "-")
	magnitude := len(coefficient) - 1 + int(d.Exponent())
	significant := len(strings.TrimRight(coefficient, "0"))

	return significant <= maxSignificantDigits && magnitude >= minMagnitude && magnitude <= maxMagnitude
}
