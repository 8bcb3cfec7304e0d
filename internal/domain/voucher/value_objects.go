package voucher

import (
	"errors"
	"math"
	"strings"
	"unicode"
)

var (
	ErrInvalidCode          = errors.New("invalid voucher code format")
	ErrInvalidRemainingUses = errors.New("multi-use voucher use count is out of range")
)

const MaxCodeLength = 64

// MaxUses is the largest use count the remaining_uses column can hold.
const MaxUses = math.MaxInt32

// Code is stored verbatim; codes are case-sensitive because the partner
// platforms issuing them are.
type Code string

func NewCode(raw string) (Code, error) {
	code := strings.TrimSpace(raw)
	if code == "" || len(code) > MaxCodeLength {
		return Code(""), ErrInvalidCode
	}
	if strings.IndexFunc(code, unicode.IsSpace) >= 0 {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Kind string

const (
	KindSingleUse Kind = "single_use"
	KindMultiUse  Kind = "multi_use"
)

func (k Kind) String() string {
	return string(k)
}

func KindOf(multiUse bool) Kind {
	if multiUse {
		return KindMultiUse
	}
	return KindSingleUse
}
