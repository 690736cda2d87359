package geometry

import (
	"fmt"
	"math/big"
)

// Uint128 is an unsigned 128-bit value held as two 64-bit words. It is the
// result type of Wide and only supports what exact comparisons need.
type Uint128 struct {
	hi, lo uint64
}

func Uint128FromRaw(hi, lo uint64) Uint128 { return Uint128{hi: hi, lo: lo} }

func Uint128From64(v uint64) Uint128 { return Uint128{lo: v} }

// Uint128FromBigInt converts b, clamping to [0, MaxUint128]. accurate is false
// if b was out of range.
func Uint128FromBigInt(b *big.Int) (out Uint128, accurate bool) {
	if b.Sign() < 0 {
		return out, false
	}
	if b.Cmp(maxBigUint128) > 0 {
		return MaxUint128, false
	}
	var lo big.Int
	lo.And(b, maxBigUint64)
	var hi big.Int
	hi.Rsh(b, 64)
	return Uint128{hi: hi.Uint64(), lo: lo.Uint64()}, true
}

func (u Uint128) Hi() uint64 { return u.hi }

func (u Uint128) Lo() uint64 { return u.lo }

func (u Uint128) IsZero() bool { return u.hi == 0 && u.lo == 0 }

// Cmp compares u and n lexicographically by (hi, lo) and returns -1, 0 or +1.
func (u Uint128) Cmp(n Uint128) int {
	if u.hi == n.hi {
		if u.lo > n.lo {
			return 1
		} else if u.lo < n.lo {
			return -1
		}
		return 0
	}
	if u.hi > n.hi {
		return 1
	}
	return -1
}

func (u Uint128) Equal(n Uint128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u Uint128) LessThan(n Uint128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u Uint128) GreaterThan(n Uint128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u Uint128) AsBigInt() *big.Int {
	v := new(big.Int).SetUint64(u.hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.lo))
}

func (u Uint128) String() string {
	if u.hi == 0 {
		return fmt.Sprint(u.lo)
	}
	return u.AsBigInt().String()
}

// Format lets Uint128 take the integer verbs (%d, %x, %X, %o, %b) big.Int
// understands, plus %s and %v.
func (u Uint128) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		fmt.Fprint(s, u.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}
