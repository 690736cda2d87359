package geometry

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	// MaxCoordinate bounds |x| and |y| of a Point so that x*x + y*y fits in
	// an int64 and every dot product of two points does too.
	MaxCoordinate = 1<<31 - 1

	// MaxHullCoordinate bounds hull input so that the difference of any two
	// inputs is itself a valid Point coordinate.
	MaxHullCoordinate = 1<<30 - 1
)

var (
	MaxUint128 = Uint128{hi: maxUint64, lo: maxUint64}

	zeroUint128 Uint128

	maxBigUint64     = new(big.Int).SetUint64(maxUint64)
	maxBigUint128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
)
