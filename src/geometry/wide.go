package geometry

// WideProduct returns the exact 128-bit product of a and b as its high and
// low 64-bit words, so that hi<<64 + lo == a*b.
//
// The operands are split into 32-bit halves and multiplied in base 2^32; the
// carry out of the middle column is folded into the high word. No native
// 128-bit type is involved.
func WideProduct(a, b uint64) (hi, lo uint64) {
	aLo, aHi := low(a), high(a)
	bLo, bHi := low(b), high(b)

	ll := mul32(aLo, bLo)
	hl := mul32(aHi, bLo)
	lh := mul32(aLo, bHi)
	hh := mul32(aHi, bHi)

	// Three 32-bit quantities; the sum fits comfortably in 64 bits.
	mid := low(hl) + low(lh) + high(ll)

	hi = hh + high(hl) + high(lh) + high(mid)
	lo = shHalf(low(mid)) | low(ll)
	return hi, lo
}

// Wide is WideProduct packed into a Uint128.
func Wide(a, b uint64) Uint128 {
	hi, lo := WideProduct(a, b)
	return Uint128{hi: hi, lo: lo}
}

// CompareProducts returns the sign of a*b - c*d, computed exactly for any
// int64 operands.
func CompareProducts(a, b, c, d int64) int {
	if small(a) && small(b) && small(c) && small(d) {
		l, r := a*b, c*d
		switch {
		case l < r:
			return -1
		case l > r:
			return 1
		}
		return 0
	}

	ls, rs := sign(a)*sign(b), sign(c)*sign(d)
	if ls != rs {
		if ls < rs {
			return -1
		}
		return 1
	}
	if ls == 0 {
		return 0
	}

	// Same sign: compare magnitudes, flipping for negative products.
	m := Wide(abs64(a), abs64(b)).Cmp(Wide(abs64(c), abs64(d)))
	if ls < 0 {
		return -m
	}
	return m
}

// small reports whether v can take part in a native product without any risk
// of overflowing the difference of two such products.
func small(v int64) bool {
	return v > -1<<31 && v < 1<<31
}

func sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// abs64 returns |v| as a uint64; it is exact for minInt64 as well.
func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
