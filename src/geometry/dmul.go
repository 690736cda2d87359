package geometry

// Half-word helpers for WideProduct. Every intermediate stays inside a native
// uint64: a product of two 32-bit halves is at most (2^32-1)^2.

const (
	halfBits = 32
	lowMask  = 1<<halfBits - 1
)

func high(v uint64) uint64 {
	return v >> halfBits
}

func low(v uint64) uint64 {
	return v & lowMask
}

func mul32(a, b uint64) uint64 {
	return low(a) * low(b)
}

func shHalf(v uint64) uint64 {
	return v << halfBits
}
