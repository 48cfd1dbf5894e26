package floatconv

// uint128 — 128-битное беззнаковое значение из двух машинных слов.
type uint128 struct {
	hi uint64
	lo uint64
}

// biasedFp carries a binary float before bit assembly: f is the significand
// (hidden bit stripped by the producer, except that the subnormal branch of
// eiselLemire returns f with the hidden bit set together with e == 1; assembly
// ORs both into the same bit), e is the biased binary exponent.
// e == fpInconclusive marks an approximation that could not commit to a
// correctly rounded answer.
type biasedFp struct {
	f uint64
	e int
}

const fpInconclusive = -1

// floatSpec is the single source of truth for one IEEE-754 target. Every
// stage of the pipeline reads its constants from here, so f32 and f64 share
// one algorithm body.
type floatSpec struct {
	mantissaExplicitBits int // significand bits without the hidden bit
	minExponent          int // smallest biased-exponent offset (unbiased min - 1)
	infinitePower        int // biased exponent of infinity
	sizeBits             int // 32 or 64

	// decimal exponent windows
	smallestPowerOfTen int // below this the value is certainly zero
	largestPowerOfTen  int // above this the value is certainly infinite

	// fast path
	minExponentFastPath          int64
	maxExponentFastPath          int64
	maxExponentFastPathDisguised int64
	maxMantissaFastPath          uint64

	// window in which an Eisel-Lemire product can be an exact tie
	minExponentRoundToEven int
	maxExponentRoundToEven int
}

var float64Spec = floatSpec{
	mantissaExplicitBits:         52,
	minExponent:                  -1023,
	infinitePower:                0x7FF,
	sizeBits:                     64,
	smallestPowerOfTen:           -342,
	largestPowerOfTen:            308,
	minExponentFastPath:          -22,
	maxExponentFastPath:          22,
	maxExponentFastPathDisguised: 37,
	maxMantissaFastPath:          2 << 52,
	minExponentRoundToEven:       -4,
	maxExponentRoundToEven:       23,
}

var float32Spec = floatSpec{
	mantissaExplicitBits:         23,
	minExponent:                  -127,
	infinitePower:                0xFF,
	sizeBits:                     32,
	smallestPowerOfTen:           -65,
	largestPowerOfTen:            38,
	minExponentFastPath:          -10,
	maxExponentFastPath:          10,
	maxExponentFastPathDisguised: 10,
	maxMantissaFastPath:          2 << 23,
	minExponentRoundToEven:       -17,
	maxExponentRoundToEven:       10,
}

// zero and inf return pre-assembled sentinels for the target.
func (fs *floatSpec) zero() biasedFp { return biasedFp{} }
func (fs *floatSpec) inf() biasedFp  { return biasedFp{f: 0, e: fs.infinitePower} }

// assemble collapses a biasedFp and a sign into the IEEE bit layout.
func (fs *floatSpec) assemble(fp biasedFp, negative bool) uint64 {
	bits := fp.f | uint64(fp.e)<<fs.mantissaExplicitBits
	if negative {
		bits |= 1 << (fs.sizeBits - 1)
	}
	return bits
}

const (
	// quietNaN64 and quietNaN32 are the canonical quiet NaN payloads.
	quietNaN64 = 0x7FF8000000000000
	quietNaN32 = 0x7FC00000
)
