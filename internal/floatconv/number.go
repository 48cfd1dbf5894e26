package floatconv

// min19DigitInt = 10^18: пока мантисса меньше, очередная десятичная цифра
// гарантированно не переполнит uint64.
const min19DigitInt uint64 = 1_000_000_000_000_000_000

// expClampLimit keeps the explicit exponent accumulator away from int32
// overflow; anything this large is already far outside every target's range.
const expClampLimit = (1<<31-1)/10 - 10

// number is the lexical decomposition of a decimal literal: up to 19
// significant digits in mantissa, the decimal exponent already adjusted for
// the dot position, and the truncation marker.
//
// Invariant: with manyDigits false the literal's value is exactly
// mantissa * 10^exponent.
type number struct {
	mantissa   uint64
	exponent   int64
	manyDigits bool
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// decompose lexes (digits ('.' digits?)? | '.' digits) ('e'|'E' sign? digits)? from the
// start of s and reports how many bytes it consumed. The sign and special
// tokens are the dispatcher's business.
func decompose(s []byte) (number, int, error) {
	var n number
	i := 0

	// целая часть
	for i < len(s) && isDec(s[i]) {
		n.mantissa = n.mantissa*10 + uint64(s[i]-'0')
		i++
	}
	intEnd := i
	digitCount := i

	// дробная часть
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && isDec(s[i]) {
			n.mantissa = n.mantissa*10 + uint64(s[i]-'0')
			i++
		}
		n.exponent = -int64(i - fracStart)
		digitCount += i - fracStart
	}
	if digitCount == 0 {
		return number{}, 0, errNoDigits
	}

	// экспонента; без цифр после 'e' она не часть числа
	var expNum int64
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		negative := false
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			negative = s[j] == '-'
			j++
		}
		if j < len(s) && isDec(s[j]) {
			for j < len(s) && isDec(s[j]) {
				if expNum < expClampLimit {
					expNum = expNum*10 + int64(s[j]-'0')
				}
				j++
			}
			if negative {
				expNum = -expNum
			}
			n.exponent += expNum
			i = j
		}
	}
	consumed := i

	if digitCount <= 19 {
		return n, consumed, nil
	}

	// Более 19 цифр: ведущие нули значимости не добавляют, пересчитываем.
	start := 0
	for start < len(s) && (s[start] == '0' || s[start] == '.') {
		if s[start] == '0' {
			digitCount--
		}
		start++
	}
	if digitCount <= 19 {
		return n, consumed, nil
	}

	// Truncated re-scan: keep the first 19 significant digits and rebase the
	// exponent on where the window ended, before or after the dot.
	n.manyDigits = true
	m := uint64(0)
	j := start
	for j < len(s) && m < min19DigitInt {
		c := s[j]
		if c == '.' {
			j++
			continue
		}
		if !isDec(c) {
			break
		}
		m = m*10 + uint64(c-'0')
		j++
	}
	if j <= intEnd {
		n.exponent = int64(intEnd-j) + expNum
	} else {
		n.exponent = -int64(j-(intEnd+1)) + expNum
	}
	n.mantissa = m
	return n, consumed, nil
}
