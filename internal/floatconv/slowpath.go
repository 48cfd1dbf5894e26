package floatconv

// slowParse is the complete fallback: shift the big decimal by powers of two
// until the value sits in [1/2, 1), then scale into the mantissa window and
// round. It succeeds for every lexable input, so the pipeline always
// terminates with an answer (Simple Decimal Conversion, after Nigel Tao and
// Ken Thompson).
func slowParse(s []byte, fs *floatSpec) biasedFp {
	d := parseDecimal(s)
	if d.numDigits == 0 || d.decimalPoint < -324 {
		return fs.zero()
	}
	if d.decimalPoint >= 310 {
		return fs.inf()
	}

	exp2 := 0

	// Точка правее нуля — делим на два, пока не уйдёт в [0, 1).
	for d.decimalPoint > 0 {
		shift := slowShift(d.decimalPoint)
		d.rightShift(shift)
		if d.decimalPoint < -decimalPointRange {
			return fs.zero()
		}
		exp2 += int(shift)
	}

	// Точка в нуле или левее — умножаем, пока значение не войдёт в [1/2, 1).
	for d.decimalPoint <= 0 {
		var shift uint
		if d.decimalPoint == 0 {
			if d.digits[0] >= 5 {
				break
			}
			if d.digits[0] < 2 {
				shift = 2
			} else {
				shift = 1
			}
		} else {
			shift = slowShift(-d.decimalPoint)
		}
		d.leftShift(shift)
		if d.decimalPoint > decimalPointRange {
			return fs.inf()
		}
		exp2 -= int(shift)
	}

	// Биада [1/2, 1) против мантиссной [1, 2).
	exp2--

	// Поджимаем субнормальные значения к минимальной экспоненте.
	for fs.minExponent+1 > exp2 {
		n := uint(fs.minExponent + 1 - exp2)
		if n > maxDecimalShift {
			n = maxDecimalShift
		}
		d.rightShift(n)
		if d.decimalPoint < -decimalPointRange {
			return fs.zero()
		}
		exp2 += int(n)
	}
	if exp2-fs.minExponent >= fs.infinitePower {
		return fs.inf()
	}

	d.leftShift(uint(fs.mantissaExplicitBits) + 1)
	mantissa := d.round()
	if mantissa >= uint64(2)<<fs.mantissaExplicitBits {
		// Округление перенеслось через верх окна: шаг назад и ещё раз.
		d.rightShift(1)
		exp2++
		mantissa = d.round()
		if exp2-fs.minExponent >= fs.infinitePower {
			return fs.inf()
		}
	}

	power2 := exp2 - fs.minExponent
	if mantissa < uint64(1)<<fs.mantissaExplicitBits {
		power2--
	}
	mantissa &= uint64(1)<<fs.mantissaExplicitBits - 1
	return biasedFp{f: mantissa, e: power2}
}

// slowShift picks the largest safe binary shift for the current decimal
// point, capped at maxDecimalShift.
func slowShift(point int) uint {
	if point < len(slowShiftAmount) {
		return slowShiftAmount[point]
	}
	return maxDecimalShift
}
