package hist

import "math"

// quotient divides a±ea by b±eb assuming the two are uncorrelated.
// ok is false when b is zero; the caller decides what an undefined bin holds.
func quotient(a, ea, b, eb float64) (c, ec float64, ok bool) {
	if b == 0 {
		return 0, 0, false
	}
	c = a / b
	b2 := b * b
	ec = math.Sqrt((ea*ea*b2 + eb*eb*a*a) / (b2 * b2))
	return c, ec, true
}

// binomial returns k/n and its binomial standard error sqrt(p(1-p)/n).
// An empty denominator gives (0, 0).
func binomial(k, n float64) (p, err float64) {
	if n == 0 {
		return 0, 0
	}
	p = k / n
	v := p * (1 - p) / n
	if v < 0 { // k > n or negative weights
		v = -v
	}
	return p, math.Sqrt(v)
}

// Divide returns h1/h2 bin by bin with uncorrelated error propagation. The result
// is a clone of h1; neither input is modified. A bin whose divisor is zero gets
// content 0 and error 0 and is flagged Undefined.
func Divide(h1, h2 *Histogram) (*Histogram, error) {
	if err := checkPair(h1, h2); err != nil {
		return nil, err
	}
	r := h1.Clone()
	for i := range r.contents {
		c, ec, ok := quotient(h1.contents[i], h1.errors[i], h2.contents[i], h2.errors[i])
		r.contents[i], r.errors[i] = c, ec
		r.undefined[i] = !ok || h1.undefined[i] || h2.undefined[i]
	}
	return r, nil
}

// DivideBinomial treats pass and total as counts of the same trials and returns the
// per-bin proportion with binomial errors. Empty total bins give 0 ± 0; they are
// a defined value here, not flagged.
func DivideBinomial(pass, total *Histogram) (*Histogram, error) {
	if err := checkPair(pass, total); err != nil {
		return nil, err
	}
	r := pass.Clone()
	for i := range r.contents {
		r.contents[i], r.errors[i] = binomial(pass.contents[i], total.contents[i])
		r.undefined[i] = false
	}
	return r, nil
}
