package filter

import (
	"math"
	"math/cmplx"
)

// Magnitude evaluates the magnitude response of the cascade at the
// normalized frequency f (0 = DC, 1 = Nyquist). An empty cascade has
// unity response.
func Magnitude(cascade []Biquad, f float64) float64 {
	z := cmplx.Exp(complex(0, -math.Pi*f)) // z^-1 on the unit circle

	h := complex(1, 0)
	for _, c := range cascade {
		num := complex(c.B0, 0) + complex(c.B1, 0)*z + complex(c.B2, 0)*z*z
		den := complex(1, 0) + complex(c.A1, 0)*z + complex(c.A2, 0)*z*z
		h *= num / den
	}

	return cmplx.Abs(h)
}
