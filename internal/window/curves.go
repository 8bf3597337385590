package window

import "math"

// Curve maps sample x of a fade lasting d samples (total samples - 1) to a
// gain. k is the shape contour for the families that take one.
type Curve func(d, x, k float64) float64

var curves = [numFamilies][numDirections]Curve{
	Linear:         {linearOut, linearIn, linearIO, linearOI},
	Exp1:           {exp1Out, exp1In, exp1IO, exp1OI},
	Exp2:           {exp2Out, exp2In, exp2IO, exp2OI},
	Exp3:           {exp3Out, exp3In, exp3IO, exp3OI},
	Exp4:           {exp4Out, exp4In, exp4IO, exp4OI},
	Exp5:           {exp5Out, exp5In, exp5IO, exp5OI},
	Log1:           {log1Out, log1In, log1IO, log1OI},
	Log2:           {log2Out, log2In, log2IO, log2OI},
	EqualPower1:    {eqp1Out, eqp1In, eqp1IO, eqp1OI},
	EqualPower2:    {eqp2Out, eqp2In, eqp2IO, eqp2OI},
	SCurve1:        {sc1Out, sc1In, sc1IO, sc1OI},
	SCurve2:        {sc2Out, sc2In, sc2IO, sc2OI},
	SCurve3:        {sc3Out, sc3In, sc3IO, sc3OI},
	SCurve4:        {sc4Out, sc4In, sc4IO, sc4OI},
	Hermite:        {chsOut, chsIn, chsIO, chsOI},
	HermiteGeneral: {chsgOut, chsgIn, chsgIO, chsgOI},
	Crossfade:      {sscfOut, sscfIn, sscfIO, sscfOI},
	Tetration:      {tetOut, tetIn, tetIO, tetOI},
	SuperLog:       {slgOut, slgIn, slgIO, slgOI},
}

// firstHalf is the branch test shared by the piecewise curves; the midpoint
// sample belongs to the first half.
func firstHalf(d, x float64) bool { return x <= d*0.5 }

func sq(v float64) float64 { return v * v }

// Linear

func linearOut(d, x, _ float64) float64 { return 1 - x/d }
func linearIn(d, x, _ float64) float64  { return x / d }
func linearIO(d, x, _ float64) float64  { return 1 - math.Abs(2*x-d)/d }
func linearOI(d, x, _ float64) float64  { return math.Abs(2*x-d) / d }

// Exp 1: logistic curve cut in half and rescaled.

func exp1In(d, x, k float64) float64 {
	return 2 / (1 + math.Pow((2*d-x)/x, k))
}

func exp1Out(d, x, k float64) float64 {
	return 2 / (1 + math.Pow((d+x)/(d-x), k))
}

func exp1IO(d, x, k float64) float64 {
	diff := d - x
	if firstHalf(d, x) {
		return 2 / (1 + math.Pow(diff/x, k))
	}
	return 2 / (1 + math.Pow(x/diff, k))
}

func exp1OI(d, x, k float64) float64 {
	x2 := 2 * x
	if firstHalf(d, x) {
		return 2 / (1 + math.Pow((d+x2)/(d-x2), k))
	}
	return 2 / (1 + math.Pow((3*d-x2)/(x2-d), k))
}

// Exp 2: Gaussian bell. The constants pull the tails to 0 and the peak to 1.

const (
	bellScale  = 1.00637003594226
	bellOffset = 0.00637003594226
)

func bell(u float64) float64 {
	return bellScale/math.Pow(math.E, sq(u)) - bellOffset
}

func exp2Out(d, x, _ float64) float64 { return bell(2.25 * x / d) }
func exp2In(d, x, _ float64) float64  { return bell(2.25 * (x/d - 1)) }
func exp2IO(d, x, _ float64) float64  { return bell(4.5*x/d - 2.25) }
func exp2OI(d, x, k float64) float64  { return 1 - exp2IO(d, x, k) }

// Exp 3: base e exponential with contour k.

func exp3In(d, x, k float64) float64 {
	return (math.Pow(math.E, k*x/d) - 1) / (math.Pow(math.E, k) - 1)
}

func exp3Out(d, x, k float64) float64 {
	return 1 - exp3In(d, x, -k)
}

func exp3IO(d, x, k float64) float64 {
	x2 := 2 * x
	k2 := -k
	if firstHalf(d, x) {
		return (math.Pow(math.E, k*x2/d) - 1) / (math.Pow(math.E, k) - 1)
	}
	return 1 - (math.Pow(math.E, k2*(x2-d)/d)-1)/(math.Pow(math.E, k2)-1)
}

func exp3OI(d, x, k float64) float64 {
	x2 := 2 * x
	k2 := -k
	if firstHalf(d, x) {
		return 1 - (math.Pow(math.E, x2*k2/d)-1)/(math.Pow(math.E, k2)-1)
	}
	return (math.Pow(math.E, k*(x2-d)/d) - 1) / (math.Pow(math.E, k) - 1)
}

// Exp 4: power function. Odd or fractional k turns the negative bases of
// the out and second io halves into NaN or a sign flip.

func exp4Out(d, x, k float64) float64 { return math.Pow((x-d)/d, k) }
func exp4In(d, x, k float64) float64  { return math.Pow(x/d, k) }

func exp4IO(d, x, k float64) float64 {
	if firstHalf(d, x) {
		return math.Pow(2*x/d, k)
	}
	return math.Pow(2*((x-d)/d), k)
}

func exp4OI(d, x, k float64) float64 { return math.Pow((2*x-d)/d, k) }

// Exp 5: audio potentiometer log taper.

func exp5Out(d, x, _ float64) float64 {
	q := x / d
	if firstHalf(d, x) {
		return 1 - 1.8*q
	}
	return 0.2 - 0.2*q
}

func exp5In(d, x, _ float64) float64 {
	q := x / d
	if firstHalf(d, x) {
		return 0.2 * q
	}
	return 1.8*q - 0.8
}

func exp5IO(d, x, _ float64) float64 {
	q := x / d
	switch {
	case x <= d*0.25:
		return 0.4 * q
	case x <= d*0.5:
		return 3.6*q - 0.8
	case x <= d*0.75:
		return 2.8 - 3.6*q
	default:
		return 0.4 - 0.4*q
	}
}

func exp5OI(d, x, _ float64) float64 {
	q := x / d
	switch {
	case x <= d*0.25:
		return 1 - 3.6*q
	case x <= d*0.5:
		return 0.2 - 0.4*q
	case x <= d*0.75:
		return 0.4*q - 0.2
	default:
		return 3.6*q - 2.6
	}
}

// Log 1: base 10 log scaled over one decade.

func log1Out(d, x, _ float64) float64 { return math.Log10(10 - 9*x/d) }
func log1In(d, x, _ float64) float64  { return math.Log10(1 + 9*x/d) }

func log1IO(d, x, _ float64) float64 {
	q := x / d
	if firstHalf(d, x) {
		return math.Log10(1 + 18*q)
	}
	return math.Log10(19 - 18*q)
}

func log1OI(d, x, _ float64) float64 {
	q := x / d
	if firstHalf(d, x) {
		return math.Log10(10 - 18*q)
	}
	return math.Log10(18*q - 8)
}

// Log 2: audio potentiometer anti-log taper.

func log2Out(d, x, _ float64) float64 {
	q := x / d
	if firstHalf(d, x) {
		return 1 - 0.2*q
	}
	return 1.8 - 1.8*q
}

func log2In(d, x, _ float64) float64 {
	q := x / d
	if firstHalf(d, x) {
		return 1.8 * q
	}
	return 0.8 + 0.2*q
}

func log2IO(d, x, _ float64) float64 {
	q := x / d
	switch {
	case x <= d*0.25:
		return 3.6 * q
	case x <= d*0.5:
		return 0.8 + 0.4*q
	case x <= d*0.75:
		return 1.2 - 0.4*q
	default:
		return 3.6 - 3.6*q
	}
}

func log2OI(d, x, _ float64) float64 {
	q := x / d
	switch {
	case x <= d*0.25:
		return 1 - 0.4*q
	case x <= d*0.5:
		return 1.8 - 3.6*q
	case x <= d*0.75:
		return 3.6*q - 1.8
	default:
		return 0.4*q + 0.6
	}
}

// Equal power 1: quarter sine and cosine.

func eqp1Out(d, x, _ float64) float64 { return math.Cos(x * (math.Pi / 2) / d) }
func eqp1In(d, x, _ float64) float64  { return math.Sin(x * (math.Pi / 2) / d) }
func eqp1IO(d, x, _ float64) float64  { return math.Sin(x * math.Pi / d) }
func eqp1OI(d, x, _ float64) float64  { return math.Cos(x * math.Pi / d) }

// Equal power 2: square root.

func eqp2Out(d, x, _ float64) float64 { return math.Sqrt((d - x) / d) }
func eqp2In(d, x, _ float64) float64  { return math.Sqrt(x / d) }

func eqp2IO(d, x, _ float64) float64 {
	x2 := 2 * x / d
	if firstHalf(d, x) {
		return math.Sqrt(x2)
	}
	return math.Sqrt(2 - x2)
}

func eqp2OI(d, x, _ float64) float64 {
	x2 := 2 * x / d
	if firstHalf(d, x) {
		return math.Sqrt(1 - x2)
	}
	return math.Sqrt(x2 - 1)
}

// S-curve 1: raised cosine.

func sc1Out(d, x, _ float64) float64 { return 0.5 * (1 + math.Cos(math.Pi*x/d)) }
func sc1In(d, x, _ float64) float64  { return 0.5 * (1 - math.Cos(math.Pi*x/d)) }
func sc1IO(d, x, _ float64) float64  { return 0.5 * (1 - math.Cos(2*math.Pi*x/d)) }
func sc1OI(d, x, _ float64) float64  { return 0.5 * (1 + math.Cos(2*math.Pi*x/d)) }

// S-curve 2: piecewise logistic-like sigmoid.

func sc2In(d, x, k float64) float64 {
	return 1 - 1/(1+math.Pow(x/(d-x), k))
}

func sc2Out(d, x, k float64) float64 {
	return 1 / (1 + math.Pow(x/(d-x), k))
}

func sc2IO(d, x, k float64) float64 {
	if firstHalf(d, x) {
		return 1 / (1 + math.Pow(d/(2*x)-1, k))
	}
	return 1 - 1/(1+math.Pow((d-x)/(x-d/2), k))
}

func sc2OI(d, x, k float64) float64 {
	if firstHalf(d, x) {
		return 1 - 1/(1+math.Pow(d/(2*x)-1, k))
	}
	return 1 / (1 + math.Pow((d-x)/(x-d/2), k))
}

// S-curve 3: power curves spliced at the inflection points.

func sc3In(d, x, k float64) float64 {
	q := 2 / d
	if firstHalf(d, x) {
		return 0.5 * math.Pow(q*x, k)
	}
	return 1 - 0.5*math.Pow(q*math.Abs(x-d), k)
}

func sc3Out(d, x, k float64) float64 {
	q := 2 / d
	if firstHalf(d, x) {
		return 1 - 0.5*math.Pow(q*x, k)
	}
	return 0.5 * math.Pow(q*math.Abs(x-d), k)
}

func sc3IO(d, x, k float64) float64 {
	q := 2 / d
	q2 := 2 * q
	switch {
	case x <= d*0.25:
		return 0.5 * math.Pow(q2*x, k)
	case x <= d*0.75:
		return 1 - 0.5*math.Pow(q*math.Abs(2*x-d), k)
	default:
		return 0.5 * math.Pow(q2*math.Abs(x-d), k)
	}
}

func sc3OI(d, x, k float64) float64 {
	q := 2 / d
	q2 := 2 * q
	switch {
	case x <= d*0.25:
		return 1 - 0.5*math.Pow(q2*x, k)
	case x <= d*0.75:
		return 0.5 * math.Pow(q*math.Abs(2*x-d), k)
	default:
		return 1 - 0.5*math.Pow(q2*math.Abs(x-d), k)
	}
}

// S-curve 4: ellipse quadrants spliced at the inflection points.

func sc4Out(d, x, _ float64) float64 {
	q := x / d
	if firstHalf(d, x) {
		return 0.5 * (1 + math.Sqrt(1-sq(2*q)))
	}
	return 0.5 * (1 - math.Sqrt(1-4*sq(q-1)))
}

func sc4In(d, x, _ float64) float64 {
	q := x / d
	if firstHalf(d, x) {
		return 0.5 * (1 - math.Sqrt(1-sq(2*q)))
	}
	return 0.5 * (1 + math.Sqrt(1-4*sq(q-1)))
}

func sc4IO(d, x, _ float64) float64 {
	q := x / d
	q2 := 2 * q
	switch {
	case x <= d*0.25:
		return 0.5 * (1 - math.Sqrt(1-sq(2*q2)))
	case x <= d*0.75:
		return 0.5 * (1 + math.Sqrt(1-4*sq(q2-1)))
	default:
		return 0.5 * (1 - math.Sqrt(1-16*sq(q-1)))
	}
}

func sc4OI(d, x, _ float64) float64 {
	q := x / d
	q2 := 2 * q
	switch {
	case x <= d*0.25:
		return 0.5 * (1 + math.Sqrt(1-sq(2*q2)))
	case x <= d*0.75:
		return 0.5 * (1 - math.Sqrt(1-4*sq(q2-1)))
	default:
		return 0.5 * (1 + math.Sqrt(1-16*sq(q-1)))
	}
}

// Cubic Hermite: 3x^2 - 2x^3.

func chsOut(d, x, _ float64) float64 {
	q := x / d
	return 1 - sq(q)*(3-2*q)
}

func chsIn(d, x, _ float64) float64 {
	q := x / d
	return sq(q) * (3 - 2*q)
}

func chsIO(d, x, _ float64) float64 {
	q := x / d
	e := (2*x - d) / d
	if firstHalf(d, x) {
		return sq(2*q) * (3 - 4*q)
	}
	return 1 - sq(e)*(3-2*e)
}

func chsOI(d, x, _ float64) float64 {
	q2 := 2 * x / d
	e := (2*x - d) / d
	if firstHalf(d, x) {
		return 1 - sq(q2)*(3-2*q2)
	}
	return sq(e) * (3 - 2*e)
}

// Generalised cubic Hermite: power k in place of the square.

func chsgOut(d, x, k float64) float64 {
	q := x / d
	return 1 - math.Pow(q, k)*(k+1-k*q)
}

func chsgIn(d, x, k float64) float64 {
	q := x / d
	return math.Pow(q, k) * (k + 1 - k*q)
}

func chsgIO(d, x, k float64) float64 {
	q := x / d
	e := -2 * (x - d) / d
	if firstHalf(d, x) {
		return math.Pow(2*q, k) * (k + 1 - 2*k*q)
	}
	return math.Pow(e, k) * (k + 1 - k*e)
}

func chsgOI(d, x, k float64) float64 {
	q2 := 2 * x / d
	e := -2 * (x - d) / d
	if firstHalf(d, x) {
		return 1 - math.Pow(q2, k)*(k+1-k*q2)
	}
	return 1 - math.Pow(e, k)*(k+1-k*e)
}

// Signalsmith cheap energy-preserving crossfade.

const crossfadeCoeff = 1.4186

func crossfade(lead, a float64) float64 {
	return sq(lead + a*(1+crossfadeCoeff*a))
}

func sscfOut(d, x, _ float64) float64 {
	u := x / d
	return crossfade(1-u, u*(1-u))
}

func sscfIn(d, x, _ float64) float64 {
	u := x / d
	return crossfade(u, u*(1-u))
}

func sscfIO(d, x, _ float64) float64 {
	u := 2 * x / d
	v := (2*x - d) / d
	if firstHalf(d, x) {
		return crossfade(u, u*(1-u))
	}
	return crossfade(1-v, v*(1-v))
}

func sscfOI(d, x, _ float64) float64 {
	u := 2 * x / d
	v := (2*x - d) / d
	if firstHalf(d, x) {
		return crossfade(1-u, u*(1-u))
	}
	return crossfade(v, v*(1-v))
}

// Tetration: first order tetration of the scaled position. The endpoints
// only approach 0 and 1.

func tetOut(d, x, _ float64) float64 { return d / math.Pow(x+d, x/d+1) }
func tetIn(d, x, _ float64) float64  { return math.Pow(x, x/d) / d }

func tetIO(d, x, _ float64) float64 {
	q2 := 2 * x / d
	if firstHalf(d, x) {
		return 2 * math.Pow(x, q2) / d
	}
	return d / math.Pow(2*x, q2)
}

func tetOI(d, x, k float64) float64 { return 1 - tetIO(d, x, k) }

// Super log: tetration mirrored about the gain axis.

func slgOut(d, x, _ float64) float64 { return 1 - math.Pow(x, x/d)/d }
func slgIn(d, x, _ float64) float64  { return 1 - d/math.Pow(x+d, 1+x/d) }

func slgIO(d, x, _ float64) float64 {
	x2 := 2 * x
	q2 := x2 / d
	if firstHalf(d, x) {
		return 1 - d/math.Pow(x2+d, 1+q2)
	}
	return 1 - math.Pow(x2-d, q2-1)/d
}

func slgOI(d, x, _ float64) float64 {
	x2 := 2 * x
	q2 := x2 / d
	if firstHalf(d, x) {
		return d / math.Pow(x2+d, 1+q2)
	}
	return math.Pow(x2-d, q2-1) / d
}
