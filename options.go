package gspmi

// Support is the min_support configuration: either an absolute
// sequence count or a fraction of the database size in [0,1]. Go has
// no int/float union, so unlike the reference implementation's
// Union[float, int] this is spelled as an explicit constructor instead
// of relying on the caller's literal's Python type.
type Support struct {
	abs    int
	frac   float64
	isFrac bool
}

// SupportCount is an absolute minimum support threshold.
func SupportCount(n int) Support { return Support{abs: n} }

// SupportFraction is a minimum support expressed as a fraction of the
// number of input sequences; it is rounded up (ceil) against the
// database size when Mine runs.
func SupportFraction(f float64) Support { return Support{frac: f, isFrac: true} }

// resolve converts a Support into an absolute integer threshold given
// the number of input sequences, validating fractional bounds.
func (s Support) resolve(n int) (int, error) {
	if !s.isFrac {
		return s.abs, nil
	}
	if s.frac < 0 || s.frac > 1 {
		return 0, configErrorf("min_support fraction %v out of range [0,1]", s.frac)
	}
	return ceilFrac(s.frac, n), nil
}

func ceilFrac(frac float64, n int) int {
	v := frac * float64(n)
	iv := int(v)
	if float64(iv) < v {
		iv++
	}
	return iv
}

// Options bundles the configuration parameters of a Mine call.
type Options struct {
	MinSupport Support

	MinInterval int // lower bound on raw gap between consecutive pairs; default 0
	MaxInterval int // upper bound on raw gap; default Unbounded

	MinWholeInterval int // lower bound on quantized whole-pattern span; default 0
	MaxWholeInterval int // upper bound; default Unbounded

	Parallel bool // enable seed-level fan-out (C8)
	NWorkers int  // worker count when Parallel; 0 means runtime.NumCPU()
}

// normalizeBounds fills in defaults and validates the interval/whole-
// interval bounds, returning a ConfigError for any inconsistency.
func (o *Options) normalizeBounds() error {
	if o.MaxInterval == 0 {
		o.MaxInterval = Unbounded
	}
	if o.MaxWholeInterval == 0 {
		o.MaxWholeInterval = Unbounded
	}
	if o.MinInterval < 0 {
		return configErrorf("min_interval must be non-negative, got %d", o.MinInterval)
	}
	if o.MinInterval > o.MaxInterval {
		return configErrorf("min_interval %d exceeds max_interval %d", o.MinInterval, o.MaxInterval)
	}
	if o.MinWholeInterval < 0 {
		return configErrorf("min_whole_interval must be non-negative, got %d", o.MinWholeInterval)
	}
	if o.MinWholeInterval > o.MaxWholeInterval {
		return configErrorf("min_whole_interval %d exceeds max_whole_interval %d", o.MinWholeInterval, o.MaxWholeInterval)
	}
	if o.Parallel && o.NWorkers < 0 {
		return configErrorf("n_workers must not be negative, got %d", o.NWorkers)
	}
	return nil
}
