package bitops

import "sync/atomic"

// Counter Wraps another provider and counts every call, to estimate the cost of
// a hash in environments where each primitive is a separately metered operation.
//
// Safe to share between goroutines.
type Counter struct {
	Inner Operations

	ch, maj                  atomic.Uint64
	bigSigma0, bigSigma1     atomic.Uint64
	smallSigma0, smallSigma1 atomic.Uint64
}

// NewCounter counts calls made through to inner, or Default if inner is nil.
// A zero Counter also forwards to Default.
func NewCounter(inner Operations) *Counter {
	return &Counter{Inner: Or(inner)}
}

// Counts A snapshot of Counter values.
type Counts struct {
	Ch, Maj                  uint64
	BigSigma0, BigSigma1     uint64
	SmallSigma0, SmallSigma1 uint64
}

// Total sum of all calls.
func (c Counts) Total() uint64 {
	return c.Ch + c.Maj + c.BigSigma0 + c.BigSigma1 + c.SmallSigma0 + c.SmallSigma1
}

func (c *Counter) Counts() Counts {
	return Counts{
		Ch:          c.ch.Load(),
		Maj:         c.maj.Load(),
		BigSigma0:   c.bigSigma0.Load(),
		BigSigma1:   c.bigSigma1.Load(),
		SmallSigma0: c.smallSigma0.Load(),
		SmallSigma1: c.smallSigma1.Load(),
	}
}

func (c *Counter) Reset() {
	c.ch.Store(0)
	c.maj.Store(0)
	c.bigSigma0.Store(0)
	c.bigSigma1.Store(0)
	c.smallSigma0.Store(0)
	c.smallSigma1.Store(0)
}

// Report calls f once per non-zero counter with the value averaged over N operations.
// Meant for testing.B ReportMetric.
func (c *Counter) Report(N int, f func(v float64, metric string)) {
	report := func(v uint64, metric string) {
		if v == 0 {
			return
		}
		if v%uint64(N) == 0 {
			f(float64(v/uint64(N)), metric+"/op")
			return
		}
		f(float64(v)/float64(N), metric+"/op")
	}

	counts := c.Counts()
	report(counts.Ch, "Ch")
	report(counts.Maj, "Maj")
	report(counts.BigSigma0, "Sigma0")
	report(counts.BigSigma1, "Sigma1")
	report(counts.SmallSigma0, "sigma0")
	report(counts.SmallSigma1, "sigma1")
}

func (c *Counter) Ch(x, y, z uint32) uint32 {
	c.ch.Add(1)
	return Or(c.Inner).Ch(x, y, z)
}

func (c *Counter) Maj(x, y, z uint32) uint32 {
	c.maj.Add(1)
	return Or(c.Inner).Maj(x, y, z)
}

func (c *Counter) BigSigma0(x uint32) uint32 {
	c.bigSigma0.Add(1)
	return Or(c.Inner).BigSigma0(x)
}

func (c *Counter) BigSigma1(x uint32) uint32 {
	c.bigSigma1.Add(1)
	return Or(c.Inner).BigSigma1(x)
}

func (c *Counter) SmallSigma0(x uint32) uint32 {
	c.smallSigma0.Add(1)
	return Or(c.Inner).SmallSigma0(x)
}

func (c *Counter) SmallSigma1(x uint32) uint32 {
	c.smallSigma1.Add(1)
	return Or(c.Inner).SmallSigma1(x)
}

var _ Operations = (*Counter)(nil)
