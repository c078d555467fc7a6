package pcm

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	defaultBitDepth = 16
	minBitDepth     = 2
	maxBitDepth     = 32
)

type config struct {
	bitDepth int
	dither   bool
	shaping  bool
	rng      *rand.Rand
}

// Option configures a [Quantizer].
type Option func(*config) error

// WithBitDepth sets the target bit depth (2-32, default 16).
func WithBitDepth(bits int) Option {
	return func(cfg *config) error {
		if bits < minBitDepth || bits > maxBitDepth {
			return fmt.Errorf("pcm: bit depth must be in [%d, %d]: %d", minBitDepth, maxBitDepth, bits)
		}
		cfg.bitDepth = bits
		return nil
	}
}

// WithDither enables or disables triangular dither (default enabled).
func WithDither(enabled bool) Option {
	return func(cfg *config) error {
		cfg.dither = enabled
		return nil
	}
}

// WithNoiseShaping feeds each quantization error back into the next
// sample, moving the error spectrum towards Nyquist.
func WithNoiseShaping() Option {
	return func(cfg *config) error {
		cfg.shaping = true
		return nil
	}
}

// WithRNG sets the dither noise source, for reproducible output.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		if rng == nil {
			return fmt.Errorf("pcm: rng must not be nil")
		}
		cfg.rng = rng
		return nil
	}
}

// Quantizer maps samples in [-1, 1] onto integers in
// [-(2^(bits-1)-1), 2^(bits-1)-1]. It is not safe for concurrent use.
type Quantizer struct {
	bitDepth int
	dither   bool
	shaping  bool
	rng      *rand.Rand

	scale float64
	limit int
	err   float64
}

// NewQuantizer creates a quantizer. The default is 16 bit with triangular
// dither and no noise shaping.
func NewQuantizer(opts ...Option) (*Quantizer, error) {
	cfg := config{bitDepth: defaultBitDepth, dither: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	limit := int(math.Exp2(float64(cfg.bitDepth-1))) - 1
	return &Quantizer{
		bitDepth: cfg.bitDepth,
		dither:   cfg.dither,
		shaping:  cfg.shaping,
		rng:      cfg.rng,
		scale:    float64(limit),
		limit:    limit,
	}, nil
}

// BitDepth returns the target bit depth.
func (q *Quantizer) BitDepth() int { return q.bitDepth }

// Max returns the largest output value.
func (q *Quantizer) Max() int { return q.limit }

// Reset clears the noise-shaping history.
func (q *Quantizer) Reset() { q.err = 0 }

// Quantize converts one sample. NaN quantizes as silence; out-of-range
// input saturates.
func (q *Quantizer) Quantize(x float64) int {
	if math.IsNaN(x) {
		x = 0
	}
	target := x * q.scale
	if q.shaping {
		target -= q.err
	}

	v := target
	if q.dither {
		v += q.rng.Float64() - q.rng.Float64()
	}
	r := int(math.Round(math.Max(-q.scale, math.Min(q.scale, v))))
	if q.shaping {
		q.err = float64(r) - target
	}
	return r
}

// QuantizeBlock converts min(len(dst), len(src)) samples.
func (q *Quantizer) QuantizeBlock(dst []int, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = q.Quantize(src[i])
	}
}

// BytesPerSample returns the packed sample size.
func (q *Quantizer) BytesPerSample() int { return (q.bitDepth + 7) / 8 }

// PutLE quantizes src into dst as packed little-endian two's complement
// samples and returns the number of bytes written. It stops at the first
// sample that does not fit.
func (q *Quantizer) PutLE(dst []byte, src []float64) int {
	size := q.BytesPerSample()
	n := 0
	for _, x := range src {
		if n+size > len(dst) {
			break
		}
		v := uint32(int32(q.Quantize(x)))
		for b := 0; b < size; b++ {
			dst[n+b] = byte(v >> (8 * b))
		}
		n += size
	}
	return n
}
