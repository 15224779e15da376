package rut

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/dmitrymomot/rutkit/pkg/logger"
	"github.com/dmitrymomot/rutkit/pkg/sanitizer"
)

// Kind selects the body range a Generator draws from.
type Kind uint8

const (
	// KindPerson draws bodies from [PersonMin, CompanyMin).
	KindPerson Kind = iota
	// KindCompany draws bodies from [CompanyMin, CompanyMax).
	KindCompany
)

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// AsPerson makes the generator produce person RUTs. This is the default.
func AsPerson() GeneratorOption {
	return func(g *Generator) { g.kind = KindPerson }
}

// AsCompany makes the generator produce company RUTs.
func AsCompany() GeneratorOption {
	return func(g *Generator) { g.kind = KindCompany }
}

// WithoutDuplicates makes every Generate call return distinct RUTs.
func WithoutDuplicates() GeneratorOption {
	return func(g *Generator) { g.unique = true }
}

// WithDuplicates allows repeated RUTs in a Generate result. This is the default.
func WithDuplicates() GeneratorOption {
	return func(g *Generator) { g.unique = false }
}

// WithSeed makes the generator deterministic.
func WithSeed(seed1, seed2 uint64) GeneratorOption {
	return func(g *Generator) { g.rnd = rand.New(rand.NewPCG(seed1, seed2)) }
}

// WithLogger sets the logger used for top-up diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// Generator produces random, valid RUTs for fixtures and tests.
// It is safe for concurrent use.
type Generator struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	kind   Kind
	unique bool
	logger *slog.Logger
	// seen tracks bodies handed out by Next within this generator's session
	seen map[int]struct{}
}

// NewGenerator returns a generator for person RUTs that allows duplicates,
// unless configured otherwise.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rnd:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		kind:   KindPerson,
		logger: logger.Discard(),
		seen:   make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(logger.Component("rut.generator"))
	return g
}

// Generate returns n random valid RUTs; n below 1 is treated as 1.
//
// Without duplicates the batch is deduplicated and topped up with fresh draws
// until n distinct values exist. ErrRangeExhausted is returned when n exceeds
// the size of the body range.
func (g *Generator) Generate(n int) ([]RUT, error) {
	nums, err := g.numbers(n)
	if err != nil {
		return nil, err
	}
	return sanitizer.TransformSlice(nums, Rectify), nil
}

// GenerateStrings works like Generate but renders every RUT with f.
func (g *Generator) GenerateStrings(n int, f Format) ([]string, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, f)
	}
	nums, err := g.numbers(n)
	if err != nil {
		return nil, err
	}
	return sanitizer.TransformSlice(nums, func(num int) string {
		return Rectify(num).Format(f)
	}), nil
}

// One returns a single random valid RUT.
func (g *Generator) One() RUT {
	g.mu.Lock()
	defer g.mu.Unlock()
	lo, hi := g.bounds()
	return Rectify(g.draw(1, lo, hi)[0])
}

// Next returns a random valid RUT that this generator has not returned from
// Next before. ErrRangeExhausted is returned once every body has been used.
func (g *Generator) Next() (RUT, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	lo, hi := g.bounds()
	if len(g.seen) >= hi-lo {
		return RUT{}, fmt.Errorf("%w: all %d bodies already used", ErrRangeExhausted, hi-lo)
	}
	for {
		num := g.draw(1, lo, hi)[0]
		if _, used := g.seen[num]; used {
			continue
		}
		g.seen[num] = struct{}{}
		return Rectify(num), nil
	}
}

// Reset forgets the bodies handed out by Next.
func (g *Generator) Reset() {
	g.mu.Lock()
	g.seen = make(map[int]struct{})
	g.mu.Unlock()
}

func (g *Generator) numbers(n int) ([]int, error) {
	n = max(n, 1)

	g.mu.Lock()
	defer g.mu.Unlock()

	lo, hi := g.bounds()
	if g.unique && n > hi-lo {
		return nil, fmt.Errorf("%w: %d unique ruts requested, range holds %d", ErrRangeExhausted, n, hi-lo)
	}

	nums := g.draw(n, lo, hi)
	if !g.unique {
		return nums, nil
	}

	nums = sanitizer.Deduplicate(nums)
	for round := 1; len(nums) < n; round++ {
		missing := n - len(nums)
		g.logger.Debug("topping up duplicated ruts",
			logger.Count("round", round),
			logger.Count("missing", missing),
			logger.Count("requested", n),
		)
		nums = sanitizer.Deduplicate(append(nums, g.draw(missing, lo, hi)...))
	}
	return nums, nil
}

func (g *Generator) bounds() (int, int) {
	if g.kind == KindCompany {
		return CompanyMin, CompanyMax
	}
	return PersonMin, CompanyMin
}

// draw must be called with g.mu held.
func (g *Generator) draw(n, lo, hi int) []int {
	nums := make([]int, n)
	for i := range nums {
		nums[i] = lo + g.rnd.IntN(hi-lo)
	}
	return nums
}
