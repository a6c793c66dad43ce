package shortener

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
)

// DefaultCodeLength is the length of randomly generated codes and the
// minimum length sequence-derived codes are padded to.
const DefaultCodeLength = 6

// maxAttempts bounds how many candidate codes either mode tries before
// giving up. Running out signals a systemic problem (alphabet or length
// too small for the number of stored links), not a transient one.
const maxAttempts = 5

// Generator produces short codes that do not collide with codes already
// present in the link store.
type Generator struct {
	links  LinkStore
	seq    SequenceAllocator
	length int
}

func NewGenerator(links LinkStore, seq SequenceAllocator, length int) *Generator {
	if length <= 0 {
		length = DefaultCodeLength
	}
	return &Generator{links: links, seq: seq, length: length}
}

// generate runs the shared attempt loop: produce a candidate, check the
// store, retry. Both generation modes funnel through here so the retry
// policy lives in one place.
func (g *Generator) generate(ctx context.Context, candidate func(context.Context) (string, error)) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := candidate(ctx)
		if err != nil {
			return "", err
		}

		exists, err := g.links.Exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", NewError(KindGenerationExhausted, "failed to generate a unique short code")
}

// NextSequential derives a code from the next sequence value. Sequence
// values never repeat, so collisions are only possible against
// pre-existing custom codes; each retry allocates a fresh value.
func (g *Generator) NextSequential(ctx context.Context) (string, error) {
	return g.generate(ctx, func(ctx context.Context) (string, error) {
		value, err := g.seq.Next(ctx)
		if err != nil {
			return "", err
		}
		return g.pad(Encode(value)), nil
	})
}

// NextRandom draws codes uniformly from the alphabet using a
// cryptographically secure source.
func (g *Generator) NextRandom(ctx context.Context) (string, error) {
	return g.generate(ctx, func(context.Context) (string, error) {
		return randomCode(g.length)
	})
}

// pad left-fills short encodings with the zero digit so issued codes have
// a uniform minimum length. Leading zero digits do not change the decoded
// value.
func (g *Generator) pad(code string) string {
	if len(code) >= g.length {
		return code
	}
	return strings.Repeat(string(alphabet[0]), g.length-len(code)) + code
}

func randomCode(length int) (string, error) {
	max := big.NewInt(base)

	code := make([]byte, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
