package ulid

import "context"

type generatorKeyType int

const generatorKey generatorKeyType = iota

// WithGenerator returns a cloned context.Context with the given Generator
// injected into it.
func WithGenerator(ctx context.Context, generator *Generator) context.Context {
	return context.WithValue(ctx, generatorKey, generator)
}

// FromContext returns the Generator that WithGenerator has injected into
// the context, or the default system generator if none was.
func FromContext(ctx context.Context) *Generator {
	if generator, ok := ctx.Value(generatorKey).(*Generator); ok {
		return generator
	}
	return defaultGenerator
}
