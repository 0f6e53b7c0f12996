package vector

type config[T any] struct {
	size     int
	capacity int
	fill     *T
}

// Option configures the initial length, contents, and capacity of a Vector.
type Option[T any] func(*config[T])

// WithSize sets the initial length to n; the elements are zero-valued.
func WithSize[T any](n int) Option[T] {
	return func(cfg *config[T]) {
		if n > 0 {
			cfg.size = n
		}
	}
}

// WithFill sets the initial length to n with every element set to value.
func WithFill[T any](n int, value T) Option[T] {
	return func(cfg *config[T]) {
		if n > 0 {
			cfg.size = n
		}
		cfg.fill = &value
	}
}

// WithCapacity pre-allocates storage for at least n elements without
// creating any. On its own it yields an empty vector with capacity n.
func WithCapacity[T any](n int) Option[T] {
	return func(cfg *config[T]) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

func applyOptions[T any](opts []Option[T]) config[T] {
	var cfg config[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
