package fp

// Getter is implemented by values that may or may not hold a T.
type Getter[T any] interface {
	// Get returns the held value and true, or the zero T and false
	Get() (T, bool)
}

var (
	_ Getter[int] = Option[int]{}
	_ Getter[int] = Validation[string, int]{}
)

// FromGetter converts any Getter into an Option.
func FromGetter[T any](g Getter[T]) Option[T] {
	if v, ok := g.Get(); ok {
		return Some(v)
	}
	return None[T]()
}
