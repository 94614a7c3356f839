// Package list adapts slices to the fp and tuple types.
package list

import (
	"github.com/samber/lo"

	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/tuple"
)

// ZipAll2 pairs every element of as with the element of bs at the same
// index. The result has len(as) entries; a missing or nil element is an
// empty slot.
func ZipAll2[A, B any](as []A, bs []B) []tuple.Safe2[A, B] {
	return lo.Map(as, func(a A, i int) tuple.Safe2[A, B] {
		return tuple.Of2(fp.OfNillable(a), at(bs, i))
	})
}

func ZipAll3[A, B, C any](as []A, bs []B, cs []C) []tuple.Safe3[A, B, C] {
	return lo.Map(as, func(a A, i int) tuple.Safe3[A, B, C] {
		return tuple.Of3(fp.OfNillable(a), at(bs, i), at(cs, i))
	})
}

func at[T any](xs []T, i int) fp.Option[T] {
	if i < 0 || i >= len(xs) {
		return fp.None[T]()
	}
	return fp.OfNillable(xs[i])
}

// SortByIndex orders items to follow index, matching on key. Every entry of
// index yields one slot, empty when no item has that key.
func SortByIndex[T any, K comparable](items []T, index []K, key func(T) K) []fp.Option[T] {
	return lo.Map(index, func(id K, _ int) fp.Option[T] {
		found, ok := lo.Find(items, func(item T) bool { return key(item) == id })
		if !ok {
			return fp.None[T]()
		}
		return fp.Some(found)
	})
}

// SortByIndexOr is SortByIndex with def in place of missing items.
func SortByIndexOr[T any, K comparable](items []T, index []K, key func(T) K, def T) []T {
	return lo.Map(SortByIndex(items, index, key), func(o fp.Option[T], _ int) T {
		return o.OrElse(def)
	})
}

func Head[T any](xs []T) fp.Option[T] {
	return at(xs, 0)
}

func MapAll[T, R any](f func(T) R) func([]T) []R {
	return func(xs []T) []R {
		return lo.Map(xs, func(x T, _ int) R { return f(x) })
	}
}

func FilterAll[T any](keep func(T) bool) func([]T) []T {
	return func(xs []T) []T {
		return lo.Filter(xs, func(x T, _ int) bool { return keep(x) })
	}
}
