package list

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fpkit/pkg/fp"
)

type user struct {
	ID   int
	Name string
}

func TestZipAll2(t *testing.T) {
	t.Parallel()

	zipped := ZipAll2([]string{"a", "b", "c"}, []int{1})
	require.Len(t, zipped, 3)

	assert.Equal(t, fp.Some("a"), zipped[0].First())
	assert.Equal(t, fp.Some(1), zipped[0].Second())
	assert.True(t, zipped[1].Second().IsNone())
	assert.False(t, zipped[2].AllPresent())
}

func TestZipAll3(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	zipped := ZipAll3([]int{1, 2}, []string{"x", "y", "z"}, []*int{nilPtr})
	require.Len(t, zipped, 2)

	assert.True(t, zipped[0].Third().IsNone())
	assert.Equal(t, fp.Some("y"), zipped[1].Second())
	assert.True(t, zipped[1].Third().IsNone())
}

func TestSortByIndex(t *testing.T) {
	t.Parallel()

	users := []user{{ID: 1, Name: "ann"}, {ID: 2, Name: "bob"}, {ID: 3, Name: "cid"}}
	key := func(u user) int { return u.ID }

	sorted := SortByIndex(users, []int{3, 9, 1}, key)
	assert.Equal(t, []fp.Option[user]{fp.Some(users[2]), fp.None[user](), fp.Some(users[0])}, sorted)

	def := user{Name: "unknown"}
	assert.Equal(t, []user{users[1], def}, SortByIndexOr(users, []int{2, 4}, key, def))
}

func TestHead(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fp.Some(5), Head([]int{5, 6}))
	assert.True(t, Head([]int{}).IsNone())
	assert.True(t, Head[int](nil).IsNone())
}

func TestMapAllFilterAll(t *testing.T) {
	t.Parallel()

	upper := MapAll(strings.ToUpper)
	assert.Equal(t, []string{"A", "B"}, upper([]string{"a", "b"}))

	long := FilterAll(func(s string) bool { return len(s) > 1 })
	assert.Equal(t, []string{"bb", "ccc"}, long([]string{"a", "bb", "ccc"}))
}
