package valid

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fpkit/pkg/fp"
)

func positive(n int) error {
	if n <= 0 {
		return errors.New("not positive")
	}
	return nil
}

func even(n int) error {
	if n%2 != 0 {
		return errors.New("odd")
	}
	return nil
}

func TestChain_FromAndResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fp.Valid[string](7), From[string](7).Result())
}

func TestChain_ThenSuccessPath(t *testing.T) {
	t.Parallel()

	double := Step(func(n int) (int, error) { return n * 2, nil }, "double", nil)
	out := From[string](3).Then(double).Then(double).Result()

	assert.Equal(t, fp.Valid[string](12), out)
}

func TestChain_ShortCircuitOnInvalid(t *testing.T) {
	t.Parallel()

	called := false
	out := Start(fp.Invalid[string, int]("boom")).
		Then(func(n int) fp.Validation[string, int] {
			called = true
			return fp.Valid[string](n + 1)
		}).
		Result()

	assert.Equal(t, fp.Invalid[string, int]("boom"), out)
	assert.False(t, called)
}

func TestChain_CheckStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	out := From[string](-3).
		Check(positive, "not positive").
		Check(even, "odd").
		Result()

	assert.Equal(t, fp.Invalid[string, int]("not positive"), out)
}

func TestChain_ObserveDoesNotBlock(t *testing.T) {
	t.Parallel()

	var observed []int
	out := From[string](3).
		Observe(even, func(n int, _ error) { observed = append(observed, n) }).
		Check(positive, "not positive").
		Result()

	assert.Equal(t, fp.Valid[string](3), out)
	assert.Equal(t, []int{3}, observed)
}

func TestChain_Or(t *testing.T) {
	t.Parallel()

	bad := Start(fp.Invalid[string, int]("bad"))
	worse := Start(fp.Invalid[string, int]("worse"))
	good := From[string](1)

	assert.Equal(t, good, bad.Or(worse, good))
	assert.Equal(t, bad, bad.Or(worse))
	assert.Equal(t, good, good.Or(bad))
}

func TestChain_And(t *testing.T) {
	t.Parallel()

	bad := Start(fp.Invalid[string, int]("bad"))
	one := From[string](1)
	two := From[string](2)

	assert.Equal(t, two, one.And(two))
	assert.Equal(t, bad, one.And(bad, two))
	assert.Equal(t, bad, bad.And(one))
}

func TestChain_Ensure(t *testing.T) {
	t.Parallel()

	var gotValid []int
	var gotInvalid []string

	From[string](5).Ensure(func(n int) { gotValid = append(gotValid, n) }, nil)
	Start(fp.Invalid[string, int]("x")).Ensure(nil, func(e string) { gotInvalid = append(gotInvalid, e) })
	Start(fp.Invalid[string, int]("y")).Ensure(func(n int) { gotValid = append(gotValid, n) }, nil)

	assert.Equal(t, []int{5}, gotValid)
	assert.Equal(t, []string{"x"}, gotInvalid)
}

func TestChain_Finally(t *testing.T) {
	t.Parallel()

	onValid := func(n int) int { return n * 10 }
	onInvalid := func(string) int { return -1 }

	assert.Equal(t, 20, From[string](2).Finally(onValid, onInvalid))
	assert.Equal(t, -1, Start(fp.Invalid[string, int]("e")).Finally(onValid, onInvalid))
}

func TestNextAndCollapse(t *testing.T) {
	t.Parallel()

	parse := Step(strconv.Atoi, "nan", nil)
	format := func(n int) string { return "n=" + strconv.Itoa(n) }
	fail := func(e string) string { return "error: " + e }

	ok := Next(From[string]("41"), parse).Check(positive, "not positive")
	require.True(t, ok.Result().IsValid())
	assert.Equal(t, "n=41", Collapse(ok, format, fail))

	bad := Next(From[string]("x"), parse)
	assert.Equal(t, "error: nan", Collapse(bad, format, fail))
}
