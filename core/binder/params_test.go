package binder_test

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/junction/core/binder"
	"github.com/dmitrymomot/junction/core/route"
)

func testParams() *route.Params {
	return &route.Params{
		Host: map[string]string{"tenant": "acme"},
		Path: map[string]string{"id": "42", "slug": "red-widget"},
		Query: url.Values{
			"page": {"3"},
			"tag":  {"go", "web"},
			"bad":  {"abc"},
		},
	}
}

func TestFromPath(t *testing.T) {
	t.Parallel()

	t.Run("present value is bound", func(t *testing.T) {
		t.Parallel()

		p := binder.FromPath(testParams(), "id", binder.Int)
		require.NoError(t, p.Err)
		assert.Equal(t, "id", p.Name)
		assert.Equal(t, 42, p.Value)
	})

	t.Run("absent value fails with namespace and name", func(t *testing.T) {
		t.Parallel()

		p := binder.FromPath(testParams(), "missing", binder.Int)
		require.Error(t, p.Err)
		assert.ErrorIs(t, p.Err, binder.ErrMissingParam)
		assert.Equal(t, "missing path parameter: missing", p.Err.Error())
	})

	t.Run("unparsable value reports binder error", func(t *testing.T) {
		t.Parallel()

		p := binder.FromPath(testParams(), "slug", binder.Int)
		require.Error(t, p.Err)
		assert.Contains(t, p.Err.Error(), `cannot parse "red-widget" as int`)
	})
}

func TestFromPathOr(t *testing.T) {
	t.Parallel()

	t.Run("default covers absence", func(t *testing.T) {
		t.Parallel()

		p := binder.FromPathOr(testParams(), "missing", 7, binder.Int)
		require.NoError(t, p.Err)
		assert.Equal(t, 7, p.Value)
	})

	t.Run("present value wins over default", func(t *testing.T) {
		t.Parallel()

		p := binder.FromPathOr(testParams(), "id", 7, binder.Int)
		require.NoError(t, p.Err)
		assert.Equal(t, 42, p.Value)
	})
}

func TestFromHost(t *testing.T) {
	t.Parallel()

	p := binder.FromHost(testParams(), "tenant", binder.String)
	require.NoError(t, p.Err)
	assert.Equal(t, "acme", p.Value)

	missing := binder.FromHost(testParams(), "region", binder.String)
	require.Error(t, missing.Err)
	assert.Equal(t, "missing host parameter: region", missing.Err.Error())

	def := binder.FromHostOr(testParams(), "region", "eu", binder.String)
	require.NoError(t, def.Err)
	assert.Equal(t, "eu", def.Value)
}

func TestFromQuery(t *testing.T) {
	t.Parallel()

	t.Run("first occurrence", func(t *testing.T) {
		t.Parallel()

		p := binder.FromQuery(testParams(), "page", binder.First(binder.Int))
		require.NoError(t, p.Err)
		assert.Equal(t, 3, p.Value)
	})

	t.Run("every occurrence", func(t *testing.T) {
		t.Parallel()

		p := binder.FromQuery(testParams(), "tag", binder.Each(binder.String))
		require.NoError(t, p.Err)
		assert.Equal(t, []string{"go", "web"}, p.Value)
	})

	t.Run("absent key fails", func(t *testing.T) {
		t.Parallel()

		p := binder.FromQuery(testParams(), "nope", binder.First(binder.Int))
		require.Error(t, p.Err)
		assert.ErrorIs(t, p.Err, binder.ErrMissingParam)
		assert.Equal(t, "missing query parameter: nope", p.Err.Error())
	})

	t.Run("default applies only when absent", func(t *testing.T) {
		t.Parallel()

		p := binder.FromQueryOr(testParams(), "nope", 1, binder.First(binder.Int))
		require.NoError(t, p.Err)
		assert.Equal(t, 1, p.Value)

		// Present but unparsable: the parse error surfaces, not the default.
		bad := binder.FromQueryOr(testParams(), "bad", 1, binder.First(binder.Int))
		require.Error(t, bad.Err)
		assert.Contains(t, bad.Err.Error(), `cannot parse "abc" as int`)
	})
}

func TestTypeBinders(t *testing.T) {
	t.Parallel()

	t.Run("uuid", func(t *testing.T) {
		t.Parallel()

		want := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		v, err := binder.UUID(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, v)

		_, err = binder.UUID("not-a-uuid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot parse")
	})

	t.Run("bool", func(t *testing.T) {
		t.Parallel()

		v, err := binder.Bool("true")
		require.NoError(t, err)
		assert.True(t, v)

		_, err = binder.Bool("yolo")
		assert.Error(t, err)
	})

	t.Run("time with layout", func(t *testing.T) {
		t.Parallel()

		bind := binder.Time("2006-01-02")
		v, err := bind("2026-08-30")
		require.NoError(t, err)
		assert.Equal(t, 2026, v.Year())

		_, err = bind("30/08/2026")
		assert.Error(t, err)
	})

	t.Run("numeric", func(t *testing.T) {
		t.Parallel()

		i64, err := binder.Int64("-9000000000")
		require.NoError(t, err)
		assert.Equal(t, int64(-9000000000), i64)

		u, err := binder.Uint("7")
		require.NoError(t, err)
		assert.Equal(t, uint(7), u)

		_, err = binder.Uint("-1")
		assert.Error(t, err)

		f, err := binder.Float64("3.5")
		require.NoError(t, err)
		assert.Equal(t, 3.5, f)
	})

	t.Run("each stops on first bad value", func(t *testing.T) {
		t.Parallel()

		_, err := binder.Each(binder.Int)([]string{"1", "x", "3"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `cannot parse "x" as int`)
	})
}
