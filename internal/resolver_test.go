package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theyemeni/client-app-sdk/pkg/environments"
)

func testCatalog(t *testing.T) *environments.Catalog {
	t.Helper()

	cat, err := environments.Parse([]byte(`
default: example.org
environments:
  - id: example.org
    origin: https://apps.example.org
  - id: example.net
    origin: https://apps.example.net
`))
	require.NoError(t, err)
	return cat
}

func TestResolve_None(t *testing.T) {
	t.Parallel()

	res, err := resolve(resolutionInput{mode: modeNone}, testCatalog(t), nil)
	require.NoError(t, err)
	assert.Equal(t, "https://apps.example.org", res.targetOrigin)
	assert.Equal(t, "example.org", res.environment)
}

func TestResolve_Environment(t *testing.T) {
	t.Parallel()

	cat := testCatalog(t)

	t.Run("known id", func(t *testing.T) {
		t.Parallel()

		res, err := resolve(resolutionInput{mode: modeEnvironment, value: "example.net"}, cat, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://apps.example.net", res.targetOrigin)
		assert.Equal(t, "example.net", res.environment)
	})

	t.Run("fuzzy origin hint", func(t *testing.T) {
		t.Parallel()

		res, err := resolve(resolutionInput{mode: modeEnvironment, value: "https://apps.example.net"}, cat, nil)
		require.NoError(t, err)
		assert.Equal(t, "example.net", res.environment)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(resolutionInput{mode: modeEnvironment, value: "not-a-real-env"}, cat, nil)
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("blank", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(resolutionInput{mode: modeEnvironment, value: "   "}, cat, nil)
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})
}

func TestResolve_Origin(t *testing.T) {
	t.Parallel()

	cat := testCatalog(t)

	t.Run("verbatim, no catalog validation", func(t *testing.T) {
		t.Parallel()

		res, err := resolve(resolutionInput{mode: modeOrigin, value: "https://example-host.test"}, cat, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://example-host.test", res.targetOrigin)
		assert.Empty(t, res.environment)
	})

	t.Run("blank", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(resolutionInput{mode: modeOrigin, value: ""}, cat, nil)
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})
}

func TestResolve_QueryParam(t *testing.T) {
	t.Parallel()

	cat := testCatalog(t)
	input := func(name string) resolutionInput {
		return resolutionInput{mode: modeQueryParam, value: name}
	}

	t.Run("present exactly once", func(t *testing.T) {
		t.Parallel()

		res, err := resolve(input("env"), cat, StaticLocation("env=example.net&other=x"))
		require.NoError(t, err)
		assert.Equal(t, "https://apps.example.net", res.targetOrigin)
		assert.Equal(t, "example.net", res.environment)
	})

	t.Run("fuzzy value", func(t *testing.T) {
		t.Parallel()

		res, err := resolve(input("env"), cat, StaticLocation("env=Example.ORG"))
		require.NoError(t, err)
		assert.Equal(t, "example.org", res.environment)
	})

	t.Run("blank param name", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(input("  "), cat, StaticLocation("env=example.org"))
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("param absent", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(input("env"), cat, StaticLocation("other=x"))
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("param repeated", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(input("env"), cat, StaticLocation("env=example.org&env=example.net"))
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
		assert.Contains(t, err.Error(), "ambiguous")
	})

	t.Run("unknown value", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(input("env"), cat, StaticLocation("env=not-a-real-env"))
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("no location", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(input("env"), cat, nil)
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("malformed query", func(t *testing.T) {
		t.Parallel()

		_, err := resolve(input("env"), cat, StaticLocation("env=%zz"))
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})
}
