package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`ParseNameEmail with parenthesized email`, func(t *testing.T) {
		name, email := ParseNameEmail("Priya Sharma (priya.sharma@example.com)")
		require.Equal(t, "Priya Sharma", name)
		require.Equal(t, "priya.sharma@example.com", email)
	})

	t.Run(`ParseNameEmail without email`, func(t *testing.T) {
		name, email := ParseNameEmail("Priya Sharma")
		require.Equal(t, "Priya Sharma", name)
		require.Equal(t, "", email)
	})

	t.Run(`ParseNameEmail with extra spaces`, func(t *testing.T) {
		name, email := ParseNameEmail("  Rahul Verma   (rahul@corp.io) ")
		require.Equal(t, "Rahul Verma", name)
		require.Equal(t, "rahul@corp.io", email)
	})

	t.Run(`ParseNameEmail with non-email parentheses`, func(t *testing.T) {
		name, email := ParseNameEmail("Rahul Verma (Engineering)")
		require.Equal(t, "Rahul Verma (Engineering)", name)
		require.Equal(t, "", email)
	})
}
