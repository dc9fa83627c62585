package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandles(t *testing.T) {
	type owner struct{ name string }

	a := &owner{name: "line"}
	b := &owner{name: "arc"}

	idA := AcquireHandle(a)
	idB := AcquireHandle(b)
	require.NotEqual(t, idA, idB)

	got, ok := HandleOwner(idA)
	require.True(t, ok)
	require.Same(t, a, got)

	require.NoError(t, ReleaseHandle(idA))
	_, ok = HandleOwner(idA)
	require.False(t, ok)

	require.Error(t, ReleaseHandle(idA), "double release")

	got, ok = HandleOwner(idB)
	require.True(t, ok)
	require.Same(t, b, got)
	require.NoError(t, ReleaseHandle(idB))
}
