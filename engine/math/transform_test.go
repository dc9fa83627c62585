package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransformDefaults(t *testing.T) {
	tr := NewTransform()

	require.Equal(t, NewVec3Zero(), tr.Position())
	require.Equal(t, NewQuatIdentity(), tr.Rotation())
	require.Equal(t, NewVec3One(), tr.Scale())
	require.True(t, tr.Local().Compare(NewMat4Identity(), 1e-12))
	require.True(t, tr.World().Compare(NewMat4Identity(), 1e-12))
}

func TestTransformLocal(t *testing.T) {
	t.Run("MatchesCompose", func(t *testing.T) {
		position := NewVec3(1, 2, 3)
		rotation := NewQuatFromAxisAngle(NewVec3(0, 1, 0), 0.8, false)
		scale := NewVec3(2, 2, 2)

		tr := NewTransformFromPositionRotationScale(position, rotation, scale)
		require.True(t, tr.Local().Compare(NewMat4Compose(position, rotation, scale), 1e-12))
	})

	t.Run("RebuildsAfterMutation", func(t *testing.T) {
		tr := NewTransformFromPosition(NewVec3(1, 0, 0))
		first := tr.Local()

		tr.SetPosition(NewVec3(5, 0, 0))
		second := tr.Local()

		require.False(t, first.Compare(second, 1e-12))
		require.Equal(t, NewVec3(5, 0, 0), second.Position())
	})

	t.Run("MutatorsAccumulate", func(t *testing.T) {
		tr := NewTransform()
		tr.Translate(NewVec3(1, 0, 0))
		tr.Translate(NewVec3(0, 1, 0))
		require.Equal(t, NewVec3(1, 1, 0), tr.Position())

		quarter := NewQuatFromAxisAngle(NewVec3(0, 0, 1), m.Pi/4, false)
		tr.Rotate(quarter)
		tr.Rotate(quarter)
		half := NewQuatFromAxisAngle(NewVec3(0, 0, 1), m.Pi/2, false)
		require.True(t, tr.Rotation().Compare(half, 1e-12))

		tr.ScaleBy(NewVec3(2, 2, 2))
		tr.ScaleBy(NewVec3(3, 1, 1))
		require.Equal(t, NewVec3(6, 2, 2), tr.Scale())
	})

	t.Run("NilTransformIsIdentity", func(t *testing.T) {
		var tr *Transform
		require.Equal(t, NewMat4Identity(), tr.Local())
		require.Equal(t, NewMat4Identity(), tr.World())
	})
}

func TestTransformWorld(t *testing.T) {
	t.Run("ChainsThroughParents", func(t *testing.T) {
		parent := NewTransformFromPosition(NewVec3(1, 0, 0))
		child := NewTransformFromPosition(NewVec3(0, 1, 0))
		child.SetParent(parent)

		require.True(t, child.World().Position().Compare(NewVec3(1, 1, 0), 1e-12))
	})

	t.Run("ParentRotationCarriesTheChild", func(t *testing.T) {
		parent := NewTransformFromRotation(NewQuatFromAxisAngle(NewVec3(0, 0, 1), m.Pi/2, false))
		child := NewTransformFromPosition(NewVec3(1, 0, 0))
		child.SetParent(parent)

		// The child sits one unit along parent x, which now points along
		// world y.
		require.True(t, child.World().Position().Compare(NewVec3(0, 1, 0), 1e-12))
	})

	t.Run("ThreeLevels", func(t *testing.T) {
		a := NewTransformFromPosition(NewVec3(1, 0, 0))
		b := NewTransformFromPosition(NewVec3(0, 2, 0))
		c := NewTransformFromPosition(NewVec3(0, 0, 3))
		b.SetParent(a)
		c.SetParent(b)

		require.True(t, c.World().Position().Compare(NewVec3(1, 2, 3), 1e-12))
	})

	t.Run("ParentMutationIsVisible", func(t *testing.T) {
		parent := NewTransformFromPosition(NewVec3(1, 0, 0))
		child := NewTransform()
		child.SetParent(parent)
		require.True(t, child.World().Position().Compare(NewVec3(1, 0, 0), 1e-12))

		parent.SetPosition(NewVec3(9, 0, 0))
		require.True(t, child.World().Position().Compare(NewVec3(9, 0, 0), 1e-12))
	})
}

func TestTransformOnChange(t *testing.T) {
	tr := NewTransform()
	fired := 0
	tr.OnChange(func() { fired++ })

	tr.SetPosition(NewVec3(1, 0, 0))
	tr.Translate(NewVec3(1, 0, 0))
	tr.SetRotation(NewQuatIdentity())
	tr.SetScale(NewVec3One())
	tr.TranslateRotate(NewVec3(1, 0, 0), NewQuatIdentity())
	require.Equal(t, 5, fired)

	// Reading does not fire.
	_ = tr.Local()
	_ = tr.World()
	require.Equal(t, 5, fired)

	tr.OnChange(nil)
	tr.SetPosition(NewVec3Zero())
	require.Equal(t, 5, fired)
}
