package math

import (
	"errors"
	m "math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astaben/tracery/engine/core"
)

func TestMat4Construction(t *testing.T) {
	t.Run("ZeroValueIsNotIdentity", func(t *testing.T) {
		require.NotEqual(t, NewMat4Identity(), Mat4{})
	})

	t.Run("FromSlice", func(t *testing.T) {
		mat, err := NewMat4FromSlice(NewMat4Identity().Slice())
		require.NoError(t, err)
		require.Equal(t, NewMat4Identity(), mat)

		_, err = NewMat4FromSlice([]float64{1, 2, 3})
		require.Error(t, err)
		require.True(t, errors.Is(err, core.ErrIllegalParameters))
	})

	t.Run("At", func(t *testing.T) {
		mat := NewMat4Translation(NewVec3(1, 2, 3))
		v, err := mat.At(0, 3)
		require.NoError(t, err)
		require.Equal(t, 1.0, v)

		_, err = mat.At(4, 0)
		require.Error(t, err)
		require.True(t, errors.Is(err, core.ErrIndexOutOfRange))
	})
}

func TestMat4Mul(t *testing.T) {
	translate := NewMat4Translation(NewVec3(1, 0, 0))
	rotate := NewMat4RotationZ(m.Pi / 2)
	v := NewVec3(1, 0, 0)

	t.Run("AppliesRightOperandFirst", func(t *testing.T) {
		got := v.Transform(translate.Mul(rotate))
		want := v.Transform(rotate).Transform(translate)
		require.True(t, got.Compare(want, 1e-12))
		require.True(t, got.Compare(NewVec3(1, 1, 0), 1e-12))
	})

	t.Run("PremulSwapsOperands", func(t *testing.T) {
		require.Equal(t, rotate.Mul(translate), translate.Premul(rotate))
	})

	t.Run("IdentityIsNeutral", func(t *testing.T) {
		mat := NewMat4Compose(NewVec3(1, 2, 3), NewQuatFromAxisAngle(NewVec3Up(), 0.4, false), NewVec3(2, 2, 2))
		require.Equal(t, mat, mat.Mul(NewMat4Identity()))
		require.Equal(t, mat, NewMat4Identity().Mul(mat))
	})
}

func TestMat4DeterminantAndInverse(t *testing.T) {
	t.Run("DeterminantOfScale", func(t *testing.T) {
		require.InDelta(t, 24.0, NewMat4Scale(NewVec3(2, 3, 4)).Determinant(), 1e-12)
	})

	t.Run("InverseUndoesTransform", func(t *testing.T) {
		mat := NewMat4Compose(
			NewVec3(4, -2, 7),
			NewQuatFromAxisAngle(NewVec3(1, 2, 3).Normalize(), 1.1, false),
			NewVec3(2, 3, 0.5),
		)
		require.True(t, mat.Mul(mat.Inverse()).Compare(NewMat4Identity(), 1e-9))
		require.True(t, mat.Inverse().Mul(mat).Compare(NewMat4Identity(), 1e-9))
	})

	t.Run("SingularYieldsZeroMatrix", func(t *testing.T) {
		flat := NewMat4Scale(NewVec3(1, 1, 0))
		require.Equal(t, 0.0, flat.Determinant())
		require.Equal(t, Mat4{}, flat.Inverse())
	})

	t.Run("TransposeIsAnInvolution", func(t *testing.T) {
		mat := NewMat4Compose(NewVec3(1, 2, 3), NewQuatFromAxisAngle(NewVec3Up(), 0.8, false), NewVec3One())
		require.Equal(t, mat, mat.Transposed().Transposed())
	})
}

func TestMat4ComposeDecompose(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		position := NewVec3(1, -2, 3)
		rotation := NewQuatFromAxisAngle(NewVec3(0, 1, 0), 0.6, false)
		scale := NewVec3(2, 3, 4)

		mat := NewMat4Compose(position, rotation, scale)
		p, q, s := mat.Decompose()

		require.True(t, p.Compare(position, 1e-12))
		require.True(t, s.Compare(scale, 1e-12))
		require.True(t, NewMat4Compose(p, q, s).Compare(mat, 1e-9))
	})

	t.Run("NegativeDeterminantFlipsX", func(t *testing.T) {
		mat := NewMat4Compose(NewVec3Zero(), NewQuatIdentity(), NewVec3(-2, 3, 4))
		_, q, s := mat.Decompose()

		require.Less(t, s.X, 0.0)
		require.True(t, NewMat4Compose(NewVec3Zero(), q, s).Compare(mat, 1e-9))
	})

	t.Run("ZeroScaleStaysFinite", func(t *testing.T) {
		mat := NewMat4Compose(NewVec3(5, 0, 0), NewQuatIdentity(), NewVec3(0, 1, 1))
		p, q, s := mat.Decompose()

		require.False(t, m.IsNaN(q.X) || m.IsNaN(q.Y) || m.IsNaN(q.Z) || m.IsNaN(q.W))
		require.Equal(t, NewVec3(5, 0, 0), p)
		require.Equal(t, 0.0, s.X)
	})

	t.Run("ComposeAppliesScaleRotateTranslate", func(t *testing.T) {
		mat := NewMat4Compose(
			NewVec3(10, 0, 0),
			NewQuatFromAxisAngle(NewVec3(0, 0, 1), m.Pi/2, false),
			NewVec3(2, 2, 2),
		)
		got := NewVec3(1, 0, 0).Transform(mat)
		require.True(t, got.Compare(NewVec3(10, 2, 0), 1e-12))
	})
}

func TestMat4Accessors(t *testing.T) {
	t.Run("OrientationOfIdentity", func(t *testing.T) {
		id := NewMat4Identity()
		require.True(t, id.Forward().Compare(NewVec3(0, 0, -1), 1e-12))
		require.True(t, id.Backward().Compare(NewVec3(0, 0, 1), 1e-12))
		require.True(t, id.Up().Compare(NewVec3(0, 1, 0), 1e-12))
		require.True(t, id.Right().Compare(NewVec3(1, 0, 0), 1e-12))
		require.True(t, id.Left().Compare(NewVec3(-1, 0, 0), 1e-12))
	})

	t.Run("Position", func(t *testing.T) {
		mat := NewMat4Translation(NewVec3(7, 8, 9))
		require.Equal(t, NewVec3(7, 8, 9), mat.Position())
	})

	t.Run("MaxScaleOnAxis", func(t *testing.T) {
		mat := NewMat4RotationY(0.3).Mul(NewMat4Scale(NewVec3(2, 3, 4)))
		require.InDelta(t, 4.0, mat.MaxScaleOnAxis(), 1e-9)
	})
}

func TestMat4Projections(t *testing.T) {
	t.Run("OrthographicCentersTheVolume", func(t *testing.T) {
		mat := NewMat4Orthographic(0, 2, 0, 2, -1, 1)
		got := NewVec3(1, 1, 0).Transform(mat)
		require.True(t, got.Compare(NewVec3Zero(), 1e-12))
	})

	t.Run("PerspectiveMapsClipPlanes", func(t *testing.T) {
		mat := NewMat4Perspective(m.Pi/2, 1, 1, 10)

		near := NewVec3(0, 0, -1).Transform(mat)
		require.InDelta(t, -1.0, near.Z, 1e-12)

		far := NewVec3(0, 0, -10).Transform(mat)
		require.InDelta(t, 1.0, far.Z, 1e-12)
	})

	t.Run("LookAtIsRigid", func(t *testing.T) {
		position := NewVec3(0, 0, 5)
		view := NewMat4LookAt(position, NewVec3Zero(), NewVec3Up())

		require.True(t, NewVec3Zero().Transform(view).Compare(NewVec3(0, 0, -5), 1e-12))

		p := NewVec3(3, 4, 0)
		require.InDelta(t, p.Distance(position), p.Transform(view).Length(), 1e-12)
	})
}

func TestMat3Construction(t *testing.T) {
	t.Run("FromSlice", func(t *testing.T) {
		mat, err := NewMat3FromSlice(NewMat3Identity().Slice())
		require.NoError(t, err)
		require.Equal(t, NewMat3Identity(), mat)

		_, err = NewMat3FromSlice([]float64{1, 2})
		require.Error(t, err)
		require.True(t, errors.Is(err, core.ErrIllegalParameters))
	})

	t.Run("FromMat4KeepsUpperLeftBlock", func(t *testing.T) {
		mat := NewMat4RotationZ(0.3)
		block := NewMat3FromMat4(mat)
		require.True(t, block.Compare(NewMat3Rotation(0.3), 1e-12))
	})

	t.Run("At", func(t *testing.T) {
		mat := NewMat3Translation(5, 6)
		v, err := mat.At(1, 2)
		require.NoError(t, err)
		require.Equal(t, 6.0, v)

		_, err = mat.At(3, 0)
		require.Error(t, err)
		require.True(t, errors.Is(err, core.ErrIndexOutOfRange))
	})
}

func TestMat3Transforms(t *testing.T) {
	t.Run("RotationIsCounterclockwise", func(t *testing.T) {
		got := NewVec2(1, 0).Transform(NewMat3Rotation(m.Pi / 2))
		require.True(t, got.Compare(NewVec2(0, 1), 1e-12))
	})

	t.Run("ChainedOpsApplyInCallOrder", func(t *testing.T) {
		mat := NewMat3Identity().Rotated(m.Pi / 2).Translated(1, 0)
		got := NewVec2(1, 0).Transform(mat)
		require.True(t, got.Compare(NewVec2(1, 1), 1e-12))
	})

	t.Run("ScaleThenTranslate", func(t *testing.T) {
		mat := NewMat3Identity().Scaled(2, 3).Translated(10, 20)
		got := NewVec2(1, 1).Transform(mat)
		require.True(t, got.Compare(NewVec2(12, 23), 1e-12))
	})
}

func TestMat3DeterminantAndInverse(t *testing.T) {
	t.Run("InverseUndoesTransform", func(t *testing.T) {
		mat := NewMat3Identity().Rotated(0.7).Scaled(2, 0.5).Translated(3, -4)
		require.True(t, mat.Mul(mat.Inverse()).Compare(NewMat3Identity(), 1e-9))
	})

	t.Run("InverseOfRotationIsTranspose", func(t *testing.T) {
		rot := NewMat3Rotation(0.9)
		require.True(t, rot.Inverse().Compare(rot.Transposed(), 1e-12))
	})

	t.Run("SingularYieldsZeroMatrix", func(t *testing.T) {
		flat := NewMat3Scale(1, 0)
		require.Equal(t, 0.0, flat.Determinant())
		require.Equal(t, Mat3{}, flat.Inverse())
	})

	t.Run("DeterminantOfScale", func(t *testing.T) {
		require.InDelta(t, 6.0, NewMat3Scale(2, 3).Determinant(), 1e-12)
	})
}

func TestMat3PlanarTransform(t *testing.T) {
	t.Run("ScaleAndOffsetOnly", func(t *testing.T) {
		mat := NewMat3PlanarTransform(5, 7, 2, 3, 0, 0, 0)
		got := NewVec2(1, 1).Transform(mat)
		require.True(t, got.Compare(NewVec2(7, 10), 1e-12))
	})

	t.Run("RotationPivotsAroundCenter", func(t *testing.T) {
		mat := NewMat3PlanarTransform(0, 0, 1, 1, m.Pi/2, 0.5, 0.5)

		// The pivot itself does not move.
		center := NewVec2(0.5, 0.5).Transform(mat)
		require.True(t, center.Compare(NewVec2(0.5, 0.5), 1e-12))

		// Points keep their distance to the pivot.
		p := NewVec2(1, 0.5)
		require.InDelta(t, 0.5, p.Transform(mat).Distance(NewVec2(0.5, 0.5)), 1e-12)
	})
}

func TestMat3NormalMatrix(t *testing.T) {
	t.Run("RigidTransformKeepsNormals", func(t *testing.T) {
		mat := NewMat4RotationY(0.5)
		normal := NewVec3(0, 0, 1).TransformMat3(NewMat3NormalMatrix(mat))
		want := NewVec3(0, 0, 1).Transform(mat)
		require.True(t, normal.Compare(want, 1e-12))
	})

	t.Run("NonUniformScaleKeepsPerpendicularity", func(t *testing.T) {
		mat := NewMat4Scale(NewVec3(2, 1, 1))

		// A surface tangent along the slanted plane x+y=1.
		tangent := NewVec3(-1, 1, 0).Transform(mat)
		normal := NewVec3(1, 1, 0).Normalize().TransformMat3(NewMat3NormalMatrix(mat))

		require.InDelta(t, 0.0, tangent.Dot(normal), 1e-12)
	})
}
