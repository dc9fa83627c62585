package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestF64Interchange(t *testing.T) {
	t.Run("VectorsRoundTrip", func(t *testing.T) {
		v2 := NewVec2(1, 2)
		require.Equal(t, v2, NewVec2FromF64(v2.F64()))

		v3 := NewVec3(1, 2, 3)
		require.Equal(t, v3, NewVec3FromF64(v3.F64()))
	})

	t.Run("Mat4TransposesToRowMajor", func(t *testing.T) {
		mat := NewMat4Translation(NewVec3(1, 2, 3))
		flat := mat.F64()

		// Row major puts the translation at the end of each row.
		require.Equal(t, 1.0, flat[3])
		require.Equal(t, 2.0, flat[7])
		require.Equal(t, 3.0, flat[11])

		require.Equal(t, mat, NewMat4FromF64(flat))
	})

	t.Run("Mat3TransposesToRowMajor", func(t *testing.T) {
		mat := NewMat3Translation(4, 5)
		flat := mat.F64()

		require.Equal(t, 4.0, flat[2])
		require.Equal(t, 5.0, flat[5])

		require.Equal(t, mat, NewMat3FromF64(flat))
	})
}
