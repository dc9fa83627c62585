package math

// Transform is the placement of an entity: translation, rotation and scale
// with a lazily rebuilt local matrix. Transforms can have a parent whose own
// transform is then taken into account. Mutation goes through the setters so
// the cached matrix is invalidated and the change callback can notify
// whatever derives state from this transform. Not safe for concurrent
// mutation.
type Transform struct {
	position Vec3
	rotation Quaternion
	scale    Vec3

	dirty    bool
	local    Mat4
	parent   *Transform
	onChange func()
}

func NewTransform() *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
}

func NewTransformFromPosition(position Vec3) *Transform {
	return NewTransformFromPositionRotationScale(position, NewQuatIdentity(), NewVec3One())
}

func NewTransformFromRotation(rotation Quaternion) *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), rotation, NewVec3One())
}

func NewTransformFromPositionRotation(position Vec3, rotation Quaternion) *Transform {
	return NewTransformFromPositionRotationScale(position, rotation, NewVec3One())
}

func NewTransformFromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform) Position() Vec3 {
	return t.position
}

func (t *Transform) Rotation() Quaternion {
	return t.rotation
}

func (t *Transform) Scale() Vec3 {
	return t.scale
}

func (t *Transform) Parent() *Transform {
	return t.parent
}

// SetParent attaches the transform under parent. Cycles are the caller's
// responsibility.
func (t *Transform) SetParent(parent *Transform) {
	t.parent = parent
	t.invalidate()
}

// OnChange registers a callback fired after every mutation. Passing nil
// removes it.
func (t *Transform) OnChange(cb func()) {
	t.onChange = cb
}

func (t *Transform) invalidate() {
	t.dirty = true
	if t.onChange != nil {
		t.onChange()
	}
}

func (t *Transform) SetPosition(position Vec3) {
	t.position = position
	t.invalidate()
}

func (t *Transform) Translate(translation Vec3) {
	t.position = t.position.Add(translation)
	t.invalidate()
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.rotation = rotation
	t.invalidate()
}

func (t *Transform) Rotate(rotation Quaternion) {
	t.rotation = t.rotation.Mul(rotation)
	t.invalidate()
}

func (t *Transform) SetScale(scale Vec3) {
	t.scale = scale
	t.invalidate()
}

func (t *Transform) ScaleBy(scale Vec3) {
	t.scale = t.scale.Mul(scale)
	t.invalidate()
}

func (t *Transform) SetPositionRotation(position Vec3, rotation Quaternion) {
	t.position = position
	t.rotation = rotation
	t.invalidate()
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.position = position
	t.rotation = rotation
	t.scale = scale
	t.invalidate()
}

func (t *Transform) TranslateRotate(translation Vec3, rotation Quaternion) {
	t.position = t.position.Add(translation)
	t.rotation = t.rotation.Mul(rotation)
	t.invalidate()
}

// Local returns the local matrix, rebuilding it only when a setter has run
// since the last call.
func (t *Transform) Local() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	if t.dirty {
		t.local = NewMat4Compose(t.position, t.rotation, t.scale)
		t.dirty = false
	}
	return t.local
}

// World returns the matrix taking local coordinates to world space through
// the whole parent chain.
func (t *Transform) World() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	local := t.Local()
	if t.parent != nil {
		return t.parent.World().Mul(local)
	}
	return local
}
