package geosphere

import "errors"

// Fatal errors. Generate returns no mesh alongside them.
var (
	ErrInvalidParameter = errors.New("geosphere: invalid parameter")
	ErrEmptyMesh        = errors.New("geosphere: mesh has no vertices or triangles")
)

// Recoverable conditions. Generation succeeds, the condition is logged and
// appended to Mesh.Warnings.
var (
	// ErrHeightProviderMismatch is reported when a HeightProvider returns
	// a different number of heights than vertices it was given. The mesh
	// falls back to an undisplaced sphere.
	ErrHeightProviderMismatch = errors.New("geosphere: height count does not match vertex count")
	// ErrHeightProviderFailure is reported when a HeightProvider returns an
	// error or a non-finite height. The mesh falls back to an undisplaced sphere.
	ErrHeightProviderFailure = errors.New("geosphere: height provider failed")
	// ErrUndefinedNormal is reported when a vertex is referenced by no
	// triangle of non-zero area. Its normal is left as the zero vector.
	ErrUndefinedNormal = errors.New("geosphere: vertex normal undefined")
)
