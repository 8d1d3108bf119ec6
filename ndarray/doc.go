// Package ndarray supplies the flat numeric storage qcwire records carry:
// payload arrays arrive as flat float64 slices and are cast into shaped
// views during validation.
//
// What:
//
//   - Matrix: dense row-major float64 matrix with flat backing storage.
//   - Reshape: cast a flat slice into a rows×cols Matrix, or fail when the
//     element count does not divide into the requested shape.
//   - AsVector: length-check a flat slice as an n-vector.
//
// Why:
//
//   - Interchange payloads serialize matrices flattened; the shape is implied
//     by sibling fields (for orbital matrices, the basis-function count), so
//     casting with an exact element-count check is the validation step.
//
// Complexity:
//
//   - Reshape/AsVector: O(n) time and memory (defensive copy).
//   - At: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive dimension.
//   - ErrNotCastable: element count does not match the requested shape.
//   - ErrIndexOutOfBounds: row or column index outside the matrix.
package ndarray
