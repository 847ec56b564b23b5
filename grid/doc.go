// Package grid is the leaf storage layer for every puzzle in gridquest.
//
// What:
//
//   - Point and Direction value types with built-in equality, used directly as
//     map keys (no "x,y" string identities).
//   - Grid[L], a sparse Point→label store, bounded by an explicit rectangle or
//     by presence of stored cells.
//   - Parse/Runes for rectangular text input.
//   - Regions: 4-connected same-label regions with area, perimeter and sides.
//
// Complexity:
//
//   - Set/Get/InBounds: O(1).
//   - Each/Find/FindAll/Render: O(W×H) over the grid extent.
//   - Regions: O(N), Memory: O(N), N = stored cells.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadDirection: ParseDirection got an unknown rune.
package grid
