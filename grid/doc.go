// Package grid projects array-of-object document slices onto a flat table
// and back.
//
// Columns flattens an array's item schema into depth-bounded leaf columns;
// ToRows/FromRows convert between item values and flat rows keyed by column
// path; ApplyCell patches one cell against the original nested item so
// subtrees the table cannot show survive the edit. Move/Duplicate/Delete/
// Insert reorder the item sequence itself; row indices are derived, never
// stored.
package grid
