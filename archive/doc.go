// Package archive persists validated interchange records in an embedded
// SQLite database. It is a thin store over canonical payload bytes, not a
// storage engine: records go in through schema.Encode and come back out
// through schema.DecodeJSON, so everything read from the archive carries the
// same validation guarantees as a freshly constructed record.
//
// What:
//
//   - Open: opens (or creates) the database file and applies the embedded
//     migrations.
//   - Put: stores a payload under an id, assigning a fresh UUID when the
//     caller supplies none.
//   - Get: loads one payload by id, served from an LRU cache on repeat reads.
//   - List: enumerates stored records, optionally filtered by kind, oldest
//     first.
//   - Delete: removes one record by id.
//
// Records handed out by Get may be cache-shared; treat them as immutable,
// as everywhere else in this module.
package archive
