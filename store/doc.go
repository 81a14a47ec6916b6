// Package store persists recorded solutions into a local SQLite file,
// using database/sql with github.com/mattn/go-sqlite3 as the driver.
//
// A SolutionStore is opt-in: a Solver never requires one. Wire a
// SearchAll callback to SolutionStore.Save to durably record every
// solution as it is found, surviving the process and queryable
// afterward.
package store
