// Package migrations registers the schema migrations. Importing it for side
// effects is enough; the server and the CLI both do so before running the
// migration runner.
package migrations
