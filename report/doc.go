// Package report renders computed file digests for people and machines.
// Entries can be printed in the coreutils "<digest>  <path>" layout, as JSON
// or YAML documents, or through a user supplied line template with {path},
// {algorithm} and {digest} placeholders. Write sends the rendering to a
// writer or to a file.
package report
