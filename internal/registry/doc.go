// Package registry holds the current field type lookup of a process.
//
// Readers load the current Version without locking and keep using it for
// as long as they like; a Version never changes. Writers build the next
// lookup from the current one and publish it under a single mutex, so
// concurrent merges are serialized and none of them is lost.
package registry
