// Package analyzer derives the final answers from a traversal: the total
// depth of all objects, and the number of orbital transfers between two
// objects through their nearest common ancestor.
package analyzer
