// Package builder turns the textual orbit list into a populated topology
// store. It is the first stage of the pipeline: nothing downstream ever sees
// a partially built map, because any malformed line aborts the build.
package builder
