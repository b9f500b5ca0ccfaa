// Package inmemorytopology provides an in-memory implementation of the
// topologystore.Store interface backed by maps and ordered slices.
package inmemorytopology
