// Package orbit defines the core vocabulary shared by every stage of the
// orbit map pipeline: labels, relations, the textual relation format and the
// typed errors surfaced to the user.
package orbit
