// Package app contains the core application logic. It resolves settings from
// every configuration layer and runs the build, traverse and analyze stages,
// decoupled from any specific entrypoint like a CLI.
package app
