// Package main hosts the giffer CLI entrypoint and command graph.
//
// The Cobra-based command tree runs the conversion pipeline from the root
// command and exposes utility subcommands for dependency status, input
// probing, and configuration scaffolding. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
