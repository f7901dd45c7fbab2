// Package types defines the icon theme model, the filesystem collaborator
// interface, and the standard errors shared by the lookup engine, the theme
// loader, and the CLI.
// Implements: freedesktop.org Icon Theme 0.13 (§ Definitions, § Directory Layout,
//
//	§ File Formats).
package types
