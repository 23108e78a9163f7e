// Package tui holds the terminal presentation: colored results, the banner,
// and glamour-rendered markdown reports.
package tui
