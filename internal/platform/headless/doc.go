// Package headless provides UI backends that need no display: a scripted
// pointer and a drawer that records what it was asked to draw and answers
// with scripted interactions.
package headless
