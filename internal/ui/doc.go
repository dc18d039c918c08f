// Package ui renders user-facing console output: the verbose command echo
// and the colored notice, warning, and error lines printed by homegit.
package ui
