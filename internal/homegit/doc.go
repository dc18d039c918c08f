// Package homegit implements the bare-repository lifecycle behind the homegit
// command: resolving where the repository lives, classifying invocations, and
// initializing, cloning, untracking, and proxying git against a bare
// repository whose work tree is the user's home directory.
//
// Every git invocation goes through a GitExecutor, and every filesystem access
// through a FileSystem, so the lifecycle can be exercised without touching
// the real home directory.
package homegit
