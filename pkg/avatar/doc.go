// Package avatar downloads GitHub avatars and turns them into small circular
// thumbnails for graph nodes.
//
// A [Cache] maps each username to a PNG file in a directory (by default
// under the platform temp directory). A [Pipeline] downloads every avatar
// that is not cached yet, at most [DefaultParallelism] at a time, runs it
// through [Process] and stores the result. Failed downloads are logged and
// skipped; the renderer falls back to a text label for those users.
package avatar
