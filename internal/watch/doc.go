// Package watch wraps fsnotify to re-run slop detection when watched files
// change. Events are debounced per path because editors commonly emit several
// writes for one save.
package watch
