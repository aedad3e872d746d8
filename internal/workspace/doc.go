// Package workspace provides a directory-context abstraction: a current
// working location with navigation, inspection, search, and file-moving
// operations against it.
//
// A Workspace never mutates the process working directory. The current
// path is an explicit value carried by the Workspace, so two instances
// can point at different trees inside one process without interfering.
//
// The cached entry listing and parent path are consistent with the
// current path immediately after Navigate or Refresh returns. They are
// not invalidated when the filesystem changes out of band.
package workspace
