// Package routes implements the classification policy mapping filenames and
// extracted content to destination folders.
//
// A route is a (pattern, folder) pair. Patterns containing shell wildcard
// characters are globs; everything else is a plain keyword. Matching runs in
// three strict phases: glob against the filename, keyword within the
// filename, then keyword within extracted content. The first hit wins and no
// later phase is consulted, so an exact filename signal always outranks
// content inference. Routes keep their declaration order, which decides
// priority among patterns inside the same phase.
package routes
