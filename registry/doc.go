// Package registry contains the default in-memory host for generated
// attribute members. Hosts backed by other storage can implement
// types.Host directly and be passed to generator.Apply instead.
package registry
