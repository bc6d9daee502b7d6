// Package kernel provides the identifier primitive shared by the delivery domain model.
//
// UUID wraps github.com/google/uuid so that repositories can mint identifiers for new
// deliveries without the domain depending on the generator directly. Identifiers leave
// the kernel as strings: deliveries keep whatever id a client supplies on update, so the
// domain never requires an id to parse as a UUID.
package kernel
