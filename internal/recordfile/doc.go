// Package recordfile implements durable collections of fixed-size binary
// records, the storage primitive behind every Academia data file.
//
// A collection is one headerless file of equally sized records. The format
// has no record count and no checksums, so lookups are linear scans and the
// only delete mechanism is an atomic rewrite-and-rename of the whole file.
// All operations on a collection serialize through a single mutex: at most
// one operation, read or write, runs against a collection at any instant.
package recordfile
