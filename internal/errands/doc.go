// Package errands parses, validates, and updates errand lists.
//
// An errand list maps each priority level to an ordered sequence of short
// task descriptions. The list file (errands.yml) is a YAML mapping keyed by
// priority name, in rank order:
//
//	Emergency: []
//	Urgent:
//	  - call bank
//	High: []
//	Medium: []
//	Routine:
//	  - buy milk
//	  - water plants
//	Deferred: []
//
// # Buckets
//
// A fresh list carries all six buckets, empty. Clean removes a bucket (key
// and contents); a key missing from the file is a cleaned bucket. Add and
// Remove recreate a missing bucket, while a priority-scoped listing of a
// missing bucket fails with ErrPriorityNotFound.
//
// # Listing
//
// List applies a fixed pipeline: select (one bucket or all buckets in rank
// order), order (descending, ascending, random), filter (drop items matching
// the ignore pattern), then truncate to the requested count.
//
// # Validation
//
// Every loaded document is checked against an embedded JSON Schema before
// decoding: the top level must be a mapping, keys must be priority names, and
// values must be sequences of strings. YAML reads an unquoted 42, true or
// null as a number, bool or null, so a hand-written errand that looks like
// one must be quoted ("42"). Encode quotes such errands itself.
//
// # Locations
//
// Locator resolves a location.Location to a file path. When no location is
// given it probes local, user, then global candidates and uses the first file
// that exists.
package errands
