// Package auth holds the signed-in session consumed by the navigation bar.
//
// The Store is the only writer of session state. Readers take snapshots via
// Current, which may change between renders. Optional fields (display name,
// avatar) use Optional so the fallback rules of the identity affordance stay
// exhaustive: an empty string is always treated as absent.
package auth
