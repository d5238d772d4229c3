// Package auth contains the authorization rules for snippet access.
package auth

// Access classifies an operation by whether it alters stored state.
type Access int

const (
	// AccessRead covers operations that do not modify a resource (GET, HEAD).
	AccessRead Access = iota
	// AccessWrite covers create, update, and delete operations.
	AccessWrite
)

// Authenticated is the coarse gate applied before ownership is considered:
// reads are open to everyone, writes require a present requester. The empty
// string is the absent (anonymous) requester.
func Authenticated(access Access, requester string) bool {
	if access == AccessRead {
		return true
	}
	return requester != ""
}

// Authorize decides whether a single operation may proceed. Reads are always
// allowed. Writes require a present requester; when the resource already has
// an owner the requester must be that owner. An empty owner means the
// resource does not exist yet (creation), where any authenticated requester
// is allowed and becomes the owner.
//
// Pure function of its inputs; safe for concurrent use.
func Authorize(access Access, requester, owner string) bool {
	if access == AccessRead {
		return true
	}
	if requester == "" {
		return false
	}
	if owner == "" {
		return true
	}
	return requester == owner
}
