// Package core owns the arena of members and arcs that make up a network
// matrix decomposition: the directed multigraph realizing the rows and
// columns accepted so far, plus the disjoint-set tracking which arcs
// currently belong to the same member.
//
// A Store is a pure value: it owns its own arena and carries no global
// state, no background goroutines, and no locking. Per the single-threaded,
// synchronous execution model this engine implements, a Store must never
// be shared across goroutines without external synchronization. Store
// carries no sync.RWMutex or other lock, because concurrent access was
// never part of the contract it implements.
//
// Nodes are identified by NodeID, a dense arena index (not a pointer and
// not a string), allocated on first use and never reused within a Store's
// lifetime. Arcs are identified the same way by ArcID. Every accepted row
// or column owns exactly one ArcID; AttachArc records which.
package core
