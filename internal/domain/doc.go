// Package domain defines the core business entities of the Poteto
// social network (users, tweets, comments, likes, follows, blocks) and
// the value objects guarding their input invariants.
//
// Entities are immutable snapshots: constructors validate and reject
// invalid input, and the With* methods return a new snapshot carrying
// the updated field plus a fresh UpdatedAt instead of mutating in
// place. Entities never perform I/O.
package domain
