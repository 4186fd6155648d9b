// Package domain defines the entities and naming rules for team channel sets.
//
// An OwnershipRecord is the durable proof that a user currently holds a
// provisioned set of team channels (a category with a text and a voice
// channel under it). At most one record exists per owner; the record is
// created only once the full channel set exists remotely and is removed only
// after the category has been confirmed deleted.
//
// The package also owns the game-name rules: names are rejected when empty
// or when they contain a backtick, and are otherwise escaped so that echoing
// them back into chat cannot trigger unintended markdown formatting.
package domain
