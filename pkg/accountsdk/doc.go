// Package accountsdk is a typed Go client for the accounts service HTTP API.
//
// It doubles as the canonical definition of the API's request and response
// shapes: the server handlers marshal these same types, so client and server
// cannot drift apart silently.
//
// Basic usage:
//
//	c := accountsdk.NewClient("http://localhost:8080")
//	sess, err := c.Login(ctx, "alice", "Secret123")
//	if err != nil { ... }
//	me, err := sess.UserInfo(ctx)
package accountsdk
