// Package boardsdk is a Go client for the modboard HTTP API.
//
// A Client talks to unauthenticated endpoints and signs in; the Session it
// returns carries the bearer token for everything else:
//
//	c := boardsdk.NewClient("http://localhost:8080")
//	s, err := c.Login(ctx, "Member1@email.com", "Password123!")
//	posts, err := s.ListPosts(ctx, "CSC375", "")
//
// Non-2xx responses are returned as *APIError. Helpers such as IsNotFound and
// IsConflict classify them.
package boardsdk
