// Package storage provides the durable key/value persistence capability used
// by the state layer for its three persisted keys: the session token, the
// serialized user profile, and the serialized cart lines.
//
// The package is backend-agnostic: any datastore that satisfies the Storage
// interface can be plugged in. Three implementations ship out of the box:
//
//   - Memory: a concurrent in-memory map, the default and the test fake
//   - File: a single JSON file with atomic replace-on-write, backing real
//     device storage for desktop and CLI storefront clients
//   - Redis: a go-redis backed store for headless or server-rendered
//     storefront deployments that share state across processes
//
// All writes are synchronous with respect to the mutation that triggers them:
// a caller that receives a nil error can rely on the value surviving a process
// restart (subject to the backend's own durability guarantees).
//
// # Usage
//
//	store, err := storage.NewFile("~/.shophub/state.json")
//	if err != nil {
//	    // Handle error
//	}
//
//	if err := store.Set(ctx, "token", token); err != nil {
//	    // Handle error
//	}
package storage
