// Package service provides the application-level operations for users,
// tweets, comments, likes, follows and blocks. Services validate input
// through the domain layer, enforce domain rules, and run multi-step
// persistence inside a single unit of work so each operation is atomic.
package service
