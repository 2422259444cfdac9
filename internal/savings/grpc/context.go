package grpc

var userIDContextKey = contextKey{name: "user_id"}

type contextKey struct {
	name string
}
