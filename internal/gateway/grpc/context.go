package grpc

import "time"

const (
	contextTimeLimit = 2 * time.Second
	// claimTimeLimit leaves room for the savings service's own transfer timeout.
	claimTimeLimit = 15 * time.Second
	coachTimeLimit = 30 * time.Second
	vaultTimeLimit = 10 * time.Second
)
