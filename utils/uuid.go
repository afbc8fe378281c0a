package utils

import "github.com/google/uuid"

// OperationID returns a random ID for tagging one invocation's API calls.
// The vmreport- prefix makes the calls easy to grep for in vpxd logs.
func OperationID() string {
	return "vmreport-" + uuid.NewString()
}
