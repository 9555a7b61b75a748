package signature

const (
	// Prefix is the API base segment the service prepends when it
	// reconstructs the signable string.
	Prefix = "back/"

	HeaderNonce   = "nonce"
	HeaderAPIKey  = "API-KEY"
	HeaderAPISign = "API-SIGN"
)
