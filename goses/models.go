package goses

type ListVerifiedIdentitiesResponse struct {
	EmailAddresses []string `json:"email_addresses"`
}

// PutDkimSigningKeyResponse reports the DKIM state of an identity after its
// signing key changed.
type PutDkimSigningKeyResponse struct {
	Status string   `json:"status"`
	Tokens []string `json:"tokens"`
}
