package domain

// Credential is the stored login of the bookkeeping operator.
type Credential struct {
	CredentialID int64  `json:"credentialID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Timestamps
}
