package mapping

import (
	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/models"
)

// ToDomainCredential converts a model Credential to a domain Credential
func ToDomainCredential(m models.Credential) domain.Credential {
	return domain.Credential{
		CredentialID: m.CredentialID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
