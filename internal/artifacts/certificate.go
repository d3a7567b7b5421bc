// Package artifacts holds the narrow factories of the transfer pipeline:
// certificates, escrow, insurance, and legal paperwork. Each factory takes
// the transfer context and produces one typed artifact with a validity
// window and, where applicable, a reference back to the settlement record.
package artifacts

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"provenia/internal/ledger"
	"provenia/internal/transfer/models"
	id "provenia/pkg/domain"
	dErrors "provenia/pkg/domain-errors"
)

// certificateValidity maps certificate types to how long the signed proof
// stays verifiable.
var certificateValidity = map[models.CertificateType]time.Duration{
	models.CertOwnership:    10 * 365 * 24 * time.Hour,
	models.CertTransfer:     5 * 365 * 24 * time.Hour,
	models.CertAuthenticity: 2 * 365 * 24 * time.Hour,
	models.CertWarranty:     365 * 24 * time.Hour,
	models.CertCompliance:   365 * 24 * time.Hour,
	models.CertInsurance:    365 * 24 * time.Hour,
}

const defaultCertificateValidity = 365 * 24 * time.Hour

// CertificateIssuer signs proof-of-transfer documents as HS256 JWTs. The
// settlement hash claim lets any holder dereference a certificate to its
// settlement proof on the ledger.
type CertificateIssuer struct {
	signingKey []byte
	issuer     string
	clock      func() time.Time
}

// NewCertificateIssuer constructs an issuer. The signing key must not be empty.
func NewCertificateIssuer(signingKey []byte, opts ...IssuerOption) (*CertificateIssuer, error) {
	if len(signingKey) == 0 {
		return nil, errors.New("certificate signing key is required")
	}
	iss := &CertificateIssuer{signingKey: signingKey, issuer: "provenia", clock: time.Now}
	for _, opt := range opts {
		opt(iss)
	}
	return iss, nil
}

// IssuerOption configures a CertificateIssuer.
type IssuerOption func(*CertificateIssuer)

// WithIssuerClock sets the clock function for testability.
func WithIssuerClock(clock func() time.Time) IssuerOption {
	return func(i *CertificateIssuer) {
		if clock != nil {
			i.clock = clock
		}
	}
}

// Issue produces one signed certificate of the given type, bound to the
// settlement record.
func (i *CertificateIssuer) Issue(transferID id.TransferID, assetID id.AssetID, certType models.CertificateType, settlement *ledger.SettlementRecord) (models.Certificate, error) {
	if settlement == nil {
		return models.Certificate{}, dErrors.New(dErrors.CodeInvariantViolation, "certificate requires a settlement record")
	}

	now := i.clock().UTC()
	validity, ok := certificateValidity[certType]
	if !ok {
		validity = defaultCertificateValidity
	}
	expiresAt := now.Add(validity)
	certID := uuid.New().String()

	claims := jwt.MapClaims{
		"iss":              i.issuer,
		"sub":              assetID.String(),
		"jti":              certID,
		"iat":              now.Unix(),
		"exp":              expiresAt.Unix(),
		"certificate_type": string(certType),
		"transfer_id":      transferID.String(),
		"settlement_hash":  settlement.Hash,
		"settlement_block": settlement.Block,
		"network":          settlement.Network,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signingKey)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("sign %s certificate: %w", certType, err)
	}

	return models.Certificate{
		ID:             certID,
		Type:           certType,
		TransferID:     transferID,
		AssetID:        assetID,
		SettlementHash: settlement.Hash,
		Token:          token,
		IssuedAt:       now,
		ExpiresAt:      expiresAt,
	}, nil
}

// Verify parses a certificate token and returns its claims. Used by the
// certificate-viewer surfaces downstream of the engine.
func (i *CertificateIssuer) Verify(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.signingKey, nil
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "certificate token invalid")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "certificate token invalid")
	}
	return claims, nil
}
