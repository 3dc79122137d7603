package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/woozio/download-service/internal/domain"
	"github.com/woozio/download-service/internal/ports"
)

// Service runs the download pipeline: rate check, shape check, ordered
// entitlement validation, then signed URL issuance.
type Service struct {
	cfg          Config
	entitlements ports.EntitlementSource
	rateLimits   ports.RateLimitStore
	signer       ports.URLSigner
	nowFn        func() time.Time
}

type Dependencies struct {
	Config       Config
	Entitlements ports.EntitlementSource
	RateLimits   ports.RateLimitStore
	Signer       ports.URLSigner
}

func NewService(deps Dependencies) *Service {
	s := &Service{
		cfg:          deps.Config,
		entitlements: deps.Entitlements,
		rateLimits:   deps.RateLimits,
		signer:       deps.Signer,
		nowFn:        func() time.Time { return time.Now().UTC() },
	}
	if s.cfg.GrantTTL == 0 {
		s.cfg.GrantTTL = 10 * time.Minute
	}
	return s
}

// RequestDownload validates the (license, domain, file) triple and, on full
// acceptance, issues a fresh signed URL. Every call returns a distinct grant;
// nothing is cached or recorded server-side.
func (s *Service) RequestDownload(ctx context.Context, in DownloadInput) (domain.SignedURLGrant, error) {
	license := strings.TrimSpace(in.License)

	// The rate check runs before any other work so invalid-license probing is
	// throttled the same as valid traffic.
	identity := license
	if identity == "" {
		identity = in.ClientIP
	}
	allowed, err := s.rateLimits.Allow(ctx, identity, s.nowFn())
	if err != nil {
		// The limiter backend being down must not take the service with it;
		// fail open and leave a trace.
		appLogger().WarnContext(ctx, "rate limit check failed, allowing request",
			"operation", "rate_limit_check",
			"outcome", "failure",
			"error", err.Error(),
		)
	} else if !allowed {
		return domain.SignedURLGrant{}, domain.ErrRateLimited
	}

	if license == "" || strings.TrimSpace(in.Domain) == "" || strings.TrimSpace(in.File) == "" {
		return domain.SignedURLGrant{}, domain.ErrMissingFields
	}
	if !domain.SafeFileName(in.File) {
		return domain.SignedURLGrant{}, domain.ErrInvalidFileName
	}

	// Lookup is exact and case-sensitive.
	record, ok := s.entitlements.Lookup(license)
	if !ok {
		return domain.SignedURLGrant{}, domain.ErrLicenseNotFound
	}
	if !record.Active {
		return domain.SignedURLGrant{}, domain.ErrLicenseInactive
	}
	if record.Expired(s.nowFn()) {
		return domain.SignedURLGrant{}, domain.ErrLicenseExpired
	}
	if !record.AllowsDomain(in.Domain) {
		return domain.SignedURLGrant{}, domain.ErrDomainNotAllowed
	}
	if !record.AllowsFile(in.File) {
		return domain.SignedURLGrant{}, domain.ErrFileNotPermitted
	}

	url, err := s.signer.SignDownload(ctx, in.File, s.cfg.GrantTTL)
	if err != nil {
		appLogger().ErrorContext(ctx, "signed url issuance failed",
			"operation", "sign_download",
			"outcome", "failure",
			"file", in.File,
			"error", err.Error(),
		)
		return domain.SignedURLGrant{}, domain.ErrIssuanceFailed
	}

	now := s.nowFn()
	return domain.SignedURLGrant{
		URL:       url,
		File:      in.File,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.GrantTTL),
	}, nil
}

func appLogger() *slog.Logger {
	return slog.Default().With(
		"service", "download-service",
		"module", "download",
		"layer", "application",
	)
}
