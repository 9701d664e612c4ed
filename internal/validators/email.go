package validators

import (
	"context"
	"net"
	"regexp"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

var emailFormat = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailFormatValid accepts anything shaped like local@domain.tld.
func IsEmailFormatValid(email string) bool {
	return emailFormat.MatchString(email)
}

// IsEmailDomainValid reports whether the domain can plausibly receive mail:
// it has an MX record, or at least resolves to an address.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	_, domain, ok := strings.Cut(email, "@")
	if !ok || domain == "" || strings.Contains(domain, "@") {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, domain)
	return err == nil && len(addrs) > 0
}
