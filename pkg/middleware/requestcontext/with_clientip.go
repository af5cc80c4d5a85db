package requestcontext

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
)

type clientIPKey struct{}

type WithClientIPConfig struct {
	// TrustedHeader is a header carrying the client IP set by a trusted proxy (e.g. X-Real-IP, CF-Connecting-IP).
	TrustedHeader string `mapstructure:"trusted_header"`
}

// WithClientIP stores the client IP in the request context.
// The trusted header wins when it holds a valid IP, then the first X-Forwarded-For entry, then the remote address.
func WithClientIP(config WithClientIPConfig) Option {
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		if config.TrustedHeader != "" {
			if ip := c.Get(config.TrustedHeader); net.ParseIP(ip) != nil {
				return context.WithValue(ctx, clientIPKey{}, ip), nil
			}
		}
		if ips := c.IPs(); len(ips) > 0 && net.ParseIP(ips[0]) != nil {
			return context.WithValue(ctx, clientIPKey{}, ips[0]), nil
		}
		return context.WithValue(ctx, clientIPKey{}, c.IP()), nil
	}
}

// GetClientIP returns the client IP from ctx, or an empty string.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}
