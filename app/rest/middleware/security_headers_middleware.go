package middleware

import (
	"github.com/labstack/echo/v4"
)

func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			headers := c.Response().Header()

			headers.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
			headers.Set("X-XSS-Protection", "1; mode=block")
			headers.Set("X-Content-Type-Options", "nosniff")
			headers.Set("X-Frame-Options", "DENY")
			headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")

			// Post content is sanitized at ingestion, CSP is the second line
			csp := "default-src 'self'; " +
				"script-src 'self'; " +
				"style-src 'self' 'unsafe-inline'; " +
				"img-src 'self' data: https:; " +
				"connect-src 'self'; " +
				"font-src 'self'; " +
				"object-src 'none'; " +
				"base-uri 'self'; " +
				"form-action 'self'"
			headers.Set("Content-Security-Policy", csp)

			permissions := "geolocation=(), microphone=(), camera=(), payment=(), usb=()"
			headers.Set("Permissions-Policy", permissions)

			return next(c)
		}
	}
}
