package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"cylaba/internal/metrics"
	"cylaba/pkg/logger"
)

// RequestLogger logs every request through log and records it in the HTTP
// metrics. It must run after the requestid middleware.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		elapsed := time.Since(start)

		// fiber reuses these buffers after the handler returns
		method := strings.Clone(c.Method())
		route := c.Route().Path
		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())

		log.LogHTTPRequest(
			c.GetRespHeader(fiber.HeaderXRequestID),
			method,
			c.Path(),
			c.IP(),
			status,
			float64(elapsed.Microseconds())/1000,
		)
		return err
	}
}
