package middleware

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Logging middleware that logs route, status code, response time and the
// cache header of every request except version checks.
func Logging(output io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/version"
		},
		Format:     "${time} | ${status} | ${latency} | ${method} | ${path} | ${cache}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     output,
		CustomTags: map[string]logger.LogFunc{
			"latency": func(output logger.Buffer, _ *fiber.Ctx, data *logger.Data, _ string) (int, error) {
				latency := float64(data.Stop.Sub(data.Start).Nanoseconds()) / float64(time.Millisecond)
				return fmt.Fprintf(output, "%8.1fms", latency)
			},
			"cache": func(output logger.Buffer, c *fiber.Ctx, _ *logger.Data, _ string) (int, error) {
				status := c.GetRespHeader(CacheHeader)
				if status == "" {
					status = "-"
				}
				return output.WriteString(status)
			},
		},
	})
}
