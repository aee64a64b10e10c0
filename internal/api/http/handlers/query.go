package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kazi-link/job-portal/internal/domain"
)

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

// parsePagination returns (limit, offset) from page/page_size query params.
func parsePagination(c *fiber.Ctx) (int, int) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	return pageSize, (page - 1) * pageSize
}

func parseApplicationStatuses(c *fiber.Ctx) []domain.ApplicationStatus {
	raw := c.Query("status")
	if raw == "" {
		return nil
	}
	var statuses []domain.ApplicationStatus
	for _, part := range strings.Split(raw, ",") {
		statuses = append(statuses, domain.ApplicationStatus(strings.TrimSpace(part)))
	}
	return statuses
}

func optionalQuery(c *fiber.Ctx, key string) *string {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	return &val
}
