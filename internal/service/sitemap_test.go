package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRobotsPointsAtSitemap(t *testing.T) {
	svc := &Sitemap{siteURL: "https://hub.example.com"}

	robots := svc.Robots()
	assert.Contains(t, robots, "User-agent: *")
	assert.Contains(t, robots, "Sitemap: https://hub.example.com/sitemap.xml")
}
