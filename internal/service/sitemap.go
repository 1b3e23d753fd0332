package service

import (
	"context"
	"encoding/xml"
	"strings"
	"time"

	"github.com/pkg/errors"

	"sakelien.dev/scenario-backend/internal/app/appconfig"
	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/model/cache"
	"sakelien.dev/scenario-backend/internal/repo"
)

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders sitemap.xml and robots.txt for the frontend, with absolute
// URLs rooted at the configured site URL.
type Sitemap struct {
	siteURL      string
	ScenarioRepo *repo.Scenario
}

func NewSitemap(conf *appconfig.Config, scenarioRepo *repo.Scenario) *Sitemap {
	return &Sitemap{
		siteURL:      strings.TrimSuffix(conf.SiteURL, "/"),
		ScenarioRepo: scenarioRepo,
	}
}

// Cache: sitemapXml, 1 hr
func (s *Sitemap) Generate(ctx context.Context) ([]byte, error) {
	var rendered []byte
	err := cache.SitemapXML.MutexGetSet(&rendered, func() ([]byte, error) {
		return s.render(ctx)
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return rendered, nil
}

func (s *Sitemap) render(ctx context.Context) ([]byte, error) {
	codes, err := s.ScenarioRepo.GetScenarioCodes(ctx)
	if err != nil {
		return nil, err
	}

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}
	for _, route := range constant.SitemapFixedRoutes {
		set.URLs = append(set.URLs, sitemapURL{Loc: s.siteURL + route})
	}
	for _, code := range codes {
		set.URLs = append(set.URLs, sitemapURL{Loc: s.siteURL + "/scenarios/" + code})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal sitemap")
	}
	return append([]byte(xml.Header), body...), nil
}

func (s *Sitemap) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n\n")
	b.WriteString("Sitemap: " + s.siteURL + "/sitemap.xml\n")
	return b.String()
}
