package constant

// Fixed frontend routes included in the sitemap next to per-scenario pages.
var SitemapFixedRoutes = []string{
	"/",
	"/scenarios",
	"/about",
}

const AvatarMaxSizeBytes = 5 * 1024 * 1024
