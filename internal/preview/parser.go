package preview

import (
	"fmt"
	"regexp"
	"strings"
)

// metaProperties lists, in priority order, the meta tag names tried for each
// profile field; Open Graph first, then the Twitter card equivalents
var (
	nameProperties     = []string{"og:title", "twitter:title"}
	headlineProperties = []string{"og:description", "twitter:description"}
	imageProperties    = []string{"og:image", "twitter:image", "twitter:image:src"}
)

// entityReplacer decodes the common HTML entities seen in meta tag content
var entityReplacer = strings.NewReplacer(
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&nbsp;", " ",
)

// Parse scans page HTML for social metadata. This is a narrow tag scanner,
// not a general HTML parser; it tolerates either attribute order but makes
// no attempt at full tag-soup handling.
func Parse(html string) Profile {
	return Profile{
		Name:     extractFirst(html, nameProperties),
		Headline: extractFirst(html, headlineProperties),
		ImageURL: extractFirst(html, imageProperties),
	}
}

// extractFirst returns the cleaned content of the first property with a
// match in the page, or empty when none is present
func extractFirst(html string, properties []string) string {
	for _, property := range properties {
		if content, ok := extractMetaTag(html, property); ok {
			return cleanText(content)
		}
	}

	return ""
}

// extractMetaTag finds a meta tag's content attribute by property or name,
// accepting either attribute order since real-world markup is not canonical
func extractMetaTag(html, property string) (string, bool) {
	quoted := regexp.QuoteMeta(property)

	patterns := []*regexp.Regexp{
		// property/name before content
		regexp.MustCompile(fmt.Sprintf(`(?i)<meta\s+property=["']%s["']\s+content=["']([^"']+)["']`, quoted)),
		regexp.MustCompile(fmt.Sprintf(`(?i)<meta\s+name=["']%s["']\s+content=["']([^"']+)["']`, quoted)),
		// content before property/name
		regexp.MustCompile(fmt.Sprintf(`(?i)<meta\s+content=["']([^"']+)["']\s+property=["']%s["']`, quoted)),
		regexp.MustCompile(fmt.Sprintf(`(?i)<meta\s+content=["']([^"']+)["']\s+name=["']%s["']`, quoted)),
	}

	for _, pattern := range patterns {
		if match := pattern.FindStringSubmatch(html); match != nil {
			return match[1], true
		}
	}

	return "", false
}

// cleanText decodes common HTML entities and trims whitespace
func cleanText(text string) string {
	return strings.TrimSpace(entityReplacer.Replace(text))
}
