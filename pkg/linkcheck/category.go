package linkcheck

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// CategoryOther is assigned when no rule matches or the URL cannot be parsed.
const CategoryOther = "Other"

// CategoryRule assigns Label to URLs whose host contains any of Hosts.
type CategoryRule struct {
	Label string
	Hosts []string
}

// DefaultCategoryRules returns the built-in buckets. Order matters: the first
// matching rule wins.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Label: "Maine Government", Hosts: []string{"maine.gov"}},
		{Label: "Data.gov", Hosts: []string{"data.gov"}},
		{Label: "GitHub", Hosts: []string{"github.com"}},
		{Label: "ArcGIS/Esri", Hosts: []string{"arcgis.com", "esri.com"}},
		{Label: "State Government", Hosts: []string{"utah.gov", "texas.gov", "oregon.gov", "virginia.gov"}},
		{Label: "US Census", Hosts: []string{"census.gov"}},
		{Label: "Federal Government", Hosts: []string{"usgs.gov", "blm.gov", "usda.gov"}},
	}
}

// Categorizer buckets URLs by substring matches against their host.
type Categorizer struct {
	rules []CategoryRule
}

// NewCategorizer creates a Categorizer. A nil rules slice selects
// DefaultCategoryRules.
func NewCategorizer(rules []CategoryRule) *Categorizer {
	if rules == nil {
		rules = DefaultCategoryRules()
	}
	normalized := make([]CategoryRule, 0, len(rules))
	for _, rule := range rules {
		hosts := make([]string, 0, len(rule.Hosts))
		for _, host := range rule.Hosts {
			hosts = append(hosts, strings.ToLower(host))
		}
		normalized = append(normalized, CategoryRule{Label: rule.Label, Hosts: hosts})
	}
	return &Categorizer{rules: normalized}
}

// Categorize returns the label of the first rule matching the URL's host.
func (c *Categorizer) Categorize(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return CategoryOther
	}

	host := strings.ToLower(parsed.Host)
	for _, rule := range c.rules {
		for _, fragment := range rule.Hosts {
			if strings.Contains(host, fragment) {
				return rule.Label
			}
		}
	}
	return CategoryOther
}

// RegistrableDomain returns the public-suffix-plus-one domain of the URL host,
// e.g. "maine.gov" for "https://www.maine.gov/geolib". It returns the bare
// host when no registrable domain can be derived, and "" for unparsable URLs.
func RegistrableDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return ""
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}
