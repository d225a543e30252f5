// Package caseref turns the free-form case identifiers accepted by the tools
// (an opinion id, a CourtListener URL, or a case name) into concrete ids.
package caseref

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

type Kind int

const (
	KindID Kind = iota + 1
	KindURL
	KindName
)

func (k Kind) String() string {
	switch k {
	case KindID:
		return "id"
	case KindURL:
		return "url"
	case KindName:
		return "name"
	default:
		return "unknown"
	}
}

// Identifier is the parsed form of a case_identifier argument. Exactly one
// of OpinionID, ClusterID or Name is meaningful, depending on Kind and the URL shape.
type Identifier struct {
	Kind      Kind
	Raw       string
	OpinionID int
	ClusterID int
	Name      string
}

const siteHost = "courtlistener.com"

var (
	digitsRe     = regexp.MustCompile(`^\d+$`)
	apiOpinionRe = regexp.MustCompile(`/api/rest/v\d+/opinions/(\d+)/?$`)
	apiClusterRe = regexp.MustCompile(`/api/rest/v\d+/clusters/(\d+)/?$`)
	sitePageRe   = regexp.MustCompile(`^/opinion/(\d+)(?:/|$)`)
	citationRe   = regexp.MustCompile(`^\d+\s+[A-Za-z][A-Za-z0-9.'\s]*?\s+\d+$`)
)

// Parse classifies raw. Digits are an opinion id, anything that looks like a
// URL must carry an id in its path, everything else is a case name.
func Parse(raw string) (Identifier, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Identifier{}, courtlistener.Validationf("case identifier is required")
	}

	if digitsRe.MatchString(s) {
		id, err := strconv.Atoi(s)
		if err != nil || id <= 0 {
			return Identifier{}, courtlistener.Validationf("invalid opinion id %q", s)
		}
		return Identifier{Kind: KindID, Raw: s, OpinionID: id}, nil
	}

	if looksLikeURL(s) {
		return parseURL(s)
	}

	return Identifier{Kind: KindName, Raw: s, Name: s}, nil
}

func looksLikeURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "/opinion/") ||
		strings.HasPrefix(lower, "/api/rest/") ||
		strings.Contains(lower, siteHost+"/")
}

func parseURL(s string) (Identifier, error) {
	if !strings.Contains(s, "://") && !strings.HasPrefix(s, "/") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return Identifier{}, courtlistener.Validationf("invalid case URL %q: %v", s, err)
	}
	path := u.Path

	if m := apiOpinionRe.FindStringSubmatch(path); m != nil {
		id, _ := strconv.Atoi(m[1])
		return Identifier{Kind: KindURL, Raw: s, OpinionID: id}, nil
	}
	if m := apiClusterRe.FindStringSubmatch(path); m != nil {
		id, _ := strconv.Atoi(m[1])
		return Identifier{Kind: KindURL, Raw: s, ClusterID: id}, nil
	}
	// Site pages are keyed by cluster: /opinion/<cluster_id>/<slug>/
	if m := sitePageRe.FindStringSubmatch(path); m != nil {
		id, _ := strconv.Atoi(m[1])
		return Identifier{Kind: KindURL, Raw: s, ClusterID: id}, nil
	}
	return Identifier{}, courtlistener.Validationf("could not extract an opinion or cluster id from URL %q", s)
}

// LooksLikeCitation reports whether name reads like "410 U.S. 113".
func LooksLikeCitation(name string) bool {
	return citationRe.MatchString(strings.TrimSpace(name))
}
