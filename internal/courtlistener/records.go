package courtlistener

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Page is one page of a cursor-paginated list or search response.
type Page struct {
	Count    int
	Next     string
	Previous string
	Results  []gjson.Result
}

// NextCursor is the opaque token for the following page, or "" on the last page.
func (p Page) NextCursor() string { return CursorFromNext(p.Next) }

func parsePage(r gjson.Result, what string) (Page, error) {
	results := r.Get("results")
	if !r.IsObject() || !results.IsArray() {
		return Page{}, formatErrorf(nil, "unexpected %s response: missing results array", what)
	}
	return Page{
		Count:    int(r.Get("count").Int()),
		Next:     r.Get("next").String(),
		Previous: r.Get("previous").String(),
		Results:  results.Array(),
	}, nil
}

// CaseHit is one opinion-search result.
type CaseHit struct {
	ClusterID    int
	OpinionID    int
	CaseName     string
	Court        string
	CourtID      string
	DateFiled    string
	DocketNumber string
	Status       string
	Judge        string
	CiteCount    int
	Citations    []string
	Snippet      string
	AbsoluteURL  string
}

func CaseHitFromResult(r gjson.Result) CaseHit {
	hit := CaseHit{
		ClusterID:    int(r.Get("cluster_id").Int()),
		CaseName:     firstString(r, "caseName", "case_name", "caseNameFull"),
		Court:        firstString(r, "court", "court_citation_string"),
		CourtID:      r.Get("court_id").String(),
		DateFiled:    dateOnly(firstString(r, "dateFiled", "date_filed")),
		DocketNumber: firstString(r, "docketNumber", "docket_number"),
		Status:       r.Get("status").String(),
		Judge:        r.Get("judge").String(),
		CiteCount:    int(firstInt(r, "citeCount", "citation_count")),
		Citations:    stringArray(r.Get("citation")),
		AbsoluteURL:  r.Get("absolute_url").String(),
	}
	opinions := r.Get("opinions").Array()
	if len(opinions) > 0 {
		hit.OpinionID = int(opinions[0].Get("id").Int())
		hit.Snippet = opinions[0].Get("snippet").String()
	}
	if hit.Snippet == "" {
		hit.Snippet = r.Get("snippet").String()
	}
	if hit.ClusterID == 0 {
		hit.ClusterID = IDFromURL(hit.AbsoluteURL)
	}
	return hit
}

type Docket struct {
	ID           int
	CaseName     string
	DocketNumber string
	Court        string
	DateFiled    string
	DateArgued   string
	NatureOfSuit string
	AbsoluteURL  string
}

func DocketFromResult(r gjson.Result) Docket {
	return Docket{
		ID:           int(r.Get("id").Int()),
		CaseName:     firstString(r, "case_name", "case_name_short", "case_name_full"),
		DocketNumber: r.Get("docket_number").String(),
		Court:        courtRef(r),
		DateFiled:    dateOnly(r.Get("date_filed").String()),
		DateArgued:   dateOnly(r.Get("date_argued").String()),
		NatureOfSuit: r.Get("nature_of_suit").String(),
		AbsoluteURL:  r.Get("absolute_url").String(),
	}
}

type Court struct {
	ID           string
	FullName     string
	ShortName    string
	Citation     string
	Jurisdiction string
	InUse        bool
	StartDate    string
	EndDate      string
	URL          string
}

func CourtFromResult(r gjson.Result) Court {
	return Court{
		ID:           r.Get("id").String(),
		FullName:     r.Get("full_name").String(),
		ShortName:    r.Get("short_name").String(),
		Citation:     r.Get("citation_string").String(),
		Jurisdiction: r.Get("jurisdiction").String(),
		InUse:        r.Get("in_use").Bool(),
		StartDate:    r.Get("start_date").String(),
		EndDate:      r.Get("end_date").String(),
		URL:          r.Get("url").String(),
	}
}

type Position struct {
	Court           string
	PositionType    string
	DateStart       string
	DateTermination string
}

type Person struct {
	ID          int
	Name        string
	DateOfBirth string
	AbsoluteURL string
	Positions   []Position
}

func PersonFromResult(r gjson.Result) Person {
	p := Person{
		ID:          int(r.Get("id").Int()),
		Name:        personName(r),
		DateOfBirth: r.Get("date_dob").String(),
		AbsoluteURL: r.Get("absolute_url").String(),
	}
	for _, pos := range r.Get("positions").Array() {
		if !pos.IsObject() {
			continue
		}
		p.Positions = append(p.Positions, Position{
			Court:           courtRef(pos),
			PositionType:    pos.Get("position_type").String(),
			DateStart:       pos.Get("date_start").String(),
			DateTermination: pos.Get("date_termination").String(),
		})
	}
	return p
}

func personName(r gjson.Result) string {
	if full := r.Get("name_full").String(); full != "" {
		return full
	}
	parts := []string{}
	for _, key := range []string{"name_first", "name_middle", "name_last", "name_suffix"} {
		if v := strings.TrimSpace(r.Get(key).String()); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

type Opinion struct {
	ID          int
	ClusterID   int
	Type        string
	Author      string
	DownloadURL string
	AbsoluteURL string
	PlainText   string
	HTML        string
	// Cluster is set when the API nested the cluster instead of linking it.
	Cluster *Cluster
}

func OpinionFromResult(r gjson.Result) (Opinion, error) {
	if !r.IsObject() || !r.Get("id").Exists() {
		return Opinion{}, formatErrorf(nil, "unexpected opinion response: missing id")
	}
	op := Opinion{
		ID:          int(r.Get("id").Int()),
		Type:        r.Get("type").String(),
		Author:      firstString(r, "author_str", "author"),
		DownloadURL: r.Get("download_url").String(),
		AbsoluteURL: r.Get("absolute_url").String(),
		PlainText:   r.Get("plain_text").String(),
	}
	for _, key := range []string{"html_with_citations", "html", "html_lawbox", "html_columbia", "xml_harvard", "html_anon_2020"} {
		if v := r.Get(key).String(); strings.TrimSpace(v) != "" {
			op.HTML = v
			break
		}
	}
	cluster := r.Get("cluster")
	switch {
	case cluster.IsObject():
		c := ClusterFromResult(cluster)
		op.Cluster = &c
		op.ClusterID = c.ID
	case cluster.Type == gjson.String:
		op.ClusterID = IDFromURL(cluster.String())
	case cluster.Type == gjson.Number:
		op.ClusterID = int(cluster.Int())
	}
	if op.ClusterID == 0 {
		op.ClusterID = int(r.Get("cluster_id").Int())
	}
	return op, nil
}

type Cluster struct {
	ID                 int
	CaseName           string
	DateFiled          string
	PrecedentialStatus string
	CitationCount      int
	Citations          []string
	Judges             string
	Court              string
	DocketID           int
	DocketNumber       string
	SubOpinionIDs      []int
	AbsoluteURL        string
}

func ClusterFromResult(r gjson.Result) Cluster {
	c := Cluster{
		ID:                 int(r.Get("id").Int()),
		CaseName:           firstString(r, "case_name", "case_name_short", "case_name_full"),
		DateFiled:          dateOnly(r.Get("date_filed").String()),
		PrecedentialStatus: r.Get("precedential_status").String(),
		CitationCount:      int(r.Get("citation_count").Int()),
		Citations:          citationStrings(r.Get("citations")),
		Judges:             r.Get("judges").String(),
		Court:              firstString(r, "court", "court_id"),
		AbsoluteURL:        r.Get("absolute_url").String(),
	}
	docket := r.Get("docket")
	switch {
	case docket.IsObject():
		c.DocketID = int(docket.Get("id").Int())
		c.DocketNumber = docket.Get("docket_number").String()
		if c.Court == "" {
			c.Court = courtRef(docket)
		}
	case docket.Type == gjson.String:
		c.DocketID = IDFromURL(docket.String())
	}
	if c.DocketID == 0 {
		c.DocketID = int(r.Get("docket_id").Int())
	}
	for _, sub := range r.Get("sub_opinions").Array() {
		var id int
		if sub.IsObject() {
			id = int(sub.Get("id").Int())
		} else if sub.Type == gjson.Number {
			id = int(sub.Int())
		} else {
			id = IDFromURL(sub.String())
		}
		if id != 0 {
			c.SubOpinionIDs = append(c.SubOpinionIDs, id)
		}
	}
	return c
}

// CitationMatch is one entry of a citation-lookup response.
type CitationMatch struct {
	Citation     string
	Normalized   []string
	Status       int
	ErrorMessage string
	Clusters     []Cluster
}

func citationMatchFromResult(r gjson.Result) CitationMatch {
	m := CitationMatch{
		Citation:     r.Get("citation").String(),
		Normalized:   stringArray(r.Get("normalized_citations")),
		Status:       int(r.Get("status").Int()),
		ErrorMessage: r.Get("error_message").String(),
	}
	for _, c := range r.Get("clusters").Array() {
		m.Clusters = append(m.Clusters, ClusterFromResult(c))
	}
	return m
}

var trailingID = regexp.MustCompile(`/(\d+)/?(?:[^/]*/?)?$`)

// IDFromURL returns the numeric resource id in an API or site URL, 0 when absent.
// It understands ".../clusters/123/" as well as "/opinion/123/roe-v-wade/".
func IDFromURL(raw string) int {
	if raw == "" {
		return 0
	}
	path := raw
	if u, err := url.Parse(raw); err == nil {
		path = u.Path
	}
	m := trailingID.FindStringSubmatch(path)
	if m == nil {
		return 0
	}
	id, _ := strconv.Atoi(m[1])
	return id
}

// courtRef reads a court that may be nested, a hyperlink, or a plain id.
func courtRef(r gjson.Result) string {
	if id := r.Get("court_id").String(); id != "" {
		return id
	}
	court := r.Get("court")
	switch {
	case court.IsObject():
		return firstString(court, "full_name", "short_name", "id")
	case court.Type == gjson.String:
		s := court.String()
		if strings.Contains(s, "/courts/") {
			return lastPathSegment(s)
		}
		return s
	}
	return ""
}

func lastPathSegment(raw string) string {
	path := raw
	if u, err := url.Parse(raw); err == nil {
		path = u.Path
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	return parts[len(parts)-1]
}

func citationStrings(r gjson.Result) []string {
	var out []string
	for _, c := range r.Array() {
		if c.Type == gjson.String {
			out = append(out, c.String())
			continue
		}
		volume, reporter, page := c.Get("volume").String(), c.Get("reporter").String(), c.Get("page").String()
		if reporter == "" {
			continue
		}
		out = append(out, strings.TrimSpace(fmt.Sprintf("%s %s %s", volume, reporter, page)))
	}
	return out
}

func stringArray(r gjson.Result) []string {
	if r.Type == gjson.String {
		return []string{r.String()}
	}
	var out []string
	for _, v := range r.Array() {
		if s := v.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstString(r gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := r.Get(k); v.Exists() && v.Type != gjson.Null && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

func firstInt(r gjson.Result, keys ...string) int64 {
	for _, k := range keys {
		if v := r.Get(k); v.Exists() && v.Type != gjson.Null {
			return v.Int()
		}
	}
	return 0
}

// dateOnly trims search timestamps such as "1973-01-22T00:00:00-08:00".
func dateOnly(s string) string {
	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		return s[:10]
	}
	return s
}
