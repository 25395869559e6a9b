// Package parser turns the semi-structured HTML published on the WCFM
// website into Show records. Extraction is a set of stateless functions,
// each pulling one field out of a pre-sliced HTML fragment with a regular
// expression. Extractors return empty or absent results on no match; they
// never return errors.
package parser

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const (
	// The usable region of the schedule page sits between the Monday
	// header and the subrequest-form footer.
	scheduleStart = `<h3 id="monday">Monday</h3>`
	scheduleEnd   = `<p><em>Looking for the subrequest form?`

	// Description pages are sliced between the content container and
	// the comments section.
	contentStart = `<div id="content-container">`
	contentEnd   = `<div id="comments">`
)

var (
	showURLRe  = regexp.MustCompile(`(http|https)://sites.williams.edu/wcfm/[a-z0-9-:/]+`)
	boardURLRe = regexp.MustCompile(`(http|https)://sites.williams.edu/wcfm/[a-z0-9-:/]+(.*)(WCFM Board)`)
	titleRe    = regexp.MustCompile(`entry-title">(.*)<`)
	hostsRe    = regexp.MustCompile(`Hosts?:(.*)<`)
	dayTimeRe  = regexp.MustCompile(`[A-Za-z]{6,10} ([0-9]{1,2}:[0-9]{2}\s*((AM|PM)|(am|pm))*|midnight|noon)(.*)([0-9]{1,2}:[0-9]{2}\s*((AM|PM)|(am|pm))|midnight|noon)`)
	paraAttrRe = regexp.MustCompile(`<p (.*)>(.*)</p>`)
	paraRe     = regexp.MustCompile(`<p>(.*)</p>`)
	imageRe    = regexp.MustCompile(`<img class=(.*)https://sites.williams.edu/wcfm/files/(.*)" alt`)
	tagRe      = regexp.MustCompile(`<[^>]*>`)
)

// ShowDescriptionURLs finds every show description URL on the schedule
// page and reports, per URL, whether its listing carries the board-member
// marker. Returns nil when either boundary marker is missing.
func ShowDescriptionURLs(page string) map[string]bool {
	region, ok := slice(page, scheduleStart, scheduleEnd)
	if !ok {
		return nil
	}

	board := make(map[string]struct{})
	for _, u := range BoardURLs(region) {
		board[u] = struct{}{}
	}

	urls := make(map[string]bool)
	for _, raw := range showURLRe.FindAllString(region, -1) {
		u := upgradeScheme(raw)
		_, isBoard := board[u]
		urls[u] = isBoard
	}
	return urls
}

// BoardURLs returns the show URLs in the given region whose surrounding
// markup mentions the board-member marker. Each URL is trimmed at the
// closing attribute delimiter and upgraded to https.
func BoardURLs(region string) []string {
	var urls []string
	for _, m := range boardURLRe.FindAllString(region, -1) {
		u := upgradeScheme(m)
		if i := strings.Index(u, `">`); i >= 0 {
			urls = append(urls, u[:i])
		}
	}
	return urls
}

// Title extracts the show title from a description fragment, or "" if
// no entry-title element is present.
func Title(fragment string) string {
	m := titleRe.FindString(fragment)
	if m == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(between(m, ">", "<")))
}

// Hosts extracts the text following a "Host:" or "Hosts:" label, or "".
func Hosts(fragment string) string {
	m := hostsRe.FindString(fragment)
	if m == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(between(m, ":", "<")))
}

// DayTime returns the raw day-and-time phrase (a weekday name followed by
// two time expressions), unparsed, or "".
func DayTime(fragment string) string {
	return dayTimeRe.FindString(fragment)
}

// Genre returns the first attributed paragraph that does not contain a
// URL; on the show pages that paragraph lists the genres.
func Genre(fragment string) string {
	for _, m := range paraAttrRe.FindAllString(fragment, -1) {
		if !strings.Contains(m, "http") {
			return innerText(m)
		}
	}
	return ""
}

// Description joins every plain paragraph that mentions neither the host
// label nor a URL, separated by blank lines.
func Description(fragment string) string {
	var paragraphs []string
	for _, m := range paraRe.FindAllString(fragment, -1) {
		if strings.Contains(m, "Host") || strings.Contains(m, "http") {
			continue
		}
		paragraphs = append(paragraphs, innerText(m))
	}
	return strings.Join(paragraphs, "\n\n")
}

// ImageURL returns the URL of the show's cover art, if any.
func ImageURL(fragment string) (string, bool) {
	m := imageRe.FindString(fragment)
	if m == "" {
		return "", false
	}
	i := strings.Index(m, "https:")
	j := strings.Index(m, `" alt`)
	if i < 0 || j < 0 || i > j {
		return "", false
	}
	return m[i:j], true
}

// slice cuts s between the end of the start marker and the beginning of
// the end marker.
func slice(s, start, end string) (string, bool) {
	i := strings.Index(s, start)
	if i < 0 {
		return "", false
	}
	rest := s[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}

// between returns the text after the first occurrence of open and before
// the next occurrence of close.
func between(s, open, close string) string {
	i := strings.Index(s, open)
	if i < 0 {
		return ""
	}
	rest := s[i+len(open):]
	j := strings.Index(rest, close)
	if j < 0 {
		return ""
	}
	return rest[:j]
}

// innerText strips markup from an HTML fragment and decodes entities.
func innerText(s string) string {
	return strings.TrimSpace(html.UnescapeString(tagRe.ReplaceAllString(s, "")))
}

func upgradeScheme(u string) string {
	if strings.Contains(u, "https") {
		return u
	}
	return "https" + u[len("http"):]
}
