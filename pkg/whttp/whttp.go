// Package whttp wraps the HTTP client used to crawl the station site.
package whttp

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"github.com/wcfm-radio/wcfm/internal/utils"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:83.0) Gecko/20100101 Firefox/83.0"

// Client fetches pages as strings. The crawl's failure semantics forbid
// automatic retries, so the underlying retryable client is capped at
// zero retries; it still gives us sane timeouts and connection reuse.
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.Logger = nil
	return &Client{http: rc.StandardClient()}
}

// Fetch performs a GET and returns the response body as a string. A
// non-2xx status is an error: the caller treats any failure as "page
// unavailable".
func (c *Client) Fetch(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Cache-Control", "no-transform")
	req.Header.Set("Accept-Language", "en")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	page := string(body)
	if utils.Log.IsLevelEnabled(logrus.DebugLevel) {
		if title, ok := PageTitle(page); ok {
			utils.Log.Debugf("fetched %s (%q, %d bytes)", url, title, len(page))
		}
	}
	return page, nil
}

// PageTitle extracts the content of the first <title> element.
func PageTitle(page string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", false
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return "", false
	}
	return strings.ReplaceAll(strings.ReplaceAll(title, "\n", ""), "\r", ""), true
}
