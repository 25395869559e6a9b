package parser

import (
	"reflect"
	"testing"
)

const scheduleFixture = `<html><body>
<h2>Spring Schedule</h2>
<h3 id="monday">Monday</h3>
<p><a title="Happy Hour" href="http://sites.williams.edu/wcfm/happy-hour/">Happy Hour</a> 4:00-5:00pm (WCFM Board)</p>
<p><a title="Day Old Bagels" href="https://sites.williams.edu/wcfm/day-old-bagels/">Day Old Bagels</a> 9:00-10:00pm</p>
<h3 id="tuesday">Tuesday</h3>
<p><a href="https://sites.williams.edu/wcfm/water-signs-united/">Water Signs United</a> 8:00-9:00pm WCFM Board</p>
<p><a href="http://sites.williams.edu/wcfm/shows/songs-i-cant-play-at-home/">Songs I Can&#8217;t Play at Home</a> 10:00-11:00pm</p>
<p><em>Looking for the subrequest form? It moved.</em></p>
</body></html>`

func TestShowDescriptionURLs(t *testing.T) {
	want := map[string]bool{
		"https://sites.williams.edu/wcfm/happy-hour/":                      true,
		"https://sites.williams.edu/wcfm/day-old-bagels/":                  false,
		"https://sites.williams.edu/wcfm/water-signs-united/":              true,
		"https://sites.williams.edu/wcfm/shows/songs-i-cant-play-at-home/": false,
	}
	got := ShowDescriptionURLs(scheduleFixture)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("URL map mismatch:\n got:  %v\n want: %v", got, want)
	}
}

func TestShowDescriptionURLsMissingMarkers(t *testing.T) {
	if got := ShowDescriptionURLs("https://cs.williams.edu"); got != nil {
		t.Fatalf("expected nil for a page without markers, got %v", got)
	}
}

func TestBoardURLs(t *testing.T) {
	region, ok := slice(scheduleFixture, scheduleStart, scheduleEnd)
	if !ok {
		t.Fatal("fixture should slice cleanly")
	}
	want := []string{
		"https://sites.williams.edu/wcfm/happy-hour/",
		"https://sites.williams.edu/wcfm/water-signs-united/",
	}
	got := BoardURLs(region)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("board URLs mismatch:\n got:  %v\n want: %v", got, want)
	}
}

func TestBoardURLsEmpty(t *testing.T) {
	region := `<a title="Songs" href="http://sites.williams.edu/wcfm/shows/songs-i-cant-play-at-home/">Songs I Can&#8217;t Play at Home</a></p>`
	if got := BoardURLs(region); len(got) != 0 {
		t.Fatalf("expected no board URLs, got %v", got)
	}
}

func TestTitle(t *testing.T) {
	frag := "<h1 class=\"entry-title\">Happy Hour</h1>\n<div class=\"entry-content\">"
	if got := Title(frag); got != "Happy Hour" {
		t.Fatalf("expected %q, got %q", "Happy Hour", got)
	}

	if got := Title("<h1 class=\"entry-title\"Happy Hour/h1>"); got != "" {
		t.Fatalf("malformed markup should yield empty title, got %q", got)
	}
}

func TestTitleDecodesEntities(t *testing.T) {
	frag := `<h1 class="entry-title">Songs I Can&#8217;t Play</h1>`
	if got := Title(frag); got != "Songs I Can’t Play" {
		t.Fatalf("expected decoded title, got %q", got)
	}
}

func TestHosts(t *testing.T) {
	frag := "<p>Good tunes, Good vibes, Good times</p>\n<p>Host: First Middle Last</p>"
	if got := Hosts(frag); got != "First Middle Last" {
		t.Fatalf("expected %q, got %q", "First Middle Last", got)
	}

	if got := Hosts("<p>First Middle Last</p>"); got != "" {
		t.Fatalf("missing label should yield empty hosts, got %q", got)
	}

	plural := "<p>Hosts: A Host, B Host</p>"
	if got := Hosts(plural); got != "A Host, B Host" {
		t.Fatalf("plural label: expected %q, got %q", "A Host, B Host", got)
	}
}

func TestDayTime(t *testing.T) {
	frag := "<div class=\"entry-content\">\n<h2>Fridays 4:00 pm - 6:00 pm</h2>\n</div>"
	if got := DayTime(frag); got != "Fridays 4:00 pm - 6:00 pm" {
		t.Fatalf("unexpected day-time phrase: %q", got)
	}

	if got := DayTime("<p>no schedule here</p>"); got != "" {
		t.Fatalf("expected empty phrase, got %q", got)
	}
}

func TestGenre(t *testing.T) {
	frag := `<p class="links"><a href="https://example.com">link</a></p>
<p style="font-weight:400">Funk, Soul</p>
<p style="font-weight:400">Second, Ignored</p>`
	if got := Genre(frag); got != "Funk, Soul" {
		t.Fatalf("expected %q, got %q", "Funk, Soul", got)
	}

	if got := Genre("<p>plain paragraph</p>"); got != "" {
		t.Fatalf("expected empty genre, got %q", got)
	}
}

func TestDescription(t *testing.T) {
	frag := `<p>Good tunes, good vibes.</p>
<p>Every week we dig through the crates.</p>
<p>Hosts: First Last</p>
<p>More info: https://example.com</p>`
	want := "Good tunes, good vibes.\n\nEvery week we dig through the crates."
	if got := Description(frag); got != want {
		t.Fatalf("description mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestImageURL(t *testing.T) {
	frag := `<img class="alignleft" src="https://sites.williams.edu/wcfm/files/2018/09/happyhour.jpg" alt="Happy Hour" />`
	got, ok := ImageURL(frag)
	if !ok {
		t.Fatal("expected an image URL")
	}
	want := "https://sites.williams.edu/wcfm/files/2018/09/happyhour.jpg"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if _, ok := ImageURL("<p>no image</p>"); ok {
		t.Fatal("expected no image URL")
	}
}
