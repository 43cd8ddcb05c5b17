// Package rss decodes RSS 2.0 feeds into newswire items.
package rss

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/net/html/charset"
)

// Key is the registry key of the plugin.
const Key = "rss"

// maxFeedSize bounds the bytes read from a feed.
const maxFeedSize = 8 << 20

var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC3339,
}

// Plugin is the RSS newswire decoder.
type Plugin struct {
	plugin.Base
	client *http.Client
	now    func() time.Time
}

// New creates the plugin.
func New(meta plugin.Metadata) plugin.Plugin {
	return &Plugin{
		Base:   plugin.NewBase(meta, map[string]string{"Feed URL": "url"}),
		client: cleanhttp.DefaultClient(),
		now:    time.Now,
	}
}

type feed struct {
	Channel struct {
		Items []item `xml:"item"`
	} `xml:"channel"`
}

type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
}

// Decode fetches the feed of the service.
func (p *Plugin) Decode(ctx context.Context, pctx plugin.Context, service models.NewswireService, conf plugin.Configuration) ([]models.NewswireItem, error) {
	v := conf.Validate()
	u := v.RequireURL("url")
	if err := v.Err(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &plugin.ConfigError{Key: "url", Reason: err.Error()}
	}
	req = req.WithContext(ctx)
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, plugin.Operational("fetch feed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, plugin.Operational("fetch feed", fmt.Errorf("unexpected status %s", resp.Status))
	}

	items, err := Parse(io.LimitReader(resp.Body, maxFeedSize), p.now())
	if err != nil {
		return nil, plugin.Operational("decode feed", err)
	}
	return items, nil
}

// Parse decodes an RSS 2.0 document in any encoding its XML declaration
// names. Items without a date are stamped with now. The guid identifies an
// item, falling back to its link.
func Parse(r io.Reader, now time.Time) ([]models.NewswireItem, error) {
	var f feed
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	if err := d.Decode(&f); err != nil {
		return nil, err
	}
	items := make([]models.NewswireItem, 0, len(f.Channel.Items))
	for _, it := range f.Channel.Items {
		id := strings.TrimSpace(it.GUID)
		if id == "" {
			id = strings.TrimSpace(it.Link)
		}
		if id == "" {
			continue
		}
		items = append(items, models.NewswireItem{
			ExternalID: id,
			Title:      strings.TrimSpace(it.Title),
			Summary:    strings.TrimSpace(it.Description),
			URL:        strings.TrimSpace(it.Link),
			Published:  parseDate(it.PubDate, now),
		})
	}
	return items, nil
}

func parseDate(s string, def time.Time) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return def
}
