package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Wire</title>
    <item>
      <title>Budget vote delayed</title>
      <link>https://wire.example.com/1</link>
      <description>The vote moves to Thursday.</description>
      <guid>wire-1</guid>
      <pubDate>Wed, 17 Oct 2018 09:00:00 +0000</pubDate>
    </item>
    <item>
      <title> Storm warning </title>
      <link>https://wire.example.com/2</link>
    </item>
    <item>
      <title>No identity</title>
    </item>
  </channel>
</rss>`

func TestParse(t *testing.T) {
	now := time.Date(2018, 10, 17, 12, 0, 0, 0, time.UTC)
	items, err := Parse(strings.NewReader(sample), now)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "wire-1", items[0].ExternalID)
	assert.Equal(t, "The vote moves to Thursday.", items[0].Summary)
	assert.True(t, items[0].Published.Equal(time.Date(2018, 10, 17, 9, 0, 0, 0, time.UTC)))

	assert.Equal(t, "https://wire.example.com/2", items[1].ExternalID)
	assert.Equal(t, "Storm warning", items[1].Title)
	assert.Equal(t, now, items[1].Published)
}

func TestParseLatin1(t *testing.T) {
	feed := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<rss version=\"2.0\"><channel><item>" +
		"<title>Caf\xe9 owners protest in M\xfcnster</title>" +
		"<guid>wire-9</guid>" +
		"</item></channel></rss>"

	items, err := Parse(strings.NewReader(feed), time.Now())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Café owners protest in Münster", items[0].Title)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader("<rss><channel>"), time.Now())
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sample))
	}))
	defer server.Close()

	p := New(plugin.Metadata{Key: Key}).(*Plugin)
	items, err := p.Decode(context.Background(), nil, models.NewswireService{Name: "wire"}, plugin.Configuration{"url": {server.URL}})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestDecodeErrors(t *testing.T) {
	p := New(plugin.Metadata{Key: Key}).(*Plugin)

	_, err := p.Decode(context.Background(), nil, models.NewswireService{}, plugin.Configuration{})
	assert.True(t, plugin.IsTerminal(err))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err = p.Decode(context.Background(), nil, models.NewswireService{}, plugin.Configuration{"url": {server.URL}})
	require.Error(t, err)
	assert.False(t, plugin.IsTerminal(err))
}
