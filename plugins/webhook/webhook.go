// Package webhook posts a summary of an edition to a URL.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-cleanhttp"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Key is the registry key of the plugin.
const Key = "webhook"

const defaultTimeout = 10

// Plugin is the webhook edition action.
type Plugin struct {
	plugin.Base
	client *http.Client
}

// New creates the plugin.
func New(meta plugin.Metadata) plugin.Plugin {
	return &Plugin{
		Base: plugin.NewBase(meta, map[string]string{
			"URL":                   "url",
			"Timeout (seconds)":     "timeout",
			"Query parameter (k=v)": "param",
		}),
		client: cleanhttp.DefaultClient(),
	}
}

// Payload is the document posted to the webhook.
type Payload struct {
	EditionID       int64            `json:"edition_id"`
	Name            string           `json:"name"`
	OutletID        int64            `json:"outlet_id"`
	PublicationDate time.Time        `json:"publication_date"`
	Action          string           `json:"action"`
	Placements      []PlacedDocument `json:"placements"`
}

// PlacedDocument summarises one placement.
type PlacedDocument struct {
	ContentItemID int64  `json:"content_item_id"`
	Title         string `json:"title"`
	Section       string `json:"section"`
	Start         int    `json:"start"`
	Position      int    `json:"position"`
}

type queryParams struct {
	Edition int64  `url:"edition"`
	Action  int64  `url:"action"`
	Outlet  int64  `url:"outlet,omitempty"`
	Source  string `url:"source"`
}

type settings struct {
	url     string
	timeout time.Duration
	params  map[string][]string
}

func parse(conf plugin.Configuration) (settings, error) {
	v := conf.Validate()
	s := settings{params: map[string][]string{}}
	if u := v.RequireURL("url"); u != nil {
		s.url = u.String()
	}
	timeout := v.OptionalInt("timeout", defaultTimeout)
	if err := v.Err(); err != nil {
		return s, err
	}
	if timeout <= 0 {
		return s, &plugin.ConfigError{Key: "timeout", Reason: "must be positive"}
	}
	s.timeout = time.Duration(timeout) * time.Second

	for _, param := range conf.GetAll("param") {
		kv := strings.SplitN(param, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return s, &plugin.ConfigError{Key: "param", Reason: fmt.Sprintf("%q is not of the form key=value", param)}
		}
		s.params[kv[0]] = append(s.params[kv[0]], kv[1])
	}
	return s, nil
}

func payloadOf(edition models.Edition, action models.EditionActionConfig) Payload {
	p := Payload{
		EditionID:       edition.ID,
		Name:            edition.Name,
		OutletID:        edition.OutletID,
		PublicationDate: edition.PublicationDate,
		Action:          action.Label,
		Placements:      make([]PlacedDocument, 0, len(edition.Placements)),
	}
	for _, pl := range edition.Placements {
		p.Placements = append(p.Placements, PlacedDocument{
			ContentItemID: pl.ContentItemID,
			Title:         pl.ContentItem.Title,
			Section:       pl.Section,
			Start:         pl.Start,
			Position:      pl.Position,
		})
	}
	return p
}

// Execute posts the edition to the configured URL.
func (p *Plugin) Execute(ctx context.Context, pctx plugin.Context, inv plugin.EditionInvocation) error {
	s, err := parse(inv.Config)
	if err != nil {
		return err
	}

	q, err := query.Values(queryParams{
		Edition: inv.Edition.ID,
		Action:  inv.Action.ID,
		Outlet:  inv.Edition.OutletID,
		Source:  "converge",
	})
	if err != nil {
		return err
	}
	for k, vs := range s.params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	target := s.url
	if strings.Contains(target, "?") {
		target += "&" + q.Encode()
	} else {
		target += "?" + q.Encode()
	}

	body, err := json.Marshal(payloadOf(inv.Edition, inv.Action))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	req, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return &plugin.ConfigError{Key: "url", Reason: err.Error()}
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return plugin.Operational("post webhook", err)
	}
	defer resp.Body.Close()
	io.Copy(ioutil.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return plugin.Operational("post webhook", fmt.Errorf("unexpected status %s", resp.Status))
	}

	pctx.Log(ctx, models.SeverityInfo, Key, fmt.Sprintf("Edition:%d", inv.Edition.ID),
		"posted %d placements to %s", len(inv.Edition.Placements), s.url)
	return nil
}
