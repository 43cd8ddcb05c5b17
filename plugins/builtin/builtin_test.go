package builtin

import (
	"sort"
	"testing"

	"github.com/ReconfigureIO/converge/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := plugin.NewRegistry(nil)
	require.NoError(t, Register(r))

	keys := r.Keys()
	assert.True(t, sort.StringsAreSorted(keys))
	assert.Equal(t, []string{"mailer", "reindex", "reindex.item", "rss", "webhook"}, keys)

	_, err := r.EditionAction("webhook")
	assert.NoError(t, err)
	_, err = r.EditionAction("reindex")
	assert.NoError(t, err)
	_, err = r.ContentAction("reindex.item")
	assert.NoError(t, err)
	_, err = r.WorkflowAction("mailer")
	assert.NoError(t, err)
	_, err = r.NewswireDecoder("rss")
	assert.NoError(t, err)

	_, err = r.WorkflowAction("rss")
	assert.Error(t, err)

	assert.Error(t, Register(r), "registering twice must fail")
}

func TestDescribe(t *testing.T) {
	r := plugin.NewRegistry(plugin.NewCatalog(map[string]plugin.Metadata{
		"webhook": {Name: "Webhook", Vendor: "Converge"},
	}))
	require.NoError(t, Register(r))

	for _, d := range r.Describe() {
		if d.Metadata.Key == "webhook" {
			assert.Equal(t, "Webhook", d.Metadata.Name)
			assert.Equal(t, []string{"edition-action"}, d.Families)
			assert.Equal(t, "url", d.Properties["URL"])
			return
		}
	}
	t.Fatal("webhook not described")
}
