package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/tabs/internal/errors"
)

const goodPage = `<!DOCTYPE html>
<html><head><title>t</title></head><body>
<div data-js-tabs id="faq">
  <button data-js-tabs-button>A</button>
  <button data-js-tabs-button class="is-active">B</button>
  <div data-js-tabs-content>a</div>
  <div data-js-tabs-content>b</div>
</div>
</body></html>`

func writePage(t *testing.T, markup string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(markup), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderAppliesInitialState(t *testing.T) {
	out, err := execute(t, "render", "--page", writePage(t, goodPage), "--no-client")
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `aria-selected="true"`)
	assert.Contains(t, out, `tabindex="-1"`)
	assert.NotContains(t, out, "client.js")
}

func TestRenderIncludesClientByDefault(t *testing.T) {
	out, err := execute(t, "render", "--page", writePage(t, goodPage))
	require.NoError(t, err)
	assert.Contains(t, out, `src="/_tabs/client.js"`)
}

func TestCheckListsGroups(t *testing.T) {
	out, err := execute(t, "check", "--page", writePage(t, goodPage))
	require.NoError(t, err)
	assert.Contains(t, out, "div#faq")
	assert.Contains(t, out, "2 tabs, active 1")
	assert.Contains(t, out, "1 tab groups OK")
}

func TestCheckReportsBrokenGroups(t *testing.T) {
	page := `<div data-js-tabs><button data-js-tabs-button>A</button></div>
<div data-js-tabs></div>`
	_, err := execute(t, "check", "--page", writePage(t, page))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E002"))
	assert.True(t, errors.HasCode(err, "E001"))
}

func TestCheckMissingPage(t *testing.T) {
	_, err := execute(t, "check", "--page", filepath.Join(t.TempDir(), "nope.html"))
	assert.True(t, errors.HasCode(err, "E130"))
}

func TestConfigFileMarkers(t *testing.T) {
	dir := t.TempDir()
	page := `<div data-tabs><button data-tab>A</button><p data-panel>a</p></div>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.html"), []byte(page), 0644))
	cfgJSON := `{"page": "page.html", "markers": {"root": "data-tabs", "button": "data-tab", "panel": "data-panel"}}`
	cfgPath := filepath.Join(dir, "tabs.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgJSON), 0644))

	out, err := execute(t, "check", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "1 tab groups OK")
}

func TestRenderRejectsInvalidMarkers(t *testing.T) {
	dir := t.TempDir()
	cfgJSON := `{"markers": {"root": "data-x", "button": "data-x", "panel": "data-y"}}`
	cfgPath := filepath.Join(dir, "tabs.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgJSON), 0644))

	out, err := execute(t, "render", "--config", cfgPath, "--page", writePage(t, goodPage), "--no-client")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E120"))
	assert.True(t, errors.HasCode(err, "E003"))
	assert.Empty(t, out)
}

func TestServeRejectsBadAddress(t *testing.T) {
	_, err := execute(t, "serve", "--page", writePage(t, goodPage), "--addr", "nope")
	assert.True(t, errors.HasCode(err, "E122"))
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}
