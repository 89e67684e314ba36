package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/db"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/render"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/search"
)

// Search renders the search results page for /search?q=...
func (p *Pages) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	results, err := search.Search(db.GetDB(), query)
	if err != nil {
		c.String(http.StatusInternalServerError, "Search failed")
		return
	}

	var b strings.Builder
	if len(results) == 0 {
		b.WriteString(`<div class="no-results">
<p>No results found for your search.</p>
<p><a href="/">&larr; Back to home</a></p>
</div>`)
	} else {
		b.WriteString(`<div class="search-results">`)
		for _, result := range results {
			// Snippet markup comes from FTS5 with <mark> highlighting
			fmt.Fprintf(&b, `<div class="search-result">
<h3><a href="%s">%s</a></h3>
<p class="snippet">%s</p>
</div>`, result.URL, render.Plain(result.Title), result.Snippet)
		}
		b.WriteString(`</div>`)
	}

	heading := fmt.Sprintf("Results for %q", query)
	p.renderPage(c, "Search", "", render.Section("search", heading, b.String()))
}
