package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"phonetech/internal/catalog"
	"phonetech/internal/view"
)

const featuredCount = 3

func renderHome(c *gin.Context, deps *Deps) {
	const route = "SECTION home"

	// The featured strip tolerates a dead backend; the page still renders.
	phones, err := deps.API.ListPhones(c.Request.Context())
	if err == nil {
		deps.Catalog.Replace(phones)
	}

	data := pageData(c, deps, view.Home)
	data["Featured"] = deps.Catalog.Featured(featuredCount)
	c.HTML(http.StatusOK, view.Describe(view.Home).Template, data)
}

// renderPhones reloads the catalog and applies the filter form. Entering the
// section always refetches; filtering and sorting run on the cached list.
func renderPhones(c *gin.Context, deps *Deps) {
	const route = "SECTION phones"

	phones, err := deps.API.ListPhones(c.Request.Context())
	if err != nil {
		failToSection(c, deps, route, err, "/")
		return
	}
	deps.Catalog.Replace(phones)

	criteria := criteriaFromQuery(c)
	filtered := catalog.Apply(deps.Catalog.Snapshot(), criteria)

	data := pageData(c, deps, view.Phones)
	data["Phones"] = filtered
	data["Brands"] = deps.Catalog.Brands()
	data["Search"] = criteria.Search
	data["Brand"] = criteria.Brand
	data["MinPrice"] = c.Query("min_price")
	data["MaxPrice"] = c.Query("max_price")
	data["SortKey"] = criteria.SortKey
	data["TotalCount"] = deps.Catalog.Len()
	c.HTML(http.StatusOK, view.Describe(view.Phones).Template, data)
}

// criteriaFromQuery parses the filter form. Unparseable price bounds are
// ignored, matching the permissive behavior of the form inputs.
func criteriaFromQuery(c *gin.Context) catalog.Criteria {
	criteria := catalog.Criteria{
		Search:  c.Query("search"),
		Brand:   strings.TrimSpace(c.Query("brand")),
		SortKey: strings.TrimSpace(c.Query("sort")),
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(c.Query("min_price")), 64); err == nil {
		criteria.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(c.Query("max_price")), 64); err == nil {
		criteria.MaxPrice = &v
	}
	return criteria
}
