// Package navigation resolves "<page>?<query>" targets into storefront routes.
package navigation

import (
	"net/url"
	"sort"
	"strings"

	"github.com/naturesnacks/snackstore/pkg/enums"
)

const (
	ParamSearch   = "search"
	ParamCategory = "category"
	ParamOrderID  = "orderId"
	ParamID       = "id"
)

var knownParams = map[string]struct{}{
	ParamSearch:   {},
	ParamCategory: {},
	ParamOrderID:  {},
	ParamID:       {},
}

// Route is the resolved page plus its decoded parameters.
type Route struct {
	Page   enums.Page        `json:"page"`
	Params map[string]string `json:"params"`
}

// Param returns the named parameter or "".
func (r Route) Param(name string) string {
	return r.Params[name]
}

// Target renders the route back into navigate form.
func (r Route) Target() string {
	return Build(r.Page, r.Params)
}

// Navigate parses target. Unknown pages resolve to home; unknown parameters are dropped.
func Navigate(target string) Route {
	route, _ := Parse(target)
	return route
}

// Parse is Navigate that also reports a malformed query. The route is always usable:
// pairs that fail to decode are skipped and the rest are kept.
func Parse(target string) (Route, error) {
	target = strings.TrimSpace(target)
	name, rawQuery, _ := strings.Cut(target, "?")

	page, err := enums.ParsePage(strings.TrimPrefix(name, "/"))
	if err != nil {
		page = enums.PageHome
	}

	params := map[string]string{}
	var queryErr error
	if rawQuery != "" {
		var values url.Values
		values, queryErr = url.ParseQuery(rawQuery)
		for key := range knownParams {
			if v := values.Get(key); v != "" {
				params[key] = v
			}
		}
	}
	return Route{Page: page, Params: params}, queryErr
}

// Build renders page and params as a navigate target with keys in sorted order.
func Build(page enums.Page, params map[string]string) string {
	if len(params) == 0 {
		return page.String()
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(page.String())
	sep := "?"
	for _, k := range keys {
		b.WriteString(sep)
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
		sep = "&"
	}
	return b.String()
}

// OrderSuccess is the route shown after an order is recorded.
func OrderSuccess(orderID string) string {
	return Build(enums.PageOrderSuccess, map[string]string{ParamOrderID: orderID})
}
