// Copyright 2023 PolygonApi Authors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package polygon

import (
	"fmt"
	"net/url"
	"strconv"
)

// Market values recognized by the tickers endpoint.
const (
	MarketStocks  = "stocks"
	MarketCrypto  = "crypto"
	MarketFX      = "fx"
	MarketOTC     = "otc"
	MarketIndices = "indices"
)

// Sort order values.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// tickersOptions are the supported filter and paging options of the tickers
// endpoint. The zero value of each field means "not set"; unset fields never
// appear in the query string. Active is a pointer since both true and false
// are meaningful filter values.
type tickersOptions struct {
	Ticker   string
	Type     string
	Market   string
	Exchange string
	CUSIP    string
	CIK      string
	Date     string // as-of date, YYYY-MM-DD
	Search   string
	Active   *bool
	Order    string
	Limit    int // results per page, up to 1000 max (0 = server default)
	Sort     string
	Cursor   string
}

// TickersQuery is a builder for a tickers endpoint query. All of its builder
// methods create a copy, leaving the original intact, so a partially built
// query can be shared and extended independently.
type TickersQuery struct {
	options tickersOptions
}

// NewTickersQuery creates a new empty query.
func NewTickersQuery() *TickersQuery {
	return &TickersQuery{}
}

// Copy creates a deep copy of the query. It is primarily used in its builder
// methods.
func (q *TickersQuery) Copy() *TickersQuery {
	q2 := TickersQuery{options: q.options}
	if q.options.Active != nil {
		active := *q.options.Active
		q2.options.Active = &active
	}
	return &q2
}

// Ticker filters for an exact ticker symbol.
func (q *TickersQuery) Ticker(ticker string) *TickersQuery {
	q2 := q.Copy()
	q2.options.Ticker = ticker
	return q2
}

// Type filters by instrument type, e.g. "CS" for common stock.
func (q *TickersQuery) Type(tp string) *TickersQuery {
	q2 := q.Copy()
	q2.options.Type = tp
	return q2
}

// Market filters by market, one of the Market* constants.
func (q *TickersQuery) Market(market string) *TickersQuery {
	q2 := q.Copy()
	q2.options.Market = market
	return q2
}

// Exchange filters by the primary exchange MIC code.
func (q *TickersQuery) Exchange(exchange string) *TickersQuery {
	q2 := q.Copy()
	q2.options.Exchange = exchange
	return q2
}

// CUSIP filters by the CUSIP security identifier.
func (q *TickersQuery) CUSIP(cusip string) *TickersQuery {
	q2 := q.Copy()
	q2.options.CUSIP = cusip
	return q2
}

// CIK filters by the SEC's Central Index Key.
func (q *TickersQuery) CIK(cik string) *TickersQuery {
	q2 := q.Copy()
	q2.options.CIK = cik
	return q2
}

// Date requests the state of the reference data as of the given
// "YYYY-MM-DD" date.
func (q *TickersQuery) Date(date string) *TickersQuery {
	q2 := q.Copy()
	q2.options.Date = date
	return q2
}

// Search filters by a free-text search over ticker and company name.
func (q *TickersQuery) Search(terms string) *TickersQuery {
	q2 := q.Copy()
	q2.options.Search = terms
	return q2
}

// Active filters for actively traded (true) or delisted (false) tickers.
func (q *TickersQuery) Active(active bool) *TickersQuery {
	q2 := q.Copy()
	q2.options.Active = &active
	return q2
}

// Order sets the sort order, one of the Order* constants.
func (q *TickersQuery) Order(order string) *TickersQuery {
	q2 := q.Copy()
	q2.options.Order = order
	return q2
}

// Limit sets the maximum number of results in a single response, [0..1000].
func (q *TickersQuery) Limit(limit int) *TickersQuery {
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	q2 := q.Copy()
	q2.options.Limit = limit
	return q2
}

// Sort sets the field to sort results by, e.g. "ticker".
func (q *TickersQuery) Sort(field string) *TickersQuery {
	q2 := q.Copy()
	q2.options.Sort = field
	return q2
}

// Cursor sets the opaque continuation cursor returned by a previous page.
func (q *TickersQuery) Cursor(cursor string) *TickersQuery {
	q2 := q.Copy()
	q2.options.Cursor = cursor
	return q2
}

// Values returns the query values for the query: the explicit mapping of each
// set option to its wire parameter name. Each call creates a new object, so
// the caller is free to modify it without affecting the query.
func (q *TickersQuery) Values() url.Values {
	v := make(url.Values)
	set := func(name, value string) {
		if value != "" {
			v[name] = []string{value}
		}
	}
	set("ticker", q.options.Ticker)
	set("type", q.options.Type)
	set("market", q.options.Market)
	set("exchange", q.options.Exchange)
	set("cusip", q.options.CUSIP)
	set("cik", q.options.CIK)
	set("date", q.options.Date)
	set("search", q.options.Search)
	if q.options.Active != nil {
		v["active"] = []string{strconv.FormatBool(*q.options.Active)}
	}
	set("order", q.options.Order)
	if q.options.Limit != 0 {
		v["limit"] = []string{fmt.Sprintf("%d", q.options.Limit)}
	}
	set("sort", q.options.Sort)
	set("cursor", q.options.Cursor)
	return v
}

// Encode returns the URL-encoded query string without the leading "?".
func (q *TickersQuery) Encode() string {
	return q.Values().Encode()
}
