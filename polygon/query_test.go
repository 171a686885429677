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
	"net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTickersQuery(t *testing.T) {
	t.Parallel()

	Convey("TickersQuery builds nondestructively", t, func() {
		Convey("Filters", func() {
			q := NewTickersQuery()
			q2 := q.Ticker("AAPL")
			q3 := q.Market(MarketStocks)
			So(len(q.Values()), ShouldEqual, 0)
			So(q2.Values(), ShouldResemble, url.Values{"ticker": []string{"AAPL"}})
			So(q3.Values(), ShouldResemble, url.Values{"market": []string{"stocks"}})
		})

		Convey("Active is a tri-state", func() {
			q := NewTickersQuery()
			q2 := q.Active(true)
			q3 := q.Active(false)
			So(len(q.Values()), ShouldEqual, 0)
			So(q2.Encode(), ShouldEqual, "active=true")
			So(q3.Encode(), ShouldEqual, "active=false")
		})

		Convey("Options", func() {
			q := NewTickersQuery()
			q2 := q.Limit(100)
			q3 := q.Cursor("blah")
			q4 := q.Sort("ticker").Order(OrderDesc)
			So(len(q.Values()), ShouldEqual, 0)
			So(q2.Values(), ShouldResemble, url.Values{"limit": []string{"100"}})
			So(q3.Values(), ShouldResemble, url.Values{"cursor": []string{"blah"}})
			So(q4.Values(), ShouldResemble, url.Values{
				"sort": []string{"ticker"}, "order": []string{"desc"}})
		})
	})

	Convey("Encode", t, func() {
		Convey("empty query is the empty string", func() {
			So(NewTickersQuery().Encode(), ShouldEqual, "")
		})

		Convey("every set field appears exactly once", func() {
			q := NewTickersQuery().
				Ticker("AAPL").
				Type("CS").
				Market(MarketStocks).
				Exchange("XNAS").
				CUSIP("037833100").
				CIK("0000320193").
				Date("2023-03-01").
				Search("apple computer").
				Active(true).
				Order(OrderAsc).
				Limit(500).
				Sort("ticker").
				Cursor("YWN0aXZl")
			So(q.Values(), ShouldResemble, url.Values{
				"ticker":   []string{"AAPL"},
				"type":     []string{"CS"},
				"market":   []string{"stocks"},
				"exchange": []string{"XNAS"},
				"cusip":    []string{"037833100"},
				"cik":      []string{"0000320193"},
				"date":     []string{"2023-03-01"},
				"search":   []string{"apple computer"},
				"active":   []string{"true"},
				"order":    []string{"asc"},
				"limit":    []string{"500"},
				"sort":     []string{"ticker"},
				"cursor":   []string{"YWN0aXZl"},
			})
			// Encode sorts keys, so the full string is deterministic.
			So(q.Encode(), ShouldEqual, "active=true&cik=0000320193&cursor=YWN0aXZl"+
				"&cusip=037833100&date=2023-03-01&exchange=XNAS&limit=500"+
				"&market=stocks&order=asc&search=apple+computer&sort=ticker"+
				"&ticker=AAPL&type=CS")
		})

		Convey("values are percent-encoded", func() {
			q := NewTickersQuery().Search("black & decker")
			So(q.Encode(), ShouldEqual, "search=black+%26+decker")
		})
	})

	Convey("Limit clamps to the supported range", t, func() {
		So(NewTickersQuery().Limit(-5).Encode(), ShouldEqual, "")
		So(NewTickersQuery().Limit(100000).Encode(), ShouldEqual, "limit=1000")
	})
}
