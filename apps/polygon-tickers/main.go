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

package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/TKerstiens/PolygonApi/polygon"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	CacheDir string // default: ~/.polygonapi
	LogLevel logging.Level
	CSV      bool // dump CSV format; default: text.
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("polygon-tickers", flag.ExitOnError)
	fs.StringVar(&flags.CacheDir, "cache",
		filepath.Join(os.Getenv("HOME"), ".polygonapi"),
		"configuration path")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")

	err := fs.Parse(args)
	return &flags, err
}

type Config struct {
	Key string `toml:"key"` // user key for Polygon.io
}

func parseConfig(dir string) (*Config, error) {
	filePath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sample := `key = "YourSecretPolygonKey"
`
			err = errors.Annotate(err,
				"config file '%s' does not exist.\nPlease create config file containing:\n%s",
				filePath, sample)
			return nil, err
		} else {
			return nil, errors.Annotate(err,
				"cannot check config file for existence: '%s'", filePath)
		}
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	var c Config
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	if c.Key == "" {
		return nil, errors.Reason("config file %s has no key", filePath)
	}
	return &c, nil
}

var tickerHeader = []string{"Symbol", "Name"}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Annotate(err, "failed to write header")
	}
	for _, r := range rows {
		if err := cw.Write(r); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Annotate(err, "failed to flush written rows")
	}
	return nil
}

func writeText(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	update := func(row []string) {
		for i, c := range row {
			if widths[i] < len(c) {
				widths[i] = len(c)
			}
		}
	}
	update(header)
	for _, r := range rows {
		update(r)
	}
	write := func(row []string) error {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = fmt.Sprintf("%*s", widths[i], c)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, " | ")); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
		return nil
	}
	if err := write(header); err != nil {
		return err
	}
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := write(sep); err != nil {
		return err
	}
	for _, r := range rows {
		if err := write(r); err != nil {
			return err
		}
	}
	return nil
}

// listTickers downloads all active tickers and prints them to w as a
// Symbol/Name table.
func listTickers(ctx context.Context, flags *Flags, w io.Writer) error {
	config, err := parseConfig(flags.CacheDir)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	ctx = polygon.UseClient(ctx, config.Key, nil)
	tickers, err := polygon.AllActiveTickers(ctx)
	if err != nil {
		return errors.Annotate(err, "failed to download tickers")
	}
	logging.Infof(ctx, "downloaded %d active tickers", len(tickers))
	rows := iterator.Reduce[polygon.Ticker, [][]string](
		iterator.FromSlice(tickers), [][]string{},
		func(t polygon.Ticker, rows [][]string) [][]string {
			return append(rows, []string{t.Symbol, t.Name})
		})
	if flags.CSV {
		if err := writeCSV(w, tickerHeader, rows); err != nil {
			return errors.Annotate(err, "failed to print CSV")
		}
		return nil
	}
	if err := writeText(w, tickerHeader, rows); err != nil {
		return errors.Annotate(err, "failed to print text")
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := listTickers(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
