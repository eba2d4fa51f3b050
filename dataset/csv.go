package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/tabcharts"
	"github.com/samber/lo"
)

type Limit struct {
	Offset int
	Count  int
}

func (lim Limit) apply(list []charts.Record) []charts.Record {
	z := len(list)
	if lim.Offset < 0 {
		lim.Offset = z + lim.Offset
	}
	if lim.Offset > 0 && lim.Offset < z {
		list = list[lim.Offset:]
	} else if lim.Offset >= z && z > 0 {
		list = list[:0]
	}
	if lim.Count > 0 && lim.Count < len(list) {
		list = list[:lim.Count]
	}
	return list
}

// CSVLoader reads a table with a header row and converts each row to a
// record following Schema. Numeric cells that can not be parsed become 0.
type CSVLoader struct {
	Schema
	Comma rune
	Limit
	Client *http.Client
}

func NewLoader(schema Schema) CSVLoader {
	return CSVLoader{
		Schema: schema,
		Comma:  ',',
	}
}

func (c CSVLoader) Load(ctx context.Context, path string) ([]charts.Record, error) {
	if err := c.Schema.Validate(); err != nil {
		return nil, err
	}
	r, err := c.open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	list, err := c.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

func (c CSVLoader) Read(r io.Reader) ([]charts.Record, error) {
	rs := csv.NewReader(r)
	if c.Comma != 0 {
		rs.Comma = c.Comma
	}
	rs.TrimLeadingSpace = true

	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, err
	}
	header = lo.Map(header, func(h string, _ int) string {
		return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	})
	index := make([]int, len(c.Columns))
	for i, col := range c.Columns {
		x := lo.IndexOf(header, col.Header)
		if x < 0 {
			return nil, fmt.Errorf("%s: column not found in header", col.Header)
		}
		index[i] = x
	}

	var list []charts.Record
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		values := make(map[string]charts.Value, len(c.Columns))
		for i, col := range c.Columns {
			var cell string
			if x := index[i]; x < len(row) {
				cell = strings.TrimSpace(row[x])
			}
			values[col.Field] = coerce(col.Kind, cell)
		}
		list = append(list, charts.NewRecord(values))
	}
	return c.Limit.apply(list), nil
}

func coerce(kind charts.Kind, cell string) charts.Value {
	if kind != charts.KindNumber {
		return charts.Text(cell)
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	return charts.Number(f)
}

func (c CSVLoader) open(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		client := c.Client
		if client == nil {
			client = http.DefaultClient
		}
		res, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("%s: request does not end with success result code (%d)", location, res.StatusCode)
		}
		return res.Body, nil
	case "file":
		return os.Open(u.Path)
	case "":
		return os.Open(location)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}
