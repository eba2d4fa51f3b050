package charts

import (
	"fmt"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/samber/lo"
)

type Reducer int

const (
	Sum Reducer = iota + 1
	Mean
)

func ParseReducer(str string) (Reducer, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "sum":
		return Sum, nil
	case "mean", "avg", "average":
		return Mean, nil
	case "":
		return 0, fmt.Errorf("reducer not set")
	default:
		return 0, fmt.Errorf("%s: unknown reducer", str)
	}
}

func (r Reducer) String() string {
	switch r {
	case Sum:
		return "sum"
	case Mean:
		return "mean"
	default:
		return "unknown"
	}
}

func (r Reducer) Reduce(values []float64) (float64, error) {
	switch r {
	case Sum:
		return vec.Sum(values), nil
	case Mean:
		if len(values) == 0 {
			return 0, fmt.Errorf("mean of empty bucket")
		}
		return vec.Sum(values) / float64(len(values)), nil
	default:
		return 0, fmt.Errorf("%d: unknown reducer", r)
	}
}

// Key identifies a bucket. Inner is empty for single key aggregations.
type Key struct {
	Outer string
	Inner string
}

func (k Key) String() string {
	if k.Inner == "" {
		return k.Outer
	}
	return k.Outer + "/" + k.Inner
}

type Bucket struct {
	Key
	Value float64
	Count int
}

// Buckets are ordered by the first appearance of their key in the rows
// they were computed from.
type Buckets []Bucket

func (bs Buckets) Lookup(outer, inner string) (Bucket, bool) {
	k := Key{Outer: outer, Inner: inner}
	for _, b := range bs {
		if b.Key == k {
			return b, true
		}
	}
	return Bucket{}, false
}

func (bs Buckets) Max() float64 {
	if len(bs) == 0 {
		return 0
	}
	return lo.MaxBy(bs, func(a, b Bucket) bool {
		return a.Value > b.Value
	}).Value
}

func (bs Buckets) Outer() []string {
	return lo.Uniq(lo.Map(bs, func(b Bucket, _ int) string {
		return b.Outer
	}))
}

func (bs Buckets) Inner() []string {
	return lo.Uniq(lo.Map(bs, func(b Bucket, _ int) string {
		return b.Inner
	}))
}

func (bs Buckets) Nested() map[string]map[string]float64 {
	set := make(map[string]map[string]float64)
	for _, b := range bs {
		if set[b.Outer] == nil {
			set[b.Outer] = make(map[string]float64)
		}
		set[b.Outer][b.Inner] = b.Value
	}
	return set
}

func Aggregate[T any](rows []T, key KeyFunc[T], value ValueFunc[T], reducer Reducer) (Buckets, error) {
	return aggregate(rows, func(row T) Key {
		return Key{Outer: key(row)}
	}, value, reducer)
}

func AggregatePair[T any](rows []T, outer, inner KeyFunc[T], value ValueFunc[T], reducer Reducer) (Buckets, error) {
	return aggregate(rows, func(row T) Key {
		return Key{
			Outer: outer(row),
			Inner: inner(row),
		}
	}, value, reducer)
}

func aggregate[T any](rows []T, key func(T) Key, value ValueFunc[T], reducer Reducer) (Buckets, error) {
	var (
		order  []Key
		groups = make(map[Key][]float64)
	)
	for _, row := range rows {
		k := key(row)
		v, err := value(row)
		if err != nil {
			return nil, err
		}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], v)
	}
	list := make(Buckets, 0, len(order))
	for _, k := range order {
		vs := groups[k]
		res, err := reducer.Reduce(vs)
		if err != nil {
			return nil, err
		}
		list = append(list, Bucket{
			Key:   k,
			Value: res,
			Count: len(vs),
		})
	}
	return list, nil
}

// Distinct returns the keys of rows in order of first appearance.
func Distinct[T any](rows []T, key KeyFunc[T]) []string {
	return lo.Uniq(lo.Map(rows, func(row T, _ int) string {
		return key(row)
	}))
}

// Extent returns the minimum and maximum of value over rows. ok is false
// when rows is empty.
func Extent[T any](rows []T, value ValueFunc[T]) (min, max float64, ok bool, err error) {
	if len(rows) == 0 {
		return 0, 0, false, nil
	}
	xs := make([]float64, 0, len(rows))
	for _, row := range rows {
		v, err := value(row)
		if err != nil {
			return 0, 0, false, err
		}
		xs = append(xs, v)
	}
	min, max = stats.Bounds(xs)
	return min, max, true, nil
}
