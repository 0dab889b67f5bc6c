package grouping

import (
	"fmt"
	"math"
	"sort"

	"gopivot/pkg/types"
)

// aggKind is the closed set of cell aggregations the pivot intermediate
// supports. The pivot stage maps user-facing operation names onto these.
type aggKind int

const (
	aggFirst aggKind = iota
	aggSum
	aggMin
	aggMax
	aggMean
	aggMedian
)

func (k aggKind) String() string {
	switch k {
	case aggFirst:
		return "first"
	case aggSum:
		return "sum"
	case aggMin:
		return "min"
	case aggMax:
		return "max"
	case aggMean:
		return "mean"
	case aggMedian:
		return "median"
	default:
		return "unknown"
	}
}

// cellReducer reduces the values collected in one pivot cell to a single
// field. Each dtype family has its own reducer, mirroring how each family
// carries its own arithmetic.
type cellReducer interface {
	// ResultDtype returns the dtype of the reduced value.
	ResultDtype() types.Dtype

	// Reduce collapses a non-empty slice of same-dtype fields into one field.
	Reduce(values []types.Field) (types.Field, error)
}

// newCellReducer selects the reducer for the value column's dtype family.
func newCellReducer(kind aggKind, dtype types.Dtype) (cellReducer, error) {
	switch {
	case dtype.IsSignedInteger():
		return &intReducer{kind: kind, dtype: dtype}, nil
	case dtype.IsUnsignedInteger():
		return &uintReducer{kind: kind, dtype: dtype}, nil
	case dtype.IsFloat():
		return &floatReducer{kind: kind, dtype: dtype}, nil
	default:
		return nil, fmt.Errorf("dtype %s is not aggregatable", dtype)
	}
}

// intReducer handles signed integer value columns. Sum, min and max widen
// to i64; mean and median are always f64; first keeps the input dtype.
type intReducer struct {
	kind  aggKind
	dtype types.Dtype
}

func (r *intReducer) ResultDtype() types.Dtype {
	switch r.kind {
	case aggFirst:
		return r.dtype
	case aggMean, aggMedian:
		return types.Float64
	default:
		return types.Int64
	}
}

func (r *intReducer) Reduce(values []types.Field) (types.Field, error) {
	nums := make([]int64, len(values))
	for i, v := range values {
		f, ok := v.(*types.IntField)
		if !ok {
			return nil, fmt.Errorf("expected IntField, got %T", v)
		}
		nums[i] = f.Value
	}

	switch r.kind {
	case aggFirst:
		return values[0], nil
	case aggSum:
		var sum int64
		for _, n := range nums {
			next := sum + n
			// Two's-complement overflow: the sign of the result flips away
			// from both operands.
			if (sum > 0 && n > 0 && next < 0) || (sum < 0 && n < 0 && next > 0) {
				return nil, fmt.Errorf("integer overflow summing i64 values")
			}
			sum = next
		}
		return types.NewInt64Field(sum), nil
	case aggMin:
		min := nums[0]
		for _, n := range nums[1:] {
			if n < min {
				min = n
			}
		}
		return types.NewInt64Field(min), nil
	case aggMax:
		max := nums[0]
		for _, n := range nums[1:] {
			if n > max {
				max = n
			}
		}
		return types.NewInt64Field(max), nil
	case aggMean:
		var sum float64
		for _, n := range nums {
			sum += float64(n)
		}
		return types.NewFloat64Field(sum / float64(len(nums))), nil
	case aggMedian:
		floats := make([]float64, len(nums))
		for i, n := range nums {
			floats[i] = float64(n)
		}
		return types.NewFloat64Field(median(floats)), nil
	default:
		return nil, fmt.Errorf("integer reducer does not support operation %s", r.kind)
	}
}

// uintReducer handles unsigned integer value columns.
type uintReducer struct {
	kind  aggKind
	dtype types.Dtype
}

func (r *uintReducer) ResultDtype() types.Dtype {
	switch r.kind {
	case aggFirst:
		return r.dtype
	case aggMean, aggMedian:
		return types.Float64
	default:
		return types.UInt64
	}
}

func (r *uintReducer) Reduce(values []types.Field) (types.Field, error) {
	nums := make([]uint64, len(values))
	for i, v := range values {
		f, ok := v.(*types.UintField)
		if !ok {
			return nil, fmt.Errorf("expected UintField, got %T", v)
		}
		nums[i] = f.Value
	}

	switch r.kind {
	case aggFirst:
		return values[0], nil
	case aggSum:
		var sum uint64
		for _, n := range nums {
			if sum > math.MaxUint64-n {
				return nil, fmt.Errorf("integer overflow summing u64 values")
			}
			sum += n
		}
		return types.NewUint64Field(sum), nil
	case aggMin:
		min := nums[0]
		for _, n := range nums[1:] {
			if n < min {
				min = n
			}
		}
		return types.NewUint64Field(min), nil
	case aggMax:
		max := nums[0]
		for _, n := range nums[1:] {
			if n > max {
				max = n
			}
		}
		return types.NewUint64Field(max), nil
	case aggMean:
		var sum float64
		for _, n := range nums {
			sum += float64(n)
		}
		return types.NewFloat64Field(sum / float64(len(nums))), nil
	case aggMedian:
		floats := make([]float64, len(nums))
		for i, n := range nums {
			floats[i] = float64(n)
		}
		return types.NewFloat64Field(median(floats)), nil
	default:
		return nil, fmt.Errorf("unsigned reducer does not support operation %s", r.kind)
	}
}

// floatReducer handles floating-point value columns. Everything except
// first produces f64.
type floatReducer struct {
	kind  aggKind
	dtype types.Dtype
}

func (r *floatReducer) ResultDtype() types.Dtype {
	if r.kind == aggFirst {
		return r.dtype
	}
	return types.Float64
}

func (r *floatReducer) Reduce(values []types.Field) (types.Field, error) {
	nums := make([]float64, len(values))
	for i, v := range values {
		f, ok := v.(*types.FloatField)
		if !ok {
			return nil, fmt.Errorf("expected FloatField, got %T", v)
		}
		nums[i] = f.Value
	}

	switch r.kind {
	case aggFirst:
		return values[0], nil
	case aggSum:
		var sum float64
		for _, n := range nums {
			sum += n
		}
		return types.NewFloat64Field(sum), nil
	case aggMin:
		min := nums[0]
		for _, n := range nums[1:] {
			if n < min {
				min = n
			}
		}
		return types.NewFloat64Field(min), nil
	case aggMax:
		max := nums[0]
		for _, n := range nums[1:] {
			if n > max {
				max = n
			}
		}
		return types.NewFloat64Field(max), nil
	case aggMean:
		var sum float64
		for _, n := range nums {
			sum += n
		}
		return types.NewFloat64Field(sum / float64(len(nums))), nil
	case aggMedian:
		return types.NewFloat64Field(median(nums)), nil
	default:
		return nil, fmt.Errorf("float reducer does not support operation %s", r.kind)
	}
}

// median returns the middle value of the input, averaging the two middle
// values for even counts. The input must be non-empty; it is not modified.
func median(nums []float64) float64 {
	sorted := make([]float64, len(nums))
	copy(sorted, nums)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
