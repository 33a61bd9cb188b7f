package client

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/EmilyShepherd/go-tweeter/pkg/util"
	"github.com/EmilyShepherd/go-tweeter/types"
)

// Params are the parameters of a request, before they are encoded.
//
// Absent values (nil, nil pointers and empty lists) are dropped. The
// remaining values are converted to their wire form:
//
//   - bool: "true" or "false"
//   - integers and floats: decimal
//   - lists of strings, integers or [fmt.Stringer]: comma separated
//   - time.Time: RFC 3339
//   - types.Date: YYYY-MM-DD
//   - anything implementing [fmt.Stringer]: String()
//
// Values which also implement Valid() error, such as the enumerations in
// the types package, are validated first.
type Params map[string]any

type validator interface {
	Valid() error
}

// Values cleans and converts the parameters. It fails if any value has an
// unsupported type or is not valid.
func (p Params) Values() (url.Values, error) {
	values := make(url.Values, len(p))
	for key, value := range p {
		s, ok, err := paramString(value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", key, err)
		}
		if ok {
			values.Set(key, s)
		}
	}
	return values, nil
}

func paramString(value any) (string, bool, error) {
	if v, ok := value.(validator); ok && !isNil(value) {
		if err := v.Valid(); err != nil {
			return "", false, err
		}
	}

	switch v := value.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case bool:
		return strconv.FormatBool(v), true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case int32:
		return strconv.FormatInt(int64(v), 10), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case uint64:
		return strconv.FormatUint(v, 10), true, nil
	case float64:
		return util.FormatFloat(v), true, nil
	case []string:
		return util.JoinStrings(v), len(v) > 0, nil
	case []int:
		return util.JoinInts(v), len(v) > 0, nil
	case []int64:
		return util.JoinInts(v), len(v) > 0, nil
	case []uint64:
		return util.JoinUints(v), len(v) > 0, nil
	case []float64:
		return util.JoinFloats(v), len(v) > 0, nil
	case time.Time:
		return v.Format(time.RFC3339), true, nil
	case *time.Time:
		if v == nil {
			return "", false, nil
		}
		return v.Format(time.RFC3339), true, nil
	case types.Date:
		return v.String(), true, nil
	case fmt.Stringer:
		if isNil(v) {
			return "", false, nil
		}
		return v.String(), true, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "", false, nil
		}
		return paramString(rv.Elem().Interface())
	case reflect.Slice:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, ok, err := paramString(rv.Index(i).Interface())
			if err != nil {
				return "", false, err
			}
			if ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), len(parts) > 0, nil
	case reflect.String:
		return rv.String(), true, nil
	}

	return "", false, fmt.Errorf("unsupported type %T", value)
}

func isNil(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
