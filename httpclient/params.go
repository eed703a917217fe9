// httpclient/params.go
package httpclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"time"
)

// DomainParam is filled from the client configuration when a call leaves it unset.
const DomainParam = "domain"

// DateLayout is the wire format of date parameters such as birth_date.
const DateLayout = "2006-01-02"

// Params are the named arguments of one call. A nil value, or a nil pointer, marks the parameter
// as absent and it is never transmitted.
type Params map[string]any

// Normalize returns the wire form of p. The receiver is never modified.
func (p Params) Normalize(defaultDomain string) url.Values {
	values := url.Values{}
	for key, value := range p {
		if encoded, ok := FormatValue(value); ok {
			values.Set(key, encoded)
		}
	}
	if values.Get(DomainParam) == "" {
		values.Set(DomainParam, defaultDomain)
	}
	return values
}

// FormatValue renders a parameter value for the wire. It reports false for absent values.
// Booleans become yes/no and times become YYYY-MM-DD.
func FormatValue(value any) (string, bool) {
	if value == nil {
		return "", false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		return FormatValue(rv.Elem().Interface())
	}

	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "yes", true
		}
		return "no", true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case time.Time:
		return v.Format(DateLayout), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}
