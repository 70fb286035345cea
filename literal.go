package tabledat

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"

	"github.com/mgutz/tabledat/common"
)

// Raw is a pre-formatted SQL token, such as Raw("NOW()") or Raw("DEFAULT"),
// written verbatim where a value is expected.
type Raw string

func isUint(k reflect.Kind) bool {
	return k == reflect.Uint ||
		k == reflect.Uint8 ||
		k == reflect.Uint16 ||
		k == reflect.Uint32 ||
		k == reflect.Uint64 ||
		k == reflect.Uintptr
}

func isInt(k reflect.Kind) bool {
	return k == reflect.Int ||
		k == reflect.Int8 ||
		k == reflect.Int16 ||
		k == reflect.Int32 ||
		k == reflect.Int64
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 ||
		k == reflect.Float64
}

// Literal returns the SQL literal text of v. See WriteLiteral.
func Literal(v interface{}) string {
	buf := bufPool.Get()
	defer bufPool.Put(buf)
	WriteLiteral(buf, v)
	return buf.String()
}

// WriteLiteral writes the SQL literal text of v to buf.
//
//   - strings and []byte are wrapped in single quotes, verbatim. Embedded
//     quotes are NOT escaped.
//   - slices and arrays become "(e1, e2, ...)" with each element encoded
//     recursively, which is what IN expects.
//   - nil and nil pointers are NULL; other pointers are dereferenced.
//   - driver.Valuer values are encoded by their Value.
//   - Raw is written as is.
//
// Everything else is written with its default fmt representation, unquoted.
// There is no error path.
func WriteLiteral(buf common.BufferWriter, v interface{}) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("NULL")
		return
	case Raw:
		buf.WriteString(string(t))
		return
	case string:
		writeQuoted(buf, t)
		return
	case []byte:
		writeQuoted(buf, string(t))
		return
	}

	valueOfV := reflect.ValueOf(v)
	kindOfV := valueOfV.Kind()
	if kindOfV == reflect.Ptr && valueOfV.IsNil() {
		buf.WriteString("NULL")
		return
	}

	if valuer, ok := v.(driver.Valuer); ok {
		val, err := valuer.Value()
		if err != nil {
			logger.Warn("Could not get driver value, using default format", "err", err)
			fmt.Fprint(buf, v)
			return
		}
		WriteLiteral(buf, val)
		return
	}

	switch {
	case kindOfV == reflect.Ptr:
		WriteLiteral(buf, valueOfV.Elem().Interface())
	case kindOfV == reflect.String:
		writeQuoted(buf, valueOfV.String())
	case isInt(kindOfV):
		buf.WriteString(strconv.FormatInt(valueOfV.Int(), 10))
	case isUint(kindOfV):
		buf.WriteString(strconv.FormatUint(valueOfV.Uint(), 10))
	case isFloat(kindOfV):
		buf.WriteString(strconv.FormatFloat(valueOfV.Float(), 'f', -1, valueOfV.Type().Bits()))
	case kindOfV == reflect.Bool:
		buf.WriteString(strconv.FormatBool(valueOfV.Bool()))
	case kindOfV == reflect.Slice && valueOfV.Type().Elem().Kind() == reflect.Uint8:
		writeQuoted(buf, string(valueOfV.Bytes()))
	case kindOfV == reflect.Slice || kindOfV == reflect.Array:
		buf.WriteRune('(')
		for i := 0; i < valueOfV.Len(); i++ {
			if i > 0 {
				buf.WriteString(", ")
			}
			WriteLiteral(buf, valueOfV.Index(i).Interface())
		}
		buf.WriteRune(')')
	default:
		fmt.Fprint(buf, v)
	}
}

func writeQuoted(buf common.BufferWriter, s string) {
	buf.WriteRune('\'')
	buf.WriteString(s)
	buf.WriteRune('\'')
}
