// sesmodel contains the request, response and enumeration types used to
// talk to Amazon SES. Records are plain data holders: they accept any value,
// including ones the service will later reject, and leave validation to the
// service endpoint.
package sesmodel

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/copystructure"
	"github.com/mitchellh/hashstructure/v2"
)

const nilRecord = "<nil>"

// Times are equal when they name the same instant in the same zone offset.
var recordCmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b time.Time) bool {
		_, aOffset := a.Zone()
		_, bOffset := b.Zone()
		return a.Equal(b) && aOffset == bOffset
	}),
}

// equalRecords compares the dereferenced values so cmp does not dispatch
// back into the record's own Equal method.
func equalRecords[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return cmp.Equal(*a, *b, recordCmpOpts...)
}

// hashCopiers rewrites every time into an unnamed fixed zone before hashing.
// hashstructure hashes times through MarshalBinary, which tells UTC apart
// from other zero-offset zones that Equal treats as the same.
var hashCopiers = map[reflect.Type]copystructure.CopierFunc{
	reflect.TypeOf(time.Time{}): func(v any) (any, error) {
		t := v.(time.Time)
		_, offset := t.Zone()
		return t.In(time.FixedZone("", offset)), nil
	},
}

func hashRecord[T any](v *T) uint64 {
	if v == nil {
		return 0
	}
	normalized, err := copystructure.Config{Copiers: hashCopiers}.Copy(v)
	if err != nil {
		panic(fmt.Sprintf("sesmodel: copy %T: %v", v, err))
	}
	h, err := hashstructure.Hash(normalized, hashstructure.FormatV2, nil)
	if err != nil {
		// records only hold strings, bools, times, bytes, slices, maps and pointers
		panic(fmt.Sprintf("sesmodel: hash %T: %v", v, err))
	}
	return h
}

func cloneRecord[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c, err := copystructure.Copy(v)
	if err != nil {
		panic(fmt.Sprintf("sesmodel: copy %T: %v", v, err))
	}
	return c.(*T)
}

func copyStrings(v []string) []string {
	if v == nil {
		return nil
	}
	return append(make([]string, 0, len(v)), v...)
}

func copyRecords[T any](v []*T) []*T {
	if v == nil {
		return nil
	}
	return append(make([]*T, 0, len(v)), v...)
}

// fieldList renders the present fields of a record as {Name: value,Name: value}.
type fieldList struct {
	parts []string
}

func (f *fieldList) add(name, value string) {
	f.parts = append(f.parts, name+": "+value)
}

func (f *fieldList) str(name string, v *string) {
	if v != nil {
		f.add(name, *v)
	}
}

func (f *fieldList) boolean(name string, v *bool) {
	if v != nil {
		f.add(name, strconv.FormatBool(*v))
	}
}

func (f *fieldList) time(name string, v *time.Time) {
	if v != nil {
		f.add(name, v.Format(time.RFC3339Nano))
	}
}

func (f *fieldList) enum(name, v string) {
	if v != "" {
		f.add(name, v)
	}
}

func (f *fieldList) blob(name string, v []byte) {
	if v != nil {
		f.add(name, fmt.Sprintf("<%d bytes>", len(v)))
	}
}

func (f *fieldList) strings(name string, v []string) {
	if v != nil {
		f.add(name, "["+strings.Join(v, ", ")+"]")
	}
}

func (f *fieldList) String() string {
	return "{" + strings.Join(f.parts, ",") + "}"
}

func addNested[P interface {
	*E
	fmt.Stringer
}, E any](f *fieldList, name string, v P) {
	if v != nil {
		f.add(name, v.String())
	}
}

func addNestedList[P interface {
	*E
	fmt.Stringer
}, E any](f *fieldList, name string, v []P) {
	if v == nil {
		return
	}
	items := make([]string, 0, len(v))
	for _, item := range v {
		items = append(items, item.String())
	}
	f.add(name, "["+strings.Join(items, ", ")+"]")
}
