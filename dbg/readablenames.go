package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. This is helpful for telling parts of a partition
// apart in drawings and CLI output, where raw indices blur together.

var (
	mu   sync.Mutex
	memo map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondetemrinistic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

// Readable name for obj, stable for the life of the process. Nil pointers are
// named Ø. Values that aren't comparable can't be memoized, so they get a fresh
// name every time.
func Name(obj interface{}) string {
	v := reflect.ValueOf(obj)
	if obj == nil || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if !v.Type().Comparable() {
		return newName()
	}
	if r, ok := memo[obj]; ok {
		return r
	}
	r := newName()
	memo[obj] = r
	return r
}

func newName() string {
	return fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
}
