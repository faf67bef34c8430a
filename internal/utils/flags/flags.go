package flags

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// set of known flag types
const (
	TypeInt    = "int"
	TypeString = "string"
)

// MarkHidden hides the named flag from the usage output
func MarkHidden(fs *pflag.FlagSet, name string) {
	if err := fs.MarkHidden(name); err != nil {
		panic(err) // flags are registered before they are hidden
	}
}

// EnumSet is a flag value that collects a unique, sorted set of values
// restricted to a known list. Values are matched case-insensitively and
// stored in upper case.
type EnumSet struct {
	values       *[]string
	valueSet     map[string]struct{}
	validValues  []string
	validLookups map[string]struct{}
}

// NewEnumSet creates an EnumSet that writes into values
func NewEnumSet(values *[]string, validValues []string) *EnumSet {
	set := EnumSet{
		values:       values,
		valueSet:     map[string]struct{}{},
		validValues:  validValues,
		validLookups: make(map[string]struct{}, len(validValues)),
	}
	for _, value := range validValues {
		set.validLookups[value] = struct{}{}
	}
	*set.values = nil
	return &set
}

// Type returns the EnumSet type
func (set *EnumSet) Type() string { return "Set" }

func (set *EnumSet) String() string {
	out := new(bytes.Buffer)

	w := csv.NewWriter(out)
	if err := w.Write(*set.values); err != nil {
		return "[]"
	}
	w.Flush()
	return fmt.Sprintf("[%s]", strings.TrimSuffix(out.String(), "\n"))
}

// Set parses a comma-separated list of values and adds them to the set
func (set *EnumSet) Set(val string) error {
	if val == "" {
		return nil
	}

	vals, err := csv.NewReader(strings.NewReader(val)).Read()
	if err != nil {
		return err
	}
	return set.add(vals...)
}

// Append adds a single value to the set
func (set *EnumSet) Append(val string) error {
	if val == "" {
		return nil
	}
	return set.add(val)
}

// Replace replaces all values of the set
func (set *EnumSet) Replace(vals []string) error {
	*set.values = nil
	set.valueSet = map[string]struct{}{}
	return set.add(vals...)
}

// GetSlice returns the values of the set
func (set *EnumSet) GetSlice() []string {
	return *set.values
}

func (set *EnumSet) add(vals ...string) error {
	values := make([]string, 0, len(set.valueSet)+len(vals))
	values = append(values, *set.values...)

	for _, val := range vals {
		val = strings.ToUpper(strings.TrimSpace(val))
		if _, ok := set.validLookups[val]; !ok {
			return fmt.Errorf("'%s' is an unsupported value, try instead one of [%s]", val, strings.Join(set.validValues, ", "))
		}
		if _, ok := set.valueSet[val]; ok {
			continue
		}
		values = append(values, val)
		set.valueSet[val] = struct{}{}
	}

	sort.Strings(values)
	*set.values = values
	return nil
}
