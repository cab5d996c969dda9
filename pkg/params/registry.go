package params

import (
	"fmt"
	"sort"
	"strings"
)

var sets = map[string]func() *Values{
	"Ecker2015": Ecker2015,
	"OKane2022": OKane2022,
}

// Get builds a fresh copy of the named set. Names match case-insensitively.
func Get(name string) (*Values, error) {
	if build, ok := sets[name]; ok {
		return build(), nil
	}
	for n, build := range sets {
		if strings.EqualFold(n, name) {
			return build(), nil
		}
	}
	return nil, fmt.Errorf("parameter set %q: %w", name, ErrNotFound)
}

// Names returns the registered set names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sets))
	for n := range sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
