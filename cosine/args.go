package main

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Arguments holds "-key=value" pairs and bare flags in the order given.
type Arguments struct {
	values map[string]string
	flags  []string
}

func ParseArguments(args []string) Arguments {
	parsed := Arguments{values: make(map[string]string)}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if found {
			parsed.values[key] = value
		} else {
			parsed.flags = append(parsed.flags, arg)
		}
	}
	return parsed
}

func (a Arguments) Flag(key string) bool {
	return slices.Contains(a.flags, key)
}

func (a Arguments) Str(key string, fallback string) string {
	if value := a.values[key]; value != "" {
		return value
	}
	return fallback
}

// Int returns fallback when key is absent or empty.
func (a Arguments) Int(key string, fallback int) (int, error) {
	value := a.values[key]
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %s", key, value)
	}
	return n, nil
}

func (a Arguments) Print(w io.Writer) {
	keys := make([]string, 0, len(a.values))
	for key := range a.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "%s : %s\n", key, a.values[key])
	}
	for _, flag := range a.flags {
		fmt.Fprintf(w, "Flag : %s\n", flag)
	}
}
