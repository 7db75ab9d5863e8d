package service

import (
	"sort"
	"strings"

	"github.com/glbatch/buko-service/internal/buko"
)

// ConfigurationQuery narrows a loaded configuration set. Search is a
// case-insensitive substring match over every column; the remaining fields
// are exact matches and empty means "all".
type ConfigurationQuery struct {
	Search     string
	BEType     string
	Source     string
	Buchart    string
	Betragsart string
}

// Summary aggregates a configuration set the way the review screen presents
// it.
type Summary struct {
	Total         int            `json:"total"`
	UniqueBETypes int            `json:"unique_be_types"`
	UniqueSources int            `json:"unique_sources"`
	PerBEType     map[string]int `json:"per_be_type"`
}

// LoadConfigurations decodes the usable rows of a BUKO file.
func LoadConfigurations(lines []string) []buko.Configuration {
	return buko.LoadConfigurations(lines)
}

// Filter applies the query to a configuration set, preserving file order.
func Filter(configs []buko.Configuration, q ConfigurationQuery) []buko.Configuration {
	out := make([]buko.Configuration, 0, len(configs))
	for _, c := range configs {
		if !matchesSearch(c, q.Search) {
			continue
		}
		if q.BEType != "" && c.Classification.BEType != q.BEType {
			continue
		}
		if q.Source != "" && c.Record.Source != q.Source {
			continue
		}
		if q.Buchart != "" && c.Record.Buchart != q.Buchart {
			continue
		}
		if q.Betragsart != "" && c.Record.Betragsart != q.Betragsart {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Summarize computes the aggregate view over a configuration set.
func Summarize(configs []buko.Configuration) Summary {
	perType := make(map[string]int)
	sources := make(map[string]struct{})
	for _, c := range configs {
		perType[c.Classification.BEType]++
		if c.Record.Source != "" {
			sources[c.Record.Source] = struct{}{}
		}
	}
	return Summary{
		Total:         len(configs),
		UniqueBETypes: len(perType),
		UniqueSources: len(sources),
		PerBEType:     perType,
	}
}

// FilterValues returns the distinct non-blank values of a column across the
// set, sorted, for populating filter choices. The extractor receives each
// configuration and returns the column value.
func FilterValues(configs []buko.Configuration, column func(buko.Configuration) string) []string {
	seen := make(map[string]struct{})
	for _, c := range configs {
		if v := strings.TrimSpace(column(c)); v != "" {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func matchesSearch(c buko.Configuration, search string) bool {
	search = strings.ToUpper(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, v := range searchableValues(c) {
		if strings.Contains(strings.ToUpper(v), search) {
			return true
		}
	}
	return false
}

func searchableValues(c buko.Configuration) []string {
	fields := c.Record.Fields()
	out := make([]string, 0, 3+len(fields))
	out = append(out, c.Classification.BEType, c.Classification.BEC1, c.Classification.BEC2)
	out = append(out, fields[:]...)
	return out
}
