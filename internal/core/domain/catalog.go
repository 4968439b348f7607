package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// FilterToken is one catalog filter chip. Active tokens combine with OR.
type FilterToken string

const (
	FilterParticipated    FilterToken = "PARTICIPATED"
	FilterNotParticipated FilterToken = "NOT_PARTICIPATED"

	tagTokenPrefix = "TAG_"
)

func TagToken(label string) FilterToken {
	return FilterToken(tagTokenPrefix + label)
}

func ParseFilterToken(s string) (FilterToken, error) {
	switch {
	case s == string(FilterParticipated), s == string(FilterNotParticipated):
		return FilterToken(s), nil
	case strings.HasPrefix(s, tagTokenPrefix) && len(s) > len(tagTokenPrefix):
		return FilterToken(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Tag returns the label of a TAG_ token.
func (f FilterToken) Tag() (string, bool) {
	return strings.CutPrefix(string(f), tagTokenPrefix)
}

func (f FilterToken) Matches(t Topic) bool {
	switch f {
	case FilterParticipated:
		return t.Participated
	case FilterNotParticipated:
		return !t.Participated
	}
	if label, ok := f.Tag(); ok {
		return t.HasLabel(label)
	}
	return false
}

type SortMode string

const (
	SortNewest  SortMode = "newest"
	SortPopular SortMode = "popular"
)

func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortNewest, SortPopular:
		return SortMode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
}

type CatalogQuery struct {
	ShowClosed bool
	Filters    []FilterToken
	Sort       SortMode
}

// Toggle adds the token when absent and removes it when present, keeping
// activation order.
func (q *CatalogQuery) Toggle(token FilterToken) {
	if i := slices.Index(q.Filters, token); i >= 0 {
		q.Filters = slices.Delete(q.Filters, i, i+1)
		return
	}
	q.Filters = append(q.Filters, token)
}

// FilterTopics partitions by status, keeps topics matching any active token
// and sorts stably by the query's sort mode. The input is not modified.
func FilterTopics(topics []Topic, q CatalogQuery) []Topic {
	want := StatusOpen
	if q.ShowClosed {
		want = StatusClosed
	}

	out := make([]Topic, 0, len(topics))
	for _, t := range topics {
		if t.Status != want {
			continue
		}
		if len(q.Filters) > 0 && !slices.ContainsFunc(q.Filters, func(f FilterToken) bool { return f.Matches(t) }) {
			continue
		}
		out = append(out, t)
	}

	switch q.Sort {
	case SortPopular:
		slices.SortStableFunc(out, func(a, b Topic) int { return cmp.Compare(b.Participants, a.Participants) })
	case SortNewest, "":
		slices.SortStableFunc(out, func(a, b Topic) int { return cmp.Compare(b.ID, a.ID) })
	}
	return out
}

// AvailableTags is the union of labels over OPEN topics, in first-seen order.
// Labels that only appear on closed topics are never offered.
func AvailableTags(topics []Topic) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, t := range topics {
		if t.Status != StatusOpen {
			continue
		}
		for _, l := range t.Labels {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			tags = append(tags, l)
		}
	}
	return tags
}
