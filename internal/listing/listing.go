// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package listing implements the in-memory search, filter and ordering
// applied to full collections fetched from the backend. Nothing here
// talks to the network.
package listing

import (
	"sort"
	"strings"
	"time"

	"sonchiraiya/internal/i18n"
	"sonchiraiya/internal/models"
)

// CategoryAll disables the news category filter.
const CategoryAll = "All"

// Contains reports whether text contains query, ignoring case. A blank
// query matches everything.
func Contains(text, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

// Search keeps the items for which any of the extracted fields contains
// query.
func Search[T any](items []T, query string, fields ...func(T) string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields {
			if Contains(f(it), query) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// FilterNews matches the query against the title in the active language
// and restricts to category unless it is blank or CategoryAll.
func FilterNews(items []models.NewsArticle, lang i18n.Language, query, category string) []models.NewsArticle {
	category = strings.TrimSpace(category)
	out := make([]models.NewsArticle, 0, len(items))
	for _, n := range items {
		if category != "" && category != CategoryAll && n.Category != category {
			continue
		}
		if !Contains(n.Title().In(lang), query) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// SearchEvents matches on event name or location.
func SearchEvents(items []models.Event, query string) []models.Event {
	return Search(items, query,
		func(e models.Event) string { return e.EventName },
		func(e models.Event) string { return e.Location },
	)
}

// SearchGallery matches on the English or Hindi caption.
func SearchGallery(items []models.GalleryItem, query string) []models.GalleryItem {
	return Search(items, query,
		func(g models.GalleryItem) string { return g.Title },
		func(g models.GalleryItem) string { return g.TitleHi },
	)
}

// SearchInitiatives matches on the title in the active language.
func SearchInitiatives(items []models.Initiative, lang i18n.Language, query string) []models.Initiative {
	return Search(items, query, func(i models.Initiative) string { return i.Title().In(lang) })
}

// Upcoming keeps events dated on or after the calendar day of today,
// ordered soonest first, capped at limit (no cap when limit <= 0).
// Dates are compared as calendar days in today's location.
func Upcoming(events []models.Event, today time.Time, limit int) []models.Event {
	start := startOfDay(today)
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Date.IsZero() {
			continue
		}
		if !startOfDay(e.Date.In(today.Location())).Before(start) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date.Time)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SortSlides orders hero slides by display order, then id.
func SortSlides(slides []models.HeroSlide) []models.HeroSlide {
	out := append([]models.HeroSlide(nil), slides...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SortInitiatives orders initiatives by display order, then id.
func SortInitiatives(items []models.Initiative) []models.Initiative {
	out := append([]models.Initiative(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Related returns up to limit other articles in the same category as
// current, keeping the backend order.
func Related(items []models.NewsArticle, current models.NewsArticle, limit int) []models.NewsArticle {
	var out []models.NewsArticle
	for _, n := range items {
		if n.ID == current.ID || n.Category != current.Category {
			continue
		}
		out = append(out, n)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Take returns at most n items.
func Take[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}

// FindByID scans items for the record with id.
func FindByID[T models.Record](items []T, id int64) (T, bool) {
	for _, it := range items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
