// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the content records served by the backend API.
// Field tags follow the backend's JSON column names exactly.
package models

import (
	"strconv"
	"strings"

	"sonchiraiya/internal/i18n"
)

// News categories offered by the admin form. The backend accepts any
// non-empty string.
const (
	CategoryGeneral = "General"
	CategoryEvent   = "Event"
	CategoryAlert   = "Alert"
)

// Categories lists the suggested news categories in display order.
var Categories = []string{CategoryGeneral, CategoryEvent, CategoryAlert}

// Record is implemented by every entity the admin panel manages. Values
// returns the record's editable fields keyed by form field name so the
// generic manager and form templates can render any resource.
type Record interface {
	RecordID() int64
	ImageRef() string
	Values() map[string]string
}

// imageRef picks the first populated image column. Older rows use
// imageUrl or image_url instead of image.
func imageRef(refs ...string) string {
	for _, r := range refs {
		if s := strings.TrimSpace(r); s != "" {
			return s
		}
	}
	return ""
}

// HeroSlide is one image of the home page carousel.
type HeroSlide struct {
	ID           int64  `json:"id"`
	Image        string `json:"image"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

func (h HeroSlide) RecordID() int64  { return h.ID }
func (h HeroSlide) ImageRef() string { return imageRef(h.Image, h.ImageURL) }

func (h HeroSlide) Values() map[string]string {
	return map[string]string{
		"description":   h.Description,
		"display_order": strconv.Itoa(h.DisplayOrder),
	}
}

// NewsArticle is a bilingual news post.
type NewsArticle struct {
	ID        int64  `json:"id"`
	TitleEn   string `json:"titleEn"`
	TitleHi   string `json:"titleHi"`
	ContentEn string `json:"contentEn"`
	ContentHi string `json:"contentHi"`
	Category  string `json:"category"`
	Image     string `json:"image"`
	CreatedAt Date   `json:"created_at"`
}

func (n NewsArticle) RecordID() int64  { return n.ID }
func (n NewsArticle) ImageRef() string { return imageRef(n.Image) }

// Title returns the bilingual title.
func (n NewsArticle) Title() i18n.Text { return i18n.Text{En: n.TitleEn, Hi: n.TitleHi} }

// Content returns the bilingual body.
func (n NewsArticle) Content() i18n.Text { return i18n.Text{En: n.ContentEn, Hi: n.ContentHi} }

func (n NewsArticle) Values() map[string]string {
	return map[string]string{
		"titleEn":   n.TitleEn,
		"titleHi":   n.TitleHi,
		"contentEn": n.ContentEn,
		"contentHi": n.ContentHi,
		"category":  n.Category,
	}
}

// Event is a scheduled public event.
type Event struct {
	ID            int64  `json:"id"`
	EventName     string `json:"eventName"`
	Date          Date   `json:"date"`
	Location      string `json:"location"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionHi string `json:"descriptionHi"`
	Image         string `json:"image"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

func (e Event) RecordID() int64  { return e.ID }
func (e Event) ImageRef() string { return imageRef(e.Image, e.ImageURL) }

// Description returns the bilingual description.
func (e Event) Description() i18n.Text {
	return i18n.Text{En: e.DescriptionEn, Hi: e.DescriptionHi}
}

func (e Event) Values() map[string]string {
	return map[string]string{
		"eventName":     e.EventName,
		"date":          e.Date.InputValue(),
		"location":      e.Location,
		"descriptionEn": e.DescriptionEn,
		"descriptionHi": e.DescriptionHi,
	}
}

// Initiative is a programme shown on the initiatives page.
type Initiative struct {
	ID            int64  `json:"id"`
	Slug          string `json:"slug"`
	TitleEn       string `json:"titleEn"`
	TitleHi       string `json:"titleHi"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionHi string `json:"descriptionHi"`
	Image         string `json:"image"`
	DisplayOrder  int    `json:"display_order"`
}

func (i Initiative) RecordID() int64  { return i.ID }
func (i Initiative) ImageRef() string { return imageRef(i.Image) }

// Title returns the bilingual title.
func (i Initiative) Title() i18n.Text { return i18n.Text{En: i.TitleEn, Hi: i.TitleHi} }

// Description returns the bilingual description.
func (i Initiative) Description() i18n.Text {
	return i18n.Text{En: i.DescriptionEn, Hi: i.DescriptionHi}
}

func (i Initiative) Values() map[string]string {
	return map[string]string{
		"slug":          i.Slug,
		"titleEn":       i.TitleEn,
		"titleHi":       i.TitleHi,
		"descriptionEn": i.DescriptionEn,
		"descriptionHi": i.DescriptionHi,
		"display_order": strconv.Itoa(i.DisplayOrder),
	}
}

// GalleryItem is a captioned photo.
type GalleryItem struct {
	ID        int64  `json:"id"`
	Image     string `json:"image"`
	ImageURL  string `json:"image_url,omitempty"`
	Title     string `json:"title"`
	TitleHi   string `json:"titleHi"`
	CreatedAt Date   `json:"created_at"`
}

func (g GalleryItem) RecordID() int64  { return g.ID }
func (g GalleryItem) ImageRef() string { return imageRef(g.Image, g.ImageURL) }

// Caption returns the bilingual caption.
func (g GalleryItem) Caption() i18n.Text { return i18n.Text{En: g.Title, Hi: g.TitleHi} }

func (g GalleryItem) Values() map[string]string {
	return map[string]string{
		"title":   g.Title,
		"titleHi": g.TitleHi,
	}
}

// Message is a contact form submission. Messages are read-only in the
// admin panel apart from deletion.
type Message struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	SentAt  Date   `json:"sentAt"`
}

func (m Message) RecordID() int64  { return m.ID }
func (m Message) ImageRef() string { return "" }

func (m Message) Values() map[string]string {
	return map[string]string{
		"name":    m.Name,
		"email":   m.Email,
		"phone":   m.Phone,
		"message": m.Message,
	}
}
