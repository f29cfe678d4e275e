// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"sonchiraiya/internal/api"
	"sonchiraiya/internal/models"
)

// Hero is the home carousel slide form. The backend stores the
// description under "subtitle" on write.
var Hero = &Schema{
	Resource:  api.ResourceHero,
	Title:     "Hero Slides",
	Singular:  "Hero Slide",
	Folder:    "hero",
	FileField: "hero",
	Columns:   []string{"description", "display_order"},
	Fields: []Field{
		{Name: "description", Wire: "subtitle", Label: "Description", Kind: KindTextarea,
			Rules: "required,min=5", Message: "Description must be at least 5 characters."},
		{Name: "display_order", Label: "Display order", Kind: KindNumber,
			Rules: "nonnegint", Message: "Display order must be 0 or more."},
	},
}

var News = &Schema{
	Resource:  api.ResourceNews,
	Title:     "News",
	Singular:  "News Article",
	Folder:    "news",
	FileField: "news",
	Columns:   []string{"titleEn", "category"},
	Fields: []Field{
		{Name: "titleEn", Label: "Title (English)", Kind: KindText,
			Rules: "required,min=5", Message: "English title must be at least 5 characters."},
		{Name: "titleHi", Label: "Title (Hindi)", Kind: KindText, Hindi: true,
			Rules: "required,min=5", Message: "Hindi title is required."},
		{Name: "contentEn", Label: "Content (English)", Kind: KindTextarea,
			Rules: "required,min=20", Message: "English content is too short."},
		{Name: "contentHi", Label: "Content (Hindi)", Kind: KindTextarea, Hindi: true,
			Rules: "required,min=20", Message: "Hindi content is too short."},
		{Name: "category", Label: "Category", Kind: KindSelect, Options: models.Categories,
			Rules: "required", Message: "Please select a category."},
	},
}

var Events = &Schema{
	Resource:  api.ResourceEvents,
	Title:     "Events",
	Singular:  "Event",
	Folder:    "events",
	FileField: "image",
	Columns:   []string{"eventName", "date", "location"},
	Fields: []Field{
		{Name: "eventName", Label: "Event name", Kind: KindText,
			Rules: "required,min=5", Message: "Event name must be at least 5 characters."},
		{Name: "location", Label: "Location", Kind: KindText,
			Rules: "required,min=3", Message: "Location must be at least 3 characters."},
		{Name: "descriptionHi", Label: "Description (Hindi)", Kind: KindTextarea, Hindi: true,
			Rules: "required,min=20", Message: "Hindi description must be at least 20 characters."},
		{Name: "descriptionEn", Label: "Description (English)", Kind: KindTextarea,
			Rules: "required,min=20", Message: "English description must be at least 20 characters."},
		{Name: "date", Label: "Date and time", Kind: KindDate,
			Rules: "required,formdate", Message: "Date is required."},
	},
}

var Initiatives = &Schema{
	Resource:  api.ResourceInitiatives,
	Title:     "Initiatives",
	Singular:  "Initiative",
	Folder:    "initiatives",
	FileField: "initiative_img",
	Columns:   []string{"titleEn", "slug", "display_order"},
	SlugFrom:  "titleEn",
	Fields: []Field{
		{Name: "slug", Label: "Slug", Kind: KindSlug, Placeholder: "clean-water-drive",
			Rules: "required,min=2,slug", Message: "Slug must be lowercase and hyphenated (e.g. clean-water-drive)."},
		{Name: "titleHi", Label: "Title (Hindi)", Kind: KindText, Hindi: true,
			Rules: "required,min=2", Message: "Hindi title is required."},
		{Name: "titleEn", Label: "Title (English)", Kind: KindText,
			Rules: "required,min=2", Message: "English title is required."},
		{Name: "descriptionHi", Label: "Description (Hindi)", Kind: KindTextarea, Hindi: true,
			Rules: "required,min=10", Message: "Hindi description must be at least 10 characters."},
		{Name: "descriptionEn", Label: "Description (English)", Kind: KindTextarea,
			Rules: "required,min=10", Message: "English description must be at least 10 characters."},
		{Name: "display_order", Label: "Display order", Kind: KindNumber,
			Rules: "nonnegint", Message: "Display order must be a whole number, 0 or more."},
	},
}

var Gallery = &Schema{
	Resource:  api.ResourceGallery,
	Title:     "Gallery",
	Singular:  "Photo",
	Folder:    "gallery",
	FileField: "gallery",
	Columns:   []string{"title", "titleHi"},

	ImageRequired: true,
	Fields: []Field{
		{Name: "title", Label: "Title", Kind: KindText,
			Rules: "required,min=3", Message: "Title is required (min 3 characters)."},
		{Name: "titleHi", Label: "Title (Hindi, optional)", Kind: KindText, Hindi: true},
	},
}

// Messages is read-only; its fields only drive the table columns.
var Messages = &Schema{
	Resource: api.ResourceMessages,
	Title:    "Messages",
	Singular: "Message",
	ReadOnly: true,
	Columns:  []string{"name", "email", "phone", "message"},
	Fields: []Field{
		{Name: "name", Label: "Name", Kind: KindText},
		{Name: "email", Label: "Email", Kind: KindEmail},
		{Name: "phone", Label: "Phone", Kind: KindText},
		{Name: "message", Label: "Message", Kind: KindTextarea},
	},
}

// Contact is the public contact form. It is never sent as multipart.
// Labels and messages are translation keys.
var Contact = &Schema{
	Resource: api.ResourceMessages,
	Fields: []Field{
		{Name: "name", Label: "contact_form_name", Kind: KindText,
			Rules: "required,min=2", Message: "contact_err_name"},
		{Name: "email", Label: "contact_form_email", Kind: KindEmail,
			Rules: "required,email", Message: "contact_err_email"},
		{Name: "phone", Label: "contact_form_phone", Kind: KindText},
		{Name: "message", Label: "contact_form_message", Kind: KindTextarea,
			Rules: "required,min=10", Message: "contact_err_message"},
	},
}

// Admin lists the resources shown in the admin sidebar, in order.
var Admin = []*Schema{Hero, News, Events, Initiatives, Gallery, Messages}

// Lookup finds an admin schema by resource name.
func Lookup(resource string) (*Schema, bool) {
	for _, s := range Admin {
		if s.Resource == resource {
			return s, true
		}
	}
	return nil, false
}
