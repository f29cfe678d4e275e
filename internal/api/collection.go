// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"sonchiraiya/internal/models"
)

// Backend resource names, as used in /api/{resource} paths.
const (
	ResourceHero        = "hero"
	ResourceNews        = "news"
	ResourceEvents      = "events"
	ResourceInitiatives = "initiatives"
	ResourceGallery     = "gallery"
	ResourceMessages    = "messages"
)

// Collection is the typed CRUD surface for one backend resource.
type Collection[T any] struct {
	client   *Client
	resource string
}

// NewCollection binds a resource name to a record type.
func NewCollection[T any](c *Client, resource string) *Collection[T] {
	return &Collection[T]{client: c, resource: resource}
}

// Name returns the resource name.
func (col *Collection[T]) Name() string {
	return col.resource
}

// List fetches every record of the resource.
func (col *Collection[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := col.client.do(ctx, http.MethodGet, col.resource, "/api/"+col.resource, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one record by id.
func (col *Collection[T]) Get(ctx context.Context, id int64) (T, error) {
	var item T
	err := col.client.do(ctx, http.MethodGet, col.resource, itemPath(col.resource, id), nil, &item)
	return item, err
}

// Create posts a new record. When the backend answers 2xx with a body
// that is not a record (e.g. {"message": "ok"}), the zero value is
// returned with a nil error.
func (col *Collection[T]) Create(ctx context.Context, p *Payload) (T, error) {
	return col.write(ctx, http.MethodPost, "/api/"+col.resource, p)
}

// Update replaces the record with the given id. Same return contract as
// Create.
func (col *Collection[T]) Update(ctx context.Context, id int64, p *Payload) (T, error) {
	return col.write(ctx, http.MethodPut, itemPath(col.resource, id), p)
}

// Remove deletes the record with the given id.
func (col *Collection[T]) Remove(ctx context.Context, id int64) error {
	return col.client.do(ctx, http.MethodDelete, col.resource, itemPath(col.resource, id), nil, nil)
}

func (col *Collection[T]) write(ctx context.Context, method, path string, p *Payload) (T, error) {
	var zero T
	status, body, err := col.client.send(ctx, method, col.resource, path, p)
	if err != nil {
		return zero, err
	}
	if status < 200 || status >= 300 {
		return zero, newStatusError(opName(method, col.resource), status, body)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return zero, nil
	}

	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		slog.Debug("api write returned a non-record body", "resource", col.resource, "error", err)
		return zero, nil
	}
	return item, nil
}

// Resources groups the collections the site uses.
type Resources struct {
	Hero        *Collection[models.HeroSlide]
	News        *Collection[models.NewsArticle]
	Events      *Collection[models.Event]
	Initiatives *Collection[models.Initiative]
	Gallery     *Collection[models.GalleryItem]
	Messages    *Collection[models.Message]
}

// NewResources builds every collection on top of c.
func NewResources(c *Client) *Resources {
	return &Resources{
		Hero:        NewCollection[models.HeroSlide](c, ResourceHero),
		News:        NewCollection[models.NewsArticle](c, ResourceNews),
		Events:      NewCollection[models.Event](c, ResourceEvents),
		Initiatives: NewCollection[models.Initiative](c, ResourceInitiatives),
		Gallery:     NewCollection[models.GalleryItem](c, ResourceGallery),
		Messages:    NewCollection[models.Message](c, ResourceMessages),
	}
}

// SendMessage submits the public contact form. The messages endpoint
// takes JSON rather than multipart.
func (r *Resources) SendMessage(ctx context.Context, name, email, phone, message string) error {
	p := NewJSONPayload().
		Set("name", name).
		Set("email", email).
		Set("phone", phone).
		Set("message", message)
	_, err := r.Messages.Create(ctx, p)
	return err
}
