// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"

	"sonchiraiya/internal/api"
	"sonchiraiya/internal/models"
)

// collection is the untyped view of a backend resource that the generic
// admin handlers work against.
type collection interface {
	List(ctx context.Context) ([]models.Record, error)
	Create(ctx context.Context, p *api.Payload) (int64, error)
	Update(ctx context.Context, id int64, p *api.Payload) error
	Remove(ctx context.Context, id int64) error
}

type typedCollection[T models.Record] struct {
	col *api.Collection[T]
}

func (t typedCollection[T]) List(ctx context.Context) ([]models.Record, error) {
	items, err := t.col.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out, nil
}

func (t typedCollection[T]) Create(ctx context.Context, p *api.Payload) (int64, error) {
	item, err := t.col.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	return item.RecordID(), nil
}

func (t typedCollection[T]) Update(ctx context.Context, id int64, p *api.Payload) error {
	_, err := t.col.Update(ctx, id, p)
	return err
}

func (t typedCollection[T]) Remove(ctx context.Context, id int64) error {
	return t.col.Remove(ctx, id)
}

// collections maps each admin resource name to its backend collection.
func collections(res *api.Resources) map[string]collection {
	return map[string]collection{
		api.ResourceHero:        typedCollection[models.HeroSlide]{res.Hero},
		api.ResourceNews:        typedCollection[models.NewsArticle]{res.News},
		api.ResourceEvents:      typedCollection[models.Event]{res.Events},
		api.ResourceInitiatives: typedCollection[models.Initiative]{res.Initiatives},
		api.ResourceGallery:     typedCollection[models.GalleryItem]{res.Gallery},
		api.ResourceMessages:    typedCollection[models.Message]{res.Messages},
	}
}
