// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/business-service/internal/types"
)

func (s *Storage) CreateBusiness(ctx context.Context, b *types.Business) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBusiness")
	defer span.End()

	created := *b
	err := s.db.Statement(ctx).
		Insert("businesses").
		Columns("name", "address_line_1", "address_line_2", "city", "region", "postal_code", "country").
		Values(b.Name, b.AddressLine1, b.AddressLine2, b.City, b.Region, b.PostalCode, b.Country).
		Suffix("RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "insert business")
	}

	return &created, nil
}

func (s *Storage) GetBusiness(ctx context.Context, id int64) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBusiness")
	defer span.End()

	var b types.Business
	err := s.db.Statement(ctx).
		Select("id", "name", "address_line_1", "address_line_2", "city", "region", "postal_code", "country", "created_at").
		From("businesses").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&b.ID, &b.Name, &b.AddressLine1, &b.AddressLine2, &b.City, &b.Region, &b.PostalCode, &b.Country, &b.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return &b, nil
}
