package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/core/ports"
)

const (
	catalogTitleOpen   = "Open square"
	catalogTitleClosed = "Treasure box (past rooms)"
)

type catalogService struct {
	repo ports.TopicRepository
}

func NewCatalogService(repo ports.TopicRepository) ports.CatalogService {
	return &catalogService{
		repo: repo,
	}
}

func (s *catalogService) Browse(ctx context.Context, query domain.CatalogQuery) (*domain.CatalogView, error) {
	topics, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}

	if query.Sort == "" {
		query.Sort = domain.SortNewest
	}

	rooms := domain.FilterTopics(topics, query)

	tags := domain.AvailableTags(topics)
	if tags == nil {
		tags = []string{}
	}

	title := catalogTitleOpen
	if query.ShowClosed {
		title = catalogTitleClosed
	}

	return &domain.CatalogView{
		Title:         title,
		ShowClosed:    query.ShowClosed,
		Sort:          query.Sort,
		ActiveFilters: append([]domain.FilterToken{}, query.Filters...),
		AvailableTags: tags,
		Rooms:         rooms,
		Empty:         len(rooms) == 0,
	}, nil
}
