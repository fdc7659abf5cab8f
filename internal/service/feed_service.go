package service

import (
	"fmt"
	"time"

	"github.com/potatolake/internal/db"
	"gorm.io/gorm"
)

const (
	DefaultLatestNews = 3
	MaxLatestNews     = 20
	UpcomingEventSlot = 4
)

// FeedService serves the read-only projections used by homepage widgets.
type FeedService struct {
	db *gorm.DB
}

// NewFeedService creates a FeedService instance.
func NewFeedService(gdb *gorm.DB) *FeedService {
	return &FeedService{db: gdb}
}

// LatestNews returns the newest news items. limit is clamped to 1..MaxLatestNews.
func (s *FeedService) LatestNews(limit int) ([]db.NewsItem, error) {
	if limit <= 0 {
		limit = DefaultLatestNews
	}
	if limit > MaxLatestNews {
		limit = MaxLatestNews
	}

	items := make([]db.NewsItem, 0, limit)
	if err := s.db.Order(orderByDateDesc).Limit(limit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("latest news: %w", err)
	}
	return items, nil
}

// UpcomingEvents 返回 now 之后的活动（按日期升序）；不足 n 条时用最近的
// 过往活动按日期降序补齐，因此总数不少于 n 时恰好返回 n 条。
func (s *FeedService) UpcomingEvents(now time.Time, n int) ([]db.Event, error) {
	if n <= 0 {
		n = UpcomingEventSlot
	}

	events := make([]db.Event, 0, n)
	if err := s.db.Where("date >= ?", now).
		Order("date asc, id asc").
		Limit(n).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("upcoming events: %w", err)
	}
	if len(events) >= n {
		return events, nil
	}

	var past []db.Event
	if err := s.db.Where("date < ?", now).
		Order(orderByDateDesc).
		Limit(n - len(events)).
		Find(&past).Error; err != nil {
		return nil, fmt.Errorf("past events: %w", err)
	}
	return append(events, past...), nil
}

// DnrLinks returns every DNR link by position.
func (s *FeedService) DnrLinks() ([]db.DnrLink, error) {
	links := make([]db.DnrLink, 0)
	if err := s.db.Order(orderByPosition).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("dnr links: %w", err)
	}
	return links, nil
}

// DnrResources returns every DNR resource by position.
func (s *FeedService) DnrResources() ([]db.DnrResource, error) {
	resources := make([]db.DnrResource, 0)
	if err := s.db.Order(orderByPosition).Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("dnr resources: %w", err)
	}
	return resources, nil
}

// Members returns association members by position.
func (s *FeedService) Members() ([]db.Member, error) {
	members := make([]db.Member, 0)
	if err := s.db.Order(orderByPosition).Find(&members).Error; err != nil {
		return nil, fmt.Errorf("members: %w", err)
	}
	return members, nil
}

// MembershipTiers returns dues levels by position.
func (s *FeedService) MembershipTiers() ([]db.MembershipTier, error) {
	tiers := make([]db.MembershipTier, 0)
	if err := s.db.Order(orderByPosition).Find(&tiers).Error; err != nil {
		return nil, fmt.Errorf("membership tiers: %w", err)
	}
	return tiers, nil
}

// Resources returns member resources by position.
func (s *FeedService) Resources() ([]db.Resource, error) {
	resources := make([]db.Resource, 0)
	if err := s.db.Order(orderByPosition).Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("resources: %w", err)
	}
	return resources, nil
}
