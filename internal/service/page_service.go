package service

import (
	"context"
	"fmt"

	"github.com/potatolake/internal/db"
	"github.com/potatolake/internal/logging"
	"github.com/potatolake/internal/metrics"
	"gorm.io/gorm"
)

// PageService provides the singleton content pages. Every read provisions
// the page with default copy when it does not exist yet.
type PageService struct {
	db *gorm.DB
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

type preload struct {
	field string
	order string
}

func loadPage[T any](s *PageService, kind db.PageKind, defaults T, preloads ...preload) (*T, error) {
	page, created, err := db.EnsureSingleton(s.db, defaults)
	if err != nil {
		return nil, fmt.Errorf("%s page: %w", kind, err)
	}
	if created {
		metrics.RecordProvisioned(string(kind))
		logging.Info().Str("kind", string(kind)).Msg("provisioned default page")
	}
	if len(preloads) == 0 {
		return page, nil
	}

	query := s.db
	for _, p := range preloads {
		order := p.order
		query = query.Preload(p.field, func(tx *gorm.DB) *gorm.DB {
			return tx.Order(order)
		})
	}

	var loaded T
	if err := query.First(&loaded, db.SingletonID).Error; err != nil {
		return nil, fmt.Errorf("%s page: %w", kind, err)
	}
	return &loaded, nil
}

// updatePage merges patch into the singleton, provisioning it first.
func updatePage[T any](s *PageService, kind db.PageKind, defaults T, patch Patchable, reload func() (*T, error)) (*T, error) {
	updates, err := patch.Columns()
	if err != nil {
		return nil, err
	}

	page, _, err := db.EnsureSingleton(s.db, defaults)
	if err != nil {
		return nil, fmt.Errorf("%s page: %w", kind, err)
	}
	if len(updates) > 0 {
		if err := s.db.Model(page).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update %s page: %w", kind, err)
		}
	}
	return reload()
}

// Patchable is a partial page update.
type Patchable interface {
	Columns() (map[string]any, error)
}

func (s *PageService) Home() (*db.HomePage, error) {
	return loadPage(s, db.PageHome, db.DefaultHomePage(), preload{"CarouselImages", orderByPosition})
}

func (s *PageService) Fishing() (*db.FishingPage, error) {
	return loadPage(s, db.PageFishing, db.DefaultFishingPage(),
		preload{"FishSpecies", orderByPosition},
		preload{"GalleryImages", orderByPosition},
		preload{"FishingTips", orderByPosition},
	)
}

func (s *PageService) Resorts() (*db.ResortsPage, error) {
	return loadPage(s, db.PageResorts, db.DefaultResortsPage(), preload{"Resorts", orderByPosition})
}

func (s *PageService) Dnr() (*db.DnrPage, error) {
	return loadPage(s, db.PageDnr, db.DefaultDnrPage())
}

func (s *PageService) News() (*db.NewsPage, error) {
	return loadPage(s, db.PageNews, db.DefaultNewsPage(),
		preload{"Events", orderByDateDesc},
		preload{"News", orderByDateDesc},
	)
}

func (s *PageService) Association() (*db.AssociationPage, error) {
	return loadPage(s, db.PageAssociation, db.DefaultAssociationPage())
}

func (s *PageService) AreaServices() (*db.AreaServicesPage, error) {
	return loadPage(s, db.PageAreaServices, db.DefaultAreaServicesPage(), preload{"Sponsors", orderByName})
}

// Get loads any page kind, used by the JSON endpoints.
func (s *PageService) Get(kind db.PageKind) (any, error) {
	switch kind {
	case db.PageHome:
		return s.Home()
	case db.PageFishing:
		return s.Fishing()
	case db.PageResorts:
		return s.Resorts()
	case db.PageDnr:
		return s.Dnr()
	case db.PageNews:
		return s.News()
	case db.PageAssociation:
		return s.Association()
	case db.PageAreaServices:
		return s.AreaServices()
	default:
		return nil, fmt.Errorf("%s %w", kind, ErrPageNotFound)
	}
}

// EnsureAll provisions every page kind.
func (s *PageService) EnsureAll() error {
	for _, kind := range db.PageKinds {
		if _, err := s.Get(kind); err != nil {
			return err
		}
	}
	return nil
}

func (s *PageService) UpdateHome(patch HomePagePatch) (*db.HomePage, error) {
	return updatePage(s, db.PageHome, db.DefaultHomePage(), patch, s.Home)
}

func (s *PageService) UpdateFishing(patch FishingPagePatch) (*db.FishingPage, error) {
	return updatePage(s, db.PageFishing, db.DefaultFishingPage(), patch, s.Fishing)
}

func (s *PageService) UpdateResorts(patch ResortsPagePatch) (*db.ResortsPage, error) {
	return updatePage(s, db.PageResorts, db.DefaultResortsPage(), patch, s.Resorts)
}

func (s *PageService) UpdateDnr(patch DnrPagePatch) (*db.DnrPage, error) {
	return updatePage(s, db.PageDnr, db.DefaultDnrPage(), patch, s.Dnr)
}

func (s *PageService) UpdateNews(patch NewsPagePatch) (*db.NewsPage, error) {
	return updatePage(s, db.PageNews, db.DefaultNewsPage(), patch, s.News)
}

func (s *PageService) UpdateAssociation(patch AssociationPagePatch) (*db.AssociationPage, error) {
	return updatePage(s, db.PageAssociation, db.DefaultAssociationPage(), patch, s.Association)
}

func (s *PageService) UpdateAreaServices(patch AreaServicesPagePatch) (*db.AreaServicesPage, error) {
	return updatePage(s, db.PageAreaServices, db.DefaultAreaServicesPage(), patch, s.AreaServices)
}

var pageModels = map[db.PageKind]any{
	db.PageHome:         &db.HomePage{},
	db.PageFishing:      &db.FishingPage{},
	db.PageResorts:      &db.ResortsPage{},
	db.PageNews:         &db.NewsPage{},
	db.PageDnr:          &db.DnrPage{},
	db.PageAssociation:  &db.AssociationPage{},
	db.PageAreaServices: &db.AreaServicesPage{},
}

// Missing lists the page kinds whose singleton row has not been provisioned.
// It never creates rows.
func (s *PageService) Missing(ctx context.Context) ([]db.PageKind, error) {
	missing := make([]db.PageKind, 0)
	for _, kind := range db.PageKinds {
		var count int64
		if err := s.db.WithContext(ctx).Model(pageModels[kind]).Where("id = ?", db.SingletonID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("%s page: %w", kind, err)
		}
		if count == 0 {
			missing = append(missing, kind)
		}
	}
	return missing, nil
}
