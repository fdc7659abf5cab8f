package service

import (
	"errors"
	"fmt"

	"github.com/potatolake/internal/db"
	"gorm.io/gorm"
)

// Input builds a new row from a create payload.
type Input[T any] interface {
	Model() (T, error)
}

// Patch carries the id of the row to update and the columns it changes.
type Patch interface {
	TargetID() uint
	Columns() (map[string]any, error)
}

// OrderItem assigns a display position to one row.
type OrderItem struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order"`
}

// parentRef ties a child collection to its singleton page.
type parentRef[T any] struct {
	kind   db.PageKind
	model  any
	attach func(item *T, parentID uint)
}

// Collection provides CRUD over one content table.
type Collection[T any, I Input[T], P Patch] struct {
	db      *gorm.DB
	name    string
	order   string
	ordered bool
	parent  *parentRef[T]
}

func newCollection[T any, I Input[T], P Patch](gdb *gorm.DB, name, order string) *Collection[T, I, P] {
	return &Collection[T, I, P]{db: gdb, name: name, order: order}
}

// withSortOrder marks the table as having a sort_order column.
func (c *Collection[T, I, P]) withSortOrder() *Collection[T, I, P] {
	c.ordered = true
	return c
}

func (c *Collection[T, I, P]) childOf(kind db.PageKind, model any, attach func(*T, uint)) *Collection[T, I, P] {
	c.parent = &parentRef[T]{kind: kind, model: model, attach: attach}
	return c
}

// Name is the collection's URL segment.
func (c *Collection[T, I, P]) Name() string {
	return c.name
}

// Ordered reports whether Reorder is supported.
func (c *Collection[T, I, P]) Ordered() bool {
	return c.ordered
}

// ParentKind returns the owning page kind, or "" for top-level tables.
func (c *Collection[T, I, P]) ParentKind() db.PageKind {
	if c.parent == nil {
		return ""
	}
	return c.parent.kind
}

// List returns every row in display order.
func (c *Collection[T, I, P]) List() ([]T, error) {
	items := make([]T, 0)
	if err := c.db.Order(c.order).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	return items, nil
}

// Count returns the number of rows.
func (c *Collection[T, I, P]) Count() (int64, error) {
	var total int64
	err := c.db.Model(new(T)).Count(&total).Error
	return total, err
}

// Get fetches a row by id.
func (c *Collection[T, I, P]) Get(id uint) (*T, error) {
	var item T
	if err := c.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s %d: %w", c.name, id, err)
	}
	return &item, nil
}

// Create inserts a row. Child rows are attached to their page, which must
// already exist; it is never provisioned here.
func (c *Collection[T, I, P]) Create(input I) (*T, error) {
	item, err := input.Model()
	if err != nil {
		return nil, err
	}

	err = c.db.Transaction(func(tx *gorm.DB) error {
		if c.parent != nil {
			var found int64
			if err := tx.Model(c.parent.model).Where("id = ?", db.SingletonID).Count(&found).Error; err != nil {
				return err
			}
			if found == 0 {
				return fmt.Errorf("%s %w", c.parent.kind, ErrPageNotFound)
			}
			c.parent.attach(&item, db.SingletonID)
		}

		if c.ordered {
			if err := c.assignNextOrder(tx, &item); err != nil {
				return err
			}
		}

		return tx.Create(&item).Error
	})
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create %s: %w", c.name, err)
	}
	return &item, nil
}

// Update merges the patch into the stored row; omitted fields are kept.
func (c *Collection[T, I, P]) Update(patch P) (*T, error) {
	id := patch.TargetID()
	if id == 0 {
		return nil, invalidField("id", "is required")
	}

	updates, err := patch.Columns()
	if err != nil {
		return nil, err
	}

	item, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return item, nil
	}

	if err := c.db.Model(item).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update %s %d: %w", c.name, id, err)
	}
	return c.Get(id)
}

// Delete removes a row by id. Unknown ids return ErrNotFound.
func (c *Collection[T, I, P]) Delete(id uint) error {
	result := c.db.Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("delete %s %d: %w", c.name, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder applies every position in one transaction. An unknown id rolls
// the whole batch back.
func (c *Collection[T, I, P]) Reorder(items []OrderItem) error {
	if !c.ordered {
		return ErrReorderUnsupported
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			result := tx.Model(new(T)).Where("id = ?", item.ID).Update("sort_order", item.Order)
			if result.Error != nil {
				return fmt.Errorf("reorder %s %d: %w", c.name, item.ID, result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
}

// sortable is implemented by rows embedding db.Ordered.
type sortable interface {
	Position() int
	SetPosition(int)
}

func (c *Collection[T, I, P]) assignNextOrder(tx *gorm.DB, item *T) error {
	s, ok := any(item).(sortable)
	if !ok || s.Position() != 0 {
		return nil
	}

	var maxOrder int
	if err := tx.Model(new(T)).Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder).Error; err != nil {
		return err
	}
	s.SetPosition(maxOrder + 1)
	return nil
}
