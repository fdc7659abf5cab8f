package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// backfiller is implemented by pages whose newer nullable columns get
// defaults on read. It fills the nil fields in place and returns the
// column updates to persist.
type backfiller interface {
	backfill() map[string]any
}

// EnsureSingleton 保证单例页面行存在：以固定主键插入默认值（冲突则忽略），
// 再读取 id = SingletonID 的行。created 表示本次调用是否真正插入了新行。
func EnsureSingleton[T any](gdb *gorm.DB, defaults T) (*T, bool, error) {
	result := gdb.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&defaults)
	if result.Error != nil {
		return nil, false, fmt.Errorf("provision %T: %w", defaults, result.Error)
	}
	created := result.RowsAffected > 0

	var page T
	if err := gdb.First(&page, SingletonID).Error; err != nil {
		return nil, created, fmt.Errorf("load %T: %w", page, err)
	}

	if b, ok := any(&page).(backfiller); ok {
		if updates := b.backfill(); len(updates) > 0 {
			if err := gdb.Model(&page).Updates(updates).Error; err != nil {
				return nil, created, fmt.Errorf("backfill %T: %w", page, err)
			}
		}
	}

	return &page, created, nil
}

// FindSingleton loads the page row without provisioning it.
func FindSingleton[T any](gdb *gorm.DB) (*T, error) {
	var page T
	if err := gdb.First(&page, SingletonID).Error; err != nil {
		return nil, err
	}
	return &page, nil
}
