package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/potatolake/internal/logging"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Models lists every table the site owns, in migration order.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&HomePage{},
		&CarouselImage{},
		&FishingPage{},
		&FishSpecies{},
		&GalleryImage{},
		&FishingTip{},
		&ResortsPage{},
		&Resort{},
		&DnrPage{},
		&DnrLink{},
		&DnrResource{},
		&NewsPage{},
		&Event{},
		&NewsItem{},
		&AssociationPage{},
		&Member{},
		&MembershipTier{},
		&AreaServicesPage{},
		&Sponsor{},
		&Resource{},
		&SeoMetadata{},
		&CommunityStory{},
	}
}

// Open connects to postgres when databaseURL is a postgres DSN and to a
// sqlite file otherwise. databasePath 为空时将回退到默认值 potatolake.db。
func Open(databasePath, databaseURL string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logging.GormLogger(logger.Warn)}

	url := strings.TrimSpace(databaseURL)
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return gorm.Open(postgres.Open(url), cfg)
	}

	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "potatolake.db"
	}
	if err := ensureParentDir(path); err != nil {
		return nil, err
	}
	return gorm.Open(sqlite.Open(path), cfg)
}

// Migrate 自动迁移所有模型。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(Models()...)
}

// Init 初始化全局数据库连接并执行自动迁移。
func Init(databasePath, databaseURL string) error {
	gdb, err := Open(databasePath, databaseURL)
	if err != nil {
		return err
	}
	if err := Migrate(gdb); err != nil {
		return err
	}
	DB = gdb
	return nil
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
