package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate record")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

type GormDB struct {
	DB *gorm.DB
}

// NewGormDB opens a connection for the given driver ("sqlite" or "postgres").
func NewGormDB(driver, dsn string, gormLogger logger.Interface) (*GormDB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	if gormLogger == nil {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetAll(ctx context.Context, entities any) error {
	err := f.DB.WithContext(ctx).Find(entities).Error
	if err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}
	return nil
}

func (f *GormDB) Insert(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

// Update overwrites every column of record, located by its primary key.
func (f *GormDB) Update(ctx context.Context, record any) error {
	tx := f.DB.WithContext(ctx).Model(record).Select("*").Updates(record)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("update record: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes record by its primary key.
func (f *GormDB) Delete(ctx context.Context, record any) error {
	tx := f.DB.WithContext(ctx).Delete(record)
	if tx.Error != nil {
		return fmt.Errorf("delete record: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
