package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var _ core.UserStore = (*Store)(nil)

// Store is the local document store for user records and sessions.
type Store struct {
	db *gorm.DB
}

func New(driver, dsn string) (*Store, error) {
	dialector, err := GetDialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Every connection to ":memory:" opens a new empty database.
	if dsn == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
	); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

// Health checks the database connection
func (s *Store) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB returns the underlying GORM database connection
func (s *Store) DB() *gorm.DB {
	return s.db
}

// User operations

func (s *Store) GetUserByKey(ctx context.Context, shortID string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("short_id = ?", shortID).First(&user).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

// QueryUsersByIndex looks users up by one of the secondary indexes
// core.IndexLongID or core.IndexStudentID.
func (s *Store) QueryUsersByIndex(
	ctx context.Context,
	index, value string,
) ([]*models.User, error) {
	query := s.db.WithContext(ctx).Order("short_id")

	switch index {
	case core.IndexLongID:
		query = query.Where("long_id = ?", value)
	case core.IndexStudentID:
		id, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid student id %q: %w", value, err)
		}
		query = query.Where("student_id = ?", id)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndex, index)
	}

	var users []*models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// PutUser writes u if u.Revision still matches the stored revision. A
// record with revision 0 is only inserted when no record exists yet. The
// input is not modified; the new revision is returned in the result.
func (s *Store) PutUser(ctx context.Context, u *models.User) (core.PutResult, error) {
	next := u.Clone()
	next.Revision = u.Revision + 1

	if u.Revision == 0 {
		result := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(next)
		if result.Error != nil {
			return core.PutResult{}, result.Error
		}
		if result.RowsAffected == 0 {
			return core.PutResult{Accepted: false}, nil
		}
		return core.PutResult{Accepted: true, Revision: next.Revision}, nil
	}

	result := s.db.WithContext(ctx).
		Model(next).
		Where("revision = ?", u.Revision).
		Select("*").
		Omit("short_id", "created_at").
		Updates(next)
	if result.Error != nil {
		return core.PutResult{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.PutResult{Accepted: false}, nil
	}
	return core.PutResult{Accepted: true, Revision: next.Revision}, nil
}

func (s *Store) DeleteUser(ctx context.Context, shortID string) error {
	result := s.db.WithContext(ctx).Where("short_id = ?", shortID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ListLocalUsers returns the accounts that authenticate against a stored
// password hash.
func (s *Store) ListLocalUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := s.db.WithContext(ctx).
		Where("auth_type = ?", models.AuthTypeLocal).
		Order("short_id").
		Find(&users).Error
	return users, err
}
