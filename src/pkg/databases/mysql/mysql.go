package mysql

import (
	"fmt"
	"time"

	"investment-service/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
}

type Database struct {
	db *sqlx.DB
}

func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local",
		v.GetString("mysql.username"),
		v.GetString("mysql.password"),
		v.GetString("mysql.host"),
		v.GetInt("mysql.port"),
		v.GetString("mysql.database"),
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		logger.Error("mysql", fmt.Sprintf("failed to connect: %v", err), "InitConnection", "")
		return nil, err
	}

	db.SetMaxOpenConns(v.GetInt("mysql.pool.max_open"))
	db.SetMaxIdleConns(v.GetInt("mysql.pool.max_idle"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("mysql.pool.max_lifetime_minutes")) * time.Minute)

	logger.Info("mysql", "connected", "InitConnection", v.GetString("mysql.database"))
	return &Database{db: db}, nil
}

func (d *Database) GetDB() (*sqlx.DB, error) {
	if d.db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}
	return d.db, nil
}

// NewFromDB wraps an existing sqlx handle, used by tests with sqlmock.
func NewFromDB(db *sqlx.DB) DBInterface {
	return &Database{db: db}
}
