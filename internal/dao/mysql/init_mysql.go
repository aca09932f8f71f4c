// Package dao establishes the MySQL connection, migrates the schema and
// exposes the global repository set.
package dao

import (
	"fmt"

	"hexachats_server/internal/config"
	"hexachats_server/internal/dao/mysql/repository"
	"hexachats_server/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// GormDB is the global gorm handle.
var GormDB *gorm.DB

// Repos aggregates all repositories; services receive it at wiring time.
var Repos *repository.Repositories

// Init connects, runs AutoMigrate and builds the repository set.
// Fatal on failure: the process is useless without its database.
func Init() {
	conf := config.GetConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	var err error
	GormDB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	err = GormDB.AutoMigrate(
		&model.UserInfo{},
		&model.Contact{},
		&model.Message{},
		&model.StatusRecord{},
		&model.CallRecord{},
		&model.CatalogService{},
		&model.Order{},
	)
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	Repos = repository.NewRepositories(GormDB)
}
