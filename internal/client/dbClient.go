package client

import (
	"log"
	"thriftstore/internal/model"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgresClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Favorite{},
		&model.CartItem{},
		&model.Session{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
