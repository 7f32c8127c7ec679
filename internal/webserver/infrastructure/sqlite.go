package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/minutary/minutary/internal/webserver/model"
	"gorm.io/gorm"
)

func Connect(path string) *gorm.DB {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.Contains(path, ":memory:") {
		if _, err = os.Create(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Created database at %s\n", path)
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Snippet{}, &model.KeyValue{}); err != nil {
		log.Fatal(err)
	}
	addDefaultAdmin(db)
	return db
}

func addDefaultAdmin(db *gorm.DB) {
	var result int64
	db.Table("users").Count(&result)

	if result == 0 {
		user := &model.User{
			Uuid:     uuid.NewString(),
			Name:     "Admin",
			Username: "admin",
			Email:    "admin@example.com",
			Password: model.Hash("admin"),
			Role:     model.RoleAdmin,
		}
		result := db.Create(&user)
		if result.Error != nil {
			log.Fatal("Couldn't create default admin")
		}
	}
}
