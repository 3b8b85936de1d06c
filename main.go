package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"blogapi/config"
	"blogapi/controllers"
	"blogapi/db"
	"blogapi/router"
	"blogapi/store"
	"blogapi/tools"
	"blogapi/workers"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Get(getenv("CONFIG_PATH", "config.json"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, database, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	mailer := tools.NewMailer(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort,
		cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)
	dispatcher := workers.StartMailDispatcher(mailer, 64)
	defer dispatcher.Stop()

	stores := store.Stores{
		Users:    store.NewUsers(database),
		Blogs:    store.NewBlogs(database),
		Comments: store.NewComments(database),
		Likes:    store.NewLikes(database),
		Otps:     store.NewOtps(database),
	}

	ctl := controllers.New(cfg, stores, dispatcher)

	r := gin.New()
	router.Initialize(r, cfg, ctl)

	srv := &http.Server{
		Addr:              ":" + cfg.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("blogapi listening on :%s", cfg.ApiPort)
	log.Fatal(srv.ListenAndServe())
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
