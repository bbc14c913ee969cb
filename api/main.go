package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	reg "github.com/Mysh3ll/goregistration"
	"github.com/Mysh3ll/goregistration/i18n"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	v := viper.New()
	v.SetDefault("addr", ":8090")
	v.SetDefault("mongo_uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("mongo_db", "registration")
	v.SetDefault("smtp_host", "127.0.0.1")
	v.SetDefault("smtp_port", 25)
	v.SetDefault("smtp_username", "")
	v.SetDefault("smtp_password", "")
	v.SetDefault("mail_from", "My App <contact@my-app.com>")
	v.AutomaticEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(v.GetString("mongo_uri")))
	if err != nil {
		logger.Error("connecting to mongo", "error", err)
		os.Exit(1)
	}

	if err = client.Ping(ctx, nil); err != nil {
		logger.Error("pinging mongo", "error", err)
		os.Exit(1)
	}

	users := client.Database(v.GetString("mongo_db")).Collection("users")
	if err = reg.EnsureUserIndexes(ctx, users); err != nil {
		logger.Error("ensuring indexes", "error", err)
		os.Exit(1)
	}

	translator, err := i18n.NewTranslator()
	if err != nil {
		logger.Error("loading translations", "error", err)
		os.Exit(1)
	}

	mailer, err := reg.NewSMTPMailer(reg.SMTPConfig{
		Host:     v.GetString("smtp_host"),
		Port:     v.GetInt("smtp_port"),
		Username: v.GetString("smtp_username"),
		Password: v.GetString("smtp_password"),
		From:     v.GetString("mail_from"),
	})
	if err != nil {
		logger.Error("configuring mailer", "error", err)
		os.Exit(1)
	}

	svc := reg.NewService(reg.NewMongoUserRepository(users), mailer, translator)

	router := httprouter.New()
	router.Handler(http.MethodPost, "/api/1.0/users", reg.RegisterUserHandler(svc, translator, logger))

	addr := v.GetString("addr")
	logger.Info("server started", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
