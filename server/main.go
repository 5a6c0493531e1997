//go:build !js
// +build !js

package main

import (
	_ "embed"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

//go:embed index.html
var indexHTML []byte

// Development server: serves the GopherJS build output and the page shell
// so the game can be tried on a phone on the local network.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("dir", ".")
	v.SetEnvPrefix("chwazam")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("server")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Fatal("reading config", zap.Error(err))
		}
	}

	addr := v.GetString("addr")
	dir := v.GetString("dir")

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		http.FileServer(http.Dir(dir)).ServeHTTP(w, r)
	})

	logger.Info("serving", zap.String("addr", addr), zap.String("dir", dir))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
