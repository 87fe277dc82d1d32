package main

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"maestros/internal/api"
	"maestros/internal/auth"
	"maestros/internal/config"
	"maestros/internal/store"
)

func main() {
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err == nil {
			break
		}
	}

	cfg := config.Load()

	if cfg.SecretIsDefault {
		log.Printf("ВНИМАНИЕ: JWT_SECRET не задан, используется встроенный секрет (только для разработки)")
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Не удалось открыть хранилище: %v", err)
	}
	defer st.Close()

	creds := auth.Credentials{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	}

	server := api.NewServer(st, creds, []byte(cfg.JWTSecret), cfg.TokenTTL)
	r := server.SetupRouter()

	// Статические файлы фронтенда; API-пути никогда не отдают HTML
	staticFileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/*", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			http.NotFound(w, req)
			return
		}
		if req.URL.Path == "/" {
			http.ServeFile(w, req, filepath.Join(cfg.StaticDir, "index.html"))
			return
		}
		staticFileServer.ServeHTTP(w, req)
	}))

	log.Printf("Хранилище: %s", cfg.StoreBackend)
	log.Printf("Starting HTTP server on port %s", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}

func openStore(cfg *config.Config) (store.TeacherStore, error) {
	if cfg.StoreBackend == "sqlite" {
		return store.NewSQLiteStore(cfg.SQLiteFile)
	}
	return store.NewFileStore(cfg.DataFile), nil
}
